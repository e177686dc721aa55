package content

var korean = LocaleContent{
	Title: "저희 소개",
	OurStory: TextSection{
		Heading: "우리의 시작",
		Text:    "매번 편의점이나 마트에서 포장지를 뒤집어 원재료명을 확인해야 했던 외국인 친구들의 불편함에서 이 프로젝트가 시작되었습니다. 특히 종교적 이유나 알러지, 비건 라이프스타일 때문에 특정 식재료를 피해야 하는 분들이 한국에 방문했을 때 매번 같은 수고를 반복하는 모습을 보았습니다.",
	},
	WhatWeDo: ListSection{
		Heading: "우리의 서비스",
		Intro:   "한국을 방문한 외국인 관광객과 거주자를 위한 원재료 검출 서비스를 제공합니다. 상품의 품목보고번호 또는 바코드를 입력하면, 우리의 서비스가 자동으로 원재료를 분석하여 잠재적인 알러지 유발물질이나 금기 성분을 찾아냅니다.",
		Items: []string{
			"빠른 조회 - 포장지에 있는 품목보고번호 또는 바코드 입력",
			"즉시 분석 - 복잡한 원재료명을 자동으로 스캔",
			"스마트 감지 - 소고기, 돼지고기, 우유, 땅콩, 계란, 생선, 갑각류 등 감지",
			"이중언어 지원 - 한국어와 영어로 결과 제공",
		},
	},
	WhyItMatters: ReasonsSection{
		Heading: "중요성",
		Intro:   "한국을 방문하는 외국인들은 다양한 이유로 특정 식재료를 피해야 합니다:",
		Items: []string{
			"종교적 신앙 - 무슬림(돼지고기 금지), 힌두교도(소고기 금지), 유대교도 등",
			"음식 알러지 - 우유, 땅콩, 계란, 생선, 갑각류 등으로 인한 심각한 반응",
			"라이프스타일 - 비건(모든 동물성 식품 제외), 채식주의자 등",
		},
		Closing: "우리의 목표는 모든 방문객이 한국 음식을 안심하고 즐길 수 있도록 돕는 것입니다.",
	},
	HowItWorks: ListSection{
		Heading: "사용 방법",
		Items: []string{
			"한국 편의점이나 마트에서 상품 찾기",
			"포장지에 표시된 품목보고번호 또는 바코드 입력",
			"우리 서비스가 자동으로 원재료명을 검색하고 분석",
			"알러지 유발물질이나 금기 성분 확인",
			"안심하고 구매 결정",
		},
	},
	OurMission: TextSection{
		Heading: "우리의 목표",
		Text:    "한국을 방문한 외국인들이 안전하고 자신감 있게 음식을 선택할 수 있도록 필요한 정보를 제공하여, 장벽을 제거하고 모두가 즐거운 한국 음식 경험을 할 수 있도록 돕는 것입니다.",
	},
	WhoWeServe: ListSection{
		Heading: "우리의 고객",
		Items: []string{
			"🌏 국제 관광객 - 처음 한국을 방문하는 분들",
			"🛂 외국인 거주자 - 한국에서 생활하고 일하는 분들",
			"🌙 종교 신자 - 종교적 식이 제한이 있는 분들",
			"⚠️ 알러지 있는 분들 - 긴급한 원재료 정보가 필요한 분들",
			"🌱 비건 및 채식주의 여행객 - 식물성 식품을 찾는 분들",
		},
	},
	FAQ: FAQSection{
		Heading: "자주 묻는 질문",
		Items: []FAQEntry{
			{
				Q: "Q: 정보의 정확성은 보장되나요?",
				A: "A: 우리의 데이터는 공식 식품의약품안전처(KFDA) 데이터베이스를 기반으로 제공되므로 신뢰할 수 있습니다. 다만 제조사에서 원재료를 변경할 수 있으므로, 최신 정보 확인을 권장합니다.",
			},
			{
				Q: "Q: 모든 한국 식품이 검색되나요?",
				A: "A: 우리는 식품의약품안전처에 등록된 가공식품을 다루고 있으며, 지속적으로 확대 중입니다. 대부분의 일반적으로 구매하는 제품이 포함되어 있습니다.",
			},
			{
				Q: "Q: 휴대폰에서도 사용할 수 있나요?",
				A: "A: 네! 우리의 서비스는 모바일에 최적화되어 있습니다. 쇼핑 중에도 쉽게 상품을 검색할 수 있습니다.",
			},
			{
				Q: "Q: 정말 무료로 사용할 수 있나요?",
				A: "A: 네, 원재료 검출 서비스는 누구나 완전히 무료로 사용할 수 있습니다.",
			},
		},
	},
	GetStarted: CallToAction{
		Heading:    "시작하기",
		Text:       "한국 음식 경험을 더 안전하고 즐겁게 만들 준비가 되셨나요? 우리의 원재료 검출 도구로 이동하여 검색을 시작하세요. 편의점에서 쇼핑하든, 지역 시장을 방문하든 우리가 도와드립니다.",
		ButtonText: "지금 검출기 사용해보기",
	},
}
