package content

var english = LocaleContent{
	Title: "About Us",
	OurStory: TextSection{
		Heading: "Our Story",
		Text:    "This project was born from observing international friends repeatedly struggle with the same inconvenience: flipping over food packaging at convenience stores and supermarkets to check ingredient labels. Whether due to religious beliefs, food allergies, or lifestyle choices, they needed a faster, easier way to identify safe foods while visiting Korea.",
	},
	WhatWeDo: ListSection{
		Heading: "What We Do",
		Intro:   "We provide an easy-to-use ingredient detection service for international tourists and residents in Korea. Simply enter a product's report number or barcode, and our service instantly analyzes the ingredients to identify potential allergens or forbidden ingredients.",
		Items: []string{
			"Quick Lookup - Enter product number or barcode from packaging",
			"Instant Analysis - Automatically scan complex ingredient lists",
			"Smart Detection - Identify beef, pork, milk, peanuts, eggs, fish, shellfish, and more",
			"Bilingual Support - Results in both Korean and English for easy understanding",
		},
	},
	WhyItMatters: ReasonsSection{
		Heading: "Why It Matters",
		Intro:   "International visitors to Korea have diverse dietary requirements for various reasons:",
		Items: []string{
			"Religious Observance - Muslims (no pork), Hindus (no beef), Jews, and others with faith-based dietary laws",
			"Food Allergies - Severe reactions to milk, peanuts, eggs, fish, shellfish, and other common allergens",
			"Lifestyle Choices - Vegans (no animal products), vegetarians, and those with ethical dietary preferences",
		},
		Closing: "Our goal is to ensure that every visitor can enjoy Korean food with confidence and peace of mind.",
	},
	HowItWorks: ListSection{
		Heading: "How It Works",
		Items: []string{
			"Find a product at a Korean grocery store or convenience store",
			"Enter the product report number or barcode shown on the packaging",
			"Our service automatically retrieves and analyzes the ingredient list",
			"Instantly see which allergens or forbidden ingredients are present",
			"Make an informed decision with confidence",
		},
	},
	OurMission: TextSection{
		Heading: "Our Mission",
		Text:    "To empower international visitors to Korea with the information they need to make safe, confident food choices—removing barriers and making Korean food experiences more enjoyable and stress-free for everyone.",
	},
	WhoWeServe: ListSection{
		Heading: "Who We Serve",
		Items: []string{
			"🌏 International Tourists - visiting Korea for the first time",
			"🛂 Foreign Residents - living and working in Korea",
			"🌙 Religious Visitors - with faith-based dietary restrictions",
			"⚠️ People with Allergies - requiring immediate ingredient information",
			"🌱 Vegan & Vegetarian Travelers - seeking plant-based options",
		},
	},
	FAQ: FAQSection{
		Heading: "Frequently Asked Questions",
		Items: []FAQEntry{
			{
				Q: "Q: Is the information accurate?",
				A: "A: Our data is based on the official Korea Food and Drug Administration (KFDA) database, ensuring reliability. However, manufacturers may change ingredients, so we recommend checking recent updates when available.",
			},
			{
				Q: "Q: Does every Korean product show up in your database?",
				A: "A: We cover registered processed foods in the KFDA database, with continuous expansion. Most commonly purchased items are included.",
			},
			{
				Q: "Q: Can I use this service on my phone?",
				A: "A: Yes! Our service is fully mobile-optimized. You can easily look up products while shopping.",
			},
			{
				Q: "Q: Is it free to use?",
				A: "A: Yes, our ingredient detector is completely free for everyone.",
			},
		},
	},
	GetStarted: CallToAction{
		Heading:    "Get Started",
		Text:       "Ready to make your Korean food experience safer and more enjoyable? Head to our Ingredient Detector tool and start searching. Whether you're shopping at a convenience store or visiting a local market, we're here to help.",
		ButtonText: "Try the Detector Now",
	},
}
