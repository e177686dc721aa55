// Package content holds the copy of the About page for every supported
// locale and the checks that keep the locale trees in step.
package content

// TextSection is a heading followed by a single paragraph.
type TextSection struct {
	Heading string `json:"heading" validate:"required"`
	Text    string `json:"text" validate:"required"`
}

// ListSection is a heading, an optional intro paragraph and a list of items.
// Item order is significant and is rendered as given.
type ListSection struct {
	Heading string   `json:"heading" validate:"required"`
	Intro   string   `json:"intro,omitempty"`
	Items   []string `json:"items" validate:"required,min=1,dive,required"`
}

// ReasonsSection is a ListSection with a closing paragraph after the list.
type ReasonsSection struct {
	Heading string   `json:"heading" validate:"required"`
	Intro   string   `json:"intro" validate:"required"`
	Items   []string `json:"items" validate:"required,min=1,dive,required"`
	Closing string   `json:"closing" validate:"required"`
}

// FAQEntry is one question and its answer.
type FAQEntry struct {
	Q string `json:"q" validate:"required"`
	A string `json:"a" validate:"required"`
}

// FAQSection lists question/answer pairs in display order.
type FAQSection struct {
	Heading string     `json:"heading" validate:"required"`
	Items   []FAQEntry `json:"items" validate:"required,min=1,dive"`
}

// CallToAction closes the page with a link to the detector tool.
type CallToAction struct {
	Heading    string `json:"heading" validate:"required"`
	Text       string `json:"text" validate:"required"`
	ButtonText string `json:"buttonText" validate:"required"`
}

// LocaleContent is the complete copy of the About page in one language.
// Field order matches the order the sections are rendered in.
type LocaleContent struct {
	Title        string         `json:"title" validate:"required"`
	OurStory     TextSection    `json:"ourStory"`
	WhatWeDo     ListSection    `json:"whatWeDo"`
	WhyItMatters ReasonsSection `json:"whyItMatters"`
	HowItWorks   ListSection    `json:"howItWorks"`
	OurMission   TextSection    `json:"ourMission"`
	WhoWeServe   ListSection    `json:"whoWeServe"`
	FAQ          FAQSection     `json:"faq"`
	GetStarted   CallToAction   `json:"getStarted"`
}
