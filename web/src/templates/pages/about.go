package pages

import (
	"net/url"

	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/locale"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

const (
	// AboutPath serves the About page.
	AboutPath = "/about"
	// DetectorPath is the ingredient detector tool. It is the same in every locale.
	DetectorPath = "/ingredient-detector"
	// FragmentID is the element htmx swaps when the locale changes.
	FragmentID = "about"
)

// SectionIDs lists the element ids of the page sections in render order.
var SectionIDs = []string{
	"our-story", "what-we-do", "why-it-matters", "how-it-works",
	"our-mission", "who-we-serve", "faq", "get-started",
}

// AboutProps is everything the About page needs to render.
type AboutProps struct {
	Content *content.LocaleContent
	Active  locale.Locale
}

// AboutURL is the link target of the switch control for l.
func AboutURL(l locale.Locale) string {
	return AboutPath + "?" + url.Values{"lang": {l.String()}}.Encode()
}

// About renders the page body for the active locale. The whole element is
// replaced on a locale switch, so a render never mixes two locale trees.
func About(p AboutProps) cmp.Node {
	c := p.Content
	return g.Main(
		g.ID(FragmentID),
		g.Class("about"),
		g.Lang(p.Active.String()),
		LocaleTabs(p.Active),
		g.H1(cmp.Text(c.Title)),
		textSection(SectionIDs[0], c.OurStory),
		listSection(SectionIDs[1], c.WhatWeDo, false),
		reasonsSection(SectionIDs[2], c.WhyItMatters),
		listSection(SectionIDs[3], c.HowItWorks, true),
		textSection(SectionIDs[4], c.OurMission),
		listSection(SectionIDs[5], c.WhoWeServe, false),
		faqSection(SectionIDs[6], c.FAQ),
		callToAction(SectionIDs[7], c.GetStarted),
	)
}

// LocaleTabs renders one switch control per supported locale. The controls
// are plain links so the page also works without JavaScript.
func LocaleTabs(active locale.Locale) cmp.Node {
	return g.Nav(
		g.Class("locale-tabs"),
		g.Role("tablist"),
		cmp.Map(locale.Supported(), func(l locale.Locale) cmp.Node {
			return localeTab(l, l == active)
		}),
	)
}

func localeTab(l locale.Locale, active bool) cmp.Node {
	target := AboutURL(l)
	return g.A(
		g.Href(target),
		g.Role("tab"),
		g.Lang(l.String()),
		components.Classes{"locale-tab": true, "active": active},
		hx.Get(target),
		hx.Target("#"+FragmentID),
		hx.Swap("outerHTML"),
		hx.PushURL("true"),
		cmp.If(active, g.Aria("current", "page")),
		cmp.Text(l.Label()),
	)
}

func textSection(id string, s content.TextSection) cmp.Node {
	return g.Section(
		g.ID(id),
		g.H2(cmp.Text(s.Heading)),
		g.P(cmp.Text(s.Text)),
	)
}

func listSection(id string, s content.ListSection, ordered bool) cmp.Node {
	list := g.Ul
	if ordered {
		list = g.Ol
	}
	return g.Section(
		g.ID(id),
		g.H2(cmp.Text(s.Heading)),
		cmp.If(s.Intro != "", g.P(cmp.Text(s.Intro))),
		list(items(s.Items)),
	)
}

func reasonsSection(id string, s content.ReasonsSection) cmp.Node {
	return g.Section(
		g.ID(id),
		g.H2(cmp.Text(s.Heading)),
		g.P(cmp.Text(s.Intro)),
		g.Ul(items(s.Items)),
		g.P(g.Class("closing"), cmp.Text(s.Closing)),
	)
}

func faqSection(id string, s content.FAQSection) cmp.Node {
	return g.Section(
		g.ID(id),
		g.Class("panel faq"),
		g.H2(cmp.Text(s.Heading)),
		cmp.Map(s.Items, func(e content.FAQEntry) cmp.Node {
			return g.Div(
				g.Class("faq-entry"),
				g.P(g.Strong(cmp.Text(e.Q))),
				g.P(g.Class("faq-answer"), cmp.Text(e.A)),
			)
		}),
	)
}

func callToAction(id string, s content.CallToAction) cmp.Node {
	return g.Section(
		g.ID(id),
		g.Class("panel cta"),
		g.H2(cmp.Text(s.Heading)),
		g.P(cmp.Text(s.Text)),
		g.Div(
			g.Class("cta-actions"),
			g.A(g.Href(DetectorPath), g.Class("cta-button"), cmp.Text(s.ButtonText)),
		),
	)
}

func items(values []string) cmp.Group {
	return cmp.Map(values, func(v string) cmp.Node {
		return g.Li(cmp.Text(v))
	})
}
