package about

import "github.com/nfrund/safebite/internal/pubsub"

// PageViewed is published every time the About page or its fragment is served.
type PageViewed struct {
	Locale   string `json:"locale"`
	Fragment bool   `json:"fragment"`
	// Switched is true when the view moved away from the initial locale.
	Switched bool `json:"switched"`
}

// PageViewedEvent carries PageViewed payloads.
var PageViewedEvent = pubsub.NewEvent[PageViewed]("about.page.viewed", "The About page was rendered for a visitor")
