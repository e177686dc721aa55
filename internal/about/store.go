package about

import (
	"sync"

	"github.com/nfrund/safebite/internal/locale"
)

// Store holds the locale one page view is showing. It starts at the
// configured default on every load and is changed only by the locale
// switch controls.
type Store struct {
	mu       sync.Mutex
	language locale.Locale
	onChange func(locale.Locale)
}

// NewStore creates a store showing initial, or locale.Default if initial is
// not supported.
func NewStore(initial locale.Locale) *Store {
	if !initial.Valid() {
		initial = locale.Default
	}
	return &Store{language: initial}
}

// Language returns the active locale.
func (s *Store) Language() locale.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

// OnChange registers the function that re-renders the page after a switch.
func (s *Store) OnChange(fn func(locale.Locale)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// SetLanguage switches the active locale and reports whether it changed.
// Selecting the active locale again, or an unsupported one, does nothing.
func (s *Store) SetLanguage(l locale.Locale) bool {
	s.mu.Lock()
	if !l.Valid() || l == s.language {
		s.mu.Unlock()
		return false
	}
	s.language = l
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(l)
	}
	return true
}
