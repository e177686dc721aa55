package content

import (
	"errors"
	"fmt"

	"github.com/nfrund/safebite/internal/domain"
	"github.com/nfrund/safebite/internal/locale"
)

// Catalog maps every supported locale to its content tree.
// Trees handed out by Select are shared and must be treated as read-only.
type Catalog struct {
	trees map[locale.Locale]*LocaleContent
}

// NewCatalog builds a catalog and validates it. Every supported locale must
// have a tree, each tree must pass its field checks, and every tree must have
// the same shape as the default locale's tree.
func NewCatalog(trees map[locale.Locale]*LocaleContent) (*Catalog, error) {
	c := &Catalog{trees: make(map[locale.Locale]*LocaleContent, len(trees))}
	for l, tree := range trees {
		c.trees[l] = tree
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Builtin returns the catalog with the site's own English and Korean copy.
func Builtin() (*Catalog, error) {
	return NewCatalog(map[locale.Locale]*LocaleContent{
		locale.English: &english,
		locale.Korean:  &korean,
	})
}

// MustBuiltin is Builtin for callers that cannot continue without content.
func MustBuiltin() *Catalog {
	c, err := Builtin()
	if err != nil {
		panic(fmt.Sprintf("builtin content is invalid: %v", err))
	}
	return c
}

// Validate checks every locale tree and collects all failures.
func (c *Catalog) Validate() error {
	ref, ok := c.trees[locale.Default]
	if !ok || ref == nil {
		return fmt.Errorf("%w: missing tree for default locale %q", domain.ErrInvalidContent, locale.Default)
	}

	var errs []error
	for _, l := range locale.Supported() {
		tree, ok := c.trees[l]
		if !ok || tree == nil {
			errs = append(errs, fmt.Errorf("%w: missing tree for locale %q", domain.ErrInvalidContent, l))
			continue
		}
		if err := tree.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("locale %q: %w", l, err))
		}
		if l == locale.Default {
			continue
		}
		if err := CompareShape(ref, tree); err != nil {
			errs = append(errs, fmt.Errorf("locale %q: %w", l, err))
		}
	}
	return errors.Join(errs...)
}

// Select returns the content tree for l. Unknown locales get the default
// locale's tree, so the lookup never fails.
func (c *Catalog) Select(l locale.Locale) *LocaleContent {
	if tree, ok := c.trees[l]; ok {
		return tree
	}
	return c.trees[locale.Default]
}

// Locales returns the locales that have content, in display order.
func (c *Catalog) Locales() []locale.Locale {
	out := make([]locale.Locale, 0, len(c.trees))
	for _, l := range locale.Supported() {
		if _, ok := c.trees[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
