package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for content and locale failures.
var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrInvalidContent    = errors.New("invalid locale content")
	ErrShapeMismatch     = errors.New("locale trees differ in shape")
)
