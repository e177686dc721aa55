package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/safebite/internal/locale"
)

// LangParam is the query parameter the locale switch controls set.
const LangParam = "lang"

const localeContextKey = "locale"

// LocaleOptions controls how Locale resolves the request's locale.
type LocaleOptions struct {
	Default   locale.Locale
	Negotiate bool
}

// Locale resolves the locale for the request and stores it on the echo
// context. An explicit lang parameter wins; unknown values fall back to the
// default. With Negotiate set, Accept-Language is consulted when no lang
// parameter is present. Nothing is persisted between requests.
func Locale(opts LocaleOptions) echo.MiddlewareFunc {
	fallback := opts.Default
	if !fallback.Valid() {
		fallback = locale.Default
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := fallback
			if raw := c.QueryParam(LangParam); raw != "" {
				l = locale.Normalize(raw, fallback)
			} else if opts.Negotiate {
				l = locale.Match(c.Request().Header.Get("Accept-Language"), fallback)
			}
			c.Set(localeContextKey, l)
			return next(c)
		}
	}
}

// LocaleFrom returns the locale resolved by the Locale middleware, or the
// package default if the middleware did not run.
func LocaleFrom(c echo.Context) locale.Locale {
	if l, ok := c.Get(localeContextKey).(locale.Locale); ok {
		return l
	}
	return locale.Default
}
