package about

import (
	"context"
	"io"
	"testing"

	"github.com/nfrund/safebite/internal/cache"
	"github.com/nfrund/safebite/internal/content"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/nfrund/safebite/internal/rendering"
	"github.com/nfrund/safebite/internal/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPages(t *testing.T, withCache bool) *Pages {
	t.Helper()
	var c *cache.Cache[[]byte]
	if withCache {
		var err error
		c, err = cache.NewBytes(cache.Config{Name: "about-test"})
		require.NoError(t, err)
		t.Cleanup(c.Close)
	}
	return NewPages(content.MustBuiltin(), rendering.NewUniversalRenderer(), c)
}

func TestPages_Render(t *testing.T) {
	p := newTestPages(t, false)
	ctx := context.Background()

	t.Run("full page is a document", func(t *testing.T) {
		body, err := p.Render(ctx, locale.English, FullPage)
		require.NoError(t, err)
		out := string(body)
		assert.Contains(t, out, "<!doctype html>")
		assert.Contains(t, out, `<html lang="en">`)
		assert.Contains(t, out, "<title>About Us - SafeBite Korea</title>")
		assert.Contains(t, out, `<main id="about"`)
	})

	t.Run("fragment is only the about element", func(t *testing.T) {
		body, err := p.Render(ctx, locale.Korean, Fragment)
		require.NoError(t, err)
		out := string(body)
		assert.NotContains(t, out, "<html")
		assert.Regexp(t, `^<title>저희 소개 - SafeBite Korea</title><main id="about"`, out)
		assert.Contains(t, out, "저희 소개")
	})
}

func TestPages_RenderIsCached(t *testing.T) {
	p := newTestPages(t, true)
	ctx := context.Background()

	first, err := p.Render(ctx, locale.Korean, FullPage)
	require.NoError(t, err)
	p.cache.Wait()

	cached, ok := p.cache.Get(cacheKey(locale.Korean, FullPage))
	require.True(t, ok)
	assert.Equal(t, first, cached)

	again, err := p.Render(ctx, locale.Korean, FullPage)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestPages_Warm(t *testing.T) {
	p := newTestPages(t, true)
	require.NoError(t, p.Warm(context.Background()))
	p.cache.Wait()

	for _, l := range locale.Supported() {
		for _, kind := range []Kind{FullPage, Fragment} {
			_, ok := p.cache.Get(cacheKey(l, kind))
			assert.True(t, ok, "%s/%s not warmed", l, kind)
		}
	}
}

func TestPages_Export(t *testing.T) {
	p := newTestPages(t, false)
	store := storage.NewAferoStore(afero.NewMemMapFs())
	ctx := context.Background()

	written, err := p.Export(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, []string{"about/en.html", "about/ko.html"}, written)

	r, err := store.Open(ctx, "about/ko.html")
	require.NoError(t, err)
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	want, err := p.Render(ctx, locale.Korean, FullPage)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}
