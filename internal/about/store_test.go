package about

import (
	"testing"

	"github.com/nfrund/safebite/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestNewStore(t *testing.T) {
	assert.Equal(t, locale.English, NewStore(locale.English).Language())
	assert.Equal(t, locale.Korean, NewStore(locale.Korean).Language())
	assert.Equal(t, locale.Default, NewStore(locale.Locale("fr")).Language())
}

func TestStore_SetLanguage(t *testing.T) {
	s := NewStore(locale.English)
	var calls []locale.Locale
	s.OnChange(func(l locale.Locale) { calls = append(calls, l) })

	t.Run("switching notifies once", func(t *testing.T) {
		assert.True(t, s.SetLanguage(locale.Korean))
		assert.Equal(t, locale.Korean, s.Language())
		assert.Equal(t, []locale.Locale{locale.Korean}, calls)
	})

	t.Run("selecting the active locale is a no-op", func(t *testing.T) {
		assert.False(t, s.SetLanguage(locale.Korean))
		assert.Len(t, calls, 1)
	})

	t.Run("unsupported locale is ignored", func(t *testing.T) {
		assert.False(t, s.SetLanguage(locale.Locale("ja")))
		assert.Equal(t, locale.Korean, s.Language())
		assert.Len(t, calls, 1)
	})

	t.Run("switching back", func(t *testing.T) {
		assert.True(t, s.SetLanguage(locale.English))
		assert.Equal(t, []locale.Locale{locale.Korean, locale.English}, calls)
	})
}
