package config_test

import (
	"testing"
	"time"

	"github.com/nfrund/safebite/internal/config"
	"github.com/nfrund/safebite/internal/domain"
	"github.com/nfrund/safebite/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, locale.English, cfg.Locale())
	assert.False(t, cfg.NegotiateLocale)
	assert.Equal(t, time.Hour, cfg.RenderCacheTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ABOUT_DEFAULT_LOCALE", "ko-KR")
	t.Setenv("ABOUT_NEGOTIATE_LOCALE", "true")
	t.Setenv("RENDER_CACHE_TTL", "5m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, locale.Korean, cfg.Locale())
	assert.True(t, cfg.NegotiateLocale)
	assert.Equal(t, 5*time.Minute, cfg.RenderCacheTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("unsupported default locale", func(t *testing.T) {
		t.Setenv("ABOUT_DEFAULT_LOCALE", "fr")
		_, err := config.Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnsupportedLocale)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("SHUTDOWN_TIMEOUT", "soon")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("non-positive rate limit", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
