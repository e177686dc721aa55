package registry_test

import (
	"testing"

	"github.com/nfrund/safebite/internal/config"
	"github.com/nfrund/safebite/internal/registry"
	"github.com/stretchr/testify/assert"
)

type greeter struct{ greeting string }

func TestRegistry(t *testing.T) {
	cfg := &config.Config{Addr: ":1234"}
	reg := registry.New(cfg)
	assert.Same(t, cfg, reg.Config())

	key := registry.Key[*greeter]("test.greeter")

	_, ok := registry.Get(reg, key)
	assert.False(t, ok)
	assert.Panics(t, func() { registry.MustGet(reg, key) })

	g := &greeter{greeting: "안녕하세요"}
	registry.Set(reg, key, g)

	got, ok := registry.Get(reg, key)
	assert.True(t, ok)
	assert.Same(t, g, got)
	assert.Same(t, g, registry.MustGet(reg, key))
}

func TestRegistry_TypeMismatch(t *testing.T) {
	reg := registry.New(nil)
	registry.Set(reg, registry.Key[string]("shared.name"), "value")

	_, ok := registry.Get(reg, registry.Key[int]("shared.name"))
	assert.False(t, ok)
}
