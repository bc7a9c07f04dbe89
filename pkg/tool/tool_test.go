package tool

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct {
	name string
}

func (f *fakeTool) Name() string                   { return f.name }
func (f *fakeTool) Description() string            { return "fake " + f.name }
func (f *fakeTool) Schema() map[string]interface{} { return nil }
func (f *fakeTool) Execute(ctx context.Context, args map[string]interface{}) string {
	return fmt.Sprintf("ran %s", f.name)
}

func TestRegistryPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry(&fakeTool{name: "alpha"}, &fakeTool{name: "beta"}, &fakeTool{name: "gamma"})

	defs := r.Definitions()
	require.Len(t, defs, 3)
	assert.Equal(t, "alpha", defs[0].Name)
	assert.Equal(t, "beta", defs[1].Name)
	assert.Equal(t, "gamma", defs[2].Name)
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry(&fakeTool{name: "alpha"})

	got, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "ran alpha", got.Execute(context.Background(), nil))

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryReplaceKeepsPosition(t *testing.T) {
	r := NewRegistry(&fakeTool{name: "alpha"}, &fakeTool{name: "beta"})
	r.Register(&fakeTool{name: "alpha"})

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "alpha", defs[0].Name)
}
