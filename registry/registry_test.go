package registry_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/relay/registry"
)

func TestRegisterPreservesOrder(t *testing.T) {
	reg := registry.New()
	reg.Register("a", "b")
	reg.Register("c")

	assert.Equal(t, []any{"a", "b", "c"}, reg.Resolve())
	assert.Equal(t, 3, reg.Len())
}

func TestResolveReturnsCopy(t *testing.T) {
	reg := registry.New()
	reg.Register("a", "b")

	got := reg.Resolve()
	got[0] = "mutated"

	require.Equal(t, []any{"a", "b"}, reg.Resolve(), "mutating a resolved slice must not affect the registry")
}

func TestClear(t *testing.T) {
	reg := registry.New()
	reg.Register("a")
	reg.Clear()

	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Resolve())
}

func TestConcurrentRegisterAndResolve(t *testing.T) {
	reg := registry.New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Register(j)
				_ = reg.Resolve()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, reg.Len())
}
