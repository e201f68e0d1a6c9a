package block

import (
	"testing"

	"github.com/emberblock/emberblock/pkg/resloc"
	"github.com/stretchr/testify/require"
)

func buildTestRegistry() *Registry {
	r := NewRegistry()
	r.Add(&Block{Location: resloc.Minecraft("air"), IDBase: 0, TotalStates: 1, DefaultState: 0})
	r.Add(&Block{Location: resloc.Minecraft("stone"), IDBase: 1, TotalStates: 1, DefaultState: 1})
	r.Add(&Block{Location: resloc.Minecraft("lever"), IDBase: 2, TotalStates: 16, DefaultState: 2})
	r.Add(&Block{Location: resloc.Minecraft("dirt"), IDBase: 18, TotalStates: 1, DefaultState: 18})
	r.Freeze()
	return r
}

func TestRegistryStateOwnership(t *testing.T) {
	r := buildTestRegistry()
	for s := State(0); s <= r.MaxState(); s++ {
		b := r.Lookup(s)
		require.True(t, b.Contains(s), "state %d not contained by resolved block %s", s, b.Location)
	}
}

func TestRegistryContiguity(t *testing.T) {
	r := buildTestRegistry()
	require.Equal(t, State(18), r.MaxState())
}

func TestRegistryByLocation(t *testing.T) {
	r := buildTestRegistry()
	require.NotNil(t, r.ByLocation("lever"))
	require.Nil(t, r.ByLocation("nonexistent"))
}

func TestRegistryGapPanics(t *testing.T) {
	r := NewRegistry()
	r.Add(&Block{Location: resloc.Minecraft("air"), IDBase: 0, TotalStates: 1})
	r.Add(&Block{Location: resloc.Minecraft("stone"), IDBase: 5, TotalStates: 1})
	require.Panics(t, func() { r.Freeze() })
}
