package registrygen

import (
	"testing"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/stretchr/testify/require"
)

func TestLoadBuildsContiguousRegistry(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	require.NotNil(t, r.ByLocation("air"))
	require.NotNil(t, r.ByLocation("redstone_wire"))
	require.NotNil(t, r.ByLocation("black_wool"))

	for s := block.State(0); s <= r.MaxState(); s++ {
		b := r.Lookup(s)
		require.True(t, b.Contains(s), "state %d not contained by %s", s, b.Location)
	}
}

func TestLoadPropertyRoundTrip(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)

	lever := r.ByLocation("lever")
	require.NotNil(t, lever)
	for _, p := range lever.Properties {
		for v := 0; v < p.NumValues(); v++ {
			switch p.Kind {
			case block.KindBool:
				encoded := p.EncodeBool(lever.DefaultState, lever.IDBase, v == 0)
				require.Equal(t, v == 0, p.DecodeBool(encoded, lever.IDBase))
			case block.KindEnum:
				encoded := p.EncodeEnum(lever.DefaultState, lever.IDBase, p.Values[v])
				require.Equal(t, p.Values[v], p.DecodeEnum(encoded, lever.IDBase))
			case block.KindInt:
				encoded := p.EncodeInt(lever.DefaultState, lever.IDBase, p.Min+v)
				require.Equal(t, p.Min+v, p.DecodeInt(encoded, lever.IDBase))
			}
		}
	}
}

func TestLoadConductorFlag(t *testing.T) {
	r, err := Load()
	require.NoError(t, err)
	stone := r.ByLocation("stone")
	require.True(t, block.At(stone, stone.DefaultState, block.Pos{}).IsRedstoneConductor())
	wire := r.ByLocation("redstone_wire")
	require.False(t, block.At(wire, wire.DefaultState, block.Pos{}).IsRedstoneConductor())
}
