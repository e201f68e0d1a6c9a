package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkPosEuclidean(t *testing.T) {
	cases := []struct {
		pos  Pos
		want ChunkPos
	}{
		{Pos{X: 0, Z: 0}, ChunkPos{X: 0, Z: 0}},
		{Pos{X: 15, Z: 15}, ChunkPos{X: 0, Z: 0}},
		{Pos{X: 16, Z: 31}, ChunkPos{X: 1, Z: 1}},
		{Pos{X: -1, Z: -1}, ChunkPos{X: -1, Z: -1}},
		{Pos{X: -16, Z: -17}, ChunkPos{X: -1, Z: -2}},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.pos.ChunkPos(), "pos %+v", c.pos)
	}
}

func TestLocalAlwaysInRange(t *testing.T) {
	for x := int16(-40); x <= 40; x++ {
		p := Pos{X: x, Y: 5, Z: -x}
		lx, _, lz := p.Local()
		require.GreaterOrEqual(t, lx, int16(0))
		require.Less(t, lx, int16(16))
		require.GreaterOrEqual(t, lz, int16(0))
		require.Less(t, lz, int16(16))
		// Chunk coordinate and local offset recompose the original.
		cp := p.ChunkPos()
		require.Equal(t, x, cp.X*16+lx)
	}
}

func TestChunkLocalPosRoundTrip(t *testing.T) {
	for _, y := range []int32{-64, -1, 0, 5, 64, 319} {
		packed := PackChunkLocal(3, 12, y)
		x, z, gy := packed.Unpack()
		require.Equal(t, int16(3), x)
		require.Equal(t, int16(12), z)
		require.Equal(t, y, gy)
	}
}

func TestSectionIndexNegativeY(t *testing.T) {
	p := Pos{X: 1, Y: -1, Z: 2}
	sy, idx := p.Section()
	require.Equal(t, int32(-1), sy)
	// y=-1 sits at the top layer of section -1.
	require.Equal(t, 15*256+2*16+1, idx)
}

func TestDirectionOppositeInvolution(t *testing.T) {
	for _, d := range AllDirections {
		require.Equal(t, d, d.Opposite().Opposite())
		dx, dy, dz := d.Vector()
		ox, oy, oz := d.Opposite().Vector()
		require.Equal(t, int16(0), dx+ox)
		require.Equal(t, int16(0), dy+oy)
		require.Equal(t, int16(0), dz+oz)
	}
}
