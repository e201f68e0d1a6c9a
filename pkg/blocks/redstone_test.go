package blocks

import (
	"testing"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/registrygen"
	"github.com/emberblock/emberblock/pkg/world"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) (*world.World, *block.Registry) {
	t.Helper()
	r, err := registrygen.Load()
	require.NoError(t, err)
	Register(r)

	w := world.New(r, 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{X: 0, Z: 0}))
	return w, r
}

func place(t *testing.T, w *world.World, pos block.Pos, b *block.Block, state block.State) {
	t.Helper()
	require.True(t, w.SetState(pos, state))
}

// pinnedSignals is a redstone override that reports fixed signal levels
// at chosen positions and falls through everywhere else.
type pinnedSignals map[block.Pos]int

func (p pinnedSignals) Signal(pos block.Pos, toward block.Direction) (int, bool) {
	v, ok := p[pos]
	return v, ok
}

// A lever toggles from 0 to powered=15 on an empty-hand use.
func TestLeverToggles(t *testing.T) {
	w, r := newTestWorld(t)
	stone := r.ByLocation("stone")
	leverPos := block.Pos{X: 5, Y: 64, Z: 5}
	stonePos := leverPos.Add(block.Down)

	place(t, w, stonePos, stone, stone.DefaultState)

	state := leverBlock.Prop("face").EncodeEnum(leverBlock.DefaultState, leverBlock.IDBase, "floor")
	place(t, w, leverPos, leverBlock, state)

	require.Equal(t, 0, w.Signal(leverPos, block.Up))

	cur := w.GetState(leverPos)
	leverOnUseWithoutItem(w, leverPos, cur)

	require.Equal(t, 15, w.Signal(leverPos, block.North))
	require.Equal(t, 15, w.StrongSignal(leverPos, block.Down))
}

// A straight run of 15 wires next to a redstone block reads powers
// 15,14,...,1 after convergence.
func TestWirePropagationDecay(t *testing.T) {
	w, r := newTestWorld(t)
	redBlock := r.ByLocation("redstone_block")
	place(t, w, block.Pos{X: 0, Y: 64, Z: 0}, redBlock, redBlock.DefaultState)

	for i := int16(1); i <= 15; i++ {
		pos := block.Pos{X: i, Y: 64, Z: 0}
		state := wireGetStateForPlacement(w, pos, block.PlacementContext{}, wireBlock.DefaultState)
		place(t, w, pos, wireBlock, state)
		wireOnPlaced(w, pos, state)
	}

	for tick := 0; tick < 20; tick++ {
		w.Tick()
	}

	for i := int16(1); i <= 15; i++ {
		pos := block.Pos{X: i, Y: 64, Z: 0}
		s := w.GetState(pos)
		b := r.Lookup(s)
		power := b.Prop("power").DecodeInt(s, b.IDBase)
		require.Equal(t, int(16-i), power, "wire at x=%d", i)
	}
}

// A repeater with delay=3 fed by a lever reports 0 until its delay*2
// tick schedule fires, then 15.
func TestRepeaterDelay(t *testing.T) {
	w, r := newTestWorld(t)
	stone := r.ByLocation("stone")

	leverPos := block.Pos{X: 0, Y: 64, Z: 0}
	place(t, w, leverPos.Add(block.Down), stone, stone.DefaultState)
	leverState := leverBlock.Prop("face").EncodeEnum(leverBlock.DefaultState, leverBlock.IDBase, "floor")
	leverState = withFacing(leverBlock, leverState, block.East)
	place(t, w, leverPos, leverBlock, leverState)

	repPos := block.Pos{X: 1, Y: 64, Z: 0}
	repState := withFacing(repeaterBlock, repeaterBlock.DefaultState, block.West)
	repState = repeaterBlock.Prop("delay").EncodeInt(repState, repeaterBlock.IDBase, 3)
	place(t, w, repPos, repeaterBlock, repState)

	leverOnUseWithoutItem(w, leverPos, w.GetState(leverPos))

	for tick := 0; tick < 6; tick++ {
		w.Tick()
		require.Equal(t, 0, w.Signal(repPos, block.East), "tick %d", tick)
	}
	w.Tick()
	require.Equal(t, 15, w.Signal(repPos, block.East))
}

// A comparator in subtract mode with side=4, rear=10 converges to
// output 6; switching to compare mode gives output 10.
func TestComparatorSubtractAndCompare(t *testing.T) {
	w, _ := newTestWorld(t)

	compPos := block.Pos{X: 5, Y: 64, Z: 5}
	compState := withFacing(comparatorBlock, comparatorBlock.DefaultState, block.North)
	compState = comparatorBlock.Prop("mode").EncodeEnum(compState, comparatorBlock.IDBase, "subtract")
	place(t, w, compPos, comparatorBlock, compState)

	// Rear input = 10 via a wire holding power 10.
	rearPos := compPos.Add(block.North)
	wireState := wireBlock.Prop("power").EncodeInt(wireBlock.DefaultState, wireBlock.IDBase, 10)
	for _, d := range block.HorizontalDirections {
		wireState = wireBlock.Prop(d.String()).EncodeEnum(wireState, wireBlock.IDBase, "side")
	}
	place(t, w, rearPos, wireBlock, wireState)

	// Side input = 4 via a wire holding power 4.
	sidePos := compPos.Add(block.West)
	sideWire := wireBlock.Prop("power").EncodeInt(wireBlock.DefaultState, wireBlock.IDBase, 4)
	for _, d := range block.HorizontalDirections {
		sideWire = wireBlock.Prop(d.String()).EncodeEnum(sideWire, wireBlock.IDBase, "side")
	}
	place(t, w, sidePos, wireBlock, sideWire)

	// Neither wire has a source of its own, so the neighbor update sent
	// when the comparator's output changes would recompute both to 0.
	// Pin their signal levels so the inputs stay at 10 and 4.
	w.SetRedstoneOverride(pinnedSignals{rearPos: 10, sidePos: 4})

	comparatorOnUpdate(w, compPos, w.GetState(compPos))
	for i := 0; i < 3; i++ {
		w.Tick()
	}
	require.Equal(t, 6, w.ComparatorOutput(compPos))
	require.Equal(t, 6, w.Signal(compPos, block.South))

	comparatorOnUseWithoutItem(w, compPos, w.GetState(compPos))
	for i := 0; i < 3; i++ {
		w.Tick()
	}
	require.Equal(t, 10, w.ComparatorOutput(compPos))
}

// A lit torch on top of a redstone block reports lit=false after its
// update schedules a tick, and stays unlit.
func TestTorchBurnoutNotModeled(t *testing.T) {
	w, r := newTestWorld(t)
	redBlock := r.ByLocation("redstone_block")
	torchPos := block.Pos{X: 5, Y: 64, Z: 5}
	place(t, w, torchPos.Add(block.Down), redBlock, redBlock.DefaultState)
	place(t, w, torchPos, torchBlock, torchBlock.DefaultState)

	require.True(t, torchLit(torchBlock, torchBlock.DefaultState))

	torchOnUpdate(w, torchPos, torchBlock.DefaultState)
	w.Tick()
	w.Tick()

	cur := w.GetState(torchPos)
	b := r.Lookup(cur)
	require.False(t, torchLit(b, cur))

	w.Tick()
	w.Tick()
	cur = w.GetState(torchPos)
	b = r.Lookup(cur)
	require.False(t, torchLit(b, cur))
}
