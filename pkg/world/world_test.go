package world

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/protocol"
	"github.com/emberblock/emberblock/pkg/resloc"
)

// testRegistry builds a tiny closed registry: air, a conductor, and a
// probe block whose callbacks record invocations.
type probeLog struct {
	events []string
}

func testRegistry(log *probeLog) *block.Registry {
	r := block.NewRegistry()
	r.Add(&block.Block{Location: resloc.Minecraft("air"), IDBase: 0, TotalStates: 1})
	stone := &block.Block{Location: resloc.Minecraft("stone"), IDBase: 1, TotalStates: 1, DefaultState: 1}
	stone.Callbacks.IsRedstoneConductor = func(block.State) bool { return true }
	r.Add(stone)
	probe := &block.Block{Location: resloc.Minecraft("probe"), IDBase: 2, TotalStates: 1, DefaultState: 2}
	if log != nil {
		probe.Callbacks.Tick = func(w block.WorldView, pos block.Pos, s block.State) {
			log.events = append(log.events, "tick")
		}
		probe.Callbacks.Update = func(w block.WorldView, pos block.Pos, s block.State) {
			log.events = append(log.events, "update")
		}
	}
	r.Add(probe)
	r.Freeze()
	return r
}

func TestGetSetOutsideGrid(t *testing.T) {
	w := New(testRegistry(nil), 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	far := block.Pos{X: 500, Y: 64, Z: 500}
	require.Equal(t, block.Air, w.GetState(far))
	require.False(t, w.SetState(far, block.State(1)))

	// An in-range but uninitialized slot behaves the same way.
	w2 := New(testRegistry(nil), 0, 0, 2, 2)
	uninit := block.Pos{X: 20, Y: 64, Z: 20}
	require.Equal(t, block.Air, w2.GetState(uninit))
	require.False(t, w2.SetState(uninit, block.State(1)))
}

// A single placement produces exactly one section_blocks_update packet
// with one entry carrying the placed state id; a second drain is empty.
func TestChunkDeltaAfterPlacement(t *testing.T) {
	w := New(testRegistry(nil), 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	pos := block.Pos{X: 3, Y: 64, Z: 5}
	placed := block.State(1)
	require.True(t, w.SetState(pos, placed))

	packets := w.DrainChangePackets()
	require.Len(t, packets, 1)
	pkt := packets[0].Packet
	require.Equal(t, int32(PacketSectionBlocksUpdate), pkt.ID)

	r := bytes.NewReader(pkt.Data)
	loc, err := protocol.ReadInt64(r)
	require.NoError(t, err)
	// section_y:20 | chunk_z:22 | chunk_x:22; y=64 is section 4 of chunk (0,0).
	require.Equal(t, int64(4)<<44, loc)

	count, _, err := protocol.ReadVarInt(r)
	require.NoError(t, err)
	require.Equal(t, int32(1), count)

	entry, _, err := protocol.ReadVarLong(r)
	require.NoError(t, err)
	require.Equal(t, int64(placed)<<12, entry&^0xFFF)
	require.Equal(t, int64(3<<8|0<<4|5), entry&0xFFF)

	require.Empty(t, w.DrainChangePackets())
}

// A set that restores the previously broadcast value within one flush
// window produces no packet at all.
func TestChunkDeltaSuppressedWhenValueRestored(t *testing.T) {
	w := New(testRegistry(nil), 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	pos := block.Pos{X: 1, Y: 0, Z: 1}
	require.True(t, w.SetState(pos, block.State(1)))
	w.DrainChangePackets()

	require.True(t, w.SetState(pos, block.State(2)))
	require.True(t, w.SetState(pos, block.State(1)))
	require.Empty(t, w.DrainChangePackets())
}

type fixedOverride struct {
	value int
}

func (o fixedOverride) Signal(pos block.Pos, toward block.Direction) (int, bool) {
	return o.value, true
}

// An installed redstone override is consulted before the block's own
// get_signal and its value is used verbatim.
func TestRedstoneOverridePrecedence(t *testing.T) {
	w := New(testRegistry(nil), 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	pos := block.Pos{X: 2, Y: 10, Z: 2}
	require.Equal(t, 0, w.Signal(pos, block.Up))

	w.SetRedstoneOverride(fixedOverride{value: 7})
	require.Equal(t, 7, w.Signal(pos, block.Up))
	require.Equal(t, 7, w.SignalTo(block.Pos{X: 2, Y: 11, Z: 2}))

	w.SetRedstoneOverride(nil)
	require.Equal(t, 0, w.Signal(pos, block.Up))
}

// Within one game tick every due scheduled tick runs before any queued
// update, and the counter advances only afterward.
func TestTickRunsScheduledBeforeUpdates(t *testing.T) {
	log := &probeLog{}
	w := New(testRegistry(log), 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	a := block.Pos{X: 0, Y: 0, Z: 0}
	b := block.Pos{X: 1, Y: 0, Z: 0}
	require.True(t, w.SetState(a, block.State(2)))
	require.True(t, w.SetState(b, block.State(2)))

	w.EnqueueUpdate(b)
	w.ScheduleTick(a, 0, 0)

	require.Equal(t, int64(0), w.CurrentTick())
	w.Tick()
	require.Equal(t, []string{"tick", "update"}, log.events)
	require.Equal(t, int64(1), w.CurrentTick())
}

// A tick scheduled for the future stays pending across Tick calls until
// its fire time elapses.
func TestTickHonorsFireTime(t *testing.T) {
	log := &probeLog{}
	w := New(testRegistry(log), 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	pos := block.Pos{X: 0, Y: 0, Z: 0}
	require.True(t, w.SetState(pos, block.State(2)))
	w.ScheduleTick(pos, 2, 0)

	w.Tick()
	w.Tick()
	require.Empty(t, log.events)
	w.Tick()
	require.Equal(t, []string{"tick"}, log.events)
}

// A panicking callback is contained: the tick loop survives and reports
// through OnBlockPanic.
func TestTickContainsCallbackPanic(t *testing.T) {
	r := block.NewRegistry()
	r.Add(&block.Block{Location: resloc.Minecraft("air"), IDBase: 0, TotalStates: 1})
	bomb := &block.Block{Location: resloc.Minecraft("bomb"), IDBase: 1, TotalStates: 1, DefaultState: 1}
	bomb.Callbacks.Tick = func(block.WorldView, block.Pos, block.State) { panic("boom") }
	r.Add(bomb)
	r.Freeze()

	w := New(r, 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))
	var recovered any
	w.OnBlockPanic = func(pos block.Pos, r any) { recovered = r }

	pos := block.Pos{X: 0, Y: 0, Z: 0}
	require.True(t, w.SetState(pos, block.State(1)))
	w.ScheduleTick(pos, 0, 0)

	require.NotPanics(t, func() { w.Tick() })
	require.Equal(t, "boom", recovered)
	require.Equal(t, int64(1), w.CurrentTick())
}

// Weak power passes through one conductor; strong power does not.
func TestConductorPropagation(t *testing.T) {
	r := block.NewRegistry()
	r.Add(&block.Block{Location: resloc.Minecraft("air"), IDBase: 0, TotalStates: 1})
	stone := &block.Block{Location: resloc.Minecraft("stone"), IDBase: 1, TotalStates: 1, DefaultState: 1}
	stone.Callbacks.IsRedstoneConductor = func(block.State) bool { return true }
	r.Add(stone)
	source := &block.Block{Location: resloc.Minecraft("source"), IDBase: 2, TotalStates: 1, DefaultState: 2}
	source.Callbacks.GetSignal = func(block.WorldView, block.Pos, block.State, block.Direction) int { return 9 }
	r.Add(source)
	r.Freeze()

	w := New(r, 0, 0, 1, 1)
	require.True(t, w.EnsureChunk(block.ChunkPos{}))

	conductorPos := block.Pos{X: 5, Y: 10, Z: 5}
	require.True(t, w.SetState(conductorPos, block.State(1)))
	require.True(t, w.SetState(conductorPos.Add(block.West), block.State(2)))

	// The conductor relays the weak 9 out its far face, but emits no
	// strong power of its own.
	require.Equal(t, 9, w.Signal(conductorPos, block.East))
	require.Equal(t, 0, w.StrongSignal(conductorPos, block.East))
}
