package world

import (
	"sync"
	"sync/atomic"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/protocol"
)

// RedstoneOverride lets an embedding program map specific block states to
// external GPIO/ADC channels, consulted before a block's own get_signal.
// Returning ok=false falls through to the normal signal algorithm.
type RedstoneOverride interface {
	Signal(pos block.Pos, toward block.Direction) (value int, ok bool)
}

// chunkSlot is one cell of the fixed-size chunk grid, independently
// mutex-guarded so the tick loop and concurrent session handlers never
// need to hold more than one chunk's lock at a time.
type chunkSlot struct {
	mu    sync.Mutex
	chunk *Chunk
}

// World is the fixed-size 2D grid of chunk slots, the block-access entry
// point every session and the tick driver share.
type World struct {
	registry *block.Registry

	minX, minZ   int16
	sizeX, sizeZ int16
	slots        []chunkSlot

	tick atomic.Int64

	scheduleMu sync.Mutex
	sched      *schedule

	queueMu sync.Mutex
	queue   *updateQueue

	override RedstoneOverride

	// OnBlockPanic, if set, is called with the position and recovered
	// value whenever a block callback panics during Tick, so a single
	// misbehaving block never takes down a session. Typically wired to a
	// logger by the embedding server.
	OnBlockPanic func(pos block.Pos, recovered any)
}

// New returns a World whose chunk grid spans chunk coordinates
// [minX, minX+sizeX) x [minZ, minZ+sizeZ), all slots initially
// uninitialized. reg must already be frozen (block.Registry.Freeze).
func New(reg *block.Registry, minX, minZ, sizeX, sizeZ int16) *World {
	w := &World{
		registry: reg,
		minX:     minX,
		minZ:     minZ,
		sizeX:    sizeX,
		sizeZ:    sizeZ,
		slots:    make([]chunkSlot, int(sizeX)*int(sizeZ)),
		sched:    newSchedule(),
		queue:    newUpdateQueue(),
	}
	return w
}

// SetRedstoneOverride installs (or clears, with nil) the delegate
// consulted by Signal before a block's own get_signal.
func (w *World) SetRedstoneOverride(o RedstoneOverride) {
	w.override = o
}

// slotIndex returns the flat slice index for a chunk coordinate, or
// -1 if it falls outside the grid.
func (w *World) slotIndex(cp block.ChunkPos) int {
	dx := cp.X - w.minX
	dz := cp.Z - w.minZ
	if dx < 0 || dz < 0 || dx >= w.sizeX || dz >= w.sizeZ {
		return -1
	}
	return int(dx)*int(w.sizeZ) + int(dz)
}

// EnsureChunk creates an empty chunk at cp if the slot is in range and
// currently uninitialized. Chunks are created by the embedding program at
// startup and never removed; callers invoke this once per chunk they
// want to host, not on every access.
func (w *World) EnsureChunk(cp block.ChunkPos) bool {
	i := w.slotIndex(cp)
	if i < 0 {
		return false
	}
	slot := &w.slots[i]
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.chunk == nil {
		slot.chunk = NewChunk(cp)
	}
	return true
}

// withChunk runs fn under the owning slot's mutex if the chunk exists,
// returning ok=false (fn not called) when the slot is out of range or
// uninitialized. Callers recover from this locally rather than erroring.
func (w *World) withChunk(cp block.ChunkPos, fn func(c *Chunk)) (ok bool) {
	i := w.slotIndex(cp)
	if i < 0 {
		return false
	}
	slot := &w.slots[i]
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.chunk == nil {
		return false
	}
	fn(slot.chunk)
	return true
}

// GetState reads the block at pos, returning Air for any position whose
// chunk is out of range or uninitialized.
func (w *World) GetState(pos block.Pos) block.State {
	var result block.State
	lx, _, lz := pos.Local()
	w.withChunk(pos.ChunkPos(), func(c *Chunk) {
		result = c.Get(lx, pos.Y, lz)
	})
	return result
}

// SetState writes the block at pos, returning false (a no-op) if the
// owning chunk is out of range or uninitialized.
func (w *World) SetState(pos block.Pos, s block.State) bool {
	lx, _, lz := pos.Local()
	changed := false
	w.withChunk(pos.ChunkPos(), func(c *Chunk) {
		_, changed = c.Set(lx, pos.Y, lz, s)
	})
	return changed
}

// CurrentTick reads the tick counter atomically.
func (w *World) CurrentTick() int64 {
	return w.tick.Load()
}

// ScheduleTick enqueues a deferred tick callback invocation at pos.
func (w *World) ScheduleTick(pos block.Pos, delay int, priority int) {
	w.scheduleMu.Lock()
	defer w.scheduleMu.Unlock()
	w.sched.Schedule(pos, w.CurrentTick(), delay, priority)
}

// EnqueueUpdate batches a deferred neighbor recomputation.
func (w *World) EnqueueUpdate(pos block.Pos) {
	w.queueMu.Lock()
	defer w.queueMu.Unlock()
	w.queue.Enqueue(pos)
}

func (w *World) blockAndState(pos block.Pos) (*block.Block, block.State) {
	s := w.GetState(pos)
	return w.registry.Lookup(s), s
}

// UpdateNeighbors dispatches block.Update to every one of pos's six
// neighbors.
func (w *World) UpdateNeighbors(pos block.Pos) {
	for _, d := range block.AllDirections {
		np := pos.Add(d)
		b, s := w.blockAndState(np)
		block.At(b, s, np).Update(w)
	}
}

// UpdateNeighborsExcept is UpdateNeighbors skipping one direction.
func (w *World) UpdateNeighborsExcept(pos block.Pos, except block.Direction) {
	for _, d := range block.AllDirections {
		if d == except {
			continue
		}
		np := pos.Add(d)
		b, s := w.blockAndState(np)
		block.At(b, s, np).Update(w)
	}
}

// UpdateNeighborsShape dispatches block.UpdateShape to every neighbor.
// Behaviors that change their own state in response (e.g. redstone wire)
// write it back themselves; this call only triggers the recomputation.
func (w *World) UpdateNeighborsShape(pos block.Pos) {
	for _, d := range block.AllDirections {
		np := pos.Add(d)
		b, s := w.blockAndState(np)
		block.At(b, s, np).UpdateShape(w)
	}
}

// comparatorKey packs pos into the per-chunk comparator side-table key.
func comparatorKey(pos block.Pos) block.ChunkLocalPos {
	lx, _, lz := pos.Local()
	return block.PackChunkLocal(lx, lz, int32(pos.Y))
}

// ComparatorOutput reads a comparator's stored output, defaulting to 0
// if the chunk is absent or nothing has been stored yet.
func (w *World) ComparatorOutput(pos block.Pos) int {
	var v int
	w.withChunk(pos.ChunkPos(), func(c *Chunk) {
		v = c.ComparatorOutput(comparatorKey(pos))
	})
	return v
}

// SetComparatorOutput stores a comparator's output value.
func (w *World) SetComparatorOutput(pos block.Pos, value int) {
	w.withChunk(pos.ChunkPos(), func(c *Chunk) {
		c.SetComparatorOutput(comparatorKey(pos), value)
	})
}

// ClearComparatorOutput removes a comparator's stored output.
func (w *World) ClearComparatorOutput(pos block.Pos) {
	w.withChunk(pos.ChunkPos(), func(c *Chunk) {
		c.ClearComparatorOutput(comparatorKey(pos))
	})
}

// DrainChangePackets collects every pending section_blocks_update packet
// across every initialized chunk, for the server's per-tick broadcast.
func (w *World) DrainChangePackets() []*ChunkPacket {
	var out []*ChunkPacket
	for i := range w.slots {
		slot := &w.slots[i]
		slot.mu.Lock()
		if slot.chunk != nil {
			for _, p := range slot.chunk.DrainChangePackets() {
				out = append(out, &ChunkPacket{Pos: slot.chunk.Pos, Packet: p})
			}
		}
		slot.mu.Unlock()
	}
	return out
}

// ChunkPacket pairs a built packet with the chunk it concerns, so the
// broadcaster can log or filter by chunk if it ever needs to.
type ChunkPacket struct {
	Pos    block.ChunkPos
	Packet *protocol.Packet
}

// LevelChunkPacket builds the full level_chunk_with_light frame for the
// chunk at cp, for a session streaming its initial view on Play entry.
// ok is false if cp's slot is out of range or uninitialized.
func (w *World) LevelChunkPacket(cp block.ChunkPos) (pkt *protocol.Packet, ok bool) {
	w.withChunk(cp, func(c *Chunk) {
		p, err := c.LevelChunkPacket()
		if err == nil {
			pkt = p
			ok = true
		}
	})
	return pkt, ok
}
