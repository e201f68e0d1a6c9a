package world

import (
	"bytes"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/protocol"
)

// MinY and SectionCount bound the vertical extent every chunk column
// covers: 24 sections from y=-64 to y=319, the standard overworld range.
const (
	MinY         = -64
	SectionCount = 24
)

// PacketSectionBlocksUpdate and PacketLevelChunkWithLight are the
// clientbound Play packet ids this package's serializers build frames
// for.
const (
	PacketSectionBlocksUpdate = 0x4A
	PacketLevelChunkWithLight = 0x2C
)

// Chunk is a contiguous vector of sections indexed by section-y, plus a
// per-chunk comparator-output side table kept alongside it so that chunk
// eviction would evict comparator state along with it.
type Chunk struct {
	Pos               block.ChunkPos
	sections          [SectionCount]*Section
	comparatorOutputs map[block.ChunkLocalPos]int
}

// NewChunk returns an all-air chunk at pos with every section allocated.
func NewChunk(pos block.ChunkPos) *Chunk {
	c := &Chunk{Pos: pos}
	for i := range c.sections {
		c.sections[i] = NewSection()
	}
	return c
}

// sectionIndex maps a world y to this chunk's section slice index, or
// -1 if y falls outside [MinY, MinY+SectionCount*16).
func sectionIndex(y int16) int {
	idx := (int(y) - MinY) >> 4
	if idx < 0 || idx >= SectionCount {
		return -1
	}
	return idx
}

// Get returns the state at a chunk-local position. y outside the chunk's
// vertical range reads as air, the same "nothing there" semantic an
// uninitialized chunk slot gets.
func (c *Chunk) Get(lx int16, y int16, lz int16) block.State {
	si := sectionIndex(y)
	if si < 0 {
		return block.Air
	}
	idx := sectionLocalIndex(lx, y, lz)
	return c.sections[si].Get(idx)
}

// Set stores a state at a chunk-local position, returning the previous
// value and whether y was in range at all (false means the write was
// silently dropped).
func (c *Chunk) Set(lx int16, y int16, lz int16, s block.State) (prev block.State, ok bool) {
	si := sectionIndex(y)
	if si < 0 {
		return block.Air, false
	}
	idx := sectionLocalIndex(lx, y, lz)
	return c.sections[si].Set(idx, s), true
}

// sectionLocalIndex computes the section_block_index: y_in_section*256 +
// z*16 + x. Go's & on a signed int already yields the two's-complement
// low bits, which match Euclidean mod 16 for the mask 0xF, so no
// explicit floor-mod is needed.
func sectionLocalIndex(lx, y, lz int16) uint16 {
	yInSection := int(y) & 0xF
	return uint16(yInSection*256 + int(lz)*16 + int(lx))
}

// ComparatorOutput reads the stored output for a comparator at a
// chunk-local position, defaulting to 0 if never set.
func (c *Chunk) ComparatorOutput(key block.ChunkLocalPos) int {
	if c.comparatorOutputs == nil {
		return 0
	}
	return c.comparatorOutputs[key]
}

// SetComparatorOutput stores a comparator's output value.
func (c *Chunk) SetComparatorOutput(key block.ChunkLocalPos, value int) {
	if c.comparatorOutputs == nil {
		c.comparatorOutputs = make(map[block.ChunkLocalPos]int)
	}
	c.comparatorOutputs[key] = value
}

// ClearComparatorOutput removes a comparator's stored output, called from
// its on_destroyed hook.
func (c *Chunk) ClearComparatorOutput(key block.ChunkLocalPos) {
	delete(c.comparatorOutputs, key)
}

// SerializeInto writes the level_chunk_with_light payload body: a
// height-map placeholder, the section data length and bytes, an empty
// block-entity list, and the fixed light-section stub.
func (c *Chunk) SerializeInto(w *bytes.Buffer) error {
	if _, err := protocol.WriteVarInt(w, 0); err != nil { // heightmaps: none
		return err
	}

	var data bytes.Buffer
	for _, sec := range c.sections {
		if err := sec.SerializeInto(&data); err != nil {
			return err
		}
	}
	if _, err := protocol.WriteVarInt(w, int32(data.Len())); err != nil {
		return err
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return err
	}

	if _, err := protocol.WriteVarInt(w, 0); err != nil { // block entities: none
		return err
	}

	// Light stub: the sky-light, block-light, empty-sky-light and
	// empty-block-light masks are all written as empty BitSets (no mask
	// bit is set), followed by two empty light-array lists; lighting
	// itself is out of scope.
	for i := 0; i < 4; i++ {
		if _, err := protocol.WriteVarInt(w, 0); err != nil {
			return err
		}
	}
	for i := 0; i < 2; i++ {
		if _, err := protocol.WriteVarInt(w, 0); err != nil {
			return err
		}
	}
	return nil
}

// LevelChunkPacket builds the full level_chunk_with_light frame for this
// chunk, including the leading chunk_x/chunk_z fields the packet carries
// ahead of the body SerializeInto writes.
func (c *Chunk) LevelChunkPacket() (*protocol.Packet, error) {
	var body bytes.Buffer
	if err := protocol.WriteInt32(&body, int32(c.Pos.X)); err != nil {
		return nil, err
	}
	if err := protocol.WriteInt32(&body, int32(c.Pos.Z)); err != nil {
		return nil, err
	}
	if err := c.SerializeInto(&body); err != nil {
		return nil, err
	}
	return &protocol.Packet{ID: PacketLevelChunkWithLight, Data: body.Bytes()}, nil
}

// DrainChangePackets builds one section_blocks_update packet per section
// that has pending changes, clearing each section's change set. Sections
// with no real diff since their last flush contribute nothing, so callers
// skip the packet entirely.
func (c *Chunk) DrainChangePackets() []*protocol.Packet {
	var packets []*protocol.Packet
	for sy, sec := range c.sections {
		entries := sec.drainChanges()
		if len(entries) == 0 {
			continue
		}
		sectionY := int32(sy) + MinY/16
		packets = append(packets, buildSectionBlocksUpdate(c.Pos, sectionY, entries))
	}
	return packets
}

func buildSectionBlocksUpdate(cp block.ChunkPos, sectionY int32, entries []changeEntry) *protocol.Packet {
	var body bytes.Buffer
	loc := (int64(sectionY&0xFFFFF) << 44) | (int64(int32(cp.Z)&0x3FFFFF) << 22) | int64(int32(cp.X)&0x3FFFFF)
	protocol.WriteInt64(&body, loc)
	protocol.WriteVarInt(&body, int32(len(entries)))
	for _, e := range entries {
		x, y, z := localFromIndex(e.index)
		local := (int64(x) << 8) | (int64(y) << 4) | int64(z)
		value := (int64(e.state) << 12) | local
		protocol.WriteVarLong(&body, value)
	}
	return &protocol.Packet{ID: PacketSectionBlocksUpdate, Data: body.Bytes()}
}
