// Package world implements the chunked voxel store and the world & tick
// engine: chunk ownership, block get/set with change tracking, scheduled
// block ticks, the deferred block-update queue, redstone signal query,
// and the per-tick simulation loop that drives block.Callbacks through
// block.DispatchAt.
package world

import (
	"io"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/protocol"
)

// SectionBlocks is the number of blocks in one 16x16x16 chunk section.
const SectionBlocks = 16 * 16 * 16

// sectionEntryBits is the fixed per-entry width the wire format uses for
// chunk section block data: a direct, unpaletted array wide enough for
// the whole registry's state-id space.
const sectionEntryBits = 15

// sectionLongCount is ceil(4096*15/64), the number of longs the bit-packed
// block array occupies.
const sectionLongCount = (SectionBlocks*sectionEntryBits + 63) / 64

// Section is a 16x16x16 dense array of block states: the atomic unit of
// change tracking and wire serialization.
type Section struct {
	blocks      [SectionBlocks]block.State
	lastEmitted [SectionBlocks]block.State
	nonAir      int
	changes     map[uint16]struct{}
}

// NewSection returns an all-air section.
func NewSection() *Section {
	return &Section{}
}

// Get returns the state at section-local index i.
func (s *Section) Get(i uint16) block.State {
	return s.blocks[i]
}

// Set stores newState at index i and returns the previous value. The
// non-air counter and changes set are updated transactionally: a write
// that doesn't actually change the stored value is a no-op on both, so
// re-setting a block to its own value never perturbs the change-tracking
// invariant.
func (s *Section) Set(i uint16, newState block.State) block.State {
	prev := s.blocks[i]
	if prev == newState {
		return prev
	}
	if prev == block.Air && newState != block.Air {
		s.nonAir++
	} else if prev != block.Air && newState == block.Air {
		s.nonAir--
	}
	s.blocks[i] = newState
	if s.changes == nil {
		s.changes = make(map[uint16]struct{})
	}
	s.changes[i] = struct{}{}
	return prev
}

// NonAirCount returns the number of non-air blocks currently stored.
func (s *Section) NonAirCount() int {
	return s.nonAir
}

// SerializedSize returns the exact byte length SerializeInto writes:
// u16 count + u8 entry size + the fixed long array + the biome stub.
func (s *Section) SerializedSize() int {
	return 2 + 1 + sectionLongCount*8 + 1 + 1
}

// SerializeInto writes this section's block_states and a single-value
// biome palette placeholder: non_air_count, a fixed entry size of 15 bits
// (a direct array, no palette indirection), the bit-packed longs
// MSB-first, then a one-byte biome palette width (0, meaning a single
// value) and that value (VarInt 0, the only biome this server ever
// reports).
func (s *Section) SerializeInto(w io.Writer) error {
	if err := protocol.WriteUint16(w, uint16(s.nonAir)); err != nil {
		return err
	}
	if err := protocol.WriteByte(w, sectionEntryBits); err != nil {
		return err
	}
	bw := protocol.NewBitWriter(sectionEntryBits)
	for _, v := range s.blocks {
		bw.Write(uint64(v))
	}
	if err := protocol.WriteLongsTo(w, bw.Longs(), sectionLongCount); err != nil {
		return err
	}
	if err := protocol.WriteByte(w, 0); err != nil {
		return err
	}
	_, err := protocol.WriteVarInt(w, 0)
	return err
}

// changeEntry is one drained (section-local index, new state) pair.
type changeEntry struct {
	index uint16
	state block.State
}

// drainChanges returns every candidate index whose stored value actually
// differs from the last value emitted for it, then clears the change set
// and updates the snapshot: a packet is built iff at least one state
// really changed, and exactly those indices are reported.
func (s *Section) drainChanges() []changeEntry {
	if len(s.changes) == 0 {
		return nil
	}
	var out []changeEntry
	for idx := range s.changes {
		cur := s.blocks[idx]
		if cur != s.lastEmitted[idx] {
			out = append(out, changeEntry{index: idx, state: cur})
			s.lastEmitted[idx] = cur
		}
	}
	s.changes = nil
	return out
}

// localFromIndex recovers a section-local (x,y,z) from the index formula
// index = y_in_section*256 + z*16 + x.
func localFromIndex(i uint16) (x, y, z int) {
	y = int(i) / 256
	rem := int(i) % 256
	z = rem / 16
	x = rem % 16
	return
}
