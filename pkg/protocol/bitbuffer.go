package protocol

import "io"

// BitWriter packs a stream of fixed-width unsigned integers MSB-first into
// 64-bit longs, MSB-first within each long. It is used only for chunk
// section block data, where every entry is a fixed 15-bit width.
type BitWriter struct {
	bitsPerEntry uint
	cur          uint64
	curBits      uint
	longs        []uint64
}

// NewBitWriter creates a writer packing entries of the given bit width.
func NewBitWriter(bitsPerEntry uint) *BitWriter {
	return &BitWriter{bitsPerEntry: bitsPerEntry}
}

// Write appends one value, truncated to bitsPerEntry bits.
func (b *BitWriter) Write(value uint64) {
	value &= (1 << b.bitsPerEntry) - 1
	remaining := b.bitsPerEntry
	for remaining > 0 {
		free := 64 - b.curBits
		take := remaining
		if take > free {
			take = free
		}
		shift := remaining - take
		chunk := (value >> shift) & ((1 << take) - 1)
		b.cur |= chunk << (free - take)
		b.curBits += take
		remaining -= take
		if b.curBits == 64 {
			b.longs = append(b.longs, b.cur)
			b.cur = 0
			b.curBits = 0
		}
	}
}

// Longs returns the packed longs, flushing a final partially-filled long
// (zero-padded in its low bits) if any entries were written since the last
// full long.
func (b *BitWriter) Longs() []uint64 {
	if b.curBits > 0 {
		out := make([]uint64, len(b.longs)+1)
		copy(out, b.longs)
		out[len(b.longs)] = b.cur
		return out
	}
	return b.longs
}

// WriteLongsTo writes count longs (padding with zero longs if fewer were
// produced) as big-endian 64-bit values, the wire representation used by
// the chunk section serializer.
func WriteLongsTo(w io.Writer, longs []uint64, count int) error {
	for i := 0; i < count; i++ {
		var v uint64
		if i < len(longs) {
			v = longs[i]
		}
		if err := WriteUint64(w, v); err != nil {
			return err
		}
	}
	return nil
}
