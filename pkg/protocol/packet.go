package protocol

import (
	"bytes"
	"io"
)

// Packet is a decoded frame: <varint length><varint packet id><payload>.
// No compression and no encryption are applied; both would slot in at this
// framing boundary if ever added.
type Packet struct {
	ID   int32
	Data []byte
}

// MaxPacketLength bounds a single frame so a corrupt or hostile length
// prefix cannot trigger an unbounded allocation.
const MaxPacketLength = 2 * 1024 * 1024

// ReadPacket reads one full frame from r.
func ReadPacket(r io.Reader) (*Packet, error) {
	length, _, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if length < 1 {
		return nil, protoErrf("packet length too small: %d", length)
	}
	if length > MaxPacketLength {
		return nil, protoErrf("packet length too large: %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, netErr(err)
	}

	pr := bytes.NewReader(payload)
	packetID, idLen, err := ReadVarInt(pr)
	if err != nil {
		return nil, err
	}

	return &Packet{ID: packetID, Data: payload[idLen:]}, nil
}

// SkipPacket discards the remaining length-idSize bytes of an unhandled
// packet's payload without allocating the whole frame in memory.
func SkipPacket(r io.Reader, totalLength int32, idSize int) error {
	remaining := int64(totalLength) - int64(idSize)
	if remaining < 0 {
		return protoErrf("packet length shorter than its id")
	}
	_, err := io.CopyN(io.Discard, r, remaining)
	return netErr(err)
}

// WritePacket writes a full frame to w in one buffered write.
func WritePacket(w io.Writer, p *Packet) error {
	idSize := VarIntSize(p.ID)
	totalLen := int32(idSize + len(p.Data))

	buf := bytes.NewBuffer(make([]byte, 0, VarIntSize(totalLen)+int(totalLen)))
	WriteVarInt(buf, totalLen)
	WriteVarInt(buf, p.ID)
	buf.Write(p.Data)

	_, err := w.Write(buf.Bytes())
	return err
}

// MarshalPacket builds a Packet from an id and a payload-writing closure.
func MarshalPacket(id int32, builder func(w *bytes.Buffer)) *Packet {
	var buf bytes.Buffer
	builder(&buf)
	return &Packet{ID: id, Data: buf.Bytes()}
}
