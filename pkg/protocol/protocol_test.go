package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 127, 128, 255, 25565, 2097151, 1 << 30, -1 << 30}
	for _, v := range values {
		var buf bytes.Buffer
		_, err := WriteVarInt(&buf, v)
		require.NoError(t, err)
		require.Equal(t, VarIntSize(v), buf.Len())

		got, _, err := ReadVarInt(&buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestVarIntTooBig(t *testing.T) {
	// Every byte has the continuation bit set, so the fifth byte still
	// asks for more: past the 5-byte limit.
	buf := bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	_, _, err := ReadVarInt(buf)
	require.ErrorIs(t, err, ErrVarIntTooBig)
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 1 << 40, -(1 << 40), 1<<63 - 1, -(1 << 62)}
	for _, v := range values {
		var buf bytes.Buffer
		_, err := WriteVarLong(&buf, v)
		require.NoError(t, err)

		got, _, err := ReadVarLong(&buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "hello, world"))
	got, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "hello, world", got)
}

func TestStringInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	WriteVarInt(&buf, 1)
	buf.Write([]byte{0xFF})
	_, err := ReadString(&buf)
	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
}

func TestPackedPositionRoundTrip(t *testing.T) {
	coords := []struct{ x, y, z int32 }{
		{0, 0, 0},
		{1, 1, 1},
		{-1, -1, -1},
		{1<<25 - 1, 1<<11 - 1, 1<<25 - 1},
		{-(1 << 25), -(1 << 11), -(1 << 25)},
		{3, 64, 5},
	}
	for _, c := range coords {
		var buf bytes.Buffer
		require.NoError(t, WritePosition(&buf, c.x, c.y, c.z))
		x, y, z, err := ReadPosition(&buf)
		require.NoError(t, err)
		require.Equal(t, c.x, x)
		require.Equal(t, c.y, y)
		require.Equal(t, c.z, z)
	}
}

func TestPacketRoundTrip(t *testing.T) {
	p := &Packet{ID: 5, Data: []byte{1, 2, 3, 4}}
	var buf bytes.Buffer
	require.NoError(t, WritePacket(&buf, p))

	got, err := ReadPacket(&buf)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, p.Data, got.Data)
}

func TestBitWriterPacksMSBFirst(t *testing.T) {
	w := NewBitWriter(5)
	w.Write(1)
	w.Write(2)
	longs := w.Longs()
	require.Len(t, longs, 1)
	// First entry occupies the top 5 bits of the long, second the next 5.
	require.Equal(t, uint64(1)<<59|uint64(2)<<54, longs[0])
}
