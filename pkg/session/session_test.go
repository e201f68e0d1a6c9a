package session

import (
	"bytes"
	"net"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/emberblock/emberblock/pkg/protocol"
)

// stubDirectory satisfies Directory for sessions that never reach Play.
type stubDirectory struct{ count int }

func (d *stubDirectory) AddPlayer(uuid.UUID, *Session) {}
func (d *stubDirectory) RemovePlayer(uuid.UUID)        {}
func (d *stubDirectory) PlayerCount() int              { return d.count }

func newTestSession(conn net.Conn) *Session {
	return New(conn, nil, nil, nil, &stubDirectory{}, "test motd", 3, zap.NewNop().Sugar())
}

func handshakeFrame(intent int32) *protocol.Packet {
	return protocol.MarshalPacket(0, func(w *bytes.Buffer) {
		protocol.WriteVarInt(w, protocol.ProtocolVersion)
		protocol.WriteString(w, "localhost")
		protocol.WriteUint16(w, 25565)
		protocol.WriteVarInt(w, intent)
	})
}

func TestHandshakeAdvancesByIntent(t *testing.T) {
	for intent, wantState := range map[int32]int32{
		1: protocol.StateStatus,
		2: protocol.StateLogin,
		3: protocol.StateLogin,
	} {
		client, srv := net.Pipe()
		s := newTestSession(srv)
		errCh := make(chan error, 1)
		go func() { errCh <- s.runHandshake() }()

		require.NoError(t, protocol.WritePacket(client, handshakeFrame(intent)))
		require.NoError(t, <-errCh)
		require.Equal(t, wantState, s.nextPhase, "intent %d", intent)
		client.Close()
	}
}

// The first packet of a connection must be the handshake (id 0); any
// other id terminates the session with no state retained.
func TestHandshakeRejectsWrongPacketID(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	s := newTestSession(srv)
	errCh := make(chan error, 1)
	go func() { errCh <- s.runHandshake() }()

	require.NoError(t, protocol.WritePacket(client, &protocol.Packet{ID: 1, Data: []byte{0}}))
	require.Error(t, <-errCh)
}

func TestHandshakeRejectsUnknownIntent(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	s := newTestSession(srv)
	errCh := make(chan error, 1)
	go func() { errCh <- s.runHandshake() }()

	require.NoError(t, protocol.WritePacket(client, handshakeFrame(7)))
	require.Error(t, <-errCh)
}

// A ping_request echoes its 64-bit payload back and ends the status loop.
func TestStatusPingEcho(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	s := newTestSession(srv)
	done := make(chan struct{})
	go func() { s.runStatus(); close(done) }()

	ping := protocol.MarshalPacket(sbPingRequest, func(w *bytes.Buffer) {
		protocol.WriteInt64(w, 0x1122334455667788)
	})
	require.NoError(t, protocol.WritePacket(client, ping))

	pong, err := protocol.ReadPacket(client)
	require.NoError(t, err)
	require.Equal(t, int32(cbPongResponse), pong.ID)
	payload, err := protocol.ReadInt64(bytes.NewReader(pong.Data))
	require.NoError(t, err)
	require.Equal(t, int64(0x1122334455667788), payload)
	<-done
}

func TestOfflineUUIDMatchesVanillaDerivation(t *testing.T) {
	// The well-known offline-mode UUID for "Notch".
	require.Equal(t, "b50ad385-829d-3141-a216-7e7d7539ba7f", offlineUUID("Notch").String())
	require.Equal(t, offlineUUID("emberblock"), offlineUUID("emberblock"))
	require.NotEqual(t, offlineUUID("alice"), offlineUUID("bob"))

	u := offlineUUID("alice")
	require.Equal(t, uuid.Version(3), u.Version())
	require.Equal(t, uuid.RFC4122, u.Variant())
}

func TestAckFlushDelaysOneTick(t *testing.T) {
	client, srv := net.Pipe()
	defer client.Close()
	s := newTestSession(srv)

	s.enqueueAck(42)
	// First tick promotes the batch without emitting anything.
	s.Tick()

	got := make(chan *protocol.Packet, 1)
	go func() {
		pkt, err := protocol.ReadPacket(client)
		require.NoError(t, err)
		got <- pkt
	}()
	// Second tick flushes the promoted batch.
	s.Tick()

	pkt := <-got
	require.Equal(t, int32(cbPlayBlockChangedAck), pkt.ID)
	seq, _, err := protocol.ReadVarInt(bytes.NewReader(pkt.Data))
	require.NoError(t, err)
	require.Equal(t, int32(42), seq)
}
