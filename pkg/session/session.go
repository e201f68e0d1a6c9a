// Package session implements the per-connection four-phase state machine
// (Handshake -> Status | Login -> Configuration -> Play): framed packet
// dispatch, keep-alives, chunk streaming on Play entry, and the
// block-action handlers that mutate the world on a client's behalf.
package session

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/item"
	"github.com/emberblock/emberblock/pkg/protocol"
	"github.com/emberblock/emberblock/pkg/world"
)

// InventorySize covers the hotbar (36..44) and the off-hand slot (45)
// that use_item_on and set_creative_mode_slot address; the rest of the
// range exists only so arbitrary slot indices from set_creative_mode_slot
// never go out of bounds.
const InventorySize = 46

// OffHandSlot is where hand=1 (off-hand) reads its item from.
const OffHandSlot = 45

// HotbarBase is slot 36 plus the carried-item index for hand=0.
const HotbarBase = 36

// Directory is the player registry a session registers itself into on
// Play entry and removes itself from on exit. pkg/server implements it.
type Directory interface {
	AddPlayer(id uuid.UUID, s *Session)
	RemovePlayer(id uuid.UUID)
	PlayerCount() int
}

// Session is one client connection, carried through every phase.
type Session struct {
	conn net.Conn
	log  *zap.SugaredLogger

	world      *world.World
	registry   *block.Registry
	items      *item.Table
	dir        Directory
	motd       string
	maxPlayers int

	writeMu sync.Mutex // guards the transmit half (conn.Write)
	readMu  sync.Mutex // guards the receive half; one reader at a time

	nextPhase int32 // result of Handshake's next_state field

	uuid     uuid.UUID
	username string

	stateMu    sync.Mutex // guards inventory/hotbar, touched only by the single packet-handler goroutine once Play starts
	inventory  [InventorySize]item.ID
	hotbarSlot int

	ackMu      sync.Mutex
	ackPending []int32
	ackReady   []int32
}

// UUID returns the session's derived offline UUID.
func (s *Session) UUID() uuid.UUID { return s.uuid }

// Username returns the name given at login.
func (s *Session) Username() string { return s.username }

// Close terminates the underlying connection, used by the server
// aggregator to disconnect every session on shutdown.
func (s *Session) Close() error { return s.conn.Close() }

// New constructs a session around an accepted connection. w, r, and it
// must already be built (world.New, registrygen.Load+blocks.Register,
// item.NewTable) by the time any session is created.
func New(conn net.Conn, w *world.World, r *block.Registry, it *item.Table, dir Directory, motd string, maxPlayers int, log *zap.SugaredLogger) *Session {
	return &Session{
		conn:       conn,
		log:        log,
		world:      w,
		registry:   r,
		items:      it,
		dir:        dir,
		motd:       motd,
		maxPlayers: maxPlayers,
	}
}

// Run drives the connection through every phase until it terminates,
// closing conn on return regardless of cause.
func (s *Session) Run() {
	defer s.conn.Close()

	if err := s.runHandshake(); err != nil {
		s.log.Debugw("handshake failed", "err", err)
		return
	}

	switch s.nextPhase {
	case protocol.StateStatus:
		s.runStatus()
	case protocol.StateLogin:
		if err := s.runLogin(); err != nil {
			s.log.Debugw("login failed", "err", err)
			return
		}
		if err := s.runConfiguration(); err != nil {
			s.log.Debugw("configuration failed", "err", err)
			return
		}
		s.runPlay()
	default:
		s.log.Debugw("handshake gave an unreachable next_state", "next_state", s.nextPhase)
	}
}

func (s *Session) readPacket() (*protocol.Packet, error) {
	s.readMu.Lock()
	defer s.readMu.Unlock()
	s.conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	return protocol.ReadPacket(s.conn)
}

func (s *Session) writePacket(p *protocol.Packet) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return protocol.WritePacket(s.conn, p)
}

// writeRaw sends an already-framed byte sequence verbatim, used for the
// precomputed configuration registry blob.
func (s *Session) writeRaw(b []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, err := s.conn.Write(b)
	return err
}

// runHandshake accepts exactly the one packet the Handshake phase
// permits: id 0, protocol_version+server_address+server_port+next_state.
// Any other id, or a next_state outside {1,2,3}, is a ProtocolError.
func (s *Session) runHandshake() error {
	pkt, err := s.readPacket()
	if err != nil {
		return err
	}
	if pkt.ID != sbHandshakeIntent {
		return &protocol.ProtocolError{Msg: fmt.Sprintf("handshake: unexpected packet id %d", pkt.ID)}
	}

	r := bytes.NewReader(pkt.Data)
	if _, _, err := protocol.ReadVarInt(r); err != nil { // protocol_version, unchecked
		return err
	}
	if _, err := protocol.ReadString(r); err != nil { // server_address
		return err
	}
	if _, err := protocol.ReadUint16(r); err != nil { // server_port
		return err
	}
	intent, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return err
	}

	switch intent {
	case 1:
		s.nextPhase = protocol.StateStatus
	case 2, 3:
		s.nextPhase = protocol.StateLogin
	default:
		return &protocol.ProtocolError{Msg: fmt.Sprintf("handshake: invalid intent %d", intent)}
	}
	return nil
}

// statusResponse is the fixed JSON body of the status_request reply.
type statusResponse struct {
	Version     statusVersion     `json:"version"`
	Players     statusPlayers     `json:"players"`
	Description statusDescription `json:"description"`
}
type statusVersion struct {
	Name     string `json:"name"`
	Protocol int    `json:"protocol"`
}
type statusPlayers struct {
	Max    int `json:"max"`
	Online int `json:"online"`
}
type statusDescription struct {
	Text string `json:"text"`
}

// runStatus answers status_request/ping_request until the client closes
// or pings (a ping always ends the connection in the vanilla handshake).
func (s *Session) runStatus() {
	for {
		pkt, err := s.readPacket()
		if err != nil {
			return
		}
		switch pkt.ID {
		case sbStatusRequest:
			resp := statusResponse{
				Version: statusVersion{Name: protocol.GameVersion, Protocol: protocol.ProtocolVersion},
				Players: statusPlayers{Max: s.maxPlayers, Online: s.dir.PlayerCount()},
				Description: statusDescription{
					Text: s.motd,
				},
			}
			body, err := json.Marshal(resp)
			if err != nil {
				s.log.Errorw("marshal status response", "err", err)
				return
			}
			pkt := protocol.MarshalPacket(cbStatusResponse, func(w *bytes.Buffer) {
				protocol.WriteString(w, string(body))
			})
			if err := s.writePacket(pkt); err != nil {
				return
			}
		case sbPingRequest:
			r := bytes.NewReader(pkt.Data)
			payload, err := protocol.ReadInt64(r)
			if err != nil {
				return
			}
			pong := protocol.MarshalPacket(cbPongResponse, func(w *bytes.Buffer) {
				protocol.WriteInt64(w, payload)
			})
			s.writePacket(pong)
			return
		}
	}
}

// offlineUUID reproduces the vanilla offline-mode derivation: the MD5
// digest of "OfflinePlayer:"+name, stamped with version 3 and RFC 4122
// variant bits. Unlike uuid.NewMD5 this has no namespace prefix
// (vanilla hashes the name bytes alone), so the digest is built by hand and only
// wrapped in uuid.UUID afterward.
func offlineUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	u, _ := uuid.FromBytes(sum[:])
	return u
}

// runLogin handles hello (reads name, ignores the client-claimed uuid,
// derives the offline one, replies login_finished) then waits for
// login_acknowledged before advancing to Configuration.
func (s *Session) runLogin() error {
	for {
		pkt, err := s.readPacket()
		if err != nil {
			return err
		}
		switch pkt.ID {
		case sbLoginHello:
			r := bytes.NewReader(pkt.Data)
			name, err := protocol.ReadString(r)
			if err != nil {
				return err
			}
			if _, err := protocol.ReadUUID(r); err != nil { // claimed uuid, ignored
				return err
			}
			s.username = name
			s.uuid = offlineUUID(name)

			resp := protocol.MarshalPacket(cbLoginFinished, func(w *bytes.Buffer) {
				u := s.uuid
				protocol.WriteUUID(w, u)
				protocol.WriteString(w, s.username)
				protocol.WriteVarInt(w, 0) // properties: none
			})
			if err := s.writePacket(resp); err != nil {
				return err
			}
		case sbLoginAcknowledged:
			return nil
		}
	}
}

// runConfiguration pushes select_known_packs, the fixed registry blob,
// and finish_configuration, then waits for the client's own
// finish_configuration before advancing to Play.
func (s *Session) runConfiguration() error {
	knownPacks := protocol.MarshalPacket(cbConfigSelectKnownPacks, func(w *bytes.Buffer) {
		protocol.WriteVarInt(w, 1)
		protocol.WriteString(w, "minecraft")
		protocol.WriteString(w, "core")
		protocol.WriteString(w, protocol.GameVersion)
	})
	if err := s.writePacket(knownPacks); err != nil {
		return err
	}

	if err := s.writeRaw(registryBlob); err != nil {
		return err
	}

	finish := &protocol.Packet{ID: cbConfigFinishConfiguration}
	if err := s.writePacket(finish); err != nil {
		return err
	}

	for {
		pkt, err := s.readPacket()
		if err != nil {
			return err
		}
		if pkt.ID == sbConfigFinishConfiguration {
			return nil
		}
	}
}

// runPlay sends the Play-entry packet sequence, registers the session,
// and drives the keep-alive and packet-handler tasks until either exits.
func (s *Session) runPlay() {
	if err := s.sendPlayEntry(); err != nil {
		s.log.Debugw("play entry failed", "err", err)
		return
	}

	for i := range s.inventory {
		s.inventory[i] = item.None
	}

	s.dir.AddPlayer(s.uuid, s)
	defer s.dir.RemovePlayer(s.uuid)

	// keepAliveLoop and packetHandlerLoop are joined as a pair with
	// "first to exit wins" semantics. Neither net.Conn.Read nor Write
	// observes ctx directly, so a third task forces a blocked Read to
	// return by resetting the read deadline into the past the instant
	// either of the other two tasks ends.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return s.keepAliveLoop(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return s.packetHandlerLoop(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		s.conn.SetReadDeadline(time.Now())
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Debugw("play session ended", "username", s.username, "err", err)
	}
}

// keepAliveLoop emits a keep_alive every 5 seconds until ctx is
// cancelled or a write fails.
func (s *Session) keepAliveLoop(ctx context.Context) error {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			pkt := protocol.MarshalPacket(cbPlayKeepAlive, func(w *bytes.Buffer) {
				protocol.WriteInt64(w, 0)
			})
			if err := s.writePacket(pkt); err != nil {
				return err
			}
		}
	}
}
