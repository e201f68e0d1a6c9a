// Package server implements the player directory and per-tick broadcast
// fan-out: it accepts connections, hands each to a session, and once per
// game tick distributes the world's block-delta packets to every
// registered player.
package server

import (
	"net"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/item"
	"github.com/emberblock/emberblock/pkg/session"
	"github.com/emberblock/emberblock/pkg/world"
)

// Config holds the settings cmd/server resolves from flags and/or the
// optional yaml file before building a Server.
type Config struct {
	Address    string `yaml:"address"`
	MOTD       string `yaml:"motd"`
	MaxPlayers int    `yaml:"max_players"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Address:    ":25565",
		MOTD:       "An emberblock server",
		MaxPlayers: 3,
	}
}

// Server holds the world, the frozen registry and placement table every
// session shares, and the directory of currently connected sessions.
// add_player/remove_player (AddPlayer/RemovePlayer) are its only
// mutators, called by a session on Play entry and exit.
type Server struct {
	config   Config
	log      *zap.SugaredLogger
	world    *world.World
	registry *block.Registry
	items    *item.Table

	listener net.Listener

	mu      sync.RWMutex
	players map[uuid.UUID]*session.Session
}

// New builds a Server around an already-frozen registry and a world
// whose chunks the caller has already ensured.
func New(cfg Config, w *world.World, r *block.Registry, it *item.Table, log *zap.SugaredLogger) *Server {
	return &Server{
		config:   cfg,
		log:      log,
		world:    w,
		registry: r,
		items:    it,
		players:  make(map[uuid.UUID]*session.Session),
	}
}

// AddPlayer registers a session as of Play entry.
func (s *Server) AddPlayer(id uuid.UUID, sess *session.Session) {
	s.mu.Lock()
	s.players[id] = sess
	s.mu.Unlock()
	s.log.Infow("player joined", "username", sess.Username(), "uuid", id)
}

// RemovePlayer deregisters a session as of Play exit, regardless of
// whether the exit was a clean disconnect or a protocol error.
func (s *Server) RemovePlayer(id uuid.UUID) {
	s.mu.Lock()
	sess, ok := s.players[id]
	delete(s.players, id)
	s.mu.Unlock()
	if ok {
		s.log.Infow("player left", "username", sess.Username(), "uuid", id)
	}
}

// PlayerCount reports how many sessions are currently registered, shown
// in the status response's player listing.
func (s *Server) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// Start opens the listener and begins accepting connections in the
// background.
func (s *Server) Start() error {
	l, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}
	s.listener = l
	s.log.Infow("listening", "address", s.config.Address)
	go s.acceptLoop()
	return nil
}

// Stop closes the listener and every connected session.
func (s *Server) Stop() {
	if s.listener != nil {
		s.listener.Close()
	}
	s.mu.RLock()
	for _, sess := range s.players {
		sess.Close()
	}
	s.mu.RUnlock()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		sess := session.New(conn, s.world, s.registry, s.items, s, s.config.MOTD, s.config.MaxPlayers, s.log)
		go sess.Run()
	}
}

// Tick drains the world's pending change packets, fans them out to every
// connected session, then drives each session's own ack-queue flush.
func (s *Server) Tick() {
	packets := s.world.DrainChangePackets()

	s.mu.RLock()
	sessions := make([]*session.Session, 0, len(s.players))
	for _, sess := range s.players {
		sessions = append(sessions, sess)
	}
	s.mu.RUnlock()

	var g errgroup.Group
	for _, sess := range sessions {
		sess := sess
		g.Go(func() error {
			for _, cp := range packets {
				if err := sess.Send(cp.Packet); err != nil {
					return err
				}
			}
			sess.Tick()
			return nil
		})
	}
	g.Wait()
}
