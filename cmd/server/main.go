package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/blocks"
	"github.com/emberblock/emberblock/pkg/item"
	"github.com/emberblock/emberblock/pkg/protocol"
	"github.com/emberblock/emberblock/pkg/registrygen"
	"github.com/emberblock/emberblock/pkg/server"
	"github.com/emberblock/emberblock/pkg/world"
)

// tickInterval is one game tick: 20 Hz.
const tickInterval = 50 * time.Millisecond

// spawnChunkRadius is the half-width of the hosted chunk square, matching
// the 5x5 view streamed to every joining player.
const spawnChunkRadius = 2

func main() {
	var configPath string
	flags := server.DefaultConfig()

	root := &cobra.Command{
		Use:          "emberblock",
		Short:        "A minimal Minecraft 1.21.8 server with a redstone-accurate block simulation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				loaded, err := server.LoadConfigFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if cmd.Flags().Changed("address") {
				cfg.Address = flags.Address
			}
			if cmd.Flags().Changed("motd") {
				cfg.MOTD = flags.MOTD
			}
			if cmd.Flags().Changed("max-players") {
				cfg.MaxPlayers = flags.MaxPlayers
			}
			return run(cfg)
		},
	}
	root.Flags().StringVar(&flags.Address, "address", flags.Address, "server address to listen on")
	root.Flags().StringVar(&flags.MOTD, "motd", flags.MOTD, "server MOTD")
	root.Flags().IntVar(&flags.MaxPlayers, "max-players", flags.MaxPlayers, "maximum number of players")
	root.Flags().StringVar(&configPath, "config", "", "path to a server.yaml config file")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg server.Config) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	reg, err := registrygen.Load()
	if err != nil {
		return err
	}
	blocks.Register(reg)
	items := item.NewTable(reg)

	w := world.New(reg, -spawnChunkRadius, -spawnChunkRadius, 2*spawnChunkRadius+1, 2*spawnChunkRadius+1)
	for z := int16(-spawnChunkRadius); z <= spawnChunkRadius; z++ {
		for x := int16(-spawnChunkRadius); x <= spawnChunkRadius; x++ {
			w.EnsureChunk(block.ChunkPos{X: x, Z: z})
		}
	}
	w.OnBlockPanic = func(pos block.Pos, recovered any) {
		log.Warnw("block callback panicked", "pos", pos, "recovered", recovered)
	}
	buildSpawnPlatform(w, reg)

	srv := server.New(cfg, w, reg, items, log)
	if err := srv.Start(); err != nil {
		return err
	}
	log.Infow("emberblock server started",
		"version", protocol.GameVersion,
		"protocol", protocol.ProtocolVersion,
		"address", cfg.Address,
		"max_players", cfg.MaxPlayers)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			w.Tick()
			srv.Tick()
		case sig := <-sigCh:
			log.Infow("shutting down", "signal", sig)
			srv.Stop()
			return nil
		}
	}
}

// buildSpawnPlatform fills a flat stone floor one block below the spawn
// height across every hosted chunk, so joining players have something to
// stand on and to build redstone against.
func buildSpawnPlatform(w *world.World, reg *block.Registry) {
	stone := reg.ByLocation("stone")
	min := int16(-spawnChunkRadius * 16)
	max := int16(spawnChunkRadius*16 + 15)
	for z := min; z <= max; z++ {
		for x := min; x <= max; x++ {
			w.SetState(block.Pos{X: x, Y: 9, Z: z}, stone.DefaultState)
		}
	}
	// The platform predates every session; its change sets are startup
	// noise, not deltas any client needs.
	w.DrainChangePackets()
}
