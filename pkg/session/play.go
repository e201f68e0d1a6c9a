package session

import (
	"bytes"
	"context"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/item"
	"github.com/emberblock/emberblock/pkg/protocol"
)

// chunkViewRadius is the half-width of the square of chunks streamed on
// Play entry around the fixed spawn chunk (0,0): a 5x5 square.
const chunkViewRadius = 2

// sendPlayEntry emits the login packet, the op-permission entity_event,
// the start_waiting_for_chunks game_event, the chunk-cache center, every
// chunk in the spawn square (strictly before player_position), and
// finally the player_position sync.
func (s *Session) sendPlayEntry() error {
	if err := s.writePacket(s.buildLoginPacket()); err != nil {
		return err
	}

	entityEvent := protocol.MarshalPacket(cbPlayEntityEvent, func(w *bytes.Buffer) {
		protocol.WriteVarInt(w, 0) // entity id 0: the receiving player
		protocol.WriteByte(w, entityEventOpPermissionLevel4)
	})
	if err := s.writePacket(entityEvent); err != nil {
		return err
	}

	gameEvent := protocol.MarshalPacket(cbPlayGameEvent, func(w *bytes.Buffer) {
		protocol.WriteByte(w, gameEventStartWaitingForChunks)
		protocol.WriteFloat32(w, 0)
	})
	if err := s.writePacket(gameEvent); err != nil {
		return err
	}

	center := protocol.MarshalPacket(cbPlaySetChunkCacheCenter, func(w *bytes.Buffer) {
		protocol.WriteVarInt(w, 0)
		protocol.WriteVarInt(w, 0)
	})
	if err := s.writePacket(center); err != nil {
		return err
	}

	for dz := int16(-chunkViewRadius); dz <= chunkViewRadius; dz++ {
		for dx := int16(-chunkViewRadius); dx <= chunkViewRadius; dx++ {
			pkt, ok := s.world.LevelChunkPacket(block.ChunkPos{X: dx, Z: dz})
			if !ok {
				continue
			}
			if err := s.writePacket(pkt); err != nil {
				return err
			}
		}
	}

	return s.writePacket(s.buildSyncPlayerPositionPacket())
}

// buildLoginPacket writes the Play login packet's fixed field list.
func (s *Session) buildLoginPacket() *protocol.Packet {
	return protocol.MarshalPacket(cbPlayLogin, func(w *bytes.Buffer) {
		protocol.WriteInt32(w, 0)  // entity_id
		protocol.WriteByte(w, 0)   // is_hardcore
		protocol.WriteVarInt(w, 1) // dimensions count
		protocol.WriteString(w, "minecraft:overworld")
		protocol.WriteVarInt(w, int32(s.maxPlayers))   // max_players
		protocol.WriteVarInt(w, 32)                    // view_distance
		protocol.WriteVarInt(w, 32)                    // sim_distance
		protocol.WriteBool(w, false)                   // reduced_debug
		protocol.WriteBool(w, true)                    // enable_respawn_screen
		protocol.WriteBool(w, false)                   // do_limited_crafting
		protocol.WriteVarInt(w, 0)                     // dim_id
		protocol.WriteString(w, "minecraft:overworld") // dim_name
		protocol.WriteUint64(w, 0)                     // seed_hash
		protocol.WriteByte(w, 1)                       // gamemode: creative
		protocol.WriteByte(w, 0xFF)                    // prev_gamemode: -1
		protocol.WriteBool(w, false)                   // is_debug
		protocol.WriteBool(w, false)                   // is_flat
		protocol.WriteBool(w, false)                   // has_death_loc
		protocol.WriteVarInt(w, 0)                     // portal_cooldown
		protocol.WriteVarInt(w, 68)                    // sea_level
		protocol.WriteBool(w, false)                   // enforce_secure_chat
	})
}

func (s *Session) buildSyncPlayerPositionPacket() *protocol.Packet {
	return protocol.MarshalPacket(cbPlaySyncPlayerPosition, func(w *bytes.Buffer) {
		protocol.WriteVarInt(w, 1) // teleport_id
		protocol.WriteFloat64(w, 0)
		protocol.WriteFloat64(w, 10)
		protocol.WriteFloat64(w, 0)
		protocol.WriteFloat64(w, 0) // velocity x/y/z
		protocol.WriteFloat64(w, 0)
		protocol.WriteFloat64(w, 0)
		protocol.WriteFloat32(w, 0) // yaw
		protocol.WriteFloat32(w, 0) // pitch
		protocol.WriteInt32(w, 0)   // flags
	})
}

// packetHandlerLoop is the session's read side: it loops reading frames
// and dispatching the handled Play ids until ctx is cancelled or a read
// fails.
func (s *Session) packetHandlerLoop(ctx context.Context) error {
	for {
		pkt, err := s.readPacket()
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return nil
		}
		s.handlePlayPacket(pkt)
	}
}

func (s *Session) handlePlayPacket(pkt *protocol.Packet) {
	r := bytes.NewReader(pkt.Data)
	switch pkt.ID {
	case sbPlayChangeGameMode:
		s.handleChangeGameMode(r)
	case sbPlayPlayerAction:
		s.handlePlayerAction(r)
	case sbPlaySetCarriedItem:
		s.handleSetCarriedItem(r)
	case sbPlaySetCreativeModeSlot:
		s.handleSetCreativeModeSlot(r)
	case sbPlayUseItemOn:
		s.handleUseItemOn(r)
	case sbPlayClientTickEnd, sbPlayKeepAlive,
		sbPlayMovePlayerPos, sbPlayMovePlayerPosRot, sbPlayMovePlayerRot, sbPlayMovePlayerStatusOnly,
		sbPlayPlayerInput, sbPlaySwing:
		// No-op per the handled-ids list: payload already fully
		// consumed by ReadPacket, nothing left to act on.
	}
}

func (s *Session) handleChangeGameMode(r *bytes.Reader) {
	mode, err := protocol.ReadByte(r)
	if err != nil {
		return
	}
	pkt := protocol.MarshalPacket(cbPlayGameEvent, func(w *bytes.Buffer) {
		protocol.WriteByte(w, gameEventChangeGameMode)
		protocol.WriteFloat32(w, float32(mode))
	})
	s.writePacket(pkt)
}

// handlePlayerAction implements action=0 (dig started): clear the block
// to air, invoke its on_destroyed, and ack the sequence.
func (s *Session) handlePlayerAction(r *bytes.Reader) {
	status, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return
	}
	x, y, z, err := protocol.ReadPosition(r)
	if err != nil {
		return
	}
	if _, err := protocol.ReadByte(r); err != nil { // face
		return
	}
	sequence, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return
	}
	if status != 0 {
		s.enqueueAck(sequence)
		return
	}

	pos := block.Pos{X: int16(x), Y: int16(y), Z: int16(z)}
	cur := s.world.GetState(pos)
	b := s.registry.Lookup(cur)
	s.world.SetState(pos, block.Air)
	block.At(b, cur, pos).OnDestroyed(s.world)
	s.enqueueAck(sequence)
}

func (s *Session) handleSetCarriedItem(r *bytes.Reader) {
	slot, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return
	}
	if slot < 0 {
		slot = 0
	}
	if slot > 8 {
		slot = 8
	}
	s.stateMu.Lock()
	s.hotbarSlot = int(slot)
	s.stateMu.Unlock()
}

// handleSetCreativeModeSlot stores an item id directly into the named
// slot, per this server's simplified inventory model (no stack count,
// NBT, or component parsing, just a slot:int16 then an optional item id).
func (s *Session) handleSetCreativeModeSlot(r *bytes.Reader) {
	raw, err := protocol.ReadUint16(r)
	if err != nil {
		return
	}
	slotIdx := int16(raw)
	present, err := protocol.ReadBool(r)
	if err != nil {
		return
	}
	var id item.ID
	if present {
		itemID, _, err := protocol.ReadVarInt(r)
		if err != nil {
			return
		}
		id = item.ID(itemID)
	}
	if slotIdx < 0 || int(slotIdx) >= InventorySize {
		return
	}
	s.stateMu.Lock()
	s.inventory[slotIdx] = id
	s.stateMu.Unlock()
}

// handleUseItemOn implements the block-placement/interaction path: empty
// hand invokes on_use_without_item on the clicked block; a held item
// looked up in the placement table places at pos+face.
func (s *Session) handleUseItemOn(r *bytes.Reader) {
	hand, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return
	}
	x, y, z, err := protocol.ReadPosition(r)
	if err != nil {
		return
	}
	faceRaw, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return
	}
	cursorX, err := protocol.ReadFloat32(r)
	if err != nil {
		return
	}
	cursorY, err := protocol.ReadFloat32(r)
	if err != nil {
		return
	}
	cursorZ, err := protocol.ReadFloat32(r)
	if err != nil {
		return
	}
	if _, err := protocol.ReadBool(r); err != nil { // inside_block
		return
	}
	if _, err := protocol.ReadBool(r); err != nil { // world_border_hit
		return
	}
	sequence, _, err := protocol.ReadVarInt(r)
	if err != nil {
		return
	}

	face := block.Direction(faceRaw)
	pos := block.Pos{X: int16(x), Y: int16(y), Z: int16(z)}
	opos := pos.Add(face)

	heldID := s.heldItem(hand)
	if heldID == item.None {
		cur := s.world.GetState(pos)
		b := s.registry.Lookup(cur)
		block.At(b, cur, pos).OnUseWithoutItem(s.world)
		s.enqueueAck(sequence)
		return
	}

	b, ok := s.items.Lookup(heldID)
	if !ok {
		return
	}
	ctx := block.PlacementContext{
		ClickedFace: face,
		CursorX:     cursorX,
		CursorY:     cursorY,
		CursorZ:     cursorZ,
		// Move/rotation packets are parsed and discarded (no physics
		// tracking), so placer facing always defaults north.
		PlacerFacing: block.North,
	}
	if item.Place(s.world, b, opos, ctx) {
		s.enqueueAck(sequence)
	}
}

// heldItem resolves the item in hand: hotbar slot for the main hand, the
// fixed off-hand slot otherwise.
func (s *Session) heldItem(hand int32) item.ID {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	if hand == 0 {
		return s.inventory[HotbarBase+s.hotbarSlot]
	}
	return s.inventory[OffHandSlot]
}

// enqueueAck batches a block_changed_ack: the next Tick call promotes the
// batch and the Tick call after that sends it, not immediately.
func (s *Session) enqueueAck(sequence int32) {
	s.ackMu.Lock()
	s.ackPending = append(s.ackPending, sequence)
	s.ackMu.Unlock()
}

// Tick flushes the ack batch queued as of the previous Tick call and
// promotes the current batch to be flushed next call, giving every ack
// exactly one tick of delay. The server aggregator calls this once per
// game tick for every registered session.
func (s *Session) Tick() {
	s.ackMu.Lock()
	toFlush := s.ackReady
	s.ackReady = s.ackPending
	s.ackPending = nil
	s.ackMu.Unlock()

	for _, seq := range toFlush {
		pkt := protocol.MarshalPacket(cbPlayBlockChangedAck, func(w *bytes.Buffer) {
			protocol.WriteVarInt(w, seq)
		})
		if err := s.writePacket(pkt); err != nil {
			return
		}
	}
}

// Send delivers a packet verbatim on the transmit half, used by the
// server aggregator to broadcast block-delta packets.
func (s *Session) Send(pkt *protocol.Packet) error {
	return s.writePacket(pkt)
}
