package blocks

import "github.com/emberblock/emberblock/pkg/block"

// repeaterInputPos is the block behind the repeater: pos + facing.
func repeaterInputPos(b *block.Block, pos block.Pos, s block.State) block.Pos {
	return pos.Add(facing(b, s))
}

func repeaterInputSignal(w block.WorldView, b *block.Block, pos block.Pos, s block.State) int {
	f := facing(b, s)
	return w.Signal(repeaterInputPos(b, pos, s), f.Opposite())
}

func repeaterDelay(b *block.Block, s block.State) int {
	return b.Prop("delay").DecodeInt(s, b.IDBase)
}

func repeaterPowered(b *block.Block, s block.State) bool {
	return b.Prop("powered").DecodeBool(s, b.IDBase)
}

func repeaterGetStateForPlacement(w block.WorldView, pos block.Pos, ctx block.PlacementContext, def block.State) block.State {
	b := registryRef.Lookup(def)
	s := withFacing(b, def, horizontalFacingFromLook(ctx.PlacerFacing))
	s = b.Prop("powered").EncodeBool(s, b.IDBase, false)
	s = b.Prop("locked").EncodeBool(s, b.IDBase, false)
	return s
}

// repeaterOnUpdate schedules the delayed flip: if input presence
// disagrees with powered, schedule a tick delay*2 ticks out at priority
// 0. World.ScheduleTick already enforces idempotency (one pending entry
// per position).
func repeaterOnUpdate(w block.WorldView, pos block.Pos, s block.State) {
	b := registryRef.Lookup(s)
	inputPresent := repeaterInputSignal(w, b, pos, s) > 0
	if inputPresent != repeaterPowered(b, s) {
		w.ScheduleTick(pos, repeaterDelay(b, s)*2, 0)
	}
}

func repeaterOnTick(w block.WorldView, pos block.Pos, s block.State) {
	cur := w.GetState(pos)
	b := registryRef.Lookup(cur)
	inputPresent := repeaterInputSignal(w, b, pos, cur) > 0
	powered := repeaterPowered(b, cur)

	switch {
	case !powered && inputPresent:
		next := b.Prop("powered").EncodeBool(cur, b.IDBase, true)
		w.SetState(pos, next)
		w.UpdateNeighbors(pos)
		w.ScheduleTick(pos, repeaterDelay(b, cur)*2, 0)
	case powered && !inputPresent:
		next := b.Prop("powered").EncodeBool(cur, b.IDBase, false)
		w.SetState(pos, next)
		w.UpdateNeighbors(pos)
	}
}

// repeaterOnUseWithoutItem cycles delay 1->2->3->4->1.
func repeaterOnUseWithoutItem(w block.WorldView, pos block.Pos, s block.State) {
	b := registryRef.Lookup(s)
	next := repeaterDelay(b, s)%4 + 1
	w.SetState(pos, b.Prop("delay").EncodeInt(s, b.IDBase, next))
}

func repeaterGetSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if repeaterPowered(b, s) && toward == facing(b, s).Opposite() {
		return 15
	}
	return 0
}

func repeaterAttractsWireConnection(s block.State, toward block.Direction) bool {
	b := registryRef.Lookup(s)
	f := facing(b, s)
	return toward == f || toward == f.Opposite()
}

func repeaterCallbacks() block.Callbacks {
	return block.Callbacks{
		GetStateForPlacement:            repeaterGetStateForPlacement,
		Update:                          repeaterOnUpdate,
		Tick:                            repeaterOnTick,
		OnUseWithoutItem:                repeaterOnUseWithoutItem,
		GetSignal:                       repeaterGetSignal,
		IsAttractRedstoneWireConnection: repeaterAttractsWireConnection,
	}
}
