package blocks

import "github.com/emberblock/emberblock/pkg/block"

// leverAttachNormal returns the direction pointing from the lever into the
// block it's mounted on: face=floor attaches to the block below, ceiling
// to the block above, wall to the block behind facing.
func leverAttachNormal(b *block.Block, s block.State) block.Direction {
	switch b.Prop("face").DecodeEnum(s, b.IDBase) {
	case "floor":
		return block.Down
	case "ceiling":
		return block.Up
	default:
		return facing(b, s).Opposite()
	}
}

func leverPowered(b *block.Block, s block.State) bool {
	return b.Prop("powered").DecodeBool(s, b.IDBase)
}

// leverGetStateForPlacement derives face/facing from the clicked face
// alone: down→ceiling, up→floor, side→wall, with facing set to north for
// up/down attachment; the look direction is not used.
func leverGetStateForPlacement(w block.WorldView, pos block.Pos, ctx block.PlacementContext, def block.State) block.State {
	b := registryRef.Lookup(def)
	s := def

	var face string
	var dir block.Direction
	switch ctx.ClickedFace {
	case block.Down:
		face = "ceiling"
		dir = block.North
	case block.Up:
		face = "floor"
		dir = block.North
	default:
		face = "wall"
		dir = ctx.ClickedFace
	}

	s = b.Prop("face").EncodeEnum(s, b.IDBase, face)
	s = withFacing(b, s, dir)
	s = b.Prop("powered").EncodeBool(s, b.IDBase, false)
	return s
}

func leverOnUseWithoutItem(w block.WorldView, pos block.Pos, s block.State) {
	b := registryRef.Lookup(s)
	powered := leverPowered(b, s)
	next := b.Prop("powered").EncodeBool(s, b.IDBase, !powered)
	w.SetState(pos, next)

	w.UpdateNeighbors(pos)
	normal := leverAttachNormal(b, next)
	w.UpdateNeighborsExcept(pos.Add(normal), normal.Opposite())
}

func leverGetSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if leverPowered(b, s) {
		return 15
	}
	return 0
}

func leverGetStrongSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if !leverPowered(b, s) {
		return 0
	}
	if toward == leverAttachNormal(b, s) {
		return 15
	}
	return 0
}

func leverCallbacks() block.Callbacks {
	return block.Callbacks{
		GetStateForPlacement: leverGetStateForPlacement,
		OnUseWithoutItem:     leverOnUseWithoutItem,
		GetSignal:            leverGetSignal,
		GetStrongSignal:      leverGetStrongSignal,
	}
}
