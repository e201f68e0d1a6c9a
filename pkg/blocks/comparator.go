package blocks

import "github.com/emberblock/emberblock/pkg/block"

// comparatorSides returns the two horizontal directions perpendicular to
// facing, the side-input positions.
func comparatorSides(f block.Direction) [2]block.Direction {
	if f == block.North || f == block.South {
		return [2]block.Direction{block.West, block.East}
	}
	return [2]block.Direction{block.North, block.South}
}

// isRedstoneAware reports whether s belongs to one of the four block
// kinds whose signal counts as a comparator side-input: wire, repeater,
// comparator, redstone block.
func isRedstoneAware(s block.State) bool {
	b := registryRef.Lookup(s)
	return b == wireBlock || b == repeaterBlock || b == comparatorBlock || b == redstoneBlockBlock
}

func comparatorInput(w block.WorldView, b *block.Block, pos block.Pos, s block.State) int {
	f := facing(b, s)
	return w.Signal(pos.Add(f), f.Opposite())
}

func comparatorSideInput(w block.WorldView, b *block.Block, pos block.Pos, s block.State) int {
	side := 0
	for _, d := range comparatorSides(facing(b, s)) {
		np := pos.Add(d)
		if !isRedstoneAware(w.GetState(np)) {
			continue
		}
		if v := w.Signal(np, d.Opposite()); v > side {
			side = v
		}
	}
	return side
}

func comparatorOutputValue(w block.WorldView, b *block.Block, pos block.Pos, s block.State) int {
	input := comparatorInput(w, b, pos, s)
	side := comparatorSideInput(w, b, pos, s)
	if b.Prop("mode").DecodeEnum(s, b.IDBase) == "subtract" {
		v := input - side
		if v < 0 {
			v = 0
		}
		return v
	}
	if input >= side {
		return input
	}
	return 0
}

func comparatorGetStateForPlacement(w block.WorldView, pos block.Pos, ctx block.PlacementContext, def block.State) block.State {
	b := registryRef.Lookup(def)
	s := withFacing(b, def, horizontalFacingFromLook(ctx.PlacerFacing))
	s = b.Prop("mode").EncodeEnum(s, b.IDBase, "compare")
	s = b.Prop("powered").EncodeBool(s, b.IDBase, false)
	return s
}

func comparatorOnUpdate(w block.WorldView, pos block.Pos, s block.State) {
	b := registryRef.Lookup(s)
	next := comparatorOutputValue(w, b, pos, s)
	if next != w.ComparatorOutput(pos) {
		w.ScheduleTick(pos, 2, 0)
	}
}

func comparatorOnTick(w block.WorldView, pos block.Pos, s block.State) {
	cur := w.GetState(pos)
	b := registryRef.Lookup(cur)
	output := comparatorOutputValue(w, b, pos, cur)
	changed := output != w.ComparatorOutput(pos)
	w.SetComparatorOutput(pos, output)

	wasPowered := b.Prop("powered").DecodeBool(cur, b.IDBase)
	nowPowered := output > 0
	if wasPowered != nowPowered {
		next := b.Prop("powered").EncodeBool(cur, b.IDBase, nowPowered)
		w.SetState(pos, next)
	}
	if changed {
		w.UpdateNeighbors(pos)
	}
}

func comparatorOnUseWithoutItem(w block.WorldView, pos block.Pos, s block.State) {
	b := registryRef.Lookup(s)
	mode := b.Prop("mode").DecodeEnum(s, b.IDBase)
	next := "subtract"
	if mode == "subtract" {
		next = "compare"
	}
	w.SetState(pos, b.Prop("mode").EncodeEnum(s, b.IDBase, next))
	w.ScheduleTick(pos, 1, 0)
}

func comparatorOnDestroyed(w block.WorldView, pos block.Pos, s block.State) {
	w.ClearComparatorOutput(pos)
}

func comparatorGetSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if toward == facing(b, s).Opposite() {
		return w.ComparatorOutput(pos)
	}
	return 0
}

func comparatorAttractsWireConnection(s block.State, toward block.Direction) bool {
	b := registryRef.Lookup(s)
	f := facing(b, s)
	return toward == f || toward == f.Opposite()
}

func comparatorCallbacks() block.Callbacks {
	return block.Callbacks{
		GetStateForPlacement:            comparatorGetStateForPlacement,
		Update:                          comparatorOnUpdate,
		Tick:                            comparatorOnTick,
		OnUseWithoutItem:                comparatorOnUseWithoutItem,
		OnDestroyed:                     comparatorOnDestroyed,
		GetSignal:                       comparatorGetSignal,
		GetStrongSignal:                 comparatorGetSignal,
		IsAttractRedstoneWireConnection: comparatorAttractsWireConnection,
	}
}
