package blocks

import "github.com/emberblock/emberblock/pkg/block"

// torchSupportDir returns the direction from the torch to the block it
// draws its input from: straight down for the floor variant, or the wall
// it's mounted to (the opposite of its "facing" property, which names
// the direction the torch points away from the wall) for the wall
// variant.
func torchSupportDir(b *block.Block, s block.State) block.Direction {
	if b == torchBlock {
		return block.Down
	}
	return facing(b, s).Opposite()
}

func torchLit(b *block.Block, s block.State) bool {
	return b.Prop("lit").DecodeBool(s, b.IDBase)
}

func torchShouldLight(w block.WorldView, b *block.Block, pos block.Pos, s block.State) bool {
	supportDir := torchSupportDir(b, s)
	input := w.Signal(pos.Add(supportDir), supportDir.Opposite())
	return input == 0
}

func torchOnPlaced(w block.WorldView, pos block.Pos, s block.State) {
	w.EnqueueUpdate(pos)
}

func torchOnUpdate(w block.WorldView, pos block.Pos, s block.State) {
	w.ScheduleTick(pos, 1, 0)
}

// torchOnTick recomputes lit and, on change, writes state and updates
// neighbors plus the block directly above; torches can soft-power the
// block above regardless of mounting.
func torchOnTick(w block.WorldView, pos block.Pos, s block.State) {
	cur := w.GetState(pos)
	b := registryRef.Lookup(cur)
	shouldLight := torchShouldLight(w, b, pos, cur)
	if shouldLight == torchLit(b, cur) {
		return
	}
	next := b.Prop("lit").EncodeBool(cur, b.IDBase, shouldLight)
	w.SetState(pos, next)
	w.UpdateNeighbors(pos)
	w.EnqueueUpdate(pos.Add(block.Up))
}

func torchGetSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if !torchLit(b, s) {
		return 0
	}
	if toward == torchSupportDir(b, s) {
		return 0
	}
	return 15
}

func torchGetStrongSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if toward == block.Up && torchLit(b, s) {
		return 15
	}
	return 0
}

// torchCallbacks returns the shared torch behavior, parameterized only by
// which variant's GetStateForPlacement the caller wires in (the floor and
// wall variants differ in their properties but not their dynamics).
func torchCallbacks(wall bool) block.Callbacks {
	cb := block.Callbacks{
		OnPlaced:        torchOnPlaced,
		Update:          torchOnUpdate,
		Tick:            torchOnTick,
		GetSignal:       torchGetSignal,
		GetStrongSignal: torchGetStrongSignal,
	}
	if wall {
		cb.GetStateForPlacement = wallTorchGetStateForPlacement
	}
	return cb
}

// wallTorchGetStateForPlacement sets facing away from the clicked face:
// the torch points away from the wall it's placed against.
func wallTorchGetStateForPlacement(w block.WorldView, pos block.Pos, ctx block.PlacementContext, def block.State) block.State {
	b := registryRef.Lookup(def)
	return withFacing(b, def, ctx.ClickedFace)
}
