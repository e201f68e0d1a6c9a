package blocks

import "github.com/emberblock/emberblock/pkg/block"

func wireIsWire(s block.State) bool {
	return registryRef.Lookup(s) == wireBlock
}

// wireConnection computes the connection state ("up", "side", or "none")
// for one horizontal side of a wire: "up" if the neighbor up+side is a
// wire and the block above is not a conductor; "side" if the horizontal
// neighbor attracts wire connections, else if the block below+side is a
// wire and the neighbor is not a conductor; else "none".
func wireConnection(w block.WorldView, pos block.Pos, d block.Direction) string {
	abovePos := pos.Add(block.Up).Add(d)
	aboveAbovePos := pos.Add(block.Up)
	aboveAboveState := w.GetState(aboveAbovePos)
	aboveAboveB := registryRef.Lookup(aboveAboveState)
	if wireIsWire(w.GetState(abovePos)) && !block.At(aboveAboveB, aboveAboveState, aboveAbovePos).IsRedstoneConductor() {
		return "up"
	}

	sidePos := pos.Add(d)
	sideState := w.GetState(sidePos)
	sideB := registryRef.Lookup(sideState)
	if wireIsWire(sideState) || block.At(sideB, sideState, sidePos).AttractsWireConnection(d.Opposite()) {
		return "side"
	}

	belowPos := pos.Add(block.Down).Add(d)
	if wireIsWire(w.GetState(belowPos)) && !block.At(sideB, sideState, sidePos).IsRedstoneConductor() {
		return "side"
	}

	return "none"
}

// recomputeWireShape recomputes all four connection properties, then
// normalizes dot (no connections -> star, all four "side") and straight
// lines (exactly one connection -> also connect the opposite side).
func recomputeWireShape(b *block.Block, w block.WorldView, pos block.Pos, s block.State) block.State {
	conns := make(map[block.Direction]string, 4)
	connected := 0
	var onlyDir block.Direction
	for _, d := range block.HorizontalDirections {
		c := wireConnection(w, pos, d)
		conns[d] = c
		if c != "none" {
			connected++
			onlyDir = d
		}
	}

	if connected == 0 {
		for _, d := range block.HorizontalDirections {
			conns[d] = "side"
		}
	} else if connected == 1 {
		conns[onlyDir.Opposite()] = "side"
	}

	next := s
	for _, d := range block.HorizontalDirections {
		next = b.Prop(d.String()).EncodeEnum(next, b.IDBase, conns[d])
	}
	return next
}

func wireUpdateShape(w block.WorldView, pos block.Pos, s block.State) block.State {
	b := registryRef.Lookup(s)
	next := recomputeWireShape(b, w, pos, s)
	if next != s {
		w.SetState(pos, next)
		w.UpdateNeighbors(pos)
	}
	return next
}

// recomputeWirePower computes wire power as the max of strong signals
// from all six neighbors and weak signals from the four horizontal
// neighbors, with any horizontally adjacent wire contributing its power
// minus one (saturating) instead of its get_signal. This reads every
// horizontal neighbor unconditionally; the connection shape is cosmetic
// and never gates power draw.
func recomputeWirePower(b *block.Block, w block.WorldView, pos block.Pos, s block.State) int {
	power := 0
	for _, d := range block.AllDirections {
		np := pos.Add(d)
		if sig := w.StrongSignal(np, d.Opposite()); sig > power {
			power = sig
		}
	}
	for _, d := range block.HorizontalDirections {
		np := pos.Add(d)
		npState := w.GetState(np)
		if wireIsWire(npState) {
			nb := registryRef.Lookup(npState)
			p := nb.Prop("power").DecodeInt(npState, nb.IDBase) - 1
			if p < 0 {
				p = 0
			}
			if p > power {
				power = p
			}
			continue
		}
		if sig := w.Signal(np, d.Opposite()); sig > power {
			power = sig
		}
	}
	return power
}

func wireUpdate(w block.WorldView, pos block.Pos, s block.State) {
	cur := w.GetState(pos)
	b := registryRef.Lookup(cur)
	oldPower := b.Prop("power").DecodeInt(cur, b.IDBase)
	newPower := recomputeWirePower(b, w, pos, cur)
	if newPower != oldPower {
		next := b.Prop("power").EncodeInt(cur, b.IDBase, newPower)
		w.SetState(pos, next)
		w.UpdateNeighbors(pos)
	}
}

func wireGetSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	b := registryRef.Lookup(s)
	if !toward.IsHorizontal() {
		return 0
	}
	if b.Prop(toward.String()).DecodeEnum(s, b.IDBase) == "none" {
		return 0
	}
	return b.Prop("power").DecodeInt(s, b.IDBase)
}

// wireGetStrongSignal is always 0: wire only carries weak power.
func wireGetStrongSignal(block.WorldView, block.Pos, block.State, block.Direction) int {
	return 0
}

func wireGetStateForPlacement(w block.WorldView, pos block.Pos, ctx block.PlacementContext, def block.State) block.State {
	b := registryRef.Lookup(def)
	return recomputeWireShape(b, w, pos, def)
}

func wireOnPlaced(w block.WorldView, pos block.Pos, s block.State) {
	w.UpdateNeighborsShape(pos)
	w.EnqueueUpdate(pos)
}

func wireCallbacks() block.Callbacks {
	return block.Callbacks{
		GetStateForPlacement: wireGetStateForPlacement,
		OnPlaced:             wireOnPlaced,
		UpdateShape:          wireUpdateShape,
		Update:               wireUpdate,
		GetSignal:            wireGetSignal,
		GetStrongSignal:      wireGetStrongSignal,
	}
}
