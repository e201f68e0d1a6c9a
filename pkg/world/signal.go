package world

import "github.com/emberblock/emberblock/pkg/block"

// Signal answers "how much signal does the block at pos emit toward its
// neighbor in direction toward?": the redstone override if one is
// installed, then the block's own signal (short-circuiting on 15), then
// conductor propagation from every other neighbor.
func (w *World) Signal(pos block.Pos, toward block.Direction) int {
	if w.override != nil {
		if v, ok := w.override.Signal(pos, toward); ok {
			return v
		}
	}

	b, s := w.blockAndState(pos)
	d := block.At(b, s, pos)
	own := d.GetSignal(w, toward)
	if own >= 15 {
		return 15
	}
	if !d.IsRedstoneConductor() {
		return own
	}

	best := own
	for _, dir := range block.AllDirections {
		if dir == toward {
			continue
		}
		np := pos.Add(dir)
		nb, ns := w.blockAndState(np)
		if v := block.At(nb, ns, np).GetSignal(w, dir.Opposite()); v > best {
			best = v
			if best >= 15 {
				return 15
			}
		}
	}
	return best
}

// StrongSignal is Signal's counterpart for signal that passes through a
// conductor: it starts from 0 rather than the block's own signal, and
// takes the max of only direct neighbors' own get_strong_signal; weak
// power propagates through one conductor, strong power does not.
func (w *World) StrongSignal(pos block.Pos, toward block.Direction) int {
	b, s := w.blockAndState(pos)
	d := block.At(b, s, pos)
	if !d.IsRedstoneConductor() {
		return d.GetStrongSignal(w, toward)
	}

	best := 0
	for _, dir := range block.AllDirections {
		if dir == toward {
			continue
		}
		np := pos.Add(dir)
		nb, ns := w.blockAndState(np)
		if v := block.At(nb, ns, np).GetStrongSignal(w, dir.Opposite()); v > best {
			best = v
			if best >= 15 {
				return 15
			}
		}
	}
	return best
}

// SignalTo is the total signal arriving at pos: the max, over the six
// directions, of the neighbor in that direction's signal back toward pos.
func (w *World) SignalTo(pos block.Pos) int {
	best := 0
	for _, d := range block.AllDirections {
		if v := w.Signal(pos.Add(d), d.Opposite()); v > best {
			best = v
			if best >= 15 {
				return 15
			}
		}
	}
	return best
}
