package blocks

import "github.com/emberblock/emberblock/pkg/block"

func lampLit(b *block.Block, s block.State) bool {
	return b.Prop("lit").DecodeBool(s, b.IDBase)
}

// lampOnUpdate implements the lamp's asymmetric response to signal: it
// lights immediately on receiving signal, but only unlights after a
// 4-tick delay, matching vanilla's anti-flicker behavior.
func lampOnUpdate(w block.WorldView, pos block.Pos, s block.State) {
	b := registryRef.Lookup(s)
	powered := w.SignalTo(pos) > 0
	lit := lampLit(b, s)
	switch {
	case !lit && powered:
		w.SetState(pos, b.Prop("lit").EncodeBool(s, b.IDBase, true))
	case lit && !powered:
		w.ScheduleTick(pos, 4, 0)
	}
}

func lampOnTick(w block.WorldView, pos block.Pos, s block.State) {
	cur := w.GetState(pos)
	b := registryRef.Lookup(cur)
	if !lampLit(b, cur) {
		return
	}
	if w.SignalTo(pos) > 0 {
		return
	}
	w.SetState(pos, b.Prop("lit").EncodeBool(cur, b.IDBase, false))
}

func lampCallbacks() block.Callbacks {
	return block.Callbacks{
		Update: lampOnUpdate,
		Tick:   lampOnTick,
	}
}
