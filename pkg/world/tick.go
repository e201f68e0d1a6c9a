package world

import "github.com/emberblock/emberblock/pkg/block"

// Tick runs one simulation step: read the counter, drain and run every
// scheduled tick due by now, then drain and run the update queue, then
// advance the counter. The two drains are strictly sequential (every due
// scheduled tick completes before any queued update runs) and callbacks
// run synchronously on this goroutine, so there is no preemption
// mid-step.
func (w *World) Tick() {
	current := w.CurrentTick()

	for {
		w.scheduleMu.Lock()
		pos, ok := w.sched.PopAtOrBefore(current)
		w.scheduleMu.Unlock()
		if !ok {
			break
		}
		w.runTick(pos)
	}

	w.queueMu.Lock()
	pending := w.queue.Drain()
	w.queueMu.Unlock()
	for _, pos := range pending {
		w.runUpdate(pos)
	}

	w.tick.Add(1)
}

// runTick and runUpdate recover from a panicking callback so that a
// single block's misbehavior during simulation never takes down the tick
// loop or any session.
func (w *World) runTick(pos block.Pos) {
	defer w.recoverBlockPanic(pos)
	b, s := w.blockAndState(pos)
	block.At(b, s, pos).Tick(w)
}

func (w *World) runUpdate(pos block.Pos) {
	defer w.recoverBlockPanic(pos)
	b, s := w.blockAndState(pos)
	block.At(b, s, pos).Update(w)
}

func (w *World) recoverBlockPanic(pos block.Pos) {
	if r := recover(); r != nil && w.OnBlockPanic != nil {
		w.OnBlockPanic(pos, r)
	}
}
