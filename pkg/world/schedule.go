package world

import (
	"container/heap"

	"github.com/emberblock/emberblock/pkg/block"
)

// scheduledTick is one pending deferred block.tick invocation, ordered
// fires-at-tick ascending, then priority descending, then sequence
// ascending.
type scheduledTick struct {
	pos      block.Pos
	fireTick int64
	priority int
	seq      int64
}

func less(a, b scheduledTick) bool {
	if a.fireTick != b.fireTick {
		return a.fireTick < b.fireTick
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.seq < b.seq
}

// tickHeap is a container/heap.Interface over scheduledTick, ordered by
// less above.
type tickHeap []scheduledTick

func (h tickHeap) Len() int            { return len(h) }
func (h tickHeap) Less(i, j int) bool  { return less(h[i], h[j]) }
func (h tickHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *tickHeap) Push(x interface{}) { *h = append(*h, x.(scheduledTick)) }
func (h *tickHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// schedule is the ordered set of pending scheduled ticks, with idempotent
// per-position scheduling: a second Schedule call for a position already
// pending is dropped.
type schedule struct {
	heap    tickHeap
	pending map[block.Pos]bool
	nextSeq int64
}

func newSchedule() *schedule {
	return &schedule{pending: make(map[block.Pos]bool)}
}

// Schedule enqueues pos to fire delay ticks from now at the given
// priority, unless pos already has a pending entry.
func (s *schedule) Schedule(pos block.Pos, currentTick int64, delay int, priority int) {
	if s.pending[pos] {
		return
	}
	s.pending[pos] = true
	heap.Push(&s.heap, scheduledTick{
		pos:      pos,
		fireTick: currentTick + int64(delay),
		priority: priority,
		seq:      s.nextSeq,
	})
	s.nextSeq++
}

// PopAtOrBefore removes and returns the earliest-ordered entry if its
// fire time has elapsed (fireTick <= tick), else reports ok=false without
// mutating the set.
func (s *schedule) PopAtOrBefore(tick int64) (pos block.Pos, ok bool) {
	if len(s.heap) == 0 || s.heap[0].fireTick > tick {
		return block.Pos{}, false
	}
	entry := heap.Pop(&s.heap).(scheduledTick)
	delete(s.pending, entry.pos)
	return entry.pos, true
}

// Len reports the number of pending scheduled ticks.
func (s *schedule) Len() int { return len(s.heap) }
