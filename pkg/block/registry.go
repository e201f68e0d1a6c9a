package block

import "sort"

// Registry is the sorted array of (id_base, *Block) pairs the whole
// server resolves state ids through. Once Freeze is called the registry
// is closed: every state in [0, MaxState] belongs to exactly one Block,
// so lookups never fail.
type Registry struct {
	blocks []*Block
	max    State
	frozen bool
}

// NewRegistry returns an empty, unfrozen registry ready for Add calls.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a block. Blocks must be added before Freeze and in any
// order; Freeze sorts them by IDBase.
func (r *Registry) Add(b *Block) {
	if r.frozen {
		panic("block: Add after Freeze")
	}
	r.blocks = append(r.blocks, b)
}

// Freeze sorts the registered blocks by IDBase and validates that their
// state ranges are contiguous and non-overlapping. It panics on a
// malformed registry: this runs once at process startup, and an
// inconsistent registry is a build-time bug, not a runtime condition to
// recover from.
func (r *Registry) Freeze() {
	sort.Slice(r.blocks, func(i, j int) bool { return r.blocks[i].IDBase < r.blocks[j].IDBase })
	var next State
	for _, b := range r.blocks {
		if b.IDBase != next {
			panic("block: registry gap or overlap before " + b.Location.String())
		}
		next = State(int(b.IDBase) + b.TotalStates)
	}
	r.max = next - 1
	r.frozen = true
}

// MaxState returns the highest valid state id.
func (r *Registry) MaxState() State { return r.max }

// Lookup resolves a state id to its owning Block via binary search on
// IDBase, returning the block whose range contains s. The registry is
// closed (Freeze requires total coverage of [0,MaxState]), so this never
// fails for s in range; an out-of-range s is a programming error and
// panics rather than returning a sentinel that every caller would have to
// check.
func (r *Registry) Lookup(s State) *Block {
	if !r.frozen {
		panic("block: Lookup before Freeze")
	}
	i := sort.Search(len(r.blocks), func(i int) bool {
		return r.blocks[i].IDBase > s
	})
	if i == 0 {
		panic("block: state below registry range")
	}
	b := r.blocks[i-1]
	if !b.Contains(s) {
		panic("block: state above registry range")
	}
	return b
}

// ByLocation finds a registered block by resource location. Used by the
// item→blockstate placement table and by tests; O(n), called only at
// startup and in tests, never on the hot path.
func (r *Registry) ByLocation(path string) *Block {
	for _, b := range r.blocks {
		if b.Location.Path == path {
			return b
		}
	}
	return nil
}

// All returns every registered block in IDBase order. Callers must not
// mutate the returned slice.
func (r *Registry) All() []*Block {
	return r.blocks
}
