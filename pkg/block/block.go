// Package block defines the block-state model: the global u16 state-id
// space, property encoding, the immutable Block description with its
// behavior callbacks, and the uniform dispatch surface those callbacks
// are invoked through. It has no dependency on the world or session
// packages; World is reached only through the WorldView interface, so
// block behaviors compile and test independently of how the world is
// stored.
package block

import "github.com/emberblock/emberblock/pkg/resloc"

// State is the global, contiguous identifier of one specific
// (block, property-tuple) pair. State 0 means "air".
type State uint16

// Air is the reserved empty-block state.
const Air State = 0

// WorldView is the minimal surface a block callback needs to read and
// mutate the world and query redstone signals. World (pkg/world)
// implements it; behaviors depend only on this interface, never on the
// concrete world type, so there is no import cycle between pkg/block and
// pkg/world.
type WorldView interface {
	GetState(pos Pos) State
	SetState(pos Pos, s State) bool
	ScheduleTick(pos Pos, delay int, priority int)
	EnqueueUpdate(pos Pos)
	UpdateNeighbors(pos Pos)
	UpdateNeighborsExcept(pos Pos, except Direction)
	UpdateNeighborsShape(pos Pos)
	Signal(pos Pos, toward Direction) int
	StrongSignal(pos Pos, toward Direction) int
	SignalTo(pos Pos) int
	ComparatorOutput(pos Pos) int
	SetComparatorOutput(pos Pos, value int)
	ClearComparatorOutput(pos Pos)
}

// PlacementContext carries the information get_state_for_placement and
// on_placed need about how an item was used against a block face.
type PlacementContext struct {
	ClickedFace  Direction
	CursorX      float32
	CursorY      float32
	CursorZ      float32
	PlacerFacing Direction // horizontal direction the placer was looking
}

// Callbacks bundles the per-block behavior hooks. Every field has a safe
// zero-value default (nil), interpreted by DispatchAt as a no-op / 0 /
// default_state, so a Block that only needs a couple of hooks can leave
// the rest nil. Storing callbacks as plain function values rather than an
// interface method set keeps invocation a direct call through a struct
// field, not a boxed interface call, with no heap allocation on the hot
// path; see DESIGN.md.
type Callbacks struct {
	Tick   func(w WorldView, pos Pos, s State)
	Update func(w WorldView, pos Pos, s State)

	// UpdateShape recomputes connectivity/shape after a neighbor's
	// geometry changed (as opposed to a pure signal update) and returns
	// the possibly-changed state.
	UpdateShape func(w WorldView, pos Pos, s State) State

	OnPlaced             func(w WorldView, pos Pos, s State)
	OnDestroyed          func(w WorldView, pos Pos, s State)
	OnUseWithoutItem     func(w WorldView, pos Pos, s State)
	GetStateForPlacement func(w WorldView, pos Pos, ctx PlacementContext, defaultState State) State

	GetSignal       func(w WorldView, pos Pos, s State, toward Direction) int
	GetStrongSignal func(w WorldView, pos Pos, s State, toward Direction) int

	IsRedstoneConductor             func(s State) bool
	IsAttractRedstoneWireConnection func(s State, toward Direction) bool

	MapColor func(s State) uint8
}

// Block is an immutable description of one kind of voxel: its resource
// location, the contiguous range of state ids it owns, and its behavior
// callbacks. Blocks are process-lifetime singletons built once at
// registry-construction time.
type Block struct {
	Location     resloc.Location
	IDBase       State
	TotalStates  int
	DefaultState State
	Properties   []Property
	Callbacks    Callbacks
}

// Contains reports whether s falls within this block's state range.
func (b *Block) Contains(s State) bool {
	return s >= b.IDBase && int(s)-int(b.IDBase) < b.TotalStates
}

// Prop looks up one of this block's properties by name. Behavior
// implementations use it to decode/encode a property without hard-coding
// its group size, keeping the mixed-radix layout entirely in the
// registry data (pkg/registrygen) rather than duplicated in code. Panics
// if the block has no property by that name: a behavior referencing a
// property its own registry entry doesn't declare is a build-time bug.
func (b *Block) Prop(name string) Property {
	for _, p := range b.Properties {
		if p.Name == name {
			return p
		}
	}
	panic("block: no such property " + name + " on " + b.Location.String())
}

// DispatchAt is the uniform, object-safe entry point callers use to
// invoke a callback given only a state id and position, with no heap
// allocation: given a BlockState, obtain an opaque block handle and
// invoke any callback. Constructing one is a plain struct literal. Every
// method defaults to the safe no-op/zero-value behavior when the owning
// Block leaves that hook nil.
type DispatchAt struct {
	B   *Block
	S   State
	Pos Pos
}

func At(b *Block, s State, pos Pos) DispatchAt { return DispatchAt{B: b, S: s, Pos: pos} }

func (d DispatchAt) Tick(w WorldView) {
	if cb := d.B.Callbacks.Tick; cb != nil {
		cb(w, d.Pos, d.S)
	}
}

func (d DispatchAt) Update(w WorldView) {
	if cb := d.B.Callbacks.Update; cb != nil {
		cb(w, d.Pos, d.S)
	}
}

func (d DispatchAt) UpdateShape(w WorldView) State {
	if cb := d.B.Callbacks.UpdateShape; cb != nil {
		return cb(w, d.Pos, d.S)
	}
	return d.S
}

func (d DispatchAt) OnPlaced(w WorldView) {
	if cb := d.B.Callbacks.OnPlaced; cb != nil {
		cb(w, d.Pos, d.S)
	}
}

func (d DispatchAt) OnDestroyed(w WorldView) {
	if cb := d.B.Callbacks.OnDestroyed; cb != nil {
		cb(w, d.Pos, d.S)
	}
}

func (d DispatchAt) OnUseWithoutItem(w WorldView) {
	if cb := d.B.Callbacks.OnUseWithoutItem; cb != nil {
		cb(w, d.Pos, d.S)
	}
}

func (d DispatchAt) GetStateForPlacement(w WorldView, ctx PlacementContext) State {
	if cb := d.B.Callbacks.GetStateForPlacement; cb != nil {
		return cb(w, d.Pos, ctx, d.B.DefaultState)
	}
	return d.B.DefaultState
}

func (d DispatchAt) GetSignal(w WorldView, toward Direction) int {
	if cb := d.B.Callbacks.GetSignal; cb != nil {
		return cb(w, d.Pos, d.S, toward)
	}
	return 0
}

func (d DispatchAt) GetStrongSignal(w WorldView, toward Direction) int {
	if cb := d.B.Callbacks.GetStrongSignal; cb != nil {
		return cb(w, d.Pos, d.S, toward)
	}
	return 0
}

func (d DispatchAt) IsRedstoneConductor() bool {
	if cb := d.B.Callbacks.IsRedstoneConductor; cb != nil {
		return cb(d.S)
	}
	return false
}

func (d DispatchAt) AttractsWireConnection(toward Direction) bool {
	if cb := d.B.Callbacks.IsAttractRedstoneWireConnection; cb != nil {
		return cb(d.S, toward)
	}
	return false
}

func (d DispatchAt) MapColor() uint8 {
	if cb := d.B.Callbacks.MapColor; cb != nil {
		return cb(d.S)
	}
	return 0
}
