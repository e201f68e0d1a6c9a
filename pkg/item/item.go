// Package item implements the closed item→blockstate placement table:
// the fixed set of items this server's inventory model recognizes, and
// the lookup from an item id to the block it places. There is no item
// registry beyond this table; items exist only as the right-hand side
// of a placement, never as their own entities or stack metadata.
package item

import "github.com/emberblock/emberblock/pkg/block"

// ID is a slot's item identifier as this server's inventory model
// stores it: a small closed enum, not a vanilla network item id. 0 means
// the slot is empty.
type ID int32

const (
	None ID = 0

	Stone ID = iota
	Dirt
	RedstoneWire
	RedstoneTorch
	RedstoneBlock
	Repeater
	Comparator
	Lever
	StoneButton
	OakButton
	Observer
	DaylightDetector
	RedstoneLamp
	CopperBulb
	NoteBlock
	WhiteWool
	OrangeWool
	MagentaWool
	LightBlueWool
	YellowWool
	LimeWool
	PinkWool
	GrayWool
	LightGrayWool
	CyanWool
	PurpleWool
	BlueWool
	BrownWool
	GreenWool
	RedWool
	BlackWool
)

// blockPath names the resource location path each non-empty ID places.
var blockPath = map[ID]string{
	Stone:            "stone",
	Dirt:             "dirt",
	RedstoneWire:     "redstone_wire",
	RedstoneTorch:    "redstone_torch",
	RedstoneBlock:    "redstone_block",
	Repeater:         "repeater",
	Comparator:       "comparator",
	Lever:            "lever",
	StoneButton:      "stone_button",
	OakButton:        "oak_button",
	Observer:         "observer",
	DaylightDetector: "daylight_detector",
	RedstoneLamp:     "redstone_lamp",
	CopperBulb:       "copper_bulb",
	NoteBlock:        "note_block",
	WhiteWool:        "white_wool",
	OrangeWool:       "orange_wool",
	MagentaWool:      "magenta_wool",
	LightBlueWool:    "light_blue_wool",
	YellowWool:       "yellow_wool",
	LimeWool:         "lime_wool",
	PinkWool:         "pink_wool",
	GrayWool:         "gray_wool",
	LightGrayWool:    "light_gray_wool",
	CyanWool:         "cyan_wool",
	PurpleWool:       "purple_wool",
	BlueWool:         "blue_wool",
	BrownWool:        "brown_wool",
	GreenWool:        "green_wool",
	RedWool:          "red_wool",
	BlackWool:        "black_wool",
}

// Table resolves item ids to the *block.Block they place, built once
// from a frozen registry at startup.
type Table struct {
	blocks map[ID]*block.Block
}

// NewTable resolves every entry in blockPath against r, panicking if the
// registry is missing one: every path named above is a build-time
// dependency on pkg/registrygen/blocks, not a runtime condition.
func NewTable(r *block.Registry) *Table {
	t := &Table{blocks: make(map[ID]*block.Block, len(blockPath))}
	for id, path := range blockPath {
		b := r.ByLocation(path)
		if b == nil {
			panic("item: registry is missing block " + path)
		}
		t.blocks[id] = b
	}
	return t
}

// Lookup reports whether id has a placement entry, and its block.
func (t *Table) Lookup(id ID) (*block.Block, bool) {
	b, ok := t.blocks[id]
	return b, ok
}

// Place derives the placement state for b at opos via its
// GetStateForPlacement hook, writes it, and fires OnPlaced. Returns
// false (a no-op) only when the underlying SetState itself is rejected by
// the world (out-of-range chunk); a block with no override still places,
// using its default state.
func Place(w block.WorldView, b *block.Block, opos block.Pos, ctx block.PlacementContext) bool {
	placement := block.At(b, b.DefaultState, opos).GetStateForPlacement(w, ctx)
	if !w.SetState(opos, placement) {
		return false
	}
	block.At(b, placement, opos).OnPlaced(w)
	return true
}
