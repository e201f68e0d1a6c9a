// Package blocks implements the redstone-accurate block behaviors:
// lever, redstone wire, repeater, comparator, torch, lamp, and redstone
// block, plus the generic inert fallback every other registered block
// keeps. Each behavior is a small state machine over the typed wrapper
// around a block.State, wired onto a block.Block's Callbacks at registry
// build time (Register) so the dispatch surface (block.DispatchAt) can
// invoke it uniformly regardless of which behavior owns the state.
package blocks

import "github.com/emberblock/emberblock/pkg/block"

// horizontalFromName maps a "facing"-style property value back to a
// Direction, the inverse of Direction.String restricted to the four
// cardinal faces redstone components place on.
func horizontalFromName(name string) block.Direction {
	switch name {
	case "north":
		return block.North
	case "south":
		return block.South
	case "west":
		return block.West
	case "east":
		return block.East
	}
	return block.North
}

// directionFromName maps any of the six face names back to a Direction.
func directionFromName(name string) block.Direction {
	switch name {
	case "down":
		return block.Down
	case "up":
		return block.Up
	default:
		return horizontalFromName(name)
	}
}

// facing decodes a block's "facing" property as a Direction.
func facing(b *block.Block, s block.State) block.Direction {
	return directionFromName(b.Prop("facing").DecodeEnum(s, b.IDBase))
}

// withFacing encodes a Direction into a block's "facing" property.
func withFacing(b *block.Block, s block.State, d block.Direction) block.State {
	return b.Prop("facing").EncodeEnum(s, b.IDBase, d.String())
}

// clampSignal clamps a redstone level into the valid 0..15 range.
func clampSignal(v int) int {
	if v < 0 {
		return 0
	}
	if v > 15 {
		return 15
	}
	return v
}

// horizontalFacingFromLook picks the cardinal direction a player was
// looking, falling back to north for a vertical look; repeater and
// comparator placement use it to orient the block.
func horizontalFacingFromLook(look block.Direction) block.Direction {
	if look.IsHorizontal() {
		return look
	}
	return block.North
}
