package blocks

import "github.com/emberblock/emberblock/pkg/block"

// redstoneBlockGetSignal emits full signal in every direction, always;
// a redstone block is an unconditional source. It is explicitly not a
// redstone conductor, so it never relays a neighbor's signal on top of
// its own.
func redstoneBlockGetSignal(w block.WorldView, pos block.Pos, s block.State, toward block.Direction) int {
	return 15
}

func redstoneBlockCallbacks() block.Callbacks {
	return block.Callbacks{
		GetSignal: redstoneBlockGetSignal,
	}
}
