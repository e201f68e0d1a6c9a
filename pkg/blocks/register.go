package blocks

import "github.com/emberblock/emberblock/pkg/block"

// registryRef is the frozen registry every behavior in this package
// dispatches through, set once by Register, at process startup, before
// any session or tick loop runs.
var registryRef *block.Registry

// Block singletons looked up once at Register time, used by behaviors
// that need to recognize one another (e.g. redstone wire checking whether
// a neighbor is itself a wire, or a comparator checking whether a
// neighbor is "redstone-aware").
var (
	leverBlock         *block.Block
	wireBlock          *block.Block
	repeaterBlock      *block.Block
	comparatorBlock    *block.Block
	torchBlock         *block.Block
	wallTorchBlock     *block.Block
	lampBlock          *block.Block
	redstoneBlockBlock *block.Block
)

// Register attaches this package's behavior Callbacks onto the blocks of
// r that implement the redstone subset, and leaves every other
// registered block (the generic fallback) with the all-nil,
// metadata-only Callbacks registrygen.Load already gave it. r must be
// frozen. Call once at startup, before any session or the tick loop runs.
func Register(r *block.Registry) {
	registryRef = r

	leverBlock = mustLookup(r, "lever")
	leverBlock.Callbacks = leverCallbacks()

	wireBlock = mustLookup(r, "redstone_wire")
	wireBlock.Callbacks = wireCallbacks()

	repeaterBlock = mustLookup(r, "repeater")
	repeaterBlock.Callbacks = repeaterCallbacks()

	comparatorBlock = mustLookup(r, "comparator")
	comparatorBlock.Callbacks = comparatorCallbacks()

	torchBlock = mustLookup(r, "redstone_torch")
	torchBlock.Callbacks = torchCallbacks(false)

	wallTorchBlock = mustLookup(r, "redstone_wall_torch")
	wallTorchBlock.Callbacks = torchCallbacks(true)

	lampBlock = mustLookup(r, "redstone_lamp")
	lampBlock.Callbacks = lampCallbacks()

	redstoneBlockBlock = mustLookup(r, "redstone_block")
	redstoneBlockBlock.Callbacks = redstoneBlockCallbacks()
}

// mustLookup finds a block by resource path, panicking if absent: every
// name this package references is a build-time dependency on the data
// files under pkg/registrygen/blocks, not a runtime condition.
func mustLookup(r *block.Registry, path string) *block.Block {
	b := r.ByLocation(path)
	if b == nil {
		panic("blocks: registry is missing required block " + path)
	}
	return b
}
