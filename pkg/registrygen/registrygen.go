// Package registrygen ingests a compile-time block-data description and
// materializes a block.Registry from it. Each block gets one JSON file
// naming its resource location, state range, and property layout; this
// package embeds its side-car blocks/ directory at build time via
// go:embed, so the running binary carries its own registry data with no
// filesystem dependency at runtime.
package registrygen

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"

	"github.com/emberblock/emberblock/pkg/block"
	"github.com/emberblock/emberblock/pkg/resloc"
)

//go:embed blocks/*.json
var embedded embed.FS

// propertyDef mirrors one entry of a block's "blockstate_properties" array.
type propertyDef struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	IDGroupSize int      `json:"id_group_size"`
	Values      []string `json:"values"`
	Min         int      `json:"min"`
	Max         int      `json:"max"`
}

// blockDef mirrors one embedded blocks/*.json file.
type blockDef struct {
	ResourceLocation    string        `json:"resource_location"`
	IDBase              int           `json:"id_base"`
	TotalStates         int           `json:"total_states"`
	DefaultState        int           `json:"default_state"`
	IsRedstoneConductor bool          `json:"is_redstone_conductor"`
	Properties          []propertyDef `json:"blockstate_properties"`
}

// Load walks the embedded blocks directory and returns a frozen
// registry of generic-fallback blocks: resource location, state range,
// default state, conductor flag, and typed Property decoders, but no
// behavior callbacks. Callers (pkg/blocks) look blocks up by resource
// location afterward and attach Callbacks for the ones that need them;
// every other block keeps the all-nil fallback Callbacks (no-op, return
// 0, return default_state).
func Load() (*block.Registry, error) {
	entries, err := fs.Glob(embedded, "blocks/*.json")
	if err != nil {
		return nil, fmt.Errorf("registrygen: glob: %w", err)
	}
	sort.Strings(entries)

	r := block.NewRegistry()
	for _, name := range entries {
		raw, err := embedded.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("registrygen: read %s: %w", name, err)
		}
		var def blockDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return nil, fmt.Errorf("registrygen: parse %s: %w", name, err)
		}
		b, err := toBlock(def)
		if err != nil {
			return nil, fmt.Errorf("registrygen: %s: %w", name, err)
		}
		r.Add(b)
	}
	r.Freeze()
	return r, nil
}

func toBlock(def blockDef) (*block.Block, error) {
	ns, path, ok := splitLocation(def.ResourceLocation)
	if !ok {
		return nil, fmt.Errorf("malformed resource_location %q", def.ResourceLocation)
	}
	loc, err := resloc.New(ns, path)
	if err != nil {
		return nil, err
	}

	props := make([]block.Property, 0, len(def.Properties))
	for _, p := range def.Properties {
		prop := block.Property{
			Name:      p.Name,
			GroupSize: p.IDGroupSize,
			Values:    p.Values,
			Min:       p.Min,
			Max:       p.Max,
		}
		switch p.Type {
		case "bool":
			prop.Kind = block.KindBool
		case "enum":
			prop.Kind = block.KindEnum
		case "int":
			prop.Kind = block.KindInt
		default:
			return nil, fmt.Errorf("unknown property type %q for %s", p.Type, p.Name)
		}
		props = append(props, prop)
	}

	b := &block.Block{
		Location:     loc,
		IDBase:       block.State(def.IDBase),
		TotalStates:  def.TotalStates,
		DefaultState: block.State(def.DefaultState),
		Properties:   props,
	}
	if def.IsRedstoneConductor {
		b.Callbacks.IsRedstoneConductor = func(block.State) bool { return true }
	}
	return b, nil
}

func splitLocation(s string) (namespace, path string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ':' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
