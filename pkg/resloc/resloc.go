// Package resloc implements Minecraft's resource-location identifiers:
// namespace:path pairs used as stable names for blocks and other game data.
package resloc

import "regexp"

var (
	validNamespace = regexp.MustCompile(`^[a-z0-9_.\-]+$`)
	validPart      = regexp.MustCompile(`^[a-z0-9_./\-]+$`)
)

// Location is a namespaced identifier, e.g. "minecraft:redstone_wire".
type Location struct {
	Namespace string
	Path      string
}

// Minecraft builds a Location in the "minecraft" namespace.
func Minecraft(path string) Location {
	return Location{Namespace: "minecraft", Path: path}
}

// New builds a Location, validating that both parts use only the
// characters permitted on the wire: lowercase letters, digits, '_', '.',
// '-', and '/' (path only).
func New(namespace, path string) (Location, error) {
	if namespace == "" {
		namespace = "minecraft"
	}
	if !validNamespace.MatchString(namespace) {
		return Location{}, &InvalidError{Field: "namespace", Value: namespace}
	}
	if !validPart.MatchString(path) {
		return Location{}, &InvalidError{Field: "path", Value: path}
	}
	return Location{Namespace: namespace, Path: path}, nil
}

// InvalidError reports a resource location component outside the
// permitted character set.
type InvalidError struct {
	Field string
	Value string
}

func (e *InvalidError) Error() string {
	return "resloc: invalid " + e.Field + ": " + e.Value
}

// String returns the canonical "namespace:path" form.
func (l Location) String() string {
	return l.Namespace + ":" + l.Path
}
