// Package settings loads the kit catalog and the active kit selection from
// the per-user configuration directory.
//
// Two documents live there:
//
//	kits.json      {"compilers": {...}, "cmake": {...}, "kits": {...}}
//	settings.json  {"default_kit": "<kit-id>"}
//
// Field and section names are an on-disk contract and must not change.
// When a .json document is absent, a .yaml or .toml document with the same
// base name and field names is accepted instead.
package settings

import (
	"maps"
	"slices"
)

// Document base names inside the configuration directory.
const (
	CatalogName   = "kits"
	SelectionName = "settings"
)

// CompilerEntry identifies a compiler installation.
type CompilerEntry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
}

// BuildToolEntry identifies a CMake installation and its default generator.
// An empty Generator leaves the choice to CMake.
type BuildToolEntry struct {
	Name      string `json:"name" yaml:"name" toml:"name"`
	Path      string `json:"path" yaml:"path" toml:"path"`
	Generator string `json:"generator,omitempty" yaml:"generator,omitempty" toml:"generator,omitempty"`
}

// Kit pairs a compiler and a build tool by id.
type Kit struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	CompilerID  string `json:"compiler" yaml:"compiler" toml:"compiler"`
	BuildToolID string `json:"cmake" yaml:"cmake" toml:"cmake"`
}

// Catalog is the full set of known compilers, build tools and kits.
// It is read once per invocation and never mutated.
type Catalog struct {
	Compilers  map[string]CompilerEntry  `json:"compilers" yaml:"compilers" toml:"compilers"`
	BuildTools map[string]BuildToolEntry `json:"cmake" yaml:"cmake" toml:"cmake"`
	Kits       map[string]Kit            `json:"kits" yaml:"kits" toml:"kits"`
}

// KitIDs returns the kit ids in lexical order.
func (c *Catalog) KitIDs() []string {
	return slices.Sorted(maps.Keys(c.Kits))
}

// Selection names the kit used when no kit is given explicitly.
type Selection struct {
	DefaultKit string `json:"default_kit" yaml:"default_kit" toml:"default_kit"`
}
