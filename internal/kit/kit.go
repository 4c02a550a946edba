// Package kit resolves a kit id against a catalog into the concrete
// compiler and CMake entries it references.
//
// Resolution never fails on a missing reference. Accessors report absence
// with a false second result and the caller decides whether that is fatal.
package kit

import (
	"errors"
	"fmt"

	"github.com/goplus/cptb/internal/settings"
)

var (
	// ErrUnknownKit matches a DanglingReferenceError for a kit id absent
	// from the catalog.
	ErrUnknownKit = errors.New("unknown kit")
	// ErrDangling matches every *DanglingReferenceError.
	ErrDangling = errors.New("dangling reference")
)

// Reference kinds reported by DanglingReferenceError.
const (
	RefKit       = "kit"
	RefCompiler  = "compiler"
	RefBuildTool = "cmake"
)

// DanglingReferenceError reports an id that names nothing in the catalog.
type DanglingReferenceError struct {
	KitID string
	Kind  string // RefKit, RefCompiler or RefBuildTool
	ID    string
}

func (e *DanglingReferenceError) Error() string {
	if e.Kind == RefKit {
		return fmt.Sprintf("kit %q is not defined in the catalog", e.KitID)
	}
	return fmt.Sprintf("kit %q references %s %q which is not defined in the catalog", e.KitID, e.Kind, e.ID)
}

func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDangling || (target == ErrUnknownKit && e.Kind == RefKit)
}

// RequiredError reports a value a caller needs that the kit cannot supply.
type RequiredError struct {
	What  string // e.g. "toolchain dir"
	KitID string
	Err   error // the underlying dangling reference
}

func (e *RequiredError) Error() string {
	return fmt.Sprintf("a %s is required but kit %q does not provide one: %v", e.What, e.KitID, e.Err)
}

func (e *RequiredError) Unwrap() error { return e.Err }

// Resolved is a kit joined against its catalog.
type Resolved struct {
	id        string
	kit       *settings.Kit
	compiler  *settings.CompilerEntry
	buildTool *settings.BuildToolEntry
}

// Resolve looks up kitID in c. Missing links degrade to absent values.
func Resolve(c *settings.Catalog, kitID string) *Resolved {
	r := &Resolved{id: kitID}
	if c == nil {
		return r
	}
	k, ok := c.Kits[kitID]
	if !ok {
		return r
	}
	r.kit = &k
	if e, ok := c.Compilers[k.CompilerID]; ok {
		r.compiler = &e
	}
	if e, ok := c.BuildTools[k.BuildToolID]; ok {
		r.buildTool = &e
	}
	return r
}

// ResolveDefault resolves the kit named by sel.
func ResolveDefault(c *settings.Catalog, sel *settings.Selection) *Resolved {
	if sel == nil {
		return Resolve(c, "")
	}
	return Resolve(c, sel.DefaultKit)
}

// ID returns the kit id this resolution was asked for.
func (r *Resolved) ID() string { return r.id }

// Kit returns the kit entry, if the kit exists.
func (r *Resolved) Kit() (settings.Kit, bool) {
	if r.kit == nil {
		return settings.Kit{}, false
	}
	return *r.kit, true
}

// Compiler returns the referenced compiler entry.
func (r *Resolved) Compiler() (settings.CompilerEntry, bool) {
	if r.compiler == nil {
		return settings.CompilerEntry{}, false
	}
	return *r.compiler, true
}

// BuildTool returns the referenced CMake entry.
func (r *Resolved) BuildTool() (settings.BuildToolEntry, bool) {
	if r.buildTool == nil {
		return settings.BuildToolEntry{}, false
	}
	return *r.buildTool, true
}

// ToolchainDir returns the path of the referenced compiler entry.
func (r *Resolved) ToolchainDir() (string, bool) {
	if r.compiler == nil {
		return "", false
	}
	return r.compiler.Path, true
}

// BuildToolDir returns the path of the referenced CMake entry.
func (r *Resolved) BuildToolDir() (string, bool) {
	if r.buildTool == nil {
		return "", false
	}
	return r.buildTool.Path, true
}

// BuildToolGenerator returns the generator declared on the referenced CMake
// entry. It is absent when the entry is missing or declares none.
func (r *Resolved) BuildToolGenerator() (string, bool) {
	if r.buildTool == nil || r.buildTool.Generator == "" {
		return "", false
	}
	return r.buildTool.Generator, true
}

// Check returns every dangling reference of the kit joined into one error,
// or nil when the kit resolves completely.
func (r *Resolved) Check() error {
	if r.kit == nil {
		return &DanglingReferenceError{KitID: r.id, Kind: RefKit, ID: r.id}
	}
	var errs []error
	if r.compiler == nil {
		errs = append(errs, &DanglingReferenceError{KitID: r.id, Kind: RefCompiler, ID: r.kit.CompilerID})
	}
	if r.buildTool == nil {
		errs = append(errs, &DanglingReferenceError{KitID: r.id, Kind: RefBuildTool, ID: r.kit.BuildToolID})
	}
	return errors.Join(errs...)
}

// RequireToolchainDir is ToolchainDir for callers that cannot proceed
// without it.
func (r *Resolved) RequireToolchainDir() (string, error) {
	if dir, ok := r.ToolchainDir(); ok {
		return dir, nil
	}
	return "", &RequiredError{What: "toolchain dir", KitID: r.id, Err: r.danglingFor(RefCompiler)}
}

// RequireBuildToolDir is BuildToolDir for callers that cannot proceed
// without it.
func (r *Resolved) RequireBuildToolDir() (string, error) {
	if dir, ok := r.BuildToolDir(); ok {
		return dir, nil
	}
	return "", &RequiredError{What: "cmake dir", KitID: r.id, Err: r.danglingFor(RefBuildTool)}
}

func (r *Resolved) danglingFor(kind string) error {
	if r.kit == nil {
		return &DanglingReferenceError{KitID: r.id, Kind: RefKit, ID: r.id}
	}
	id := r.kit.CompilerID
	if kind == RefBuildTool {
		id = r.kit.BuildToolID
	}
	return &DanglingReferenceError{KitID: r.id, Kind: kind, ID: id}
}
