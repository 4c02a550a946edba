// Package scaffold creates new CMake C++ projects from embedded templates.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/qiniu/x/log"
	"golang.org/x/mod/semver"
)

// DefaultCMakeVersion is the cmake_minimum_required of new projects.
const DefaultCMakeVersion = "3.16"

var projectNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Params is the flat parameter set handed to the template engine.
type Params struct {
	ProjectName  string
	Toolchain    string // kit id, may be empty
	Target       string // target triple
	CMakeVersion string
	Static       bool
	Bin          bool
	Tests        bool
}

// DefaultTarget returns the triple of the host, e.g. "amd64-linux".
func DefaultTarget() string {
	return runtime.GOARCH + "-" + runtime.GOOS
}

// Validate checks p and fills in defaults.
func (p *Params) Validate() error {
	if !projectNameRE.MatchString(p.ProjectName) {
		return fmt.Errorf("invalid project name %q: use letters, digits, '_' and '-', starting with a letter or '_'", p.ProjectName)
	}
	if p.CMakeVersion == "" {
		p.CMakeVersion = DefaultCMakeVersion
	}
	if !validCMakeVersion(p.CMakeVersion) {
		return fmt.Errorf("invalid cmake version %q: want major.minor[.patch]", p.CMakeVersion)
	}
	if p.Target == "" {
		p.Target = DefaultTarget()
	}
	return nil
}

// validCMakeVersion accepts "3.16" and "3.16.2" but not "3" or "v3.16".
func validCMakeVersion(v string) bool {
	if strings.HasPrefix(v, "v") || strings.Count(v, ".") < 1 {
		return false
	}
	sv := "v" + v
	return semver.IsValid(sv) && semver.Prerelease(sv) == "" && semver.Build(sv) == ""
}

// Values returns p as template values.
func (p *Params) Values() map[string]any {
	return map[string]any{
		"ProjectName":  p.ProjectName,
		"Namespace":    strings.ReplaceAll(p.ProjectName, "-", "_"),
		"Toolchain":    p.Toolchain,
		"Target":       p.Target,
		"CMakeVersion": p.CMakeVersion,
		"Static":       p.Static,
		"Bin":          p.Bin,
		"Tests":        p.Tests,
	}
}

type file struct {
	template string
	target   func(p *Params) string
	when     func(p *Params) bool
}

func always(*Params) bool { return true }
func isBin(p *Params) bool { return p.Bin }
func isLib(p *Params) bool { return !p.Bin }
func withTests(p *Params) bool { return p.Tests }

func fixed(name string) func(*Params) string {
	return func(*Params) string { return name }
}

var files = []file{
	{"CMakeLists.txt.tmpl", fixed("CMakeLists.txt"), always},
	{"src/main.cpp.tmpl", fixed("src/main.cpp"), isBin},
	{"src/lib.cpp.tmpl", func(p *Params) string { return "src/" + p.ProjectName + ".cpp" }, isLib},
	{"include/lib.hpp.tmpl", func(p *Params) string { return "include/" + p.ProjectName + "/" + p.ProjectName + ".hpp" }, isLib},
	{"tests/CMakeLists.txt.tmpl", fixed("tests/CMakeLists.txt"), withTests},
	{"tests/main.cpp.tmpl", fixed("tests/main.cpp"), withTests},
	{"_gitignore", fixed(".gitignore"), always},
}

// ErrExists is returned when the project directory already exists.
var ErrExists = errors.New("project directory already exists")

// Create renders a new project into parent/<p.ProjectName> and returns its
// directory. It refuses to touch an existing directory.
func Create(e Engine, parent string, p Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	root := filepath.Join(parent, p.ProjectName)
	if err := os.Mkdir(root, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%s: %w", root, ErrExists)
		}
		return "", err
	}

	values := p.Values()
	for _, f := range files {
		if !f.when(&p) {
			continue
		}
		data, err := e.Render(f.template, values)
		if err != nil {
			return "", err
		}
		target := filepath.Join(root, filepath.FromSlash(f.target(&p)))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return "", err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", target, err)
		}
		log.Debugf("scaffold: wrote %s", target)
	}
	return root, nil
}
