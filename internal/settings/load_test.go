package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const catalogJSON = `{
	"compilers": {"gcc": {"name": "GCC", "path": "/gcc/bin"}},
	"cmake": {"cm1": {"name": "CMake1", "path": "/cmake/bin", "generator": "Ninja"}},
	"kits": {"k1": {"name": "Default", "compiler": "gcc", "cmake": "cm1"}}
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func checkCatalog(t *testing.T, c *Catalog) {
	t.Helper()
	if got := c.Compilers["gcc"]; got != (CompilerEntry{Name: "GCC", Path: "/gcc/bin"}) {
		t.Errorf("Compilers[gcc] = %+v", got)
	}
	if got := c.BuildTools["cm1"]; got != (BuildToolEntry{Name: "CMake1", Path: "/cmake/bin", Generator: "Ninja"}) {
		t.Errorf("BuildTools[cm1] = %+v", got)
	}
	if got := c.Kits["k1"]; got != (Kit{Name: "Default", CompilerID: "gcc", BuildToolID: "cm1"}) {
		t.Errorf("Kits[k1] = %+v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kits.json", catalogJSON)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkCatalog(t, c)
}

func TestLoadAlternateEncodings(t *testing.T) {
	tests := []struct {
		file    string
		content string
	}{
		{"kits.yaml", `
compilers:
  gcc: {name: GCC, path: /gcc/bin}
cmake:
  cm1: {name: CMake1, path: /cmake/bin, generator: Ninja}
kits:
  k1: {name: Default, compiler: gcc, cmake: cm1}
`},
		{"kits.toml", `
[compilers.gcc]
name = "GCC"
path = "/gcc/bin"

[cmake.cm1]
name = "CMake1"
path = "/cmake/bin"
generator = "Ninja"

[kits.k1]
name = "Default"
compiler = "gcc"
cmake = "cm1"
`},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			c, err := Load(dir)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			checkCatalog(t, c)
		})
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kits.json", catalogJSON)
	writeFile(t, dir, "kits.yaml", "not: [valid")

	if _, err := Load(dir); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Load() error type = %T, want *MissingError", err)
	}
	if missing.Dir != dir || missing.Name != CatalogName {
		t.Errorf("MissingError = %+v", missing)
	}
	for _, doc := range []string{"kits.json", "kits.yaml", "kits.toml"} {
		if !strings.Contains(err.Error(), doc) {
			t.Errorf("error %q does not name %s", err, doc)
		}
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantField string
	}{
		{"malformed", `{"compilers": `, ""},
		{"empty", ``, ""},
		{"missing compilers", `{"cmake": {}, "kits": {}}`, "compilers"},
		{"missing cmake", `{"compilers": {}, "kits": {}}`, "cmake"},
		{"missing kits", `{"compilers": {}, "cmake": {}}`, "kits"},
		{"compiler without path", `{"compilers": {"gcc": {"name": "GCC"}}, "cmake": {}, "kits": {}}`, "compilers.gcc.path"},
		{"cmake without path", `{"compilers": {}, "cmake": {"cm": {"name": "CMake"}}, "kits": {}}`, "cmake.cm.path"},
		{"kit without compiler", `{"compilers": {}, "cmake": {}, "kits": {"k": {"name": "K", "cmake": "cm"}}}`, "kits.k.compiler"},
		{"compiler without name", `{"compilers": {"gcc": {"path": "/gcc/bin"}}, "cmake": {}, "kits": {}}`, "compilers.gcc.name"},
		{"cmake without name", `{"compilers": {}, "cmake": {"cm": {"path": "/c"}}, "kits": {}}`, "cmake.cm.name"},
		{"kit without name", `{"compilers": {}, "cmake": {}, "kits": {"k": {"compiler": "gcc", "cmake": "cm"}}}`, "kits.k.name"},
		{"no names", `{"compilers": {"gcc": {"path": "/gcc/bin"}}, "cmake": {"cm": {"path": "/c"}}, "kits": {"k": {"compiler": "gcc", "cmake": "cm"}}}`, "compilers.gcc.name"},
		{"kit without cmake", `{"compilers": {}, "cmake": {}, "kits": {"k": {"name": "K", "compiler": "gcc"}}}`, "kits.k.cmake"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "kits.json", tt.content)

			_, err := Load(dir)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("Load() error = %v, want ErrParse", err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Load() error type = %T, want *ParseError", err)
			}
			if perr.Path != filepath.Join(dir, "kits.json") {
				t.Errorf("ParseError.Path = %q", perr.Path)
			}
			if tt.wantField != "" && perr.Field != tt.wantField {
				t.Errorf("ParseError.Field = %q, want %q", perr.Field, tt.wantField)
			}
		})
	}
}

func TestLoadEmptySections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kits.json", `{"compilers": {}, "cmake": {}, "kits": {}}`)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(c.KitIDs()) != 0 {
		t.Errorf("KitIDs() = %v, want empty", c.KitIDs())
	}
}

func TestLoadSelection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.json", `{"default_kit": "k1"}`)

	s, err := LoadSelection(dir)
	if err != nil {
		t.Fatalf("LoadSelection() error = %v", err)
	}
	if s.DefaultKit != "k1" {
		t.Errorf("DefaultKit = %q, want %q", s.DefaultKit, "k1")
	}
}

func TestLoadSelectionYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", "default_kit: k2\n")

	s, err := LoadSelection(dir)
	if err != nil {
		t.Fatalf("LoadSelection() error = %v", err)
	}
	if s.DefaultKit != "k2" {
		t.Errorf("DefaultKit = %q, want %q", s.DefaultKit, "k2")
	}
}

func TestLoadSelectionErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := LoadSelection(t.TempDir())
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("LoadSelection() error = %v, want ErrNotFound", err)
		}
	})
	t.Run("no default_kit", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "settings.json", `{}`)
		_, err := LoadSelection(dir)
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Field != "default_kit" {
			t.Errorf("LoadSelection() error = %v, want ParseError on default_kit", err)
		}
	})
	t.Run("wrong type", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "settings.json", `{"default_kit": 3}`)
		_, err := LoadSelection(dir)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("LoadSelection() error = %v, want ParseError", err)
		}
		if perr.Field != "default_kit" {
			t.Errorf("ParseError.Field = %q, want %q", perr.Field, "default_kit")
		}
	})
}

// A missing selection must not get in the way of reading the catalog.
func TestLoadIndependentOfSelection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "kits.json", catalogJSON)

	if _, err := Load(dir); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := LoadSelection(dir); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSelection() error = %v, want ErrNotFound", err)
	}
}

func TestKitIDsSorted(t *testing.T) {
	c := &Catalog{Kits: map[string]Kit{"zeta": {}, "alpha": {}, "mid": {}}}
	got := strings.Join(c.KitIDs(), ",")
	if got != "alpha,mid,zeta" {
		t.Errorf("KitIDs() = %s", got)
	}
}
