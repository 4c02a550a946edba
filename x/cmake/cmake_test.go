package cmake

import (
	"path/filepath"
	"reflect"
	"testing"
)

type fakeKit struct {
	buildTool, toolchain string
}

func (k fakeKit) BuildToolDir() (string, bool) { return k.buildTool, k.buildTool != "" }
func (k fakeKit) ToolchainDir() (string, bool) { return k.toolchain, k.toolchain != "" }

func TestSearchPathOrder(t *testing.T) {
	k := fakeKit{buildTool: "/cmake/bin", toolchain: "/gcc/bin"}

	if got := searchPath(';', k, "/usr/bin"); got != "/cmake/bin;/gcc/bin;/usr/bin" {
		t.Errorf("searchPath(;) = %q", got)
	}
	if got := searchPath(':', k, "/usr/bin"); got != "/cmake/bin:/gcc/bin:/usr/bin" {
		t.Errorf("searchPath(:) = %q", got)
	}

	sep := string(filepath.ListSeparator)
	want := "/cmake/bin" + sep + "/gcc/bin" + sep + "/usr/bin"
	if got := SearchPath(k, "/usr/bin"); got != want {
		t.Errorf("SearchPath() = %q, want %q", got, want)
	}
}

func TestSearchPathPartial(t *testing.T) {
	tests := []struct {
		name      string
		kit       fakeKit
		inherited string
		want      string
	}{
		{"no inherited", fakeKit{"/cmake/bin", "/gcc/bin"}, "", "/cmake/bin:/gcc/bin"},
		{"no cmake", fakeKit{"", "/gcc/bin"}, "/usr/bin", "/gcc/bin:/usr/bin"},
		{"no toolchain", fakeKit{"/cmake/bin", ""}, "/usr/bin", "/cmake/bin:/usr/bin"},
		{"inherited only", fakeKit{}, "/usr/bin", "/usr/bin"},
		{"nothing", fakeKit{}, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := searchPath(':', tt.kit, tt.inherited); got != tt.want {
				t.Errorf("searchPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSearchPathIdempotent(t *testing.T) {
	k := fakeKit{buildTool: "/cmake/bin", toolchain: "/gcc/bin"}
	if a, b := SearchPath(k, "/usr/bin"), SearchPath(k, "/usr/bin"); a != b {
		t.Errorf("SearchPath() not stable: %q != %q", a, b)
	}
}

func TestEnv(t *testing.T) {
	k := fakeKit{buildTool: "/cmake/bin", toolchain: "/gcc/bin"}
	env := Env(k, "/usr/bin")
	if len(env) != 1 {
		t.Fatalf("Env() = %v, want only PATH", env)
	}
	if env[PathEnv] != SearchPath(k, "/usr/bin") {
		t.Errorf("Env()[PATH] = %q", env[PathEnv])
	}
}

func TestGenerateArgs(t *testing.T) {
	tests := []struct {
		name      string
		generator string
		debug     bool
		want      []string
	}{
		{"plain", "", false, []string{"-S", ".", "-B", "build"}},
		{"generator", "Ninja", false, []string{"-S", ".", "-B", "build", "-G", "Ninja"}},
		{"debug", "", true, []string{"-S", ".", "-B", "build", "-DCMAKE_BUILD_TYPE:STRING=Debug"}},
		{"generator and debug", "X", true, []string{"-S", ".", "-B", "build", "-G", "X", "-DCMAKE_BUILD_TYPE:STRING=Debug"}},
		{"generator with spaces", "Unix Makefiles", false, []string{"-S", ".", "-B", "build", "-G", "Unix Makefiles"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateArgs(".", "build", tt.generator, tt.debug)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildArgs(t *testing.T) {
	if got := BuildArgs("build-debug"); !reflect.DeepEqual(got, []string{"--build", "build-debug"}) {
		t.Errorf("BuildArgs() = %q", got)
	}
}

func TestBuildDir(t *testing.T) {
	if got := BuildDir(false); got != "build" {
		t.Errorf("BuildDir(false) = %q", got)
	}
	if got := BuildDir(true); got != "build-debug" {
		t.Errorf("BuildDir(true) = %q", got)
	}
}
