// Package cmake builds the command lines and environment used to run the
// cmake configure/build workflow for a kit. Nothing here touches the
// filesystem or starts processes.
package cmake

import (
	"path/filepath"
	"strings"
)

// Executable is the name of the CMake binary looked up on the search path.
const Executable = "cmake"

// PathEnv is the environment variable carrying the search path.
const PathEnv = "PATH"

// Kit is the part of a resolved kit the environment depends on.
type Kit interface {
	BuildToolDir() (string, bool)
	ToolchainDir() (string, bool)
}

// SearchPath prepends the kit's cmake dir and then its toolchain dir to
// inherited, so executables shipped with cmake shadow toolchain ones of the
// same name. Absent or empty parts are left out.
func SearchPath(k Kit, inherited string) string {
	return searchPath(filepath.ListSeparator, k, inherited)
}

func searchPath(sep byte, k Kit, inherited string) string {
	parts := make([]string, 0, 3)
	if dir, ok := k.BuildToolDir(); ok && dir != "" {
		parts = append(parts, dir)
	}
	if dir, ok := k.ToolchainDir(); ok && dir != "" {
		parts = append(parts, dir)
	}
	if inherited != "" {
		parts = append(parts, inherited)
	}
	return strings.Join(parts, string(sep))
}

// Env returns the environment overrides for processes run with kit k.
func Env(k Kit, inherited string) map[string]string {
	return map[string]string{PathEnv: SearchPath(k, inherited)}
}

// GenerateArgs returns the arguments of "cmake -S <source> -B <build>".
// A generator flag is only added when generator is set; otherwise cmake
// picks its own default.
func GenerateArgs(sourceDir, buildDir, generator string, debug bool) []string {
	args := []string{"-S", sourceDir, "-B", buildDir}
	if generator != "" {
		args = append(args, "-G", generator)
	}
	if debug {
		args = append(args, define("CMAKE_BUILD_TYPE", "STRING", "Debug"))
	}
	return args
}

// BuildArgs returns the arguments of "cmake --build <build>".
func BuildArgs(buildDir string) []string {
	return []string{"--build", buildDir}
}

// BuildDir returns the conventional build directory for a build type.
func BuildDir(debug bool) string {
	if debug {
		return "build-debug"
	}
	return "build"
}

func define(key, typeName, value string) string {
	return "-D" + key + ":" + typeName + "=" + value
}
