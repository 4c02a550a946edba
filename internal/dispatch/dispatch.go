// Package dispatch runs cmake, or an interactive shell, inside the
// environment of a resolved kit.
//
// A non-zero exit status of a started process is data, not an error: it is
// returned to the caller. Errors are reserved for kits that cannot supply a
// required directory and for programs that cannot be started.
package dispatch

import (
	"context"

	"github.com/qiniu/x/log"

	"github.com/goplus/cptb/internal/kit"
	"github.com/goplus/cptb/x/cmake"
)

// Stage is how far a Run got.
type Stage int

const (
	Resolved Stage = iota
	Generated
	Built
	GenerateFailed
)

func (s Stage) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Generated:
		return "generated"
	case Built:
		return "built"
	case GenerateFailed:
		return "generate failed"
	}
	return "unknown"
}

// Result reports the exit statuses of a Run.
type Result struct {
	Stage          Stage
	GenerateStatus int
	BuildStatus    int // only meaningful when Stage is Built
}

// Dispatcher invokes cmake through a Launcher.
type Dispatcher struct {
	launcher      Launcher
	inheritedPath string
}

// New returns a Dispatcher whose search paths extend inheritedPath.
func New(l Launcher, inheritedPath string) *Dispatcher {
	return &Dispatcher{launcher: l, inheritedPath: inheritedPath}
}

// Env returns the environment overrides for kit k. The kit must provide
// both its cmake dir and its toolchain dir.
func (d *Dispatcher) Env(k *kit.Resolved) (map[string]string, error) {
	if _, err := k.RequireBuildToolDir(); err != nil {
		return nil, err
	}
	if _, err := k.RequireToolchainDir(); err != nil {
		return nil, err
	}
	env := cmake.Env(k, d.inheritedPath)
	log.Debugf("dispatch: kit %s: PATH=%s", k.ID(), env[cmake.PathEnv])
	return env, nil
}

// Generate runs the cmake configure step for sourceDir into buildDir.
func (d *Dispatcher) Generate(ctx context.Context, k *kit.Resolved, sourceDir, buildDir string, debug bool) (int, error) {
	env, err := d.Env(k)
	if err != nil {
		return -1, err
	}
	generator, _ := k.BuildToolGenerator()
	return d.launcher.Launch(ctx, cmake.Executable, cmake.GenerateArgs(sourceDir, buildDir, generator, debug), env)
}

// Build runs the cmake build step in buildDir.
func (d *Dispatcher) Build(ctx context.Context, k *kit.Resolved, buildDir string) (int, error) {
	env, err := d.Env(k)
	if err != nil {
		return -1, err
	}
	return d.launcher.Launch(ctx, cmake.Executable, cmake.BuildArgs(buildDir), env)
}

// Run generates and then builds. A failed generate ends the run without
// building.
func (d *Dispatcher) Run(ctx context.Context, k *kit.Resolved, sourceDir, buildDir string, debug bool) (Result, error) {
	res := Result{Stage: Resolved}
	status, err := d.Generate(ctx, k, sourceDir, buildDir, debug)
	if err != nil {
		return res, err
	}
	res.GenerateStatus = status
	if status != 0 {
		res.Stage = GenerateFailed
		return res, nil
	}
	res.Stage = Generated

	status, err = d.Build(ctx, k, buildDir)
	if err != nil {
		return res, err
	}
	res.BuildStatus = status
	res.Stage = Built
	return res, nil
}
