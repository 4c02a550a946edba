package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/qiniu/x/log"
)

// Launcher runs an external program to completion.
//
// Launch returns the exit status of a process that started. A non-nil error
// means the process could not be started at all and is always a
// *LaunchError.
type Launcher interface {
	Launch(ctx context.Context, name string, args []string, env map[string]string) (int, error)
}

// LaunchError reports a program that could not be started.
type LaunchError struct {
	Name string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Name, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExecLauncher launches programs with os/exec, connected to the given
// standard streams. Env overrides are applied on top of os.Environ, and the
// program is looked up on the overridden PATH.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecLauncher returns a launcher attached to the process's own streams.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (l *ExecLauncher) Launch(ctx context.Context, name string, args []string, env map[string]string) (int, error) {
	environ := mergeEnv(os.Environ(), env)
	path, ok := env["PATH"]
	if !ok {
		path = os.Getenv("PATH")
	}
	prog, err := lookPath(name, path)
	if err != nil {
		return -1, &LaunchError{Name: name, Err: err}
	}
	log.Debugf("dispatch: %s %s", prog, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, prog, args...)
	cmd.Env = environ
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, &LaunchError{Name: name, Err: err}
	}
	return 0, nil
}

// lookPath finds name in the directories of path rather than in the PATH of
// the current process, so a kit's directories take effect.
func lookPath(name, path string) (string, error) {
	if strings.ContainsRune(name, filepath.Separator) || strings.ContainsRune(name, '/') {
		return exec.LookPath(name)
	}
	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if !strings.ContainsRune(candidate, filepath.Separator) {
			candidate = "." + string(filepath.Separator) + candidate
		}
		if prog, err := exec.LookPath(candidate); err == nil {
			return prog, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, exec.ErrNotFound)
}

// mergeEnv applies overrides to a KEY=VALUE list. Keys compare
// case-insensitively on Windows.
func mergeEnv(base []string, overrides map[string]string) []string {
	norm := func(k string) string {
		if runtime.GOOS == "windows" {
			return strings.ToUpper(k)
		}
		return k
	}
	over := make(map[string]string, len(overrides))
	for k := range overrides {
		over[norm(k)] = k
	}
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if _, ok := over[norm(k)]; ok {
			continue
		}
		out = append(out, kv)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+overrides[k])
	}
	return out
}
