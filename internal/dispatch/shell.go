package dispatch

import (
	"context"
	"runtime"

	"github.com/goplus/cptb/internal/kit"
)

// KitEnv is exported into build environment shells.
const KitEnv = "CPTB_KIT"

// Shell describes an interactive shell launch.
type Shell struct {
	Program string
	Env     map[string]string
}

// PromptPrefix marks prompts of shells started inside a kit's environment.
func PromptPrefix(kitID string) string {
	return "(cptb:" + kitID + ") "
}

// ShellFor describes the shell to start for kit k on goos. getenv reads the
// current environment.
func (d *Dispatcher) ShellFor(k *kit.Resolved, goos string, getenv func(string) string) (Shell, error) {
	env, err := d.Env(k)
	if err != nil {
		return Shell{}, err
	}
	env[KitEnv] = k.ID()
	prefix := PromptPrefix(k.ID())

	if goos == "windows" {
		prog := getenv("COMSPEC")
		if prog == "" {
			prog = "cmd.exe"
		}
		prompt := getenv("PROMPT")
		if prompt == "" {
			prompt = "$P$G"
		}
		env["PROMPT"] = prefix + prompt
		return Shell{Program: prog, Env: env}, nil
	}

	prog := getenv("SHELL")
	if prog == "" {
		prog = "/bin/sh"
	}
	ps1 := getenv("PS1")
	if ps1 == "" {
		ps1 = `\$ `
	}
	env["PS1"] = prefix + ps1
	return Shell{Program: prog, Env: env}, nil
}

// Shell starts an interactive shell for kit k and waits for it to exit.
func (d *Dispatcher) Shell(ctx context.Context, k *kit.Resolved, getenv func(string) string) (int, error) {
	sh, err := d.ShellFor(k, runtime.GOOS, getenv)
	if err != nil {
		return -1, err
	}
	return d.launcher.Launch(ctx, sh.Program, nil, sh.Env)
}
