package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Writer puts text on a clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) Write(ctx context.Context, text string) error { return f(ctx, text) }

// Command is one clipboard tool invocation.
type Command struct {
	Name string
	Args []string
}

// Exec pipes text into the first available command.
type Exec struct {
	commands []Command
	lookPath func(string) (string, error)
}

// System returns the Writer for the current platform:
// pbcopy on macOS, clip.exe on Windows, and on other systems wl-copy under
// Wayland, then xclip or xsel.
func System() *Exec {
	return NewExec(platformCommands(runtime.GOOS, os.Getenv("WAYLAND_DISPLAY") != "")...)
}

// NewExec tries commands in order and uses the first one found in PATH.
func NewExec(commands ...Command) *Exec {
	return &Exec{commands: commands, lookPath: exec.LookPath}
}

func (e *Exec) Write(ctx context.Context, text string) error {
	for _, c := range e.commands {
		path, err := e.lookPath(c.Name)
		if err != nil {
			continue
		}

		var stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, path, c.Args...)
		cmd.Stdin = strings.NewReader(text)
		cmd.Stderr = &stderr
		if err := cmd.Run(); err != nil {
			return errors.Join(ErrCopyFailed, fmt.Errorf("%s: %w: %s", c.Name, err, strings.TrimSpace(stderr.String())))
		}
		return nil
	}
	return ErrNoClipboard
}

func platformCommands(goos string, wayland bool) []Command {
	switch goos {
	case "darwin":
		return []Command{{Name: "pbcopy"}}
	case "windows":
		return []Command{{Name: "clip.exe"}, {Name: "clip"}}
	}

	cmds := make([]Command, 0, 3)
	if wayland {
		cmds = append(cmds, Command{Name: "wl-copy"})
	}
	return append(cmds,
		Command{Name: "xclip", Args: []string{"-selection", "clipboard"}},
		Command{Name: "xsel", Args: []string{"--clipboard", "--input"}},
	)
}
