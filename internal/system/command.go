package system

import (
	"context"
	"errors"
	"os"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"
)

// Command describes an external process invocation.
type Command struct {
	Name string
	Args []string
	Env  []string // Extra KEY=VALUE entries appended to the current environment
	Dir  string
}

// String returns the command line quoted for a POSIX shell.
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// osExecutor implements CommandExecutor using real OS operations.
type osExecutor struct{}

func (e *osExecutor) Run(ctx context.Context, c Command) (int, []byte, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	output, err := cmd.CombinedOutput()
	if err == nil {
		return 0, output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), output, nil
	}
	return -1, output, err
}
