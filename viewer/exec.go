package viewer

import (
	"context"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// DefaultCommand is the external viewer used when none is configured.
const DefaultCommand = "feh"

// Exec shows images by running an external viewer with the image paths as
// trailing arguments. No shell is involved, so paths are never re-split.
type Exec struct {
	Name string
	Args []string
}

// NewExec parses command with shell word rules, e.g. `feh -F --title "%f"`.
func NewExec(command string) (*Exec, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, errors.Wrapf(err, "parse viewer command %q", command)
	}
	if len(args) == 0 {
		return nil, errors.Errorf("viewer command %q was not parsed correctly into content", command)
	}
	return &Exec{Name: args[0], Args: args[1:]}, nil
}

// Command returns the process that would show paths.
func (e *Exec) Command(ctx context.Context, paths ...string) *exec.Cmd {
	args := make([]string, 0, len(e.Args)+len(paths))
	args = append(args, e.Args...)
	args = append(args, paths...)
	cmd := exec.CommandContext(ctx, e.Name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Show runs the viewer and waits for it to exit.
func (e *Exec) Show(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := e.Command(ctx, paths...).Run(); err != nil {
		return errors.Wrapf(err, "run viewer %s", e.Name)
	}
	return nil
}
