package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"tkbuilder/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	lookup func(string) string
}

// Ensure Opener implements EditorOpener
var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates a new editor opener
func NewOpener() *Opener {
	return &Opener{lookup: os.Getenv}
}

// OpenFile opens a file in the user's preferred editor and waits for it to exit
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor.
// Editor settings may carry flags, e.g. EDITOR="code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	args := o.editorArgs()
	if len(args) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) editorArgs() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(o.lookup(env)); len(fields) > 0 {
			return fields
		}
	}

	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return []string{path}
		}
	}

	return nil
}
