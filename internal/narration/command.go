package narration

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Placeholders substituted in command arguments.
const (
	PlaceholderText   = "{text}"
	PlaceholderLocale = "{locale}"
)

// CommandNarrator runs an external text-to-speech program for each line,
// e.g. espeak-ng with args ["-v", "{locale}", "{text}"].
// If no argument contains {text}, the line is written to the program's stdin.
type CommandNarrator struct {
	Command string
	Args    []string
}

// NewCommandNarrator checks that command can be found on PATH.
func NewCommandNarrator(command string, args []string) (*CommandNarrator, error) {
	if command == "" {
		return nil, errors.New("narration: empty speech command")
	}
	if _, err := exec.LookPath(command); err != nil {
		return nil, fmt.Errorf("narration: speech command %q not found: %w", command, err)
	}
	return &CommandNarrator{Command: command, Args: args}, nil
}

// Speak runs the program and waits for it to finish.
func (n *CommandNarrator) Speak(ctx context.Context, u Utterance) error {
	if u.Muted {
		return nil
	}

	args, useStdin := n.expand(u)
	cmd := exec.CommandContext(ctx, n.Command, args...)
	if useStdin {
		cmd.Stdin = strings.NewReader(u.Text)
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("narration: %s failed: %w (%s)", n.Command, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// expand substitutes placeholders. The second result is true when the text
// was not placed on the command line.
func (n *CommandNarrator) expand(u Utterance) ([]string, bool) {
	args := make([]string, len(n.Args))
	useStdin := true
	for i, a := range n.Args {
		if strings.Contains(a, PlaceholderText) {
			useStdin = false
		}
		a = strings.ReplaceAll(a, PlaceholderText, u.Text)
		args[i] = strings.ReplaceAll(a, PlaceholderLocale, u.Locale)
	}
	return args, useStdin
}
