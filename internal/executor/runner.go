package executor

import (
	"fmt"
	"strings"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/logger"
	"github.com/ksyq12/nginx-deploy/internal/output"
	"github.com/ksyq12/nginx-deploy/internal/script"
)

// Runner executes scripts: comments are printed and commands run on the
// host through ssh. When simulating, commands are only printed.
type Runner struct {
	exec     CommandExecutor
	host     Host
	simulate bool
}

// NewRunner creates a Runner.
func NewRunner(exec CommandExecutor, host Host, simulate bool) *Runner {
	return &Runner{exec: exec, host: host, simulate: simulate}
}

// Run executes each step in order and stops at the first failing command.
func (r *Runner) Run(sc *script.Script) error {
	for _, step := range sc.Steps {
		if step.Kind == script.KindComment {
			output.Comment(step.Text)
			continue
		}

		if r.simulate {
			output.Command(r.host.Label(), step.Text)
			continue
		}

		output.Command(r.host.Label(), shown(step.Text))

		if err := r.runCommand(step.Text); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runCommand(cmd string) error {
	logger.DebugFields("Running remote command", map[string]interface{}{
		"host":    r.host.Address(),
		"command": summarize(cmd),
	})

	out, err := Remote(r.exec, r.host, cmd)
	if deployerrors.Is(err, deployerrors.ErrHostRequired) {
		return err
	}

	text := strings.TrimSpace(string(out))
	if text != "" {
		output.Print("%s", text)
	}
	if err != nil {
		logger.ErrorFields("Command failed", map[string]interface{}{
			"host":    r.host.Address(),
			"command": summarize(cmd),
			"error":   err.Error(),
		})
		return deployerrors.CommandFailed(summarize(cmd), fmt.Errorf("%w: %s", err, text))
	}
	return nil
}

const maxShown = 120

// shown is the command as printed before it runs: in full at debug level,
// shortened otherwise.
func shown(cmd string) string {
	if logger.GetLevel() == logger.LevelDebug {
		return cmd
	}
	return summarize(cmd)
}

// summarize shortens long commands (the escaped config write) for display.
func summarize(cmd string) string {
	if len(cmd) <= maxShown {
		return cmd
	}
	return cmd[:maxShown] + "..."
}
