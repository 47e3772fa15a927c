// Package script holds the ordered steps an operation emits.
//
// Operations never run anything themselves. They append comments and
// commands to a Script and hand it to an executor.Runner, which prints,
// simulates or executes each step in order.
package script

import "strings"

// Kind distinguishes step types.
type Kind int

const (
	// KindComment is an informational line shown to the user.
	KindComment Kind = iota
	// KindCommand is a shell command.
	KindCommand
)

// Step is a single comment or command.
type Step struct {
	Kind Kind
	Text string
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step
}

// New creates an empty Script.
func New() *Script {
	return &Script{}
}

// Comment appends an informational line.
func (s *Script) Comment(text string) *Script {
	s.Steps = append(s.Steps, Step{Kind: KindComment, Text: text})
	return s
}

// Command appends a command run on the target host.
func (s *Script) Command(cmd string) *Script {
	s.Steps = append(s.Steps, Step{Kind: KindCommand, Text: cmd})
	return s
}

// Append adds the steps of other after the steps of s.
func (s *Script) Append(other *Script) *Script {
	if other != nil {
		s.Steps = append(s.Steps, other.Steps...)
	}
	return s
}

// Commands returns the text of every command step.
func (s *Script) Commands() []string {
	var cmds []string
	for _, step := range s.Steps {
		if step.Kind == KindCommand {
			cmds = append(cmds, step.Text)
		}
	}
	return cmds
}

// String renders the script as a shell script; comments become # lines.
func (s *Script) String() string {
	var b strings.Builder
	for _, step := range s.Steps {
		if step.Kind == KindComment {
			b.WriteString("# ")
		}
		b.WriteString(step.Text)
		b.WriteString("\n")
	}
	return b.String()
}
