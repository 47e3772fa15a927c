// Package executor runs deploy scripts against the target host over ssh.
//
// Everything that touches a process goes through CommandExecutor so tests
// can swap in MockExecutor and inspect the ssh invocations instead.
package executor

import (
	"os/exec"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/settings"
)

// CommandExecutor starts processes and locates binaries.
type CommandExecutor interface {
	// Execute runs name with args and returns its combined output.
	Execute(name string, args ...string) ([]byte, error)

	// LookPath resolves an executable on PATH.
	LookPath(file string) (string, error)
}

// SystemExecutor runs real processes.
type SystemExecutor struct{}

// NewSystemExecutor creates a SystemExecutor.
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a process and returns stdout and stderr interleaved.
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).CombinedOutput()
}

// LookPath resolves an executable on PATH.
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Host is the ssh target for deploy commands.
type Host struct {
	Domain       string
	User         string
	Port         string
	IdentityFile string
}

// HostFromSettings reads domain, user, port and identity_file.
func HostFromSettings(s *settings.Store) Host {
	return Host{
		Domain:       s.String("domain"),
		User:         s.String("user"),
		Port:         s.String("port"),
		IdentityFile: s.String("identity_file"),
	}
}

// Address returns user@domain, or just domain when no user is set.
func (h Host) Address() string {
	if h.User == "" {
		return h.Domain
	}
	return h.User + "@" + h.Domain
}

// Label names the host in printed command lines.
func (h Host) Label() string {
	if h.Domain == "" {
		return "remote"
	}
	return h.Address()
}

// SSHArgs returns the ssh arguments that run cmd on the host.
func (h Host) SSHArgs(cmd string) []string {
	var args []string
	if h.Port != "" {
		args = append(args, "-p", h.Port)
	}
	if h.IdentityFile != "" {
		args = append(args, "-i", h.IdentityFile)
	}
	return append(args, h.Address(), "--", cmd)
}

// Remote runs cmd on h through ssh. It refuses to start without a domain.
func Remote(e CommandExecutor, h Host, cmd string) ([]byte, error) {
	if h.Domain == "" {
		return nil, deployerrors.ErrHostRequired
	}
	return e.Execute("ssh", h.SSHArgs(cmd)...)
}

// MockExecutor records every call; the Func fields override the defaults of
// empty output and /usr/bin lookups.
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) ([]byte, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
}

// CommandCall is one recorded Execute.
type CommandCall struct {
	Name string
	Args []string
}

// Last returns the final argument, which for an ssh call is the remote
// command.
func (c CommandCall) Last() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[len(c.Args)-1]
}

// Execute records the call.
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return nil, nil
}

func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
