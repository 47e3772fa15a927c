package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	commentColor = color.New(color.FgHiBlack)
	commandColor = color.New(color.Bold)
)

var out io.Writer = os.Stdout

// SetOutput redirects all output. Passing nil restores os.Stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	out = w
}

// YAML outputs data as a YAML document
func YAML(data interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Raw writes text exactly as given
func Raw(text string) {
	_, _ = io.WriteString(out, text)
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	_, _ = successColor.Fprintf(out, "✓ "+format+"\n", args...)
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(out, "✗ "+format+"\n", args...)
}

// Warn prints a warning message
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Fprintf(out, "! "+format+"\n", args...)
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Fprintf(out, "→ "+format+"\n", args...)
}

// Comment prints a script comment
func Comment(text string) {
	_, _ = commentColor.Fprintf(out, "-----> %s\n", text)
}

// Command echoes a command about to run (or that would run when simulating)
func Command(host, text string) {
	_, _ = commandColor.Fprintf(out, "       [%s] $ %s\n", host, text)
}

// Print prints a plain message
func Print(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}
