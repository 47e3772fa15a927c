package template

import (
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/logger"
	"github.com/ksyq12/nginx-deploy/internal/settings"
)

// Name is the file name of the nginx template, bundled and overridden alike.
const Name = "nginx.conf.template"

// OverrideDir is where a project keeps its own copy of the template.
const OverrideDir = "config/deploy/templates"

//go:embed nginx.conf.template
var bundled embed.FS

// Bundled returns the filesystem holding the built-in template.
func Bundled() fs.FS {
	return bundled
}

// Locator picks the template a project renders: its local override when
// present, else the bundled default.
type Locator struct {
	Dir     string // project directory
	Bundled fs.FS
}

// NewLocator creates a Locator for the project in dir.
func NewLocator(dir string) *Locator {
	return &Locator{Dir: dir, Bundled: bundled}
}

// OverridePath returns the project-local template path.
func (l *Locator) OverridePath() string {
	return filepath.Join(l.Dir, OverrideDir, Name)
}

// HasOverride reports whether the project-local template exists.
func (l *Locator) HasOverride() bool {
	_, err := os.Stat(l.OverridePath())
	return err == nil
}

// Source describes which template Read will use.
func (l *Locator) Source() string {
	if l.HasOverride() {
		return l.OverridePath()
	}
	return "bundled:" + Name
}

// Read returns the template text. Read failures are returned, never replaced
// by an empty template.
func (l *Locator) Read() (string, error) {
	if l.HasOverride() {
		path := l.OverridePath()
		data, err := os.ReadFile(path)
		if err != nil {
			return "", deployerrors.WrapPath(deployerrors.ErrCodeTemplate, "failed to read template", path, err)
		}
		logger.Debug("Using template override %s", path)
		return string(data), nil
	}

	data, err := l.ReadBundled()
	if err != nil {
		return "", err
	}
	logger.Debug("Using bundled template")
	return string(data), nil
}

// ReadBundled returns the built-in template bytes.
func (l *Locator) ReadBundled() ([]byte, error) {
	if l.Bundled == nil {
		return nil, deployerrors.NotFound(Name, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(l.Bundled, Name)
	if err != nil {
		return nil, deployerrors.NotFound(Name, err)
	}
	return data, nil
}

// FuncMap returns the functions templates use to read settings from s.
func FuncMap(s *settings.Store) template.FuncMap {
	return template.FuncMap{
		"fetch":   s.Fetch,
		"fetchOr": s.FetchOr,
		"str":     s.String,
		"enabled": s.Bool,
		"environment": func() any {
			return settings.Environment(s)
		},
	}
}

// Render executes text against s. Settings are evaluated as the template
// asks for them.
func Render(text string, s *settings.Store) (string, error) {
	tmpl, err := template.New(Name).Funcs(FuncMap(s)).Parse(text)
	if err != nil {
		return "", deployerrors.Wrap(deployerrors.ErrCodeTemplate, "failed to parse template", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", deployerrors.Wrap(deployerrors.ErrCodeTemplate, "failed to render template", err)
	}
	return buf.String(), nil
}

// RenderLocated reads the template chosen by l and renders it.
func RenderLocated(l *Locator, s *settings.Store) (string, error) {
	text, err := l.Read()
	if err != nil {
		return "", err
	}
	return Render(text, s)
}

var shellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"'", `'\''`,
)

// Escape prepares text for `echo -ne '<text>'`: backslashes are doubled,
// newlines become \n and single quotes close, escape and reopen the quote.
func Escape(text string) string {
	return shellEscaper.Replace(text)
}
