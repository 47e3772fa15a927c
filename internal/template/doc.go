// Package template renders the nginx server block for a deployment.
//
// The bundled nginx.conf.template is embedded in the binary. A project can
// override it by placing its own copy at
// config/deploy/templates/nginx.conf.template; the Locator prefers that file
// when it exists.
//
// # Rendering
//
//	s := settings.NewWithDefaults()
//	s.Set("application_name", "myapp")
//
//	text, err := template.RenderLocated(template.NewLocator("."), s)
//
// # Template Functions
//
// Templates read settings through functions rather than a data struct, so
// derived settings are only evaluated when a template asks for them:
//   - fetch "key": the raw value, nil when unset
//   - fetchOr "key" fallback: the value, or fallback when unset
//   - str "key": the value as a string, "" for nil
//   - enabled "key": truthiness of the value
//   - environment: stage, else rails_env, else "production"
//
// Control actions are written as {{- ... }} on their own line so that no
// blank line is left behind when a section is skipped.
//
// # Escaping
//
// Escape turns rendered text into a payload for a single-quoted
// `echo -ne '...'` argument.
package template
