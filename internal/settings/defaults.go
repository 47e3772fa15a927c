package settings

// DefaultEnvironment is used when neither stage nor rails_env is set.
const DefaultEnvironment = "production"

// Environment returns the deployment environment name: stage if set, else
// rails_env if set, else "production". An explicit stage of "" or false is
// returned unchanged; templates treat both as "no environment".
func Environment(s *Store) any {
	return s.FetchOr("stage", Lazy(func(s *Store) any {
		return s.FetchOr("rails_env", DefaultEnvironment)
	}))
}

func interpolate(parts ...any) Lazy {
	return func(s *Store) any {
		out := ""
		for _, p := range parts {
			switch v := p.(type) {
			case string:
				out += v
			case Lazy:
				out += Stringify(v(s))
			}
		}
		return out
	}
}

func ref(name string) Lazy {
	return func(s *Store) any { return s.Fetch(name) }
}

// Defaults registers the built-in settings on s. Values already present are
// left alone so callers may seed overrides before or after.
func Defaults(s *Store) {
	defaults := map[string]any{
		"deploy_to":    nil,
		"shared_path":  interpolate(ref("deploy_to"), "/shared"),
		"current_path": interpolate(ref("deploy_to"), "/current"),

		"nginx_path":         "/etc/nginx",
		"nginx_socket_path":  interpolate(ref("shared_path"), "/tmp/sockets/puma.sock"),
		"nginx_socket_flags": "fail_timeout=0",
		"nginx_config_unit": interpolate(ref("application_name"), "_", Lazy(func(s *Store) any {
			return s.FetchOr("stage", Lazy(func(s *Store) any { return s.Fetch("rails_env") }))
		})),
		"nginx_config_name": interpolate(ref("nginx_config_unit"), ".conf"),

		"nginx_sites_available_path": interpolate(ref("nginx_path"), "/sites-available"),
		"nginx_sites_enabled_path":   interpolate(ref("nginx_path"), "/sites-enabled"),

		"nginx_config":   interpolate(ref("nginx_sites_available_path"), "/", ref("nginx_config_name")),
		"nginx_config_e": interpolate(ref("nginx_sites_enabled_path"), "/", ref("nginx_config_name")),

		"nginx_use_ssl":             true,
		"nginx_use_http2":           true,
		"nginx_sts":                 true,
		"nginx_ssl_stapling":        true,
		"nginx_ssl_certificate":     nil,
		"nginx_ssl_certificate_key": nil,
		"nginx_ssl_dhparam":         nil,
		"nginx_server_name":         nil,
		"nginx_downstream_uses_ssl": false,

		"certbot_email":       nil,
		"certbot_domains":     nil,
		"certbot_extra_flags": "",
	}

	for k, v := range defaults {
		if !s.IsSet(k) {
			s.Set(k, v)
		}
	}
}

// NewWithDefaults returns a store seeded with Defaults.
func NewWithDefaults() *Store {
	s := New()
	Defaults(s)
	return s
}
