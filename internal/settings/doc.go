// Package settings resolves deployment settings with lazily evaluated defaults.
//
// A Store maps setting names to values. A value is a string, bool, number,
// nil, or a Lazy computed from other settings each time it is fetched:
//
//	s := settings.NewWithDefaults()
//	s.Set("application_name", "myapp")
//	s.Set("stage", "staging")
//	s.String("nginx_config") // /etc/nginx/sites-available/myapp_staging.conf
//
// Fetching never fails. An unset key without a fallback yields nil, which
// templates and commands treat as "feature off". A key explicitly set to ""
// or false is returned as-is and does not trigger FetchOr's fallback.
//
// Load layers defaults, an optional .env file, deploy.yml, NGINX_DEPLOY_*
// environment variables and --set overrides.
//
// Store is not safe for concurrent mutation.
package settings
