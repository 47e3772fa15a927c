package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	deployerrors "github.com/ksyq12/nginx-deploy/internal/errors"
	"github.com/ksyq12/nginx-deploy/internal/logger"
)

// DefaultFile is the settings file looked up in the project directory.
const DefaultFile = "deploy.yml"

// DefaultEnvPrefix selects which environment variables become settings.
const DefaultEnvPrefix = "NGINX_DEPLOY_"

// Options controls how Load layers settings sources.
type Options struct {
	Dir       string   // project directory, defaults to "."
	File      string   // explicit settings file; must exist when given
	EnvPrefix string   // defaults to DefaultEnvPrefix
	Overrides []string // key=value pairs applied last
}

// Load builds a Store from defaults, an optional .env file, the settings file,
// prefixed environment variables and overrides, in increasing precedence.
func Load(opts Options) (*Store, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	s := NewWithDefaults()

	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, deployerrors.WrapPath(deployerrors.ErrCodeConfig, "failed to load env file", envFile, err)
		}
		logger.Debug("Loaded env file %s", envFile)
	}

	k := koanf.New(".")

	path, err := settingsFile(dir, opts.File)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
			return nil, deployerrors.WrapPath(deployerrors.ErrCodeConfig, "failed to parse settings file", path, err)
		}
		logger.DebugFields("Settings file loaded", map[string]interface{}{
			"path": path,
			"keys": len(k.Keys()),
		})
	}

	if err := k.Load(env.ProviderWithValue(prefix, ".", func(key, value string) (string, interface{}) {
		return strings.ToLower(strings.TrimPrefix(key, prefix)), ParseScalar(value)
	}), nil); err != nil {
		return nil, deployerrors.Wrap(deployerrors.ErrCodeConfig, "failed to read environment", err)
	}

	values := k.All()
	if err := checkValues(values); err != nil {
		return nil, err
	}
	s.Merge(values)

	for _, o := range opts.Overrides {
		key, value, err := ParseOverride(o)
		if err != nil {
			return nil, err
		}
		s.Set(key, value)
	}

	logger.InfoFields("Settings loaded", map[string]interface{}{
		"file":      path,
		"loaded":    len(values),
		"overrides": len(opts.Overrides),
	})
	return s, nil
}

// checkValues rejects lists that hold anything but scalars; those cannot be
// joined into a command line or a server_name.
func checkValues(values map[string]any) error {
	for key, v := range values {
		list, ok := v.([]any)
		if !ok {
			continue
		}
		for i, e := range list {
			if !IsScalar(e) {
				return deployerrors.Config(fmt.Sprintf("setting %s[%d] must be a string or number, got %T", key, i, e))
			}
		}
	}
	return nil
}

func settingsFile(dir, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", deployerrors.WrapPath(deployerrors.ErrCodeConfig, "settings file not readable", explicit, err)
		}
		return explicit, nil
	}

	path := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debug("No %s in %s, using defaults", DefaultFile, dir)
		return "", nil
	}
	return path, nil
}

// ParseOverride splits a key=value pair and decodes the value.
func ParseOverride(pair string) (string, any, error) {
	key, value, ok := strings.Cut(pair, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, deployerrors.Validation(fmt.Sprintf("invalid setting %q, expected key=value", pair))
	}
	return key, ParseScalar(value), nil
}

// ParseScalar decodes a string as a YAML scalar: true/false become bools,
// null and ~ become nil, numbers become ints or floats. An empty string stays
// an empty string so it can be used to disable a feature.
func ParseScalar(raw string) any {
	if raw == "" {
		return ""
	}

	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}

	switch v.(type) {
	case nil, bool, int, float64, string:
		return v
	default:
		return raw
	}
}
