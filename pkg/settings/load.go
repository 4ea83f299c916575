package settings

import (
	"io"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultEnvPrefix selects the environment variables that override file
// settings, e.g. SIMPLEGMAP_ZOOM_LEVEL=9.
const DefaultEnvPrefix = "SIMPLEGMAP_"

// ErrConfigNotFound is returned when an explicit settings file is missing.
var ErrConfigNotFound = errors.New("settings: config file not found")

// LoadOption customises Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	envPrefix string
	useEnv    bool
	base      Settings
}

// WithEnvPrefix overrides DefaultEnvPrefix.
func WithEnvPrefix(prefix string) LoadOption {
	return func(cfg *loadConfig) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			cfg.envPrefix = trimmed
		}
	}
}

// WithoutEnv disables environment overrides.
func WithoutEnv() LoadOption {
	return func(cfg *loadConfig) {
		cfg.useEnv = false
	}
}

// WithBase replaces Defaults as the starting point for keys missing from
// every source.
func WithBase(base Settings) LoadOption {
	return func(cfg *loadConfig) {
		cfg.base = base
	}
}

// Load layers defaults, the YAML file at path (skipped when path is empty)
// and environment overrides. Values are decoded weakly, so "1"/"0" and quoted
// numbers are accepted.
func Load(path string, options ...LoadOption) (Settings, error) {
	cfg := loadConfig{
		envPrefix: DefaultEnvPrefix,
		useEnv:    true,
		base:      Defaults(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	k := koanf.New(".")

	if path = strings.TrimSpace(path); path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return Settings{}, errors.Wrapf(ErrConfigNotFound, "%s", path)
			}
			return Settings{}, errors.Wrapf(err, "stat %s", path)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Settings{}, errors.Wrapf(err, "read settings %s failed", path)
		}
	}

	if cfg.useEnv {
		prefix := cfg.envPrefix
		if err := k.Load(env.Provider(".", env.Opt{
			Prefix: prefix,
			TransformFunc: func(key, value string) (string, any) {
				return strings.ToLower(strings.TrimPrefix(key, prefix)), value
			},
		}), nil); err != nil {
			return Settings{}, errors.Wrap(err, "load env variables failed")
		}
	}

	out := cfg.base
	if err := k.UnmarshalWithConf("", &out, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &out,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return Settings{}, errors.Wrap(err, "unmarshal settings failed")
	}
	return out, nil
}

// Write encodes s as YAML using the storage keys.
func Write(w io.Writer, s Settings) error {
	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encode settings")
	}
	return errors.Wrap(enc.Close(), "close settings encoder")
}

// WriteFile writes s to path as YAML.
func WriteFile(path string, s Settings) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := Write(f, s); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
