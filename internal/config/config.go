// Package config loads taskline settings from defaults, an optional YAML
// file, TASKLINE_* environment variables and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	EnvPrefix   = "TASKLINE"
	DefaultPath = "./taskline.yaml"

	DefaultFile        = "./data/tasks.txt"
	DefaultLogLevel    = "info"
	DefaultLockTimeout = 5 * time.Second
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	File        string        `mapstructure:"file"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
	Log         Log           `mapstructure:"log"`
	UI          UI            `mapstructure:"ui"`
}

type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UI struct {
	Color bool `mapstructure:"color"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("file", DefaultFile)
	v.SetDefault("lock_timeout", DefaultLockTimeout)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")
	v.SetDefault("ui.color", true)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the configuration. An empty path falls back to DefaultPath,
// which may be missing; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := newViper()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err == nil || explicit {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decoderOption()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithOverrides loads the configuration and then applies the non-zero
// fields of overrides, which usually come from command-line flags.
func LoadWithOverrides(path string, overrides *Config) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if overrides != nil {
		applyOverrides(cfg, overrides)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(cfg, o *Config) {
	if o.File != "" {
		cfg.File = o.File
	}
	if o.LockTimeout > 0 {
		cfg.LockTimeout = o.LockTimeout
	}
	if o.Log.Level != "" {
		cfg.Log.Level = o.Log.Level
	}
	if o.Log.File != "" {
		cfg.Log.File = o.Log.File
	}
}

func decoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.File) == "" {
		return fmt.Errorf("%w: file must not be empty", ErrInvalid)
	}
	if cfg.LockTimeout <= 0 {
		return fmt.Errorf("%w: lock_timeout must be positive, got %s", ErrInvalid, cfg.LockTimeout)
	}
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err != nil || lvl == zerolog.NoLevel {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, cfg.Log.Level)
	}
	return nil
}

// dump mirrors Config with durations rendered as strings.
type dump struct {
	File        string `yaml:"file"`
	LockTimeout string `yaml:"lock_timeout"`
	Log         struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"log"`
	UI struct {
		Color bool `yaml:"color"`
	} `yaml:"ui"`
}

// Dump renders cfg as YAML in the same shape Load reads.
func Dump(cfg *Config) ([]byte, error) {
	var d dump
	d.File = cfg.File
	d.LockTimeout = cfg.LockTimeout.String()
	d.Log.Level = cfg.Log.Level
	d.Log.File = cfg.Log.File
	d.UI.Color = cfg.UI.Color
	return yaml.Marshal(d)
}
