package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so the key
// log.level is read from MATHRUSH_LOG_LEVEL.
const EnvPrefix = "MATHRUSH"

// Config is the runtime configuration of the game.
type Config struct {
	Mode               string        `mapstructure:"mode" validate:"required,oneof=classic blitz zen challenge"`
	Seed               uint64        `mapstructure:"seed"`
	FeedbackDelay      time.Duration `mapstructure:"feedback_delay" validate:"gte=0s,lte=10s"`
	DedupeAchievements bool          `mapstructure:"dedupe_achievements"`
	Log                LogConfig     `mapstructure:"log"`
}

// LogConfig controls the session journal.
type LogConfig struct {
	// File is where logs are written. Empty discards them, since the
	// terminal belongs to the game.
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"required,oneof=panic fatal error warn warning info debug trace"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"mode":                "mode",
	"seed":                "seed",
	"feedback-delay":      "feedback_delay",
	"dedupe-achievements": "dedupe_achievements",
	"log-file":            "log.file",
	"log-level":           "log.level",
}

// NewViper returns a viper instance with defaults and environment
// variable lookup configured.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("mode", "classic")
	v.SetDefault("seed", 0)
	v.SetDefault("feedback_delay", 1500*time.Millisecond)
	v.SetDefault("dedupe_achievements", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known flag present in fs to its config key.
// Flags only take effect when set explicitly.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the optional config file, then decodes and validates the
// merged configuration. Precedence is flag, env, file, default.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := NewValidator().Validate(&cfg); err != nil {
		var fe *FieldsError
		if errors.As(err, &fe) {
			return nil, fmt.Errorf("invalid config: %w", fe)
		}
		return nil, err
	}
	return &cfg, nil
}
