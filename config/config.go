// Package config loads the validator's runtime configuration from
// built-in defaults, an optional YAML file, and environment variables
// (lowest to highest precedence: defaults, file, env).
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvConfigPrefix prefixes every environment variable this module reads,
// e.g. DNSSEC_VALIDATOR_RESOLVER_TIMEOUTSECONDS.
const EnvConfigPrefix = "DNSSEC_VALIDATOR"

// Config is the root configuration object, decoded from YAML/env into
// the typed sub-configs consumed by each package.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Resolver ResolverConfig `mapstructure:"resolver"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
}

var (
	mu      sync.RWMutex
	current = defaultConfig()
)

func defaultConfig() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Errorf("config: failed to apply defaults: %w", err))
	}
	return cfg
}

// InitConfig loads configuration from the YAML file at path (if path is
// non-empty and the file exists), then applies environment overrides,
// and stores the result for App()/ResolverCfg()/Kafka() to read. A blank
// path is valid: the built-in defaults are used. Environment variables
// override only keys that the YAML file also sets; a key the file does
// not set keeps its default whatever the environment holds.
func InitConfig(path string) error {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvConfigPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return fmt.Errorf("config: failed to read %s: %w", path, err)
			}
		}
	}

	cfg := defaultConfig()
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(cfg, viper.DecodeHook(decodeHook)); err != nil {
		return fmt.Errorf("config: failed to decode: %w", err)
	}

	mu.Lock()
	current = cfg
	mu.Unlock()

	return nil
}

// App returns the currently loaded application configuration.
func App() AppConfig {
	mu.RLock()
	defer mu.RUnlock()
	return current.App
}

// ResolverCfg returns the currently loaded resolver configuration.
func ResolverCfg() ResolverConfig {
	mu.RLock()
	defer mu.RUnlock()
	return current.Resolver
}

// Kafka returns the currently loaded Kafka pipeline configuration.
func Kafka() KafkaConfig {
	mu.RLock()
	defer mu.RUnlock()
	return current.Kafka
}
