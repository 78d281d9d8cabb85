package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"

	"github.com/mcoot/scrabble-go/internal/factory"
	redisstorage "github.com/mcoot/scrabble-go/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	DictionaryPath string
	StorageType    string
	RedisURL       string
	Players        int
	Output         string
	Verbose        bool
}

// Configuration keys shared by flags and environment
const (
	keyDictionary = "dictionary"
	keyStorage    = "storage"
	keyRedisURL   = "redis_url"
	keyPlayers    = "players"
	keyOutput     = "output"
	keyVerbose    = "verbose"
)

// newViper creates the configuration registry. Every key can be set by a
// SCRABBLE_ prefixed environment variable; storage settings also honour
// the STORAGE_TYPE and REDIS_URL variables used by deployments.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SCRABBLE")
	v.AutomaticEnv()

	v.SetDefault(keyDictionary, "data/words.txt")
	v.SetDefault(keyStorage, factory.StorageTypeMemory)
	v.SetDefault(keyRedisURL, redisstorage.DefaultConfig().URL)
	v.SetDefault(keyPlayers, 2)
	v.SetDefault(keyOutput, "text")
	v.SetDefault(keyVerbose, false)

	_ = v.BindEnv(keyStorage, "SCRABBLE_STORAGE", "STORAGE_TYPE")
	_ = v.BindEnv(keyRedisURL, "SCRABBLE_REDIS_URL", "REDIS_URL")

	return v
}

// LoadConfig reads the resolved configuration out of v
func LoadConfig(v *viper.Viper) (*Config, error) {
	c := &Config{
		DictionaryPath: v.GetString(keyDictionary),
		StorageType:    v.GetString(keyStorage),
		RedisURL:       v.GetString(keyRedisURL),
		Players:        v.GetInt(keyPlayers),
		Output:         v.GetString(keyOutput),
		Verbose:        v.GetBool(keyVerbose),
	}

	if c.Output != "text" && c.Output != "json" {
		return nil, fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	return c, nil
}

// Logger builds the structured logger for a CLI run. Logs go to stderr so
// they never interleave with command output.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// FactoryConfig converts the CLI configuration into an application config
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	cfg := factory.Config{
		DictionaryPath: c.DictionaryPath,
		Logger:         logger,
		StorageType:    c.StorageType,
	}

	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg
}
