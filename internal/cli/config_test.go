package cli

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/factory"
)

type ConfigSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) TestDefaults() {
	c, err := LoadConfig(newViper())
	s.Require().NoError(err)

	s.Equal("data/words.txt", c.DictionaryPath)
	s.Equal(factory.StorageTypeMemory, c.StorageType)
	s.Equal(2, c.Players)
	s.Equal("text", c.Output)
	s.False(c.Verbose)
}

func (s *ConfigSuite) TestEnvironmentOverrides() {
	s.T().Setenv("SCRABBLE_DICTIONARY", "/tmp/words.txt")
	s.T().Setenv("SCRABBLE_PLAYERS", "4")
	s.T().Setenv("STORAGE_TYPE", "redis")
	s.T().Setenv("REDIS_URL", "redis://cache:6379")

	c, err := LoadConfig(newViper())
	s.Require().NoError(err)

	s.Equal("/tmp/words.txt", c.DictionaryPath)
	s.Equal(4, c.Players)
	s.Equal(factory.StorageTypeRedis, c.StorageType)
	s.Equal("redis://cache:6379", c.RedisURL)
}

func (s *ConfigSuite) TestPrefixedStorageWins() {
	s.T().Setenv("SCRABBLE_STORAGE", "memory")
	s.T().Setenv("STORAGE_TYPE", "redis")

	c, err := LoadConfig(newViper())
	s.Require().NoError(err)

	s.Equal(factory.StorageTypeMemory, c.StorageType)
}

func (s *ConfigSuite) TestInvalidOutput() {
	s.T().Setenv("SCRABBLE_OUTPUT", "yaml")

	_, err := LoadConfig(newViper())
	s.Error(err)
}

func (s *ConfigSuite) TestFactoryConfig() {
	c := &Config{DictionaryPath: "words.txt", StorageType: factory.StorageTypeRedis, RedisURL: "redis://cache:6379"}

	fc := c.FactoryConfig(nil)

	s.Equal("words.txt", fc.DictionaryPath)
	s.Require().NotNil(fc.RedisConfig)
	s.Equal("redis://cache:6379", fc.RedisConfig.URL)

	c.StorageType = factory.StorageTypeMemory
	s.Nil(c.FactoryConfig(nil).RedisConfig)
}

func (s *ConfigSuite) TestRootCommandFlags() {
	cmd := NewRootCmd()

	for _, name := range []string{"dictionary", "storage", "redis-url", "output", "verbose"} {
		s.NotNil(cmd.PersistentFlags().Lookup(name), "flag %s", name)
	}
	play, _, err := cmd.Find([]string{"play"})
	s.Require().NoError(err)
	s.NotNil(play.Flags().Lookup("players"))
}
