package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-porter/internal/config"
	"github.com/KirkDiggler/rpg-porter/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal([]string{"localhost:6379"}, cfg.RedisAddrs)
	s.Equal("exports", cfg.ExportDir)
	s.Equal("default", cfg.GameID)
	s.Equal(time.Hour, cfg.ShellTTL)
	s.Equal(10*time.Minute, cfg.CatalogCacheTTL)
	s.False(cfg.Debug)
	s.False(cfg.SRDEnabled)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("PORTER_REDIS_ADDRS", "r1:6379,r2:6379")
	s.T().Setenv("PORTER_GAME_ID", "campaign-7")
	s.T().Setenv("PORTER_DEBUG", "true")
	s.T().Setenv("PORTER_SRD_ENABLED", "true")
	s.T().Setenv("PORTER_SRD_CACHE_TTL", "2h")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal([]string{"r1:6379", "r2:6379"}, cfg.RedisAddrs)
	s.Equal("campaign-7", cfg.GameID)
	s.True(cfg.Debug)
	s.True(cfg.SRDEnabled)
	s.Equal(2*time.Hour, cfg.SRDCacheTTL)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad duration", key: "PORTER_SHELL_TTL", value: "soon"},
		{name: "bad bool", key: "PORTER_DEBUG", value: "maybe"},
		{name: "zero shell ttl", key: "PORTER_SHELL_TTL", value: "0s"},
		{name: "blank game", key: "PORTER_GAME_ID", value: " "},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)
			_, err := config.Load()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}
