package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	LogLevel                 string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat                string        `envconfig:"LOG_FORMAT" default:"json"`
	HTTPPort                 int           `envconfig:"HTTP_PORT" default:"8080"`
	DatabaseURL              string        `envconfig:"DATABASE_URL" default:""`
	SleeperBaseURL           string        `envconfig:"SLEEPER_BASE_URL" default:"https://api.sleeper.app/v1"`
	SleeperTimeout           time.Duration `envconfig:"SLEEPER_TIMEOUT" default:"10s"`
	SleeperRequestsPerMinute int           `envconfig:"SLEEPER_REQUESTS_PER_MINUTE" default:"600"`
	LeagueID                 string        `envconfig:"LEAGUE_ID" default:""`
	CurrentSeason            string        `envconfig:"CURRENT_SEASON" default:""`
	LeagueSettingsPath       string        `envconfig:"LEAGUE_SETTINGS_PATH" default:""`
}

// Load reads configuration from environment variables into a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
