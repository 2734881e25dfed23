package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LeagueSettings represents the configuration for a specific league
type LeagueSettings struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Seasons maps a year to the Sleeper league id used that season, for
	// leagues whose previous_league_id chain is broken.
	Seasons map[string]string `json:"seasons,omitempty"`

	// DivisionNames overrides the division names stored in league metadata.
	DivisionNames map[int]string `json:"division_names,omitempty"`

	// ArchiveNames labels archived years, e.g. when the league was renamed.
	ArchiveNames map[string]string `json:"archive_names,omitempty"`
}

// LeagueConfig represents the entire league configuration file
type LeagueConfig struct {
	Instructions    string                    `json:"_instructions,omitempty"`
	Leagues         map[string]LeagueSettings `json:"leagues"`
	DefaultSettings LeagueSettings            `json:"default_settings"`
}

var defaultSettingsPaths = []string{
	"configs/league_settings.json",
	"../configs/league_settings.json",
	"../../configs/league_settings.json",
}

// LoadLeagueSettings loads league configuration from path. An empty path
// searches the usual locations relative to the working directory and falls
// back to an empty configuration when none exists.
func LoadLeagueSettings(path string) (*LeagueConfig, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read league settings %s: %w", path, err)
		}
		return parseLeagueSettings(data, path)
	}

	for _, candidate := range defaultSettingsPaths {
		data, err := os.ReadFile(candidate)
		if err == nil {
			return parseLeagueSettings(data, candidate)
		}
	}

	return &LeagueConfig{
		Leagues: make(map[string]LeagueSettings),
		DefaultSettings: LeagueSettings{
			Name: "Default League",
		},
	}, nil
}

func parseLeagueSettings(data []byte, path string) (*LeagueConfig, error) {
	var config LeagueConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse league settings from %s: %w", path, err)
	}
	if config.Leagues == nil {
		config.Leagues = make(map[string]LeagueSettings)
	}
	return &config, nil
}

// GetLeagueSettings returns settings for a specific league ID
func (c *LeagueConfig) GetLeagueSettings(leagueID string) LeagueSettings {
	if settings, exists := c.Leagues[leagueID]; exists {
		return settings
	}

	// Return default settings if league not found
	return c.DefaultSettings
}

// SeasonLeagueID returns the configured league id for a year.
func (c *LeagueConfig) SeasonLeagueID(leagueID, year string) (string, bool) {
	id, ok := c.GetLeagueSettings(leagueID).Seasons[year]
	return id, ok && id != ""
}

// ResolveDivisionNames layers configured overrides over the names found in
// league metadata. Blank overrides are ignored.
func (c *LeagueConfig) ResolveDivisionNames(leagueID string, metadata map[int]string) map[int]string {
	names := make(map[int]string, len(metadata))
	for n, name := range metadata {
		names[n] = name
	}
	for n, name := range c.GetLeagueSettings(leagueID).DivisionNames {
		if strings.TrimSpace(name) != "" {
			names[n] = name
		}
	}
	return names
}
