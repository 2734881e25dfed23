// Package hub fetches league data from Sleeper and the season store, feeds it
// through the league core and degrades to the least-structured correct view
// when an upstream source is unavailable.
package hub

import (
	"context"
	"errors"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/sam-maryland/sleeper-league-hub/internal/config"
	"github.com/sam-maryland/sleeper-league-hub/internal/league"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// ErrNoLeague is returned when neither the caller nor the configuration names a league.
var ErrNoLeague = errors.New("no league id supplied or configured")

// SeasonStore supplies persisted season records. It is read-only here.
type SeasonStore interface {
	ListSeasonRows(ctx context.Context) ([]league.SeasonRow, error)
}

// Options configures a Service. Store and Settings may be nil.
type Options struct {
	LeagueID      string
	CurrentSeason string
	Settings      *config.LeagueConfig
	Store         SeasonStore
	Generator     *league.PreseasonGenerator
}

// Service builds every league view.
type Service struct {
	client        sleeper.Client
	store         SeasonStore
	settings      *config.LeagueConfig
	generator     *league.PreseasonGenerator
	leagueID      string
	currentSeason string
	logger        *logrus.Logger
}

// NewService creates a Service around the Sleeper client.
func NewService(client sleeper.Client, opts Options, logger *logrus.Logger) *Service {
	settings := opts.Settings
	if settings == nil {
		settings = &config.LeagueConfig{}
	}
	generator := opts.Generator
	if generator == nil {
		generator = league.NewPreseasonGenerator()
	}

	return &Service{
		client:        client,
		store:         opts.Store,
		settings:      settings,
		generator:     generator,
		leagueID:      opts.LeagueID,
		currentSeason: opts.CurrentSeason,
		logger:        logger,
	}
}

func (s *Service) resolveLeagueID(leagueID string) (string, error) {
	if leagueID != "" {
		return leagueID, nil
	}
	if s.leagueID != "" {
		return s.leagueID, nil
	}
	return "", ErrNoLeague
}

// previousLeagueID follows Sleeper's previous_league_id link and falls back to
// the configured season map when the link is missing.
func (s *Service) previousLeagueID(leagueID string, lg *sleeper.League) string {
	if lg.PreviousLeagueID != "" && lg.PreviousLeagueID != "0" {
		return lg.PreviousLeagueID
	}
	year, err := strconv.Atoi(lg.Season)
	if err != nil {
		return ""
	}
	id, _ := s.settings.SeasonLeagueID(leagueID, strconv.Itoa(year-1))
	return id
}

func (s *Service) divisionNames(leagueID string, lg *sleeper.League) map[int]string {
	return s.settings.ResolveDivisionNames(leagueID, lg.DivisionNames())
}

func toCoreRosters(rosters []sleeper.Roster) []league.Roster {
	out := make([]league.Roster, len(rosters))
	for i, r := range rosters {
		out[i] = league.Roster{
			RosterID: r.RosterID,
			OwnerID:  r.OwnerID,
			CoOwners: r.CoOwners,
			Division: r.Settings.Division,
		}
	}
	return out
}

func toOwners(users []sleeper.User) map[string]league.Owner {
	owners := make(map[string]league.Owner, len(users))
	for _, u := range users {
		owners[u.UserID] = league.Owner{
			ID:          u.UserID,
			DisplayName: u.DisplayName,
			Username:    u.Username,
			TeamName:    u.Metadata.TeamName,
		}
	}
	return owners
}

// standingsTeams converts ranked rosters into core standings rows using
// the final rank as the team's position.
func standingsTeams(ranked []sleeper.RankedRoster, owners map[string]league.Owner) []league.StandingsTeam {
	teams := make([]league.StandingsTeam, len(ranked))
	for i, r := range ranked {
		core := league.Roster{RosterID: r.RosterID, OwnerID: r.OwnerID, CoOwners: r.CoOwners}
		name, names := league.DescribeRoster(core, owners)
		teams[i] = league.StandingsTeam{
			RosterID:      r.RosterID,
			Rank:          r.FinalRank,
			TeamName:      name,
			Owners:        names,
			OwnerIDs:      core.OwnerIDs(),
			Wins:          r.Settings.Wins,
			Losses:        r.Settings.Losses,
			Ties:          r.Settings.Ties,
			PointsFor:     r.Settings.PointsFor(),
			PointsAgainst: r.Settings.PointsAgainst(),
			Division:      r.Settings.Division,
		}
	}
	return teams
}
