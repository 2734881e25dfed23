package hub

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sam-maryland/sleeper-league-hub/internal/league"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// MatchupsView is one week's scoreboard. Hidden is set when no week was
// requested and the NFL calendar is in the preseason or offseason.
type MatchupsView struct {
	LeagueID   string        `json:"league_id"`
	Season     string        `json:"season,omitempty"`
	SeasonType string        `json:"season_type,omitempty"`
	Week       int           `json:"week"`
	Hidden     bool          `json:"hidden"`
	Notice     string        `json:"notice,omitempty"`
	Games      []league.Game `json:"games"`
}

// Matchups builds the scoreboard for week, or for the current NFL week when
// week is 0. A failing matchup fetch yields an empty scoreboard.
func (s *Service) Matchups(ctx context.Context, leagueID string, week int) (*MatchupsView, error) {
	leagueID, err := s.resolveLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	view := &MatchupsView{LeagueID: leagueID, Games: []league.Game{}}

	if week <= 0 {
		nfl, err := s.client.GetNFLState(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching nfl state: %w", err)
		}
		state := league.SeasonState{Season: nfl.Season, SeasonType: nfl.SeasonType, Week: nfl.Week}
		view.SeasonType = nfl.SeasonType
		if state.OutOfSeason() || nfl.Week <= 0 {
			view.Hidden = true
			view.Notice = "matchups return when the regular season starts"
			return view, nil
		}
		week = nfl.Week
	}
	view.Week = week

	logger := s.logger.WithFields(logrus.Fields{
		"league_id": leagueID,
		"week":      week,
	})

	var (
		snap     *leagueSnapshot
		matchups []sleeper.Matchup
		fetchErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = s.fetchLeague(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		matchups, fetchErr = s.client.GetMatchups(gctx, leagueID, week)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	view.Season = snap.league.Season

	if fetchErr != nil {
		logger.WithError(fetchErr).Warn("Matchups unavailable, returning empty scoreboard")
		view.Notice = "matchups are unavailable for this week"
		return view, nil
	}

	view.Games = league.PairMatchups(matchupSides(matchups, snap), weekScored(snap.league, week))

	logger.WithField("games", len(view.Games)).Info("Built matchups")
	return view, nil
}

// weekScored reports whether Sleeper has closed scoring for week.
func weekScored(lg *sleeper.League, week int) bool {
	return lg.Status == "complete" || (lg.Settings.LastScoredLeg > 0 && week <= lg.Settings.LastScoredLeg)
}

func matchupSides(matchups []sleeper.Matchup, snap *leagueSnapshot) []league.MatchupSide {
	rosters := make(map[int]league.Roster, len(snap.rosters))
	for _, r := range toCoreRosters(snap.rosters) {
		rosters[r.RosterID] = r
	}
	owners := toOwners(snap.users)

	sides := make([]league.MatchupSide, len(matchups))
	for i, m := range matchups {
		roster, ok := rosters[m.RosterID]
		if !ok {
			roster = league.Roster{RosterID: m.RosterID}
		}
		name, names := league.DescribeRoster(roster, owners)
		sides[i] = league.MatchupSide{
			MatchupID: m.MatchupID,
			RosterID:  m.RosterID,
			TeamName:  name,
			Owners:    names,
			Points:    m.Score(),
		}
	}
	return sides
}
