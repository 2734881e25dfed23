package hub

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sam-maryland/sleeper-league-hub/internal/league"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// Standings phases.
const (
	PhaseLive      = "live"
	PhasePreseason = "preseason"
)

// StandingsView is either the live standings or, before any points are
// scored, the preseason ranking.
type StandingsView struct {
	LeagueID   string            `json:"league_id"`
	LeagueName string            `json:"league_name"`
	Season     string            `json:"season"`
	SeasonType string            `json:"season_type,omitempty"`
	Phase      string            `json:"phase"`
	Standings  *league.Standings `json:"standings,omitempty"`
	Preseason  *PreseasonView    `json:"preseason,omitempty"`
}

// PreseasonView wraps a preseason ranking. Skipped is set when no previous
// season is known; Notice explains any degradation.
type PreseasonView struct {
	Season           string         `json:"season"`
	PreviousLeagueID string         `json:"previous_league_id,omitempty"`
	Skipped          bool           `json:"skipped"`
	Notice           string         `json:"notice,omitempty"`
	Ranking          league.Ranking `json:"ranking"`
}

// PlayoffView is the projected playoff bracket.
type PlayoffView struct {
	LeagueID string                `json:"league_id"`
	Season   string                `json:"season"`
	Picture  league.PlayoffPicture `json:"picture"`
}

type leagueSnapshot struct {
	league  *sleeper.League
	users   []sleeper.User
	rosters []sleeper.Roster
}

// fetchLeague loads league, users and rosters concurrently.
func (s *Service) fetchLeague(ctx context.Context, leagueID string) (*leagueSnapshot, error) {
	var snap leagueSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		lg, err := s.client.GetLeague(gctx, leagueID)
		snap.league = lg
		return err
	})
	g.Go(func() error {
		users, err := s.client.GetLeagueUsers(gctx, leagueID)
		snap.users = users
		return err
	})
	g.Go(func() error {
		rosters, err := s.client.GetLeagueRosters(gctx, leagueID)
		snap.rosters = rosters
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching league %s: %w", leagueID, err)
	}
	return &snap, nil
}

// Standings returns live standings, or the preseason ranking when the NFL
// calendar or the scoreboard says the season has not started.
func (s *Service) Standings(ctx context.Context, leagueID string) (*StandingsView, error) {
	leagueID, err := s.resolveLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	var (
		snap  *leagueSnapshot
		state league.SeasonState
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = s.fetchLeague(gctx, leagueID)
		return err
	})
	g.Go(func() error {
		nfl, err := s.client.GetNFLState(gctx)
		if err != nil {
			// The scoreboard check still decides the phase on its own.
			s.logger.WithError(err).Warn("NFL state unavailable")
			return nil
		}
		state = league.SeasonState{Season: nfl.Season, SeasonType: nfl.SeasonType, Week: nfl.Week}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranked := sleeper.RankRosters(snap.rosters, sleeper.TiebreakOrder(snap.league))
	owners := toOwners(snap.users)
	teams := standingsTeams(ranked, owners)

	points := make([]float64, len(teams))
	for i, t := range teams {
		points[i] = t.PointsFor
	}

	view := &StandingsView{
		LeagueID:   leagueID,
		LeagueName: snap.league.Name,
		Season:     snap.league.Season,
		SeasonType: state.SeasonType,
	}

	if league.IsPreseason(state, points) {
		view.Phase = PhasePreseason
		preseason := s.preseason(ctx, leagueID, snap)
		view.Preseason = &preseason
		return view, nil
	}

	standings := league.BuildStandings(teams, s.divisionNames(leagueID, snap.league))
	view.Phase = PhaseLive
	view.Standings = &standings

	s.logger.WithFields(logrus.Fields{
		"league_id":     leagueID,
		"teams":         len(teams),
		"has_divisions": standings.HasDivisions,
	}).Info("Built live standings")

	return view, nil
}

// PreseasonRanking ranks the current rosters by last season's finish.
// Failing to load the previous season yields an empty ranking, not an error.
func (s *Service) PreseasonRanking(ctx context.Context, leagueID string) (*PreseasonView, error) {
	leagueID, err := s.resolveLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	snap, err := s.fetchLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	view := s.preseason(ctx, leagueID, snap)
	return &view, nil
}

func (s *Service) preseason(ctx context.Context, leagueID string, snap *leagueSnapshot) PreseasonView {
	view := PreseasonView{
		Season:  snap.league.Season,
		Ranking: league.Ranking{Teams: []league.TeamMapping{}},
	}

	prevID := s.previousLeagueID(leagueID, snap.league)
	if prevID == "" {
		view.Skipped = true
		view.Notice = "no previous season is linked or configured"
		return view
	}
	view.PreviousLeagueID = prevID

	logger := s.logger.WithFields(logrus.Fields{
		"league_id":          leagueID,
		"previous_league_id": prevID,
	})

	var (
		priorRosters []sleeper.Roster
		bracket      []sleeper.BracketMatchup
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		priorRosters, err = s.client.GetLeagueRosters(gctx, prevID)
		return err
	})
	g.Go(func() error {
		var err error
		bracket, err = s.client.GetWinnersBracket(gctx, prevID)
		if err != nil {
			// Regular-season order is still a usable prior ranking.
			logger.WithError(err).Warn("Previous winners bracket unavailable")
			bracket = nil
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Warn("Previous season unavailable, returning empty ranking")
		view.Notice = "previous season data is unavailable"
		return view
	}

	final := sleeper.ApplyPlayoffPlacements(sleeper.RankRosters(priorRosters, nil), bracket)
	standings := make(map[int]league.PriorStanding, len(final))
	for _, r := range final {
		standings[r.RosterID] = league.PriorStanding{
			Rank:   r.FinalRank,
			Wins:   r.Settings.Wins,
			Losses: r.Settings.Losses,
			Ties:   r.Settings.Ties,
			Points: r.Settings.PointsFor(),
		}
	}

	view.Ranking = s.generator.Generate(league.PreseasonInput{
		Current:        toCoreRosters(snap.rosters),
		Owners:         toOwners(snap.users),
		Prior:          toCoreRosters(priorRosters),
		PriorStandings: standings,
		DivisionNames:  s.divisionNames(leagueID, snap.league),
	})

	logger.WithField("teams", len(view.Ranking.Teams)).Info("Built preseason ranking")
	return view
}

// PlayoffPicture seeds the league's playoff format from the current standings.
func (s *Service) PlayoffPicture(ctx context.Context, leagueID string) (*PlayoffView, error) {
	leagueID, err := s.resolveLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	snap, err := s.fetchLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	ranked := sleeper.RankRosters(snap.rosters, sleeper.TiebreakOrder(snap.league))
	teams := standingsTeams(ranked, toOwners(snap.users))

	return &PlayoffView{
		LeagueID: leagueID,
		Season:   snap.league.Season,
		Picture:  league.BuildPlayoffPicture(playoffFormat(snap.league), teams),
	}, nil
}

const (
	defaultPlayoffTeams     = 6
	defaultPlayoffWeekStart = 15
)

func playoffFormat(lg *sleeper.League) league.PlayoffFormat {
	teams := lg.Settings.PlayoffTeams
	if teams <= 0 {
		teams = defaultPlayoffTeams
	}
	start := lg.Settings.PlayoffWeekStart
	if start <= 0 {
		start = defaultPlayoffWeekStart
	}
	return league.PlayoffFormat{
		Teams:     teams,
		Weeks:     league.PlayoffWeeks(teams),
		StartWeek: start,
	}
}
