package hub

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-maryland/sleeper-league-hub/internal/config"
	"github.com/sam-maryland/sleeper-league-hub/internal/league"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper/sleepertest"
)

func place(n int) *int { return &n }

func testUsers() []sleeper.User {
	return []sleeper.User{
		{UserID: "1", DisplayName: "Alice", Metadata: sleeper.UserMetadata{TeamName: "Gridiron Gang"}},
		{UserID: "2", DisplayName: "Bob"},
		{UserID: "3", DisplayName: "Carol", Metadata: sleeper.UserMetadata{TeamName: "Carol's Crushers"}},
		{UserID: "4", DisplayName: "Dave"},
		{UserID: "5", DisplayName: "Erin"},
	}
}

func withStats(r sleeper.Roster, wins, losses int, pf float64, division int) sleeper.Roster {
	r.Settings = sleeper.RosterSettings{Wins: wins, Losses: losses, FPTS: pf, Division: division}
	return r
}

// testSeasons: Alice and Bob co-own a team in both seasons (listed in a
// different order), Carol won the 2024 title, Dave left and Erin joined.
func testSeasons() map[string]sleepertest.Season {
	return map[string]sleepertest.Season{
		"L25": {
			League: sleeper.League{
				LeagueID: "L25", PreviousLeagueID: "L24", Name: "Hub League", Season: "2025", Status: "pre_draft",
				Settings: sleeper.LeagueSettings{PlayoffTeams: 6, PlayoffWeekStart: 15},
				Metadata: map[string]interface{}{"division_1": "East", "division_2": "West"},
			},
			Users: testUsers(),
			Rosters: []sleeper.Roster{
				{RosterID: 1, OwnerID: "2", CoOwners: []string{"1"}, Settings: sleeper.RosterSettings{Division: 1}},
				{RosterID: 2, OwnerID: "3", Settings: sleeper.RosterSettings{Division: 2}},
				{RosterID: 3, OwnerID: "5", Settings: sleeper.RosterSettings{Division: 1}},
			},
		},
		"L24": {
			League: sleeper.League{
				LeagueID: "L24", Name: "Hub League", Season: "2024", Status: "complete",
			},
			Users: testUsers()[:4],
			Rosters: []sleeper.Roster{
				withStats(sleeper.Roster{RosterID: 7, OwnerID: "1", CoOwners: []string{"2"}}, 10, 4, 1600, 0),
				withStats(sleeper.Roster{RosterID: 8, OwnerID: "3"}, 8, 6, 1500, 0),
				withStats(sleeper.Roster{RosterID: 9, OwnerID: "4"}, 5, 9, 1300, 0),
			},
			Bracket: []sleeper.BracketMatchup{
				{Round: 2, Team1: 7, Team2: 8, Winner: 8, Loser: 7, Place: place(1)},
			},
		},
	}
}

func noShuffle(int, func(i, j int)) {}

func newTestService(client sleeper.Client, opts Options) *Service {
	logger, _ := test.NewNullLogger()
	if opts.LeagueID == "" {
		opts.LeagueID = "L25"
	}
	if opts.Generator == nil {
		opts.Generator = &league.PreseasonGenerator{Shuffle: noShuffle}
	}
	return NewService(client, opts, logger)
}

func rosterIDs(teams []league.TeamMapping) []int {
	ids := make([]int, len(teams))
	for i, t := range teams {
		ids[i] = t.RosterID
	}
	return ids
}

func TestStandings_PreseasonWhenNoPoints(t *testing.T) {
	client := sleepertest.NewMockClient(&sleeper.NFLState{Season: "2025", SeasonType: "regular", Week: 1}, testSeasons())
	svc := newTestService(client, Options{})

	view, err := svc.Standings(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, PhasePreseason, view.Phase)
	assert.Nil(t, view.Standings)
	require.NotNil(t, view.Preseason)

	p := view.Preseason
	assert.False(t, p.Skipped)
	assert.Equal(t, "L24", p.PreviousLeagueID)
	// Carol won the title, Alice & Bob were runners-up, Erin is new.
	assert.Equal(t, []int{2, 1, 3}, rosterIDs(p.Ranking.Teams))
	assert.True(t, p.Ranking.Teams[0].IsReturning)
	assert.Equal(t, "8-6", p.Ranking.Teams[0].PreviousRecord)
	assert.True(t, p.Ranking.Teams[1].IsReturning)
	assert.Equal(t, []string{"Bob", "Alice"}, p.Ranking.Teams[1].Owners)
	assert.False(t, p.Ranking.Teams[2].IsReturning)

	require.True(t, p.Ranking.HasDivisions)
	assert.Equal(t, "East", p.Ranking.Divisions[0].Name)
	assert.Equal(t, []int{1, 3}, rosterIDs(p.Ranking.Divisions[0].Teams))
}

func TestStandings_PreseasonBySeasonType(t *testing.T) {
	seasons := testSeasons()
	cur := seasons["L25"]
	cur.Rosters[0] = withStats(cur.Rosters[0], 1, 0, 120, 1)
	seasons["L25"] = cur

	client := sleepertest.NewMockClient(&sleeper.NFLState{Season: "2025", SeasonType: "pre"}, seasons)
	view, err := newTestService(client, Options{}).Standings(context.Background(), "L25")
	require.NoError(t, err)
	assert.Equal(t, PhasePreseason, view.Phase)
	assert.Equal(t, "pre", view.SeasonType)
}

func TestStandings_Live(t *testing.T) {
	seasons := testSeasons()
	cur := seasons["L25"]
	cur.Rosters = []sleeper.Roster{
		withStats(cur.Rosters[0], 2, 1, 350.5, 1),
		withStats(cur.Rosters[1], 3, 0, 400, 2),
		withStats(cur.Rosters[2], 0, 3, 250, 1),
	}
	seasons["L25"] = cur

	client := sleepertest.NewMockClient(&sleeper.NFLState{Season: "2025", SeasonType: "regular", Week: 4}, seasons)
	view, err := newTestService(client, Options{}).Standings(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, PhaseLive, view.Phase)
	require.NotNil(t, view.Standings)
	assert.Nil(t, view.Preseason)

	teams := view.Standings.Teams
	require.Len(t, teams, 3)
	assert.Equal(t, 2, teams[0].RosterID)
	assert.Equal(t, "Carol's Crushers", teams[0].TeamName)
	assert.Equal(t, "3-0", teams[0].Record)
	assert.Equal(t, 1, teams[1].RosterID)
	assert.Equal(t, "Bob", teams[1].TeamName)

	require.True(t, view.Standings.HasDivisions)
	require.Len(t, view.Standings.Divisions, 2)
	assert.Equal(t, "East", view.Standings.Divisions[0].Name)
	assert.Len(t, view.Standings.Divisions[0].Teams, 2)
	assert.Equal(t, "West", view.Standings.Divisions[1].Name)
}

func TestStandings_DivisionOverrides(t *testing.T) {
	seasons := testSeasons()
	cur := seasons["L25"]
	cur.Rosters[0] = withStats(cur.Rosters[0], 1, 0, 100, 1)
	seasons["L25"] = cur

	settings := &config.LeagueConfig{Leagues: map[string]config.LeagueSettings{
		"L25": {DivisionNames: map[int]string{1: "Atlantic"}},
	}}
	client := sleepertest.NewMockClient(&sleeper.NFLState{SeasonType: "regular"}, seasons)
	view, err := newTestService(client, Options{Settings: settings}).Standings(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, view.Standings)
	assert.Equal(t, "Atlantic", view.Standings.Divisions[0].Name)
}

func TestStandings_StateFailureTolerated(t *testing.T) {
	client := sleepertest.NewMockClient(nil, testSeasons())
	view, err := newTestService(client, Options{}).Standings(context.Background(), "")
	require.NoError(t, err)
	// All-zero points still mark the preseason.
	assert.Equal(t, PhasePreseason, view.Phase)
	assert.Empty(t, view.SeasonType)
}

func TestStandings_CurrentLeagueFailure(t *testing.T) {
	client := sleepertest.NewMockClient(&sleeper.NFLState{}, testSeasons())
	_, err := newTestService(client, Options{}).Standings(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, sleeper.IsNotFound(err))
}

func TestStandings_NoLeague(t *testing.T) {
	logger, _ := test.NewNullLogger()
	svc := NewService(&sleepertest.MockClient{}, Options{}, logger)
	_, err := svc.Standings(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoLeague)
}

func TestPreseasonRanking_PriorFailureDegradesToEmpty(t *testing.T) {
	seasons := testSeasons()
	cur := seasons["L25"]
	cur.League.PreviousLeagueID = "gone"
	seasons["L25"] = cur

	client := sleepertest.NewMockClient(nil, seasons)
	view, err := newTestService(client, Options{}).PreseasonRanking(context.Background(), "")
	require.NoError(t, err)

	assert.False(t, view.Skipped)
	assert.NotEmpty(t, view.Notice)
	assert.Empty(t, view.Ranking.Teams)
	assert.NotNil(t, view.Ranking.Teams)
	assert.False(t, view.Ranking.HasDivisions)
}

func TestPreseasonRanking_BracketFailureUsesRegularSeason(t *testing.T) {
	client := sleepertest.NewMockClient(nil, testSeasons())
	client.GetWinnersBracketFunc = func(string) ([]sleeper.BracketMatchup, error) {
		return nil, errors.New("bracket down")
	}

	view, err := newTestService(client, Options{}).PreseasonRanking(context.Background(), "")
	require.NoError(t, err)
	// Alice & Bob had the better regular season.
	assert.Equal(t, []int{1, 2, 3}, rosterIDs(view.Ranking.Teams))
}

func TestPreseasonRanking_ConfiguredPreviousSeason(t *testing.T) {
	seasons := testSeasons()
	cur := seasons["L25"]
	cur.League.PreviousLeagueID = ""
	seasons["L25"] = cur

	client := sleepertest.NewMockClient(nil, seasons)

	view, err := newTestService(client, Options{}).PreseasonRanking(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, view.Skipped)
	assert.Empty(t, view.Ranking.Teams)

	settings := &config.LeagueConfig{Leagues: map[string]config.LeagueSettings{
		"L25": {Seasons: map[string]string{"2024": "L24"}},
	}}
	view, err = newTestService(client, Options{Settings: settings}).PreseasonRanking(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, view.Skipped)
	assert.Equal(t, "L24", view.PreviousLeagueID)
	assert.Len(t, view.Ranking.Teams, 3)
}

func TestPlayoffPicture(t *testing.T) {
	client := sleepertest.NewMockClient(nil, testSeasons())
	view, err := newTestService(client, Options{}).PlayoffPicture(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "2025", view.Season)
	assert.Equal(t, league.PlayoffFormat{Teams: 6, Weeks: 3, StartWeek: 15}, view.Picture.Format)
	assert.Equal(t, "6 teams make playoffs, 3 weeks of playoffs, starts week 15", view.Picture.Summary)
	assert.NotEmpty(t, view.Picture.Rounds)
}

func TestPlayoffFormat_Defaults(t *testing.T) {
	format := playoffFormat(&sleeper.League{})
	assert.Equal(t, league.PlayoffFormat{Teams: 6, Weeks: 3, StartWeek: 15}, format)

	format = playoffFormat(&sleeper.League{Settings: sleeper.LeagueSettings{PlayoffTeams: 4, PlayoffWeekStart: 16}})
	assert.Equal(t, league.PlayoffFormat{Teams: 4, Weeks: 2, StartWeek: 16}, format)
}
