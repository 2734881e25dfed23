package sleeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(id, wins int, pf, pa float64) Roster {
	return Roster{
		RosterID: id,
		Settings: RosterSettings{Wins: wins, FPTS: pf, FPTSAgainst: pa},
	}
}

func rankedIDs(ranked []RankedRoster) []int {
	ids := make([]int, len(ranked))
	for i, r := range ranked {
		ids[i] = r.RosterID
	}
	return ids
}

func TestRankRosters(t *testing.T) {
	rosters := []Roster{
		roster(1, 8, 1200, 1100),
		roster(2, 10, 1100, 1000),
		roster(3, 8, 1300, 1000),
		roster(4, 8, 1200, 1000),
		roster(5, 8, 1200, 1000),
	}

	ranked := RankRosters(rosters, nil)

	// 2 leads on wins, 3 on points for, 4 and 5 beat 1 on points against,
	// 4 and 5 are fully tied and fall back to roster id.
	assert.Equal(t, []int{2, 3, 4, 5, 1}, rankedIDs(ranked))
	for i, r := range ranked {
		assert.Equal(t, i+1, r.Rank)
		assert.Equal(t, i+1, r.FinalRank)
	}
}

func TestRankRosters_PointsSeeding(t *testing.T) {
	rosters := []Roster{
		roster(1, 8, 1200, 900),
		roster(2, 8, 1200, 1200),
	}

	order := TiebreakOrder(&League{Settings: LeagueSettings{PlayoffSeedType: 1}})
	assert.Equal(t, []string{TiebreakWins, TiebreakPointsFor}, order)

	// Points against is ignored so roster id breaks the tie.
	rosters[0], rosters[1] = rosters[1], rosters[0]
	assert.Equal(t, []int{1, 2}, rankedIDs(RankRosters(rosters, order)))
}

func TestRankRosters_DecimalPoints(t *testing.T) {
	a := roster(1, 5, 1000, 0)
	a.Settings.FPTSDecimal = 10
	b := roster(2, 5, 1000, 0)
	b.Settings.FPTSDecimal = 90

	assert.Equal(t, []int{2, 1}, rankedIDs(RankRosters([]Roster{a, b}, nil)))
}

func place(n int) *int { return &n }

func TestApplyPlayoffPlacements(t *testing.T) {
	ranked := RankRosters([]Roster{
		roster(1, 12, 0, 0),
		roster(2, 11, 0, 0),
		roster(3, 10, 0, 0),
		roster(4, 9, 0, 0),
		roster(5, 8, 0, 0),
		roster(6, 7, 0, 0),
	}, nil)

	bracket := []BracketMatchup{
		{Round: 1, Team1: 3, Team2: 6, Winner: 6, Loser: 3},
		{Round: 3, Team1: 2, Team2: 6, Winner: 6, Loser: 2, Place: place(1)},
		{Round: 3, Team1: 1, Team2: 4, Winner: 4, Loser: 1, Place: place(3)},
		{Round: 3, Team1: 3, Team2: 5, Winner: 5, Loser: 3, Place: place(5)},
	}

	final := ApplyPlayoffPlacements(ranked, bracket)
	require.Len(t, final, 6)
	assert.Equal(t, []int{6, 2, 4, 1, 5, 3}, rankedIDs(final))
	for i, r := range final {
		assert.Equal(t, i+1, r.FinalRank)
	}
	// Regular-season rank is preserved.
	assert.Equal(t, 6, final[0].Rank)

	// Input is not mutated.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, rankedIDs(ranked))
}

func TestApplyPlayoffPlacements_PartialBracket(t *testing.T) {
	ranked := RankRosters([]Roster{
		roster(1, 12, 0, 0),
		roster(2, 11, 0, 0),
		roster(3, 10, 0, 0),
		roster(4, 9, 0, 0),
	}, nil)

	final := ApplyPlayoffPlacements(ranked, []BracketMatchup{
		{Winner: 3, Loser: 1, Place: place(1)},
		{Winner: 0, Loser: 0, Place: place(3)},
	})
	assert.Equal(t, []int{3, 1, 2, 4}, rankedIDs(final))
}

func TestApplyPlayoffPlacements_EmptyBracket(t *testing.T) {
	ranked := RankRosters([]Roster{roster(1, 1, 0, 0), roster(2, 2, 0, 0)}, nil)
	final := ApplyPlayoffPlacements(ranked, nil)
	assert.Equal(t, rankedIDs(ranked), rankedIDs(final))
	assert.Equal(t, 1, final[0].FinalRank)
}
