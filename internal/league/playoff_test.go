package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededTeams(n int) []StandingsTeam {
	teams := make([]StandingsTeam, 0, n)
	for i := n; i >= 1; i-- {
		teams = append(teams, StandingsTeam{Rank: i, TeamName: ordinal(i) + " team"})
	}
	return teams
}

func TestBuildPlayoffPicture_SixTeams(t *testing.T) {
	pic := BuildPlayoffPicture(PlayoffFormat{Teams: 6, Weeks: 3, StartWeek: 15}, seededTeams(10))

	require.Len(t, pic.Rounds, 3)
	wildCard := pic.Rounds[0]
	assert.Equal(t, 15, wildCard.Week)
	require.Len(t, wildCard.Games, 2)
	assert.Equal(t, 3, wildCard.Games[0].Top.Seed)
	assert.Equal(t, "3rd team", wildCard.Games[0].Top.TeamName)
	assert.Equal(t, 6, wildCard.Games[0].Bottom.Seed)
	require.Len(t, wildCard.Byes, 2)
	assert.Equal(t, "1st seed", wildCard.Byes[0].Label)
	assert.Equal(t, 17, pic.Rounds[2].Week)
}

func TestBuildPlayoffPicture_FourAndEight(t *testing.T) {
	four := BuildPlayoffPicture(PlayoffFormat{Teams: 4, Weeks: 2, StartWeek: 14}, seededTeams(3))
	require.Len(t, four.Rounds, 2)
	assert.Equal(t, 4, four.Rounds[0].Games[0].Bottom.Seed)
	assert.Empty(t, four.Rounds[0].Games[0].Bottom.TeamName, "not enough teams to fill seed 4")

	eight := BuildPlayoffPicture(PlayoffFormat{Teams: 8, Weeks: 3, StartWeek: 15}, seededTeams(8))
	require.Len(t, eight.Rounds, 3)
	assert.Len(t, eight.Rounds[0].Games, 4)
	assert.Equal(t, "8th team", eight.Rounds[0].Games[0].Bottom.TeamName)
}

func TestBuildPlayoffPicture_Generic(t *testing.T) {
	pic := BuildPlayoffPicture(PlayoffFormat{Teams: 5, Weeks: 3, StartWeek: 15}, nil)
	assert.Empty(t, pic.Rounds)
	assert.Equal(t, "5 teams make playoffs, 3 weeks of playoffs, starts week 15", pic.Summary)
}

func TestPlayoffWeeks(t *testing.T) {
	assert.Equal(t, 0, PlayoffWeeks(1))
	assert.Equal(t, 1, PlayoffWeeks(2))
	assert.Equal(t, 2, PlayoffWeeks(4))
	assert.Equal(t, 3, PlayoffWeeks(6))
	assert.Equal(t, 3, PlayoffWeeks(8))
	assert.Equal(t, 4, PlayoffWeeks(12))
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd"} {
		assert.Equal(t, want, ordinal(n))
	}
}
