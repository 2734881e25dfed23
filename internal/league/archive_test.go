package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArchive_ExampleSeason(t *testing.T) {
	rows := []SeasonRow{
		row("2023", "Carol", 2, 8, 5, 1500.2, "West"),
		row("2023", "Alice", 1, 10, 3, 1650.5, "East"),
		row("2023", "Bob", 1, 10, 3, 1650.5, "East"),
	}

	archive := BuildArchive(rows, ArchiveOptions{CurrentSeason: "2025"})

	require.Len(t, archive, 1)
	year := archive[0]
	assert.Equal(t, "2023", year.Year)
	require.Len(t, year.Teams, 2)
	assert.Equal(t, []string{"Alice", "Bob"}, year.Teams[0].Owners)
	assert.Equal(t, []string{"Carol"}, year.Teams[1].Owners)

	require.NotNil(t, year.Champion)
	assert.Equal(t, []string{"Alice", "Bob"}, year.Champion.Owners)

	require.True(t, year.HasDivisions)
	require.Len(t, year.Divisions, 2)
	assert.Equal(t, "East", year.Divisions[0].Name)
	assert.Equal(t, []string{"Alice", "Bob"}, year.Divisions[0].Teams[0].Owners)
	assert.Equal(t, "West", year.Divisions[1].Name)
	assert.Equal(t, []string{"Carol"}, year.Divisions[1].Teams[0].Owners)
}

func TestBuildArchive_YearsAndCurrentSeason(t *testing.T) {
	rows := []SeasonRow{
		row("2022", "A", 1, 10, 3, 1600, ""),
		row("2025", "B", 1, 2, 0, 200, ""),
		row("2024", "C", 2, 9, 4, 1550, ""),
		row("2024", "D", 1, 11, 2, 1700, ""),
		row("2023", "E", 3, 6, 7, 1400, ""),
	}

	archive := BuildArchive(rows, ArchiveOptions{
		CurrentSeason: "2025",
		LeagueNames:   map[string]string{"2024": "The Dynasty League"},
	})

	require.Len(t, archive, 3)
	assert.Equal(t, "2024", archive[0].Year)
	assert.Equal(t, "The Dynasty League", archive[0].LeagueName)
	assert.Equal(t, "2023", archive[1].Year)
	assert.Empty(t, archive[1].LeagueName)
	assert.Equal(t, "2022", archive[2].Year)

	assert.Equal(t, []string{"D"}, archive[0].Teams[0].Owners)
	assert.False(t, archive[0].HasDivisions)
	assert.Nil(t, archive[1].Champion, "no rank-1 team that year")
}

func TestBuildArchive_IncompleteYear(t *testing.T) {
	incomplete := row("2019", "Old", 1, 10, 3, 1600, "")
	incomplete.FinalRank = nil

	archive := BuildArchive([]SeasonRow{incomplete}, ArchiveOptions{})

	require.Len(t, archive, 1)
	assert.NotNil(t, archive[0].Teams)
	assert.Empty(t, archive[0].Teams)
	assert.Nil(t, archive[0].Champion)
	assert.False(t, archive[0].HasDivisions)
}

func TestBuildArchive_Empty(t *testing.T) {
	archive := BuildArchive(nil, ArchiveOptions{CurrentSeason: "2025"})
	assert.NotNil(t, archive)
	assert.Empty(t, archive)
}

func TestCompareYearsDesc(t *testing.T) {
	assert.Equal(t, -1, compareYearsDesc("2024", "2023"))
	assert.Equal(t, 1, compareYearsDesc("999", "2023"))
	assert.Equal(t, 1, compareYearsDesc("a", "b"))
}

func TestSeasonAwards(t *testing.T) {
	rows := []SeasonRow{
		row("2023", "Carol", 2, 8, 5, 1720.4, "West"),
		row("2023", "Alice", 1, 10, 3, 1650.5, "East"),
		row("2023", "Dan", 4, 5, 8, 1300, "West"),
		row("2023", "Bob", 1, 10, 3, 1650.5, "East"),
		row("2023", "Eve", 3, 6, 7, 1410, "East"),
		row("2023", "Finn", 4, 5, 8, 1300, "West"),
	}

	year := BuildArchive(rows, ArchiveOptions{})[0]
	awards := year.Awards

	require.NotNil(t, awards.Champion)
	assert.Equal(t, []string{"Alice", "Bob"}, awards.Champion.Owners, "co-owners share the title")
	require.NotNil(t, awards.PointsLeader)
	assert.Equal(t, []string{"Carol"}, awards.PointsLeader.Owners)
	require.NotNil(t, awards.ToiletBowl)
	assert.Equal(t, []string{"Dan", "Finn"}, awards.ToiletBowl.Owners, "co-owned last place is one team")
}

func TestSeasonAwards_Ties(t *testing.T) {
	teams := []LogicalTeam{
		{Owners: []string{"C"}, FinalRank: intPtr(3), TotalPoints: floatPtr(1500)},
		{Owners: []string{"A"}, FinalRank: intPtr(1), TotalPoints: floatPtr(1500)},
		{Owners: []string{"D"}, FinalRank: intPtr(3), TotalPoints: floatPtr(1200)},
		{Owners: []string{"B"}, FinalRank: intPtr(2), TotalPoints: nil},
	}

	awards := SeasonAwards(teams)

	assert.Equal(t, []string{"A"}, awards.PointsLeader.Owners, "equal points go to the better finish")
	assert.Equal(t, []string{"C"}, awards.ToiletBowl.Owners, "equal worst ranks keep input order")
	assert.Equal(t, []string{"C"}, teams[0].Owners, "input is not reordered")
}

func TestSeasonAwards_Sparse(t *testing.T) {
	assert.Equal(t, Awards{}, SeasonAwards(nil))

	single := SeasonAwards([]LogicalTeam{{Owners: []string{"A"}, FinalRank: intPtr(1)}})
	require.NotNil(t, single.Champion)
	assert.Nil(t, single.PointsLeader, "no points recorded")
	assert.Nil(t, single.ToiletBowl)

	noPoints := SeasonAwards([]LogicalTeam{
		{Owners: []string{"A"}, FinalRank: intPtr(2)},
		{Owners: []string{"B"}, FinalRank: intPtr(5)},
	})
	assert.Nil(t, noPoints.Champion)
	assert.Nil(t, noPoints.PointsLeader)
	assert.Equal(t, []string{"B"}, noPoints.ToiletBowl.Owners)
}
