package league

import (
	"math"
	"strings"
)

// StandingsTeam is one team of the live standings as reported by the provider.
type StandingsTeam struct {
	RosterID      int      `json:"roster_id"`
	Rank          int      `json:"rank"`
	TeamName      string   `json:"team_name"`
	Owners        []string `json:"owners"`
	OwnerIDs      []string `json:"owner_ids"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	PointsFor     float64  `json:"points_for"`
	PointsAgainst float64  `json:"points_against"`
	Division      int      `json:"division,omitempty"`
	Record        string   `json:"record"`
}

// Standings is the live standings view.
type Standings struct {
	Teams []StandingsTeam `json:"teams"`
	Grouping[StandingsTeam]
}

// BuildStandings orders teams by rank, fills in the record string and groups
// them by division when the league names its divisions.
func BuildStandings(teams []StandingsTeam, divisionNames map[int]string) Standings {
	sorted := make([]StandingsTeam, len(teams))
	copy(sorted, teams)
	for i := range sorted {
		sorted[i].Record = FormatRecord(sorted[i].Wins, sorted[i].Losses, sorted[i].Ties)
	}
	SortByFinalRank(sorted, standingsRank)

	return Standings{
		Teams:    sorted,
		Grouping: GroupByDivisionNumber(sorted, divisionNames, standingsDivision, standingsRank),
	}
}

func standingsRank(t StandingsTeam) *int { return intPtr(t.Rank) }

func standingsDivision(t StandingsTeam) int { return t.Division }

// SeasonState is the provider's view of where the NFL calendar is.
type SeasonState struct {
	Season     string
	SeasonType string
	Week       int
}

// OutOfSeason reports whether the provider places the calendar in the
// preseason or the offseason.
func (s SeasonState) OutOfSeason() bool {
	switch strings.ToLower(s.SeasonType) {
	case "pre", "off":
		return true
	}
	return false
}

// IsPreseason reports whether live standings are meaningless yet: either the
// provider says the season has not started ("pre" or "off"), or no team has
// scored a point.
func IsPreseason(state SeasonState, points []float64) bool {
	if state.OutOfSeason() {
		return true
	}
	for _, p := range points {
		if p != 0 && !math.IsNaN(p) {
			return false
		}
	}
	return true
}
