package league

import (
	"cmp"
	"slices"
	"strconv"
)

// YearSummary is the archive view of one completed season.
type YearSummary struct {
	Year       string        `json:"year"`
	LeagueName string        `json:"league_name,omitempty"`
	Teams      []LogicalTeam `json:"teams"`
	Champion   *LogicalTeam  `json:"champion"`
	Awards     Awards        `json:"awards"`
	Grouping[LogicalTeam]
}

// Awards are the titles derived from a season's final table. Each is nil
// when no team qualifies.
type Awards struct {
	Champion     *LogicalTeam `json:"league_champion"`
	PointsLeader *LogicalTeam `json:"points_leader"`
	ToiletBowl   *LogicalTeam `json:"toilet_bowl"`
}

// ArchiveOptions configures BuildArchive. CurrentSeason is excluded from the
// archive; LeagueNames optionally names the league per year.
type ArchiveOptions struct {
	CurrentSeason string
	LeagueNames   map[string]string
}

// BuildArchive turns persisted season rows into per-year summaries, most
// recent year first. Within a year co-owner rows are merged, teams are ordered
// by final rank and grouped by division when any team has one.
func BuildArchive(rows []SeasonRow, opts ArchiveOptions) []YearSummary {
	var years []string
	byYear := make(map[string][]SeasonRow)
	for _, row := range rows {
		if row.Year == opts.CurrentSeason {
			continue
		}
		if _, ok := byYear[row.Year]; !ok {
			years = append(years, row.Year)
		}
		byYear[row.Year] = append(byYear[row.Year], row)
	}

	slices.SortFunc(years, compareYearsDesc)

	summaries := make([]YearSummary, 0, len(years))
	for _, year := range years {
		summaries = append(summaries, summarizeYear(year, byYear[year], opts.LeagueNames[year]))
	}
	return summaries
}

func summarizeYear(year string, rows []SeasonRow, leagueName string) YearSummary {
	teams := MergeCoOwners(rows)
	if teams == nil {
		teams = []LogicalTeam{}
	}
	SortByFinalRank(teams, teamRank)

	return YearSummary{
		Year:       year,
		LeagueName: leagueName,
		Teams:      teams,
		Champion:   Champion(teams),
		Awards:     SeasonAwards(teams),
		Grouping:   GroupByDivisionName(teams, teamDivision, teamRank),
	}
}

// SeasonAwards picks the champion (rank 1), the points leader (most total
// points, teams without points ignored) and the toilet bowl (worst final
// rank). Ties go to the team listed first in final-rank order. A year with
// a single ranked team has no toilet bowl.
func SeasonAwards(teams []LogicalTeam) Awards {
	ranked := slices.Clone(teams)
	SortByFinalRank(ranked, teamRank)

	awards := Awards{Champion: Champion(ranked)}

	var leader, worst *LogicalTeam
	rankedCount := 0
	for i := range ranked {
		t := &ranked[i]
		if t.TotalPoints != nil && (leader == nil || *t.TotalPoints > *leader.TotalPoints) {
			leader = t
		}
		if !hasRank(t.FinalRank) {
			continue
		}
		rankedCount++
		if worst == nil || CompareFinalRank(t.FinalRank, worst.FinalRank) > 0 {
			worst = t
		}
	}

	if leader != nil {
		awards.PointsLeader = copyPtr(leader)
	}
	if worst != nil && rankedCount > 1 {
		awards.ToiletBowl = copyPtr(worst)
	}
	return awards
}

// Champion returns the team with final rank 1, or nil.
func Champion(teams []LogicalTeam) *LogicalTeam {
	for i := range teams {
		if teams[i].FinalRank != nil && *teams[i].FinalRank == 1 {
			champ := teams[i]
			return &champ
		}
	}
	return nil
}

// compareYearsDesc orders numeric years newest first and falls back to a
// reverse string comparison for anything that is not a number.
func compareYearsDesc(a, b string) int {
	ai, aErr := strconv.Atoi(a)
	bi, bErr := strconv.Atoi(b)
	if aErr == nil && bErr == nil {
		return cmp.Compare(bi, ai)
	}
	return cmp.Compare(b, a)
}
