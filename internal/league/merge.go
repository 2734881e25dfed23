package league

import "encoding/json"

// SeasonRow is one persisted season record. There is one row per owner per
// year, so a co-owned team appears once for each of its owners with identical
// performance columns.
type SeasonRow struct {
	Year        string
	MemberID    string
	MemberName  string
	TeamName    *string
	Wins        *int
	Losses      *int
	Ties        *int
	TotalPoints *float64
	FinalRank   *int
	Division    *string
}

// LogicalTeam is a season team with all of its owners collapsed into one
// entry.
type LogicalTeam struct {
	Year        string   `json:"year"`
	TeamName    *string  `json:"team_name"`
	Owners      []string `json:"owners"`
	Wins        *int     `json:"wins"`
	Losses      *int     `json:"losses"`
	Ties        *int     `json:"ties"`
	TotalPoints *float64 `json:"total_points"`
	FinalRank   *int     `json:"final_rank"`
	Division    *string  `json:"division,omitempty"`
}

// MarshalJSON adds the derived record, owner label and co-owned flag.
func (t LogicalTeam) MarshalJSON() ([]byte, error) {
	type plain LogicalTeam
	return json.Marshal(struct {
		plain
		Record     string `json:"record"`
		OwnerLabel string `json:"owner_label"`
		CoOwned    bool   `json:"co_owned"`
	}{plain(t), t.Record(), t.OwnerLabel(), t.CoOwned()})
}

// OwnerLabel is the display form of the owner list.
func (t LogicalTeam) OwnerLabel() string {
	return FormatOwners(t.Owners)
}

// CoOwned reports whether more than one owner shares the team.
func (t LogicalTeam) CoOwned() bool {
	return len(t.Owners) > 1
}

// Record renders the team's record, or "N/A" when wins or losses are unknown.
func (t LogicalTeam) Record() string {
	if t.Wins == nil || t.Losses == nil {
		return "N/A"
	}
	ties := 0
	if t.Ties != nil {
		ties = *t.Ties
	}
	return FormatRecord(*t.Wins, *t.Losses, ties)
}

func teamRank(t LogicalTeam) *int { return t.FinalRank }

func teamDivision(t LogicalTeam) *string { return t.Division }

// mergeKey is the performance tuple that identifies a logical team. Two
// distinct teams with an identical tuple in the same year are merged; there
// is no roster identifier on persisted rows to tell them apart.
type mergeKey struct {
	year        string
	rank        int
	wins        int
	losses      int
	hasLosses   bool
	points      float64
	hasPoints   bool
	division    string
	hasDivision bool
}

func keyOf(row SeasonRow, division *string) mergeKey {
	k := mergeKey{
		year: row.Year,
		rank: *row.FinalRank,
		wins: *row.Wins,
	}
	if row.Losses != nil {
		k.losses, k.hasLosses = *row.Losses, true
	}
	if row.TotalPoints != nil {
		k.points, k.hasPoints = *row.TotalPoints, true
	}
	if division != nil {
		k.division, k.hasDivision = *division, true
	}
	return k
}

// Complete reports whether the row carries a final rank and a win count.
// Incomplete rows are never shown in standings.
func (r SeasonRow) Complete() bool {
	return hasRank(r.FinalRank) && r.Wins != nil
}

// MergeCoOwners collapses season rows that describe the same team into
// logical teams. Incomplete rows are dropped. Output follows the order in
// which each team was first seen; owners are listed in input order.
func MergeCoOwners(rows []SeasonRow) []LogicalTeam {
	index := make(map[mergeKey]int)
	var teams []LogicalTeam

	for _, row := range rows {
		if !row.Complete() {
			continue
		}
		division := NormalizeDivision(row.Division)
		key := keyOf(row, division)

		if i, ok := index[key]; ok {
			teams[i].Owners = append(teams[i].Owners, row.MemberName)
			continue
		}

		index[key] = len(teams)
		teams = append(teams, LogicalTeam{
			Year:        row.Year,
			TeamName:    copyPtr(row.TeamName),
			Owners:      []string{row.MemberName},
			Wins:        copyPtr(row.Wins),
			Losses:      copyPtr(row.Losses),
			Ties:        copyPtr(row.Ties),
			TotalPoints: copyPtr(row.TotalPoints),
			FinalRank:   copyPtr(row.FinalRank),
			Division:    division,
		})
	}

	return teams
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
