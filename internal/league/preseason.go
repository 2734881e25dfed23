package league

import (
	"math/rand/v2"
	"slices"
)

// Owner is a provider user as far as the preseason ranking needs one.
type Owner struct {
	ID          string
	DisplayName string
	Username    string
	TeamName    string
}

// Name is the owner's display name, falling back to the username.
func (o Owner) Name() string {
	if o.DisplayName != "" {
		return o.DisplayName
	}
	return o.Username
}

// PriorStanding is a prior-season result keyed by prior roster id.
type PriorStanding struct {
	Rank   int
	Wins   int
	Losses int
	Ties   int
	Points float64
}

// PreseasonInput carries everything needed to rank the current season before
// any games are played.
type PreseasonInput struct {
	Current        []Roster
	Owners         map[string]Owner
	Prior          []Roster
	PriorStandings map[int]PriorStanding
	DivisionNames  map[int]string
}

// TeamMapping is one row of the preseason ranking.
type TeamMapping struct {
	Rank           int      `json:"rank"`
	RosterID       int      `json:"roster_id"`
	TeamName       string   `json:"team_name"`
	Owners         []string `json:"owners"`
	OwnerIDs       []string `json:"owner_ids"`
	IsReturning    bool     `json:"is_returning"`
	PreviousRecord string   `json:"previous_record,omitempty"`
	PreviousPoints *float64 `json:"previous_points,omitempty"`
	Division       int      `json:"division,omitempty"`

	previousRank int
}

// Ranking is the preseason order, optionally grouped by division.
type Ranking struct {
	Teams []TeamMapping `json:"teams"`
	Grouping[TeamMapping]
}

// ShuffleFunc permutes n elements by calling swap, like rand.Shuffle.
type ShuffleFunc func(n int, swap func(i, j int))

// PreseasonGenerator builds preseason rankings. Shuffle orders the teams that
// have no prior-season result; nil uses math/rand/v2.
type PreseasonGenerator struct {
	Shuffle ShuffleFunc
}

// NewPreseasonGenerator returns a generator using the default random source.
func NewPreseasonGenerator() *PreseasonGenerator {
	return &PreseasonGenerator{Shuffle: rand.Shuffle}
}

// Generate ranks every current roster. Returning teams keep the order of
// their prior-season ranks; new teams follow in random order. Ranks are
// assigned 1..N over the combined list.
func (g *PreseasonGenerator) Generate(in PreseasonInput) Ranking {
	matches := MatchRosters(in.Current, in.Prior)

	var returning, fresh []TeamMapping
	for _, roster := range in.Current {
		team := newTeamMapping(roster, in.Owners)

		match := matches[roster.RosterID]
		if match.Found {
			if prev, ok := in.PriorStandings[match.PriorRosterID]; ok && prev.Rank > 0 {
				team.IsReturning = true
				team.previousRank = prev.Rank
				team.PreviousRecord = FormatRecord(prev.Wins, prev.Losses, prev.Ties)
				points := prev.Points
				team.PreviousPoints = &points
				returning = append(returning, team)
				continue
			}
		}
		fresh = append(fresh, team)
	}

	slices.SortStableFunc(returning, func(a, b TeamMapping) int {
		return CompareFinalRank(&a.previousRank, &b.previousRank)
	})

	shuffle := g.Shuffle
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	shuffle(len(fresh), func(i, j int) {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	})

	teams := make([]TeamMapping, 0, len(returning)+len(fresh))
	teams = append(teams, returning...)
	teams = append(teams, fresh...)
	for i := range teams {
		teams[i].Rank = i + 1
	}

	return Ranking{
		Teams:    teams,
		Grouping: GroupByDivisionNumber(teams, in.DivisionNames, mappingDivision, mappingRank),
	}
}

func newTeamMapping(roster Roster, owners map[string]Owner) TeamMapping {
	name, names := DescribeRoster(roster, owners)
	return TeamMapping{
		RosterID: roster.RosterID,
		TeamName: name,
		Owners:   names,
		OwnerIDs: roster.OwnerIDs(),
		Division: roster.Division,
	}
}

// DescribeRoster resolves the team name and the names of every known owner.
// Owners missing from the map are left out of the name list.
func DescribeRoster(roster Roster, owners map[string]Owner) (string, []string) {
	var names []string
	for _, id := range roster.OwnerIDs() {
		if o, ok := owners[id]; ok && o.Name() != "" {
			names = append(names, o.Name())
		}
	}
	return teamName(roster, owners, names), names
}

// teamName prefers the primary owner's team name, then the primary owner's
// name, then the first named owner.
func teamName(roster Roster, owners map[string]Owner, names []string) string {
	if primary, ok := owners[roster.OwnerID]; ok {
		if primary.TeamName != "" {
			return primary.TeamName
		}
		if primary.DisplayName != "" {
			return primary.DisplayName
		}
	}
	if len(names) > 0 {
		return names[0]
	}
	return "Unknown Team"
}

func mappingDivision(t TeamMapping) int { return t.Division }

func mappingRank(t TeamMapping) *int { return intPtr(t.Rank) }
