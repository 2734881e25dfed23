package sleeper

import (
	"cmp"
	"slices"
)

// Tiebreakers understood by RankRosters.
const (
	TiebreakWins          = "wins"
	TiebreakPointsFor     = "points_for"
	TiebreakPointsAgainst = "points_against"
)

// RankedRoster pairs a roster with its position in the league table.
type RankedRoster struct {
	Roster
	Rank      int
	FinalRank int
}

// TiebreakOrder returns the tiebreakers implied by the league's playoff seed
// setting. Leagues seeded on points skip points against.
func TiebreakOrder(league *League) []string {
	if league != nil && league.Settings.PlayoffSeedType == 1 {
		return []string{TiebreakWins, TiebreakPointsFor}
	}
	return []string{TiebreakWins, TiebreakPointsFor, TiebreakPointsAgainst}
}

// RankRosters orders rosters by the given tiebreakers and assigns Rank 1..N.
// Teams still tied after every tiebreaker keep their roster id order.
func RankRosters(rosters []Roster, order []string) []RankedRoster {
	if len(order) == 0 {
		order = TiebreakOrder(nil)
	}

	ranked := make([]RankedRoster, len(rosters))
	for i, r := range rosters {
		ranked[i] = RankedRoster{Roster: r}
	}

	slices.SortStableFunc(ranked, func(a, b RankedRoster) int {
		for _, tb := range order {
			if c := compareTiebreak(a.Roster, b.Roster, tb); c != 0 {
				return c
			}
		}
		return cmp.Compare(a.RosterID, b.RosterID)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].FinalRank = i + 1
	}
	return ranked
}

// compareTiebreak returns a negative value when a should be listed above b.
func compareTiebreak(a, b Roster, tiebreak string) int {
	switch tiebreak {
	case TiebreakWins:
		return cmp.Compare(b.Settings.Wins, a.Settings.Wins)
	case TiebreakPointsFor:
		return cmp.Compare(b.Settings.PointsFor(), a.Settings.PointsFor())
	case TiebreakPointsAgainst:
		// Fewer points against is better.
		return cmp.Compare(a.Settings.PointsAgainst(), b.Settings.PointsAgainst())
	default:
		return 0
	}
}

// ApplyPlayoffPlacements rewrites FinalRank using the placement games of a
// finished winners bracket. A game with p=N awards N to its winner and N+1
// to its loser. Unplaced teams follow every placed team in regular-season
// order. An empty bracket leaves the regular-season ranks untouched.
func ApplyPlayoffPlacements(ranked []RankedRoster, bracket []BracketMatchup) []RankedRoster {
	places := make(map[int]int)
	for _, m := range bracket {
		if m.Place == nil || m.Winner == 0 || m.Loser == 0 {
			continue
		}
		places[m.Winner] = *m.Place
		places[m.Loser] = *m.Place + 1
	}

	out := slices.Clone(ranked)
	if len(places) == 0 {
		return out
	}

	slices.SortStableFunc(out, func(a, b RankedRoster) int {
		pa, okA := places[a.RosterID]
		pb, okB := places[b.RosterID]
		switch {
		case okA && okB:
			return cmp.Compare(pa, pb)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return cmp.Compare(a.Rank, b.Rank)
		}
	})

	for i := range out {
		out[i].FinalRank = i + 1
	}
	return out
}
