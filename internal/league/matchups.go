package league

import (
	"cmp"
	"slices"
)

// MatchupStatus is the state of one game on the weekly scoreboard.
type MatchupStatus string

const (
	MatchupFinal    MatchupStatus = "final"
	MatchupLive     MatchupStatus = "live"
	MatchupUpcoming MatchupStatus = "upcoming"
)

// Matchup winners.
const (
	WinnerTeam1 = "team1"
	WinnerTeam2 = "team2"
	WinnerTie   = "tie"
)

// MatchupSide is one roster's entry for the week. Rosters with the same
// MatchupID play each other; MatchupID 0 means no opponent.
type MatchupSide struct {
	MatchupID int      `json:"-"`
	RosterID  int      `json:"roster_id"`
	TeamName  string   `json:"team_name"`
	Owners    []string `json:"owners"`
	Points    float64  `json:"points"`
}

// Game is one paired matchup. Team2 is nil when the roster has no opponent.
type Game struct {
	Number    int           `json:"number"`
	MatchupID int           `json:"matchup_id"`
	Team1     MatchupSide   `json:"team1"`
	Team2     *MatchupSide  `json:"team2"`
	Winner    string        `json:"winner,omitempty"`
	Status    MatchupStatus `json:"status"`
}

// PairMatchups builds the scoreboard from per-roster entries. Games are
// ordered by matchup id and, inside a game, by roster id; unpaired rosters
// follow as single-team games, as does any third roster reusing an id.
// Winners are only decided once the week is
// scored.
func PairMatchups(sides []MatchupSide, scored bool) []Game {
	sorted := slices.Clone(sides)
	slices.SortStableFunc(sorted, func(a, b MatchupSide) int {
		if c := boolCompare(a.MatchupID == 0, b.MatchupID == 0); c != 0 {
			return c
		}
		if c := cmp.Compare(a.MatchupID, b.MatchupID); c != 0 {
			return c
		}
		return cmp.Compare(a.RosterID, b.RosterID)
	})

	games := make([]Game, 0, len(sorted))
	for i := 0; i < len(sorted); i++ {
		game := Game{MatchupID: sorted[i].MatchupID, Team1: sorted[i]}
		if id := sorted[i].MatchupID; id != 0 && i+1 < len(sorted) && sorted[i+1].MatchupID == id {
			opponent := sorted[i+1]
			game.Team2 = &opponent
			i++
		}
		if scored && game.Team2 != nil {
			game.Winner = decideWinner(game.Team1.Points, game.Team2.Points)
		}
		game.Status = GameStatus(game)
		game.Number = len(games) + 1
		games = append(games, game)
	}
	return games
}

// GameStatus is final once a winner is known, live when anyone has scored
// and upcoming otherwise.
func GameStatus(g Game) MatchupStatus {
	if g.Winner != "" {
		return MatchupFinal
	}
	if g.Team1.Points > 0 || (g.Team2 != nil && g.Team2.Points > 0) {
		return MatchupLive
	}
	return MatchupUpcoming
}

func decideWinner(p1, p2 float64) string {
	switch {
	case p1 > p2:
		return WinnerTeam1
	case p2 > p1:
		return WinnerTeam2
	default:
		return WinnerTie
	}
}

// boolCompare orders false before true.
func boolCompare(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
