package sleeper

import (
	"fmt"
	"strconv"
)

// League represents a Sleeper fantasy league season
type League struct {
	LeagueID         string                 `json:"league_id"`
	PreviousLeagueID string                 `json:"previous_league_id"`
	Name             string                 `json:"name"`
	Status           string                 `json:"status"`
	Sport            string                 `json:"sport"`
	Season           string                 `json:"season"`
	SeasonType       string                 `json:"season_type"`
	Settings         LeagueSettings         `json:"settings"`
	Metadata         map[string]interface{} `json:"metadata"`
	TotalRosters     int                    `json:"total_rosters"`
	DraftID          string                 `json:"draft_id"`
	Avatar           string                 `json:"avatar"`
}

// LeagueSettings contains league configuration
type LeagueSettings struct {
	PlayoffTeams         int `json:"playoff_teams"`
	PlayoffWeekStart     int `json:"playoff_week_start"`
	PlayoffWeeksPerMatch int `json:"playoff_weeks_per_matchup"`
	PlayoffRoundType     int `json:"playoff_round_type"`
	PlayoffSeedType      int `json:"playoff_seed_type"`
	PlayoffType          int `json:"playoff_type"`
	NumTeams             int `json:"num_teams"`
	Divisions            int `json:"divisions"`
	StartWeek            int `json:"start_week"`
	LastScoredLeg        int `json:"last_scored_leg"`
	Leg                  int `json:"leg"`
}

// maxDivisions bounds the division_N metadata keys that are inspected.
const maxDivisions = 10

// DivisionNames returns the names stored under the division_1..division_10
// metadata keys. Leagues without divisions return an empty map.
func (l *League) DivisionNames() map[int]string {
	names := make(map[int]string)
	for i := 1; i <= maxDivisions; i++ {
		raw, ok := l.Metadata["division_"+strconv.Itoa(i)]
		if !ok || raw == nil {
			continue
		}
		name := fmt.Sprint(raw)
		if name == "" {
			continue
		}
		names[i] = name
	}
	return names
}

// User represents a Sleeper user
type User struct {
	UserID      string       `json:"user_id"`
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar"`
	Metadata    UserMetadata `json:"metadata"`
}

// UserMetadata holds the per-league fields a user sets on their team
type UserMetadata struct {
	TeamName string `json:"team_name"`
}

// Name returns the display name, falling back to the username
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}

// Roster represents a team's roster
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	CoOwners []string       `json:"co_owners"`
	LeagueID string         `json:"league_id"`
	Players  []string       `json:"players"`
	Starters []string       `json:"starters"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings contains team performance data
type RosterSettings struct {
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	Ties               int     `json:"ties"`
	FPTS               float64 `json:"fpts"`
	FPTSDecimal        float64 `json:"fpts_decimal"`
	FPTSAgainst        float64 `json:"fpts_against"`
	FPTSAgainstDecimal float64 `json:"fpts_against_decimal"`
	TotalMoves         int     `json:"total_moves"`
	WaiverPosition     int     `json:"waiver_position"`
	Division           int     `json:"division,omitempty"`
}

// PointsFor combines Sleeper's whole and hundredths point fields
func (s RosterSettings) PointsFor() float64 {
	return s.FPTS + s.FPTSDecimal/100
}

// PointsAgainst combines Sleeper's whole and hundredths point-against fields
func (s RosterSettings) PointsAgainst() float64 {
	return s.FPTSAgainst + s.FPTSAgainstDecimal/100
}

// NFLState is Sleeper's view of the current NFL calendar
type NFLState struct {
	Week           int    `json:"week"`
	DisplayWeek    int    `json:"display_week"`
	Season         string `json:"season"`
	SeasonType     string `json:"season_type"`
	LeagueSeason   string `json:"league_season"`
	PreviousSeason string `json:"previous_season"`
}

// Matchup is one roster's side of a weekly matchup. Rosters sharing a
// MatchupID play each other; a zero MatchupID means no opponent.
type Matchup struct {
	RosterID       int                `json:"roster_id"`
	MatchupID      int                `json:"matchup_id"`
	Points         float64            `json:"points"`
	CustomPoints   *float64           `json:"custom_points"`
	Starters       []string           `json:"starters"`
	StartersPoints []float64          `json:"starters_points"`
	PlayersPoints  map[string]float64 `json:"players_points"`
}

// Score returns the commissioner override when set, otherwise the scored points
func (m Matchup) Score() float64 {
	if m.CustomPoints != nil {
		return *m.CustomPoints
	}
	return m.Points
}

// BracketMatchup represents a playoff bracket matchup from Sleeper's bracket API
type BracketMatchup struct {
	MatchupID int                    `json:"m"`           // matchup number
	Round     int                    `json:"r"`           // round (1=first round)
	Winner    int                    `json:"w"`           // winner roster ID
	Loser     int                    `json:"l"`           // loser roster ID
	Team1     int                    `json:"t1"`          // team 1 roster ID
	Team2     int                    `json:"t2"`          // team 2 roster ID
	Place     *int                   `json:"p,omitempty"` // place decided by this game (1 = championship)
	Team1From map[string]interface{} `json:"t1_from,omitempty"`
	Team2From map[string]interface{} `json:"t2_from,omitempty"`
}

// SleeperError represents an error from the Sleeper API
type SleeperError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	LeagueID   string `json:"league_id,omitempty"`
}

func (e *SleeperError) Error() string {
	return e.Message
}
