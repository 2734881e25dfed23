package hub

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sam-maryland/sleeper-league-hub/internal/league"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// DefaultHistorySeasons bounds how far back History walks.
const DefaultHistorySeasons = 10

// SeasonSummary describes one season of the league's history. Continuity is
// the share of owners who carried over into the following season; it is nil
// for the newest season.
type SeasonSummary struct {
	Season     string   `json:"season"`
	LeagueID   string   `json:"league_id"`
	LeagueName string   `json:"league_name"`
	Status     string   `json:"status"`
	Teams      int      `json:"teams"`
	Continuity *float64 `json:"continuity,omitempty"`
	Champion   string   `json:"champion,omitempty"`
	Owners     string   `json:"champion_owners,omitempty"`
}

// HistoryView is the chain of seasons ending at the requested league.
type HistoryView struct {
	LeagueID string          `json:"league_id"`
	Name     string          `json:"name"`
	Seasons  []SeasonSummary `json:"seasons"`
}

// History walks previous_league_id links (or the configured season map)
// back from leagueID. A failing link ends the walk rather than the request.
func (s *Service) History(ctx context.Context, leagueID string, maxSeasons int) (*HistoryView, error) {
	leagueID, err := s.resolveLeagueID(leagueID)
	if err != nil {
		return nil, err
	}
	if maxSeasons <= 0 {
		maxSeasons = DefaultHistorySeasons
	}

	current, err := s.fetchLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current league: %w", err)
	}

	view := &HistoryView{
		LeagueID: leagueID,
		Name:     fmt.Sprintf("%s (Multi-Season)", current.league.Name),
	}

	snap := current
	id := leagueID
	var following []sleeper.User
	seen := map[string]bool{}
	for len(view.Seasons) < maxSeasons && !seen[id] {
		seen[id] = true
		view.Seasons = append(view.Seasons, s.summarizeSeason(ctx, id, snap, following))
		following = snap.users

		prevID := s.previousLeagueID(leagueID, snap.league)
		if prevID == "" {
			break
		}

		prev, err := s.fetchLeague(ctx, prevID)
		if err != nil {
			s.logger.WithError(err).WithField("league_id", prevID).Warn("Stopping history walk")
			break
		}
		snap, id = prev, prevID
	}

	return view, nil
}

// summarizeSeason describes one season; following holds the users of the
// season after it and is nil for the newest season.
func (s *Service) summarizeSeason(ctx context.Context, leagueID string, snap *leagueSnapshot, following []sleeper.User) SeasonSummary {
	summary := SeasonSummary{
		Season:     snap.league.Season,
		LeagueID:   leagueID,
		LeagueName: snap.league.Name,
		Status:     snap.league.Status,
		Teams:      len(snap.rosters),
	}
	if following != nil {
		overlap := ownerOverlap(following, snap.users)
		summary.Continuity = &overlap
	}

	if snap.league.Status != "complete" {
		return summary
	}

	bracket, err := s.client.GetWinnersBracket(ctx, leagueID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"league_id": leagueID,
			"season":    summary.Season,
		}).Warn("Winners bracket unavailable")
		return summary
	}

	final := sleeper.ApplyPlayoffPlacements(sleeper.RankRosters(snap.rosters, sleeper.TiebreakOrder(snap.league)), bracket)
	if len(final) == 0 || !hasPlacements(bracket) {
		return summary
	}

	champ := final[0]
	name, owners := league.DescribeRoster(league.Roster{
		RosterID: champ.RosterID,
		OwnerID:  champ.OwnerID,
		CoOwners: champ.CoOwners,
	}, toOwners(snap.users))
	summary.Champion = name
	summary.Owners = league.FormatOwners(owners)
	return summary
}

func hasPlacements(bracket []sleeper.BracketMatchup) bool {
	for _, m := range bracket {
		if m.Place != nil && *m.Place == 1 && m.Winner != 0 {
			return true
		}
	}
	return false
}

// ownerOverlap is the share of the smaller user list present in both lists.
func ownerOverlap(users1, users2 []sleeper.User) float64 {
	if len(users1) == 0 || len(users2) == 0 {
		return 0.0
	}

	ids := make(map[string]bool, len(users1))
	for _, user := range users1 {
		ids[user.UserID] = true
	}

	overlap := 0
	for _, user := range users2 {
		if ids[user.UserID] {
			overlap++
		}
	}

	return float64(overlap) / float64(min(len(users1), len(users2)))
}
