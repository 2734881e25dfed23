package hub

import (
	"cmp"
	"context"
	"slices"

	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// LeagueMember is one user of the league and the roster they hold, if any.
type LeagueMember struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username,omitempty"`
	TeamName    string `json:"team_name,omitempty"`
	RosterID    int    `json:"roster_id,omitempty"`
	CoOwner     bool   `json:"co_owner"`
}

// MembersView lists a league's users ordered by roster id; users without a
// roster come last.
type MembersView struct {
	LeagueID string         `json:"league_id"`
	Season   string         `json:"season"`
	Members  []LeagueMember `json:"members"`
}

// Members lists the league's users with the roster each one owns or co-owns.
func (s *Service) Members(ctx context.Context, leagueID string) (*MembersView, error) {
	leagueID, err := s.resolveLeagueID(leagueID)
	if err != nil {
		return nil, err
	}

	snap, err := s.fetchLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return &MembersView{
		LeagueID: leagueID,
		Season:   snap.league.Season,
		Members:  leagueMembers(snap.users, snap.rosters),
	}, nil
}

func leagueMembers(users []sleeper.User, rosters []sleeper.Roster) []LeagueMember {
	type holding struct {
		rosterID int
		coOwner  bool
	}
	held := make(map[string]holding)
	for _, r := range rosters {
		for _, id := range r.CoOwners {
			if _, ok := held[id]; !ok {
				held[id] = holding{rosterID: r.RosterID, coOwner: true}
			}
		}
		if r.OwnerID != "" {
			held[r.OwnerID] = holding{rosterID: r.RosterID}
		}
	}

	members := make([]LeagueMember, len(users))
	for i, u := range users {
		h := held[u.UserID]
		members[i] = LeagueMember{
			UserID:      u.UserID,
			DisplayName: u.Name(),
			Username:    u.Username,
			TeamName:    u.Metadata.TeamName,
			RosterID:    h.rosterID,
			CoOwner:     h.coOwner,
		}
	}

	slices.SortStableFunc(members, func(a, b LeagueMember) int {
		if (a.RosterID == 0) != (b.RosterID == 0) {
			if a.RosterID == 0 {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.RosterID, b.RosterID)
	})
	return members
}
