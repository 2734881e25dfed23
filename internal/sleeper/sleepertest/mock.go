// Package sleepertest provides a stub sleeper.Client for tests.
package sleepertest

import (
	"context"
	"errors"

	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
)

// ErrNotImplemented is returned by MockClient methods whose func field is nil.
var ErrNotImplemented = errors.New("not implemented")

// MockClient is a mock implementation of the sleeper.Client interface for testing
type MockClient struct {
	GetLeagueFunc         func(leagueID string) (*sleeper.League, error)
	GetLeagueUsersFunc    func(leagueID string) ([]sleeper.User, error)
	GetLeagueRostersFunc  func(leagueID string) ([]sleeper.Roster, error)
	GetMatchupsFunc       func(leagueID string, week int) ([]sleeper.Matchup, error)
	GetWinnersBracketFunc func(leagueID string) ([]sleeper.BracketMatchup, error)
	GetNFLStateFunc       func() (*sleeper.NFLState, error)
}

var _ sleeper.Client = (*MockClient)(nil)

func (m *MockClient) GetLeague(_ context.Context, leagueID string) (*sleeper.League, error) {
	if m.GetLeagueFunc != nil {
		return m.GetLeagueFunc(leagueID)
	}
	return nil, ErrNotImplemented
}

func (m *MockClient) GetLeagueUsers(_ context.Context, leagueID string) ([]sleeper.User, error) {
	if m.GetLeagueUsersFunc != nil {
		return m.GetLeagueUsersFunc(leagueID)
	}
	return nil, ErrNotImplemented
}

func (m *MockClient) GetLeagueRosters(_ context.Context, leagueID string) ([]sleeper.Roster, error) {
	if m.GetLeagueRostersFunc != nil {
		return m.GetLeagueRostersFunc(leagueID)
	}
	return nil, ErrNotImplemented
}

func (m *MockClient) GetMatchups(_ context.Context, leagueID string, week int) ([]sleeper.Matchup, error) {
	if m.GetMatchupsFunc != nil {
		return m.GetMatchupsFunc(leagueID, week)
	}
	return nil, ErrNotImplemented
}

func (m *MockClient) GetWinnersBracket(_ context.Context, leagueID string) ([]sleeper.BracketMatchup, error) {
	if m.GetWinnersBracketFunc != nil {
		return m.GetWinnersBracketFunc(leagueID)
	}
	return nil, ErrNotImplemented
}

func (m *MockClient) GetNFLState(_ context.Context) (*sleeper.NFLState, error) {
	if m.GetNFLStateFunc != nil {
		return m.GetNFLStateFunc()
	}
	return nil, ErrNotImplemented
}

// Season is canned data for one league season.
type Season struct {
	League  sleeper.League
	Users   []sleeper.User
	Rosters []sleeper.Roster
	Bracket []sleeper.BracketMatchup
	// Matchups is keyed by week.
	Matchups map[int][]sleeper.Matchup
}

// NewMockClient serves the given seasons keyed by league id. Unknown ids
// answer with a not-found SleeperError.
func NewMockClient(state *sleeper.NFLState, seasons map[string]Season) *MockClient {
	notFound := func(id string) error {
		return &sleeper.SleeperError{Type: "not_found", Message: "league " + id + " not found", StatusCode: 404}
	}

	return &MockClient{
		GetLeagueFunc: func(id string) (*sleeper.League, error) {
			s, ok := seasons[id]
			if !ok {
				return nil, notFound(id)
			}
			lg := s.League
			return &lg, nil
		},
		GetLeagueUsersFunc: func(id string) ([]sleeper.User, error) {
			s, ok := seasons[id]
			if !ok {
				return nil, notFound(id)
			}
			return s.Users, nil
		},
		GetLeagueRostersFunc: func(id string) ([]sleeper.Roster, error) {
			s, ok := seasons[id]
			if !ok {
				return nil, notFound(id)
			}
			return s.Rosters, nil
		},
		GetMatchupsFunc: func(id string, week int) ([]sleeper.Matchup, error) {
			s, ok := seasons[id]
			if !ok {
				return nil, notFound(id)
			}
			return s.Matchups[week], nil
		},
		GetWinnersBracketFunc: func(id string) ([]sleeper.BracketMatchup, error) {
			s, ok := seasons[id]
			if !ok {
				return nil, notFound(id)
			}
			return s.Bracket, nil
		},
		GetNFLStateFunc: func() (*sleeper.NFLState, error) {
			if state == nil {
				return nil, ErrNotImplemented
			}
			st := *state
			return &st, nil
		},
	}
}
