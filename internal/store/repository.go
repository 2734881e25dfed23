package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sam-maryland/sleeper-league-hub/internal/league"
)

// ErrMemberNotFound is returned when no league member has the given display name.
var ErrMemberNotFound = errors.New("league member not found")

// ErrSeasonNotFound is returned when a member has no season for the requested year.
var ErrSeasonNotFound = errors.New("season not found")

// ErrSeasonExists is returned when the target member already holds a season for the year.
var ErrSeasonExists = errors.New("season already exists for member")

// ErrDuplicateMember is returned when a member with the same display name already exists.
var ErrDuplicateMember = errors.New("league member already exists")

// Member is a person who has owned or co-owned a team in the league.
type Member struct {
	ID            uuid.UUID
	DisplayName   string
	SleeperUserID *string
	IsActive      bool
}

// Season is one member's result for one year. Any statistic may be absent.
type Season struct {
	ID              uuid.UUID
	MemberID        uuid.UUID
	Year            string
	SleeperLeagueID *string
	TeamName        *string
	FinalRank       *int
	Wins            *int
	Losses          *int
	Ties            *int
	TotalPoints     *float64
	Division        *string
}

// CopyResult reports which years were copied and which were skipped
// because the target already had them.
type CopyResult struct {
	Copied  []string `json:"copied"`
	Skipped []string `json:"skipped"`
}

// Repository provides read access to season records and the batch
// maintenance operations used to attach seasons to co-owners.
type Repository interface {
	CreateMember(ctx context.Context, m *Member) error
	AddSeason(ctx context.Context, displayName string, s *Season) error
	ListSeasonRows(ctx context.Context) ([]league.SeasonRow, error)
	CopySeasons(ctx context.Context, source, target string, years []string) (CopyResult, error)
	SyncSeasons(ctx context.Context, source, target string, years []string) ([]string, error)
	MoveSeason(ctx context.Context, from, to, year string) error
}
