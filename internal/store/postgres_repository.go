package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sam-maryland/sleeper-league-hub/internal/league"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const seasonColumns = `id, league_member_id, year, sleeper_league_id, team_name,
	final_rank, wins, losses, ties, total_points, division`

// CreateMember inserts a new league member. A nil ID is replaced by a fresh UUID.
func (r *PostgresRepository) CreateMember(ctx context.Context, m *Member) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	query := `
		INSERT INTO league_members (id, display_name, sleeper_user_id, is_active)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, query, m.ID, m.DisplayName, m.SleeperUserID, m.IsActive); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateMember
		}
		return fmt.Errorf("inserting member: %w", err)
	}

	return nil
}

// AddSeason inserts a season for the member with the given display name.
func (r *PostgresRepository) AddSeason(ctx context.Context, displayName string, s *Season) error {
	memberID, err := lookupMember(ctx, r.pool, displayName)
	if err != nil {
		return err
	}
	s.MemberID = memberID
	return insertSeason(ctx, r.pool, s)
}

// ListSeasonRows returns every stored season joined with its member, the
// raw input of the archive view.
func (r *PostgresRepository) ListSeasonRows(ctx context.Context) ([]league.SeasonRow, error) {
	query := `
		SELECT s.year, m.id, m.display_name, s.team_name, s.wins, s.losses, s.ties,
		       s.total_points, s.final_rank, s.division
		FROM seasons s
		JOIN league_members m ON m.id = s.league_member_id
		ORDER BY s.year DESC, s.final_rank ASC NULLS LAST, m.display_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing seasons: %w", err)
	}
	defer rows.Close()

	var out []league.SeasonRow
	for rows.Next() {
		var (
			row      league.SeasonRow
			memberID uuid.UUID
		)
		err := rows.Scan(&row.Year, &memberID, &row.MemberName, &row.TeamName, &row.Wins,
			&row.Losses, &row.Ties, &row.TotalPoints, &row.FinalRank, &row.Division)
		if err != nil {
			return nil, fmt.Errorf("scanning season row: %w", err)
		}
		row.MemberID = memberID.String()
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating season rows: %w", err)
	}

	if out == nil {
		out = []league.SeasonRow{}
	}

	return out, nil
}

// CopySeasons copies the source member's seasons for the given years onto
// the target member, the way a co-owner is attached after the fact. Years the
// target already holds are skipped, never overwritten.
func (r *PostgresRepository) CopySeasons(ctx context.Context, source, target string, years []string) (CopyResult, error) {
	result := CopyResult{Copied: []string{}, Skipped: []string{}}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		sourceID, err := lookupMember(ctx, tx, source)
		if err != nil {
			return err
		}
		targetID, err := lookupMember(ctx, tx, target)
		if err != nil {
			return err
		}

		seasons, err := memberSeasons(ctx, tx, sourceID, years)
		if err != nil {
			return err
		}
		if len(seasons) == 0 {
			return ErrSeasonNotFound
		}

		for _, s := range seasons {
			exists, err := hasSeason(ctx, tx, targetID, s.Year)
			if err != nil {
				return err
			}
			if exists {
				result.Skipped = append(result.Skipped, s.Year)
				continue
			}

			s.ID = uuid.Nil
			s.MemberID = targetID
			if err := insertSeason(ctx, tx, &s); err != nil {
				return err
			}
			result.Copied = append(result.Copied, s.Year)
		}
		return nil
	})
	if err != nil {
		return CopyResult{}, err
	}

	return result, nil
}

// SyncSeasons overwrites the target member's statistics with the source
// member's for each year both of them hold. It returns the years updated.
func (r *PostgresRepository) SyncSeasons(ctx context.Context, source, target string, years []string) ([]string, error) {
	updated := []string{}

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		sourceID, err := lookupMember(ctx, tx, source)
		if err != nil {
			return err
		}
		targetID, err := lookupMember(ctx, tx, target)
		if err != nil {
			return err
		}

		seasons, err := memberSeasons(ctx, tx, sourceID, years)
		if err != nil {
			return err
		}

		query := `
			UPDATE seasons
			SET sleeper_league_id = $3, team_name = $4, final_rank = $5, wins = $6,
			    losses = $7, ties = $8, total_points = $9, division = $10
			WHERE league_member_id = $1 AND year = $2`

		for _, s := range seasons {
			tag, err := tx.Exec(ctx, query, targetID, s.Year, s.SleeperLeagueID, s.TeamName,
				s.FinalRank, s.Wins, s.Losses, s.Ties, s.TotalPoints, s.Division)
			if err != nil {
				return fmt.Errorf("updating season %s: %w", s.Year, err)
			}
			if tag.RowsAffected() > 0 {
				updated = append(updated, s.Year)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// MoveSeason reassigns one year's season from one member to another.
func (r *PostgresRepository) MoveSeason(ctx context.Context, from, to, year string) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		fromID, err := lookupMember(ctx, tx, from)
		if err != nil {
			return err
		}
		toID, err := lookupMember(ctx, tx, to)
		if err != nil {
			return err
		}

		exists, err := hasSeason(ctx, tx, toID, year)
		if err != nil {
			return err
		}
		if exists {
			return ErrSeasonExists
		}

		tag, err := tx.Exec(ctx,
			`UPDATE seasons SET league_member_id = $1 WHERE league_member_id = $2 AND year = $3`,
			toID, fromID, year)
		if err != nil {
			return fmt.Errorf("moving season: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSeasonNotFound
		}
		return nil
	})
}

func lookupMember(ctx context.Context, q rowQuerier, displayName string) (uuid.UUID, error) {
	var id uuid.UUID
	err := q.QueryRow(ctx, `SELECT id FROM league_members WHERE display_name = $1`, displayName).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("%w: %s", ErrMemberNotFound, displayName)
		}
		return uuid.Nil, fmt.Errorf("querying member: %w", err)
	}
	return id, nil
}

func hasSeason(ctx context.Context, q rowQuerier, memberID uuid.UUID, year string) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM seasons WHERE league_member_id = $1 AND year = $2)`,
		memberID, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking season: %w", err)
	}
	return exists, nil
}

// memberSeasons lists a member's seasons; nil years selects all of them.
func memberSeasons(ctx context.Context, tx pgx.Tx, memberID uuid.UUID, years []string) ([]Season, error) {
	query := `SELECT ` + seasonColumns + `
		FROM seasons
		WHERE league_member_id = $1 AND ($2::text[] IS NULL OR year = ANY($2))
		ORDER BY year ASC`

	rows, err := tx.Query(ctx, query, memberID, years)
	if err != nil {
		return nil, fmt.Errorf("listing member seasons: %w", err)
	}
	defer rows.Close()

	var seasons []Season
	for rows.Next() {
		var s Season
		err := rows.Scan(&s.ID, &s.MemberID, &s.Year, &s.SleeperLeagueID, &s.TeamName,
			&s.FinalRank, &s.Wins, &s.Losses, &s.Ties, &s.TotalPoints, &s.Division)
		if err != nil {
			return nil, fmt.Errorf("scanning season: %w", err)
		}
		seasons = append(seasons, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating seasons: %w", err)
	}
	return seasons, nil
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertSeason(ctx context.Context, db execer, s *Season) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	query := `INSERT INTO seasons (` + seasonColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := db.Exec(ctx, query, s.ID, s.MemberID, s.Year, s.SleeperLeagueID, s.TeamName,
		s.FinalRank, s.Wins, s.Losses, s.Ties, s.TotalPoints, s.Division)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: %s", ErrSeasonExists, s.Year)
		}
		return fmt.Errorf("inserting season: %w", err)
	}
	return nil
}
