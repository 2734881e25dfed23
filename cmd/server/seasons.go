package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sam-maryland/sleeper-league-hub/internal/store"
)

var errNoStore = errors.New("DATABASE_URL is required for season maintenance")

func seasonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "Maintain the season store",
	}
	cmd.AddCommand(seasonsMigrateCmd())
	cmd.AddCommand(seasonsAddCmd())
	cmd.AddCommand(seasonsCopyCmd())
	cmd.AddCommand(seasonsSyncCmd())
	cmd.AddCommand(seasonsMoveCmd())
	return cmd
}

func withStore(fn func(ctx context.Context, a *app) error) error {
	return withApp(func(ctx context.Context, a *app) error {
		if a.repo == nil {
			return errNoStore
		}
		return fn(ctx, a)
	})
}

func seasonsMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the season store tables if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, a *app) error {
				if err := a.db.EnsureSchema(ctx); err != nil {
					return fmt.Errorf("ensure schema: %w", err)
				}
				a.logger.Info("Schema ready")
				return nil
			})
		},
	}
}

// seasonFlags holds the optional statistics of `seasons add`. Only flags the
// user set end up on the stored season.
type seasonFlags struct {
	year, leagueID, team, division string
	rank, wins, losses, ties       int
	points                         float64
}

func (f *seasonFlags) season(changed func(name string) bool) *store.Season {
	s := &store.Season{Year: strings.TrimSpace(f.year)}
	if changed("league-id") {
		s.SleeperLeagueID = &f.leagueID
	}
	if changed("team") {
		s.TeamName = &f.team
	}
	if changed("division") {
		s.Division = &f.division
	}
	if changed("rank") {
		s.FinalRank = &f.rank
	}
	if changed("wins") {
		s.Wins = &f.wins
	}
	if changed("losses") {
		s.Losses = &f.losses
	}
	if changed("ties") {
		s.Ties = &f.ties
	}
	if changed("points") {
		s.TotalPoints = &f.points
	}
	return s
}

func seasonsAddCmd() *cobra.Command {
	var (
		member string
		flags  seasonFlags
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record one member's season",
		RunE: func(cmd *cobra.Command, args []string) error {
			season := flags.season(cmd.Flags().Changed)
			if season.Year == "" {
				return errors.New("--year is required")
			}
			return withStore(func(ctx context.Context, a *app) error {
				if err := a.repo.AddSeason(ctx, member, season); err != nil {
					return err
				}
				a.logger.WithFields(logrus.Fields{
					"member":    member,
					"year":      season.Year,
					"season_id": season.ID,
				}).Info("Season added")
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&member, "member", "", "Member display name")
	cmd.Flags().StringVar(&flags.year, "year", "", "Season year")
	cmd.Flags().StringVar(&flags.leagueID, "league-id", "", "Sleeper league id for the season")
	cmd.Flags().StringVar(&flags.team, "team", "", "Team name")
	cmd.Flags().StringVar(&flags.division, "division", "", "Division name")
	cmd.Flags().IntVar(&flags.rank, "rank", 0, "Final rank")
	cmd.Flags().IntVar(&flags.wins, "wins", 0, "Wins")
	cmd.Flags().IntVar(&flags.losses, "losses", 0, "Losses")
	cmd.Flags().IntVar(&flags.ties, "ties", 0, "Ties")
	cmd.Flags().Float64Var(&flags.points, "points", 0, "Total points")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("year")
	return cmd
}

func seasonsCopyCmd() *cobra.Command {
	var from, to, years string
	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy one member's seasons to a co-owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, a *app) error {
				result, err := a.repo.CopySeasons(ctx, from, to, splitYears(years))
				if err != nil {
					return err
				}
				a.logger.WithFields(logrus.Fields{
					"from":    from,
					"to":      to,
					"copied":  result.Copied,
					"skipped": result.Skipped,
				}).Info("Seasons copied")
				return printJSON(cmd, result)
			})
		},
	}
	memberFlags(cmd, &from, &to)
	cmd.Flags().StringVar(&years, "years", "", "Comma-separated years (all when empty)")
	return cmd
}

func seasonsSyncCmd() *cobra.Command {
	var from, to, years string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Overwrite a co-owner's season stats with the source member's",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, a *app) error {
				updated, err := a.repo.SyncSeasons(ctx, from, to, splitYears(years))
				if err != nil {
					return err
				}
				a.logger.WithFields(logrus.Fields{
					"from":    from,
					"to":      to,
					"updated": updated,
				}).Info("Seasons synced")
				return printJSON(cmd, map[string][]string{"updated": updated})
			})
		},
	}
	memberFlags(cmd, &from, &to)
	cmd.Flags().StringVar(&years, "years", "", "Comma-separated years (all when empty)")
	return cmd
}

func seasonsMoveCmd() *cobra.Command {
	var from, to, year string
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reassign one season to another member",
		RunE: func(cmd *cobra.Command, args []string) error {
			if year == "" {
				return errors.New("--year is required")
			}
			return withStore(func(ctx context.Context, a *app) error {
				if err := a.repo.MoveSeason(ctx, from, to, year); err != nil {
					return err
				}
				a.logger.WithFields(logrus.Fields{
					"from": from,
					"to":   to,
					"year": year,
				}).Info("Season moved")
				return nil
			})
		},
	}
	memberFlags(cmd, &from, &to)
	cmd.Flags().StringVar(&year, "year", "", "Season year")
	return cmd
}

func memberFlags(cmd *cobra.Command, from, to *string) {
	cmd.Flags().StringVar(from, "from", "", "Source member display name")
	cmd.Flags().StringVar(to, "to", "", "Target member display name")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// splitYears parses "2022, 2023" into ["2022" "2023"]; empty means all years.
func splitYears(raw string) []string {
	var years []string
	for _, y := range strings.Split(raw, ",") {
		if y = strings.TrimSpace(y); y != "" {
			years = append(years, y)
		}
	}
	return years
}
