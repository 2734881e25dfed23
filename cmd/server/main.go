// Command league-hub serves the league hub over MCP (stdio) or HTTP and
// runs the season-store maintenance jobs.
//
// Usage:
//
//	league-hub                      # MCP over stdio
//	league-hub http
//	league-hub preseason --league 123
//	league-hub members add --name "Bob" --sleeper-id 123
//	league-hub seasons add --member "Bob" --year 2022 --rank 3 --wins 9 --losses 5
//	league-hub seasons copy --from "Alice" --to "Bob" --years 2022,2023
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sam-maryland/sleeper-league-hub/internal/config"
	"github.com/sam-maryland/sleeper-league-hub/internal/hub"
	"github.com/sam-maryland/sleeper-league-hub/internal/mcp"
	"github.com/sam-maryland/sleeper-league-hub/internal/sleeper"
	"github.com/sam-maryland/sleeper-league-hub/internal/store"
)

func main() {
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "league-hub",
		Short:         "Sleeper league hub: standings, preseason rankings, archive",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMCP,
	}

	root.AddCommand(&cobra.Command{
		Use:   "mcp",
		Short: "Serve the league tools over MCP stdio",
		RunE:  runMCP,
	})
	root.AddCommand(httpCmd())
	root.AddCommand(preseasonCmd())
	root.AddCommand(archiveCmd())
	root.AddCommand(seasonsCmd())
	root.AddCommand(membersCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

// app bundles everything a command needs.
type app struct {
	cfg     *config.Config
	logger  *logrus.Logger
	service *hub.Service
	repo    store.Repository
	db      *store.DB
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// setup loads configuration and builds the hub. The season store is only
// opened when DATABASE_URL is set; without it the archive is empty.
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg)

	settings, err := config.LoadLeagueSettings(cfg.LeagueSettingsPath)
	if err != nil {
		return nil, fmt.Errorf("load league settings: %w", err)
	}

	client := sleeper.NewHTTPClient(sleeper.ClientConfig{
		BaseURL:           cfg.SleeperBaseURL,
		Timeout:           cfg.SleeperTimeout,
		RequestsPerMinute: cfg.SleeperRequestsPerMinute,
	}, logger)

	a := &app{cfg: cfg, logger: logger}
	opts := hub.Options{
		LeagueID:      cfg.LeagueID,
		CurrentSeason: cfg.CurrentSeason,
		Settings:      settings,
	}

	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.db = db
		a.repo = store.NewRepository(db.Pool())
		opts.Store = a.repo
		logger.Info("Season store connected")
	} else {
		logger.Warn("DATABASE_URL not set, archive will be empty")
	}

	a.service = hub.NewService(client, opts, logger)
	return a, nil
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	mcpServer := mcp.NewLeagueHubServer(a.service, a.logger)
	if mcpServer == nil {
		return fmt.Errorf("failed to create MCP server")
	}

	a.logger.Info("Starting Sleeper League Hub MCP server...")
	if err := server.ServeStdio(mcpServer); err != nil {
		a.logger.WithError(err).Error("Server failed")
		return err
	}
	return nil
}

func preseasonCmd() *cobra.Command {
	var leagueID string
	cmd := &cobra.Command{
		Use:   "preseason",
		Short: "Print the preseason ranking as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				view, err := a.service.PreseasonRanking(ctx, leagueID)
				if err != nil {
					return err
				}
				return printJSON(cmd, view)
			})
		},
	}
	cmd.Flags().StringVar(&leagueID, "league", "", "Sleeper league id (defaults to LEAGUE_ID)")
	return cmd
}

func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Print the season archive as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(ctx context.Context, a *app) error {
				view, err := a.service.Archive(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, view)
			})
		},
	}
}

func withApp(fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
