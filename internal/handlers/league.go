package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/sam-maryland/sleeper-league-hub/internal/hub"
)

// LeagueService is the subset of hub.Service the tools need.
type LeagueService interface {
	Standings(ctx context.Context, leagueID string) (*hub.StandingsView, error)
	PreseasonRanking(ctx context.Context, leagueID string) (*hub.PreseasonView, error)
	Archive(ctx context.Context) (*hub.ArchiveView, error)
	PlayoffPicture(ctx context.Context, leagueID string) (*hub.PlayoffView, error)
	History(ctx context.Context, leagueID string, maxSeasons int) (*hub.HistoryView, error)
	Matchups(ctx context.Context, leagueID string, week int) (*hub.MatchupsView, error)
	Members(ctx context.Context, leagueID string) (*hub.MembersView, error)
}

// MaxWeek is the last week Sleeper schedules.
const MaxWeek = 18

// LeagueHandler handles league-related MCP tools
type LeagueHandler struct {
	service LeagueService
	logger  *logrus.Logger
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(service LeagueService, logger *logrus.Logger) *LeagueHandler {
	return &LeagueHandler{
		service: service,
		logger:  logger,
	}
}

// Tools lists every tool this handler serves.
func (h *LeagueHandler) Tools() []mcp.Tool {
	return []mcp.Tool{
		h.GetStandingsTool(),
		h.GetPreseasonRankingsTool(),
		h.GetArchiveTool(),
		h.GetPlayoffPictureTool(),
		h.GetLeagueHistoryTool(),
		h.GetMatchupsTool(),
		h.GetLeagueUsersTool(),
	}
}

// Handle routes a tool call by name. The boolean is false for unknown tools.
func (h *LeagueHandler) Handle(ctx context.Context, name string, args map[string]interface{}) (*mcp.CallToolResult, bool) {
	var (
		result *mcp.CallToolResult
		err    error
	)

	switch name {
	case "get_standings":
		result, err = h.HandleGetStandings(ctx, args)
	case "get_preseason_rankings":
		result, err = h.HandleGetPreseasonRankings(ctx, args)
	case "get_archive":
		result, err = h.HandleGetArchive(ctx, args)
	case "get_playoff_picture":
		result, err = h.HandleGetPlayoffPicture(ctx, args)
	case "get_league_history":
		result, err = h.HandleGetLeagueHistory(ctx, args)
	case "get_matchups":
		result, err = h.HandleGetMatchups(ctx, args)
	case "get_league_users":
		result, err = h.HandleGetLeagueUsers(ctx, args)
	default:
		return nil, false
	}

	if err != nil {
		return textResult(err.Error(), true), true
	}
	return result, true
}

func leagueIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "The Sleeper league ID (defaults to the configured league)",
		"required":    false,
	}
}

// GetStandingsTool returns the MCP tool definition for get_standings
func (h *LeagueHandler) GetStandingsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_standings",
		Description: "Get league standings grouped by division. Before the season starts this returns the preseason ranking built from last season's finish",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// HandleGetStandings handles the get_standings tool call
func (h *LeagueHandler) HandleGetStandings(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_standings")

	leagueID, err := optionalString(args, "league_id")
	if err != nil {
		return nil, err
	}

	view, err := h.service.Standings(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get standings")
		return textResult(fmt.Sprintf("Failed to get standings: %s", err.Error()), true), nil
	}

	var summary string
	if view.Phase == hub.PhaseLive {
		summary = fmt.Sprintf("%s %s standings, %d teams", view.LeagueName, view.Season, len(view.Standings.Teams))
		if view.Standings.HasDivisions {
			summary += fmt.Sprintf(" in %d divisions", len(view.Standings.Divisions))
		}
	} else {
		summary = fmt.Sprintf("%s %s has not started: %s", view.LeagueName, view.Season, preseasonSummary(view.Preseason))
	}

	return h.respond(view, summary, view.LeagueID, "")
}

// GetPreseasonRankingsTool returns the MCP tool definition for get_preseason_rankings
func (h *LeagueHandler) GetPreseasonRankingsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_preseason_rankings",
		Description: "Rank this season's teams by last season's final standings. Returning owners (including co-owners) keep their order, new teams are placed after them in random order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// HandleGetPreseasonRankings handles the get_preseason_rankings tool call
func (h *LeagueHandler) HandleGetPreseasonRankings(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_preseason_rankings")

	leagueID, err := optionalString(args, "league_id")
	if err != nil {
		return nil, err
	}

	view, err := h.service.PreseasonRanking(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get preseason rankings")
		return textResult(fmt.Sprintf("Failed to get preseason rankings: %s", err.Error()), true), nil
	}

	return h.respond(view, preseasonSummary(view), leagueID, view.Notice)
}

func preseasonSummary(view *hub.PreseasonView) string {
	if view == nil || len(view.Ranking.Teams) == 0 {
		return "no preseason ranking available"
	}
	returning := 0
	for _, t := range view.Ranking.Teams {
		if t.IsReturning {
			returning++
		}
	}
	return fmt.Sprintf("preseason ranking of %d teams, %d returning from %s",
		len(view.Ranking.Teams), returning, view.PreviousLeagueID)
}

// GetArchiveTool returns the MCP tool definition for get_archive
func (h *LeagueHandler) GetArchiveTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_archive",
		Description: "Get final standings and champions of every completed season, with co-owned teams merged into one entry",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// HandleGetArchive handles the get_archive tool call
func (h *LeagueHandler) HandleGetArchive(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_archive")

	view, err := h.service.Archive(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get archive")
		return textResult(fmt.Sprintf("Failed to get archive: %s", err.Error()), true), nil
	}

	summary := fmt.Sprintf("%d archived seasons", len(view.Years))
	if len(view.Years) > 0 {
		latest := view.Years[0]
		if latest.Champion != nil {
			summary += fmt.Sprintf(", %s champion: %s", latest.Year, latest.Champion.OwnerLabel())
		}
	}

	return h.respond(view, summary, "", view.Notice)
}

// GetPlayoffPictureTool returns the MCP tool definition for get_playoff_picture
func (h *LeagueHandler) GetPlayoffPictureTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_playoff_picture",
		Description: "Get the playoff bracket implied by the league's playoff format and the current standings",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// HandleGetPlayoffPicture handles the get_playoff_picture tool call
func (h *LeagueHandler) HandleGetPlayoffPicture(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_playoff_picture")

	leagueID, err := optionalString(args, "league_id")
	if err != nil {
		return nil, err
	}

	view, err := h.service.PlayoffPicture(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get playoff picture")
		return textResult(fmt.Sprintf("Failed to get playoff picture: %s", err.Error()), true), nil
	}

	return h.respond(view, view.Picture.Summary, view.LeagueID, "")
}

// GetLeagueHistoryTool returns the MCP tool definition for get_league_history
func (h *LeagueHandler) GetLeagueHistoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_league_history",
		Description: "Follow the league back through previous seasons, with each season's champion and how many owners carried over",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
				"seasons": map[string]interface{}{
					"type":        "integer",
					"description": fmt.Sprintf("Number of seasons to include (default: %d)", hub.DefaultHistorySeasons),
					"required":    false,
				},
			},
		},
	}
}

// HandleGetLeagueHistory handles the get_league_history tool call
func (h *LeagueHandler) HandleGetLeagueHistory(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_league_history")

	leagueID, err := optionalString(args, "league_id")
	if err != nil {
		return nil, err
	}
	seasons, err := optionalInt(args, "seasons", hub.DefaultHistorySeasons)
	if err != nil {
		return nil, err
	}

	view, err := h.service.History(ctx, leagueID, seasons)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get league history")
		return textResult(fmt.Sprintf("Failed to get league history: %s", err.Error()), true), nil
	}

	summary := fmt.Sprintf("Found %d seasons of league history", len(view.Seasons))
	if n := len(view.Seasons); n > 0 {
		summary += fmt.Sprintf(" from %s to %s", view.Seasons[n-1].Season, view.Seasons[0].Season)
	}

	return h.respond(view, summary, view.LeagueID, "")
}

// GetMatchupsTool returns the MCP tool definition for get_matchups
func (h *LeagueHandler) GetMatchupsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_matchups",
		Description: "Get the weekly scoreboard: paired matchups with scores and whether each game is final, live or upcoming. Hidden in the preseason and offseason unless a week is given",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
				"week": map[string]interface{}{
					"type":        "integer",
					"description": fmt.Sprintf("Week number (1-%d, default: current NFL week)", MaxWeek),
					"required":    false,
				},
			},
		},
	}
}

// HandleGetMatchups handles the get_matchups tool call
func (h *LeagueHandler) HandleGetMatchups(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_matchups")

	leagueID, err := optionalString(args, "league_id")
	if err != nil {
		return nil, err
	}
	week, err := optionalInt(args, "week", 0)
	if err != nil {
		return nil, err
	}
	if _, present := args["week"]; present && (week < 1 || week > MaxWeek) {
		return nil, fmt.Errorf("week must be between 1 and %d", MaxWeek)
	}

	view, err := h.service.Matchups(ctx, leagueID, week)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get matchups")
		return textResult(fmt.Sprintf("Failed to get matchups: %s", err.Error()), true), nil
	}

	summary := fmt.Sprintf("Week %d: %d matchups", view.Week, len(view.Games))
	if view.Hidden {
		summary = fmt.Sprintf("No matchups during the %s", seasonLabel(view.SeasonType))
	}

	return h.respond(view, summary, view.LeagueID, view.Notice)
}

func seasonLabel(seasonType string) string {
	if seasonType == "pre" {
		return "preseason"
	}
	return "offseason"
}

// GetLeagueUsersTool returns the MCP tool definition for get_league_users
func (h *LeagueHandler) GetLeagueUsersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_league_users",
		Description: "Get all league members and their team information",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// HandleGetLeagueUsers handles the get_league_users tool call
func (h *LeagueHandler) HandleGetLeagueUsers(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_league_users")

	leagueID, err := optionalString(args, "league_id")
	if err != nil {
		return nil, err
	}

	view, err := h.service.Members(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get league users")
		return textResult(fmt.Sprintf("Failed to get league users: %s", err.Error()), true), nil
	}

	return h.respond(view, fmt.Sprintf("Found %d league members", len(view.Members)), view.LeagueID, "")
}

func (h *LeagueHandler) respond(data interface{}, summary, leagueID, notice string) (*mcp.CallToolResult, error) {
	response := Response{
		Success: true,
		Data:    data,
		Summary: summary,
		Metadata: Metadata{
			Timestamp: time.Now(),
			Source:    "league_hub",
			LeagueID:  leagueID,
			Notice:    notice,
		},
	}

	// Convert to JSON string for MCP response
	jsonResponse, err := formatJSONResponse(response)
	if err != nil {
		h.logger.WithError(err).Error("Failed to format response")
		return textResult(fmt.Sprintf("Error formatting response: %s", err.Error()), true), nil
	}

	return textResult(jsonResponse, false), nil
}
