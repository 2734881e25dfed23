package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/sam-maryland/sleeper-league-hub/internal/handlers"
)

const (
	ServerName    = "Sleeper League Hub"
	ServerVersion = "1.0.0"
)

// NewLeagueHubServer wires the league tools into an MCP server.
func NewLeagueHubServer(service handlers.LeagueService, logger *logrus.Logger) *server.DefaultServer {
	leagueHandler := handlers.NewLeagueHandler(service, logger)

	// Create MCP server
	s := server.NewDefaultServer(ServerName, ServerVersion)

	if s == nil {
		logger.Error("Failed to create MCP server instance")
		return nil
	}

	logger.Info("MCP server instance created successfully")

	s.HandleListTools(func(ctx context.Context, cursor *string) (*mcp.ListToolsResult, error) {
		tools := leagueHandler.Tools()

		logger.WithField("tools_count", len(tools)).Info("Listing available tools")

		return &mcp.ListToolsResult{
			Tools: tools,
		}, nil
	})

	s.HandleCallTool(func(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		logger.WithFields(logrus.Fields{
			"tool": name,
			"args": arguments,
		}).Info("Tool called")

		return callTool(ctx, leagueHandler, logger, name, arguments), nil
	})

	logger.Info("All tools registered successfully")
	return s
}

func callTool(ctx context.Context, h *handlers.LeagueHandler, logger *logrus.Logger, name string, arguments map[string]interface{}) *mcp.CallToolResult {
	if result, ok := h.Handle(ctx, name, arguments); ok {
		return result
	}

	logger.WithField("tool", name).Warn("Unknown tool called")
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: "Unknown tool: " + name,
			},
		},
		IsError: true,
	}
}
