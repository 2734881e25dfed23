package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// Response represents the standard response format for our tools
type Response struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Summary  string      `json:"summary"`
	Error    string      `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	LeagueID  string    `json:"league_id,omitempty"`
	Notice    string    `json:"notice,omitempty"`
}

// formatJSONResponse converts a response struct to a formatted JSON string
func formatJSONResponse(response interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(jsonBytes), nil
}

func textResult(text string, isError bool) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
		IsError: isError,
	}
}

// optionalString reads a string argument. A present value of another type is an error.
func optionalString(args map[string]interface{}, key string) (string, error) {
	raw, exists := args[key]
	if !exists || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

// optionalInt reads a numeric argument; JSON numbers arrive as float64.
func optionalInt(args map[string]interface{}, key string, fallback int) (int, error) {
	raw, exists := args[key]
	if !exists || raw == nil {
		return fallback, nil
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}
