package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/minidungeon/minidungeon/game/engine"
	"github.com/minidungeon/minidungeon/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Mini Dungeon",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Mini Dungeon - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Reach the ladder (L) on level 2 before your HP or step budget runs out.
Gold (G), mutant kills, and bombs raise your score along the way.

AVAILABLE TOOLS:
- game_state: Get current game state with map rendering
- move: Single move (up/down/left/right) - requires intent explanation
- activate_bomb: Detonate a carried bomb to clear adjacent walls and traps
- restart_game: Restart the session, optionally at a new difficulty
- save_game / load_game: Persist and restore a session snapshot
- leaderboard: Show the top scores for a session
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules
- describe_cell: Get detailed info about a specific map cell (helps verify H vs B vs #)

NOTE: The 'intent' parameter on the move tool serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Identifier of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the player in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction to move",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "activate_bomb",
		Description: "Detonate a carried bomb, clearing walls and traps in the 8 cells around the player",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleActivateBomb)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "restart_game",
		Description: "Restart the session with a fresh map, keeping the leaderboard",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"difficulty": map[string]interface{}{
					"type":        "integer",
					"description": "New difficulty 0-10 (optional, defaults to the config's difficulty)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRestart)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "save_game",
		Description: "Save the current game state of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleSaveGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "load_game",
		Description: "Load the most recently saved state of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLoadGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "leaderboard",
		Description: "Get the top scores for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleLeaderboard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific cell in the map, including its exact character type. Useful for verifying whether a cell is passable (empty, E, L, T, G, M, R, H, B) or a wall (#).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row of the cell to describe (0-based, top to bottom)",
				},
				"col": map[string]interface{}{
					"type":        "integer",
					"description": "Column of the cell to describe (0-based, left to right)",
				},
			},
			Required: []string{"session_id", "row", "col"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"direction": direction,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleActivateBomb(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.BombResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/bomb", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := ""
	if result.Success {
		response = "✓ Bomb detonated\n"
	} else {
		response = "✗ Bomb activation failed\n"
	}
	if len(result.Messages) > 0 {
		response += "\nLog:\n"
		for _, msg := range result.Messages {
			response += fmt.Sprintf("- %s\n", msg)
		}
	}
	response += "\n" + formatGameState(result.GameState)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleRestart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]interface{}{}
	if difficulty, ok := args["difficulty"].(float64); ok {
		body["difficulty"] = int(difficulty)
	}

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/restart", sessionID), body, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleSaveGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/save", sessionID), nil, nil)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Game saved for session %s", sessionID)), nil
}

func (c *Client) handleLoadGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/load", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatGameState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleLeaderboard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Count     int                 `json:"count"`
		TopScores []engine.ScoreEntry `json:"top_scores"`
	}

	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/leaderboard", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if response.Count == 0 {
		return mcp.NewToolResultText("No top scores yet."), nil
	}

	result := "--- Top Scores ---\n"
	for i, entry := range response.TopScores {
		result += fmt.Sprintf("#%d %d %s\n", i+1, entry.Score, entry.FormattedDate())
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Map: %dx%d, Difficulty: %d, Max steps: %d\n\n",
			config.ConfigID, config.Description, config.Rows, config.Cols, config.Difficulty, config.MaxSteps)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🎮 Mini Dungeon - Complete Instructions

GAME OBJECTIVE:
Descend the dungeon. Reach the ladder (L) on level 1 to go deeper, then
reach the ladder on level 2 to win. Survive your HP and step budget.

GAME MECHANICS:
• Movement: Each successful move consumes 1 step
• Combat: Walking into a mutant kills it; melee mutants (M) hit back for 2 HP
• Ranged mutants (R) shoot at you from up to 2 cells away before you move
• Healing: Health potions (H) restore 4 HP, capped at 10
• Bombs: Pick up B tiles, then activate to clear all adjacent walls and traps
• Victory: Reach the ladder on level 2
• Game Over: HP reaches 0 or the step budget runs out (final score becomes -1)

MAP LEGEND:
• P - Player (your current position)
• E - Entry (where you spawned, passable)
• L - Ladder (level exit, grants 10 x difficulty points)
• # - Wall (impassable) ⚠️ the only impassable tile
• T - Trap (passable, deals 2 damage, stays armed)
• G - Gold (passable, +2 score, consumed)
• M - Melee mutant (deals 2 damage when fought, +2 score, removed)
• R - Ranged mutant (shoots from distance, stomp it for +2 score)
• H - Health potion (+4 HP, consumed) ⚠️ Do NOT confuse with #
• B - Bomb pickup (+1 bomb inventory, consumed)

SCORING:
• Gold: +2 each
• Mutant kill (melee or ranged): +2 each
• Bomb detonation: +5 (pickup itself scores nothing)
• Ladder: +10 x current difficulty
• Losing for any reason sets the final score to -1

🤖 AI AGENTS - SUCCESS STRATEGIES:

⚠️ CHARACTER RECOGNITION:
Parse map rows character-by-character. Single-character gaps in wall rows
are easy to miss. If a row appears completely walled, re-examine each
position; patterns like "##T##" and "## ##" hide passable cells.

🗺️ SYSTEMATIC MAPPING:
- Track ranged mutant (R) positions: they attack when you end up within
  2 cells (Manhattan distance), with a 50% hit chance per mutant
- Plan routes that minimize turns spent inside ranged attack range
- Traps stay armed: route around a trap you already know about

⚡ RESOURCE MANAGEMENT:
- Steps are shared across both levels: budget for the level 2 maze
- HP does not regenerate on level change; save potions for after fights
- Bombs carry across levels and can shortcut level 2 walls

🎮 API USAGE:
- Use save_game before risky fights, load_game to recover
- Monitor the message log in move results: it explains every interaction
- Use describe_cell to verify a tile before committing to a route

MOVEMENT COMMANDS:
- up, down, left, right (aliases: u/d/l/r and w/s/a/d)

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state, saves, and leaderboards

Good luck in the dungeon! ⚔️🪜`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	row := int(args["row"].(float64))
	col := int(args["col"].(float64))

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if row < 0 || row >= state.Rows || col < 0 || col >= state.Cols {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Map is %dx%d (rows 0-%d, cols 0-%d)",
			row, col, state.Rows, state.Cols, state.Rows-1, state.Cols-1)), nil
	}

	symbol := string(state.Grid[row][col])

	var cellType string
	var passable bool
	var description string

	if thing, ok := engine.ThingTypeFromSymbol(symbol); ok {
		cellType = string(thing)
		passable = thing != engine.Wall
		switch thing {
		case engine.Entry:
			description = "Entry point - passable, no effect"
		case engine.Ladder:
			description = "Ladder - level exit, grants 10 x difficulty points"
		case engine.Wall:
			description = "Wall - IMPASSABLE"
		case engine.Trap:
			description = "Trap - passable, deals 2 damage and stays armed"
		case engine.Gold:
			description = "Gold - +2 score, consumed on pickup"
		case engine.MeleeMutant:
			description = "Melee mutant - fighting it costs 2 HP and grants +2 score"
		case engine.RangedMutant:
			description = "Ranged mutant - shoots from up to 2 cells away; stomp it for +2 score"
		case engine.HealthPotion:
			description = "Health potion - restores 4 HP, capped at 10"
		case engine.Bomb:
			description = "Bomb pickup - adds one bomb to inventory"
		}
	} else {
		symbol = engine.EmptySymbol
		cellType = "empty"
		passable = true
		description = "Empty floor - safe to travel"
	}

	atPlayer := row == state.PlayerPos.Row && col == state.PlayerPos.Col
	if atPlayer {
		description += " (the player is currently standing here)"
	}

	result := fmt.Sprintf(`Cell at (%d, %d):
━━━━━━━━━━━━━━━━━━━━━━━━
Character: %q
Type: %s
Passable: %v
Description: %s
%s`,
		row, col, symbol, cellType, passable, description, getCharacterReminder(symbol))

	return mcp.NewToolResultText(result), nil
}

func getCharacterReminder(symbol string) string {
	switch symbol {
	case "#":
		return "⚠️ REMINDER: '#' is a wall, the only impassable tile."
	case "H":
		return "⚠️ REMINDER: 'H' (health potion) is often confused with '#' (wall). This cell is PASSABLE and heals you!"
	case "R":
		return "⚠️ REMINDER: 'R' is a ranged mutant. It attacks when you end a rejected-free turn within 2 cells of it."
	case "M":
		return "⚠️ REMINDER: 'M' is a melee mutant. Walking into it costs 2 HP but grants +2 score."
	case "T":
		return "⚠️ REMINDER: 'T' is a trap. It deals 2 damage every time you step on it and never disarms."
	case "L":
		return "🎯 This is the ladder, your objective on each level."
	case "B":
		return "💣 This is a bomb pickup, not a building. Grab it and activate it near walls."
	case "G":
		return "💰 Gold. Easy points."
	default:
		return ""
	}
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Level: %d | HP: %d/%d | Score: %d | Steps: %d/%d | Bombs: %d | Difficulty: %d\n",
		state.Level, state.HP, engine.MaxHP, state.Score,
		state.Steps, state.MaxSteps, state.Bombs, state.Difficulty))
	result.WriteString(fmt.Sprintf("Position: (%d,%d)\n\n", state.PlayerPos.Row, state.PlayerPos.Col))

	// Map with the player overlaid
	for r := 0; r < state.Rows && r < len(state.Grid); r++ {
		rowStr := state.Grid[r]
		for c := 0; c < state.Cols && c < len(rowStr); c++ {
			if r == state.PlayerPos.Row && c == state.PlayerPos.Col {
				result.WriteString(engine.PlayerSymbol)
			} else {
				result.WriteByte(rowStr[c])
			}
		}
		result.WriteString("\n")
	}

	switch state.Status {
	case engine.StatusWon:
		result.WriteString("\n🎉 VICTORY!")
	case engine.StatusLost:
		result.WriteString("\n💀 GAME OVER")
	}

	if len(state.Messages) > 0 {
		result.WriteString("\nLog:\n")
		for _, msg := range state.Messages {
			result.WriteString(fmt.Sprintf("- %s\n", msg))
		}
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = "✗ Move rejected (no step consumed)\n"
	}

	if len(result.Messages) > 0 {
		response += "\nLog:\n"
		for _, msg := range result.Messages {
			response += fmt.Sprintf("- %s\n", msg)
		}
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}
