// Package mcp provides a Model Context Protocol interface for the dungeon game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game operation
//   - Session-aware command execution
//   - A thin proxy over the REST API
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current game state with map rendering
//   - move: Execute a single directional movement
//   - activate_bomb: Detonate a carried bomb
//   - restart_game: Restart a session, optionally at a new difficulty
//   - save_game / load_game: Snapshot persistence
//   - leaderboard: Session top scores
//   - create_session: Create a new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_instructions: Full rules and strategy notes
//   - describe_cell: Inspect a single map cell
//
// Architecture:
//
// The MCP client does not embed the game engine. Every tool call is
// translated to an HTTP request against the REST API, so stdio MCP
// agents and web clients always observe the same session state.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
