// Package api provides HTTP REST API handlers for MiniDungeon.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - Save/load game functionality
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (body: {"config_id": "classic"})
//   - GET /api/sessions - List all sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current game state
//   - POST /api/sessions/{id}/move - Move the player (body: {"direction": "up"})
//   - POST /api/sessions/{id}/bomb - Activate a bomb from inventory
//   - POST /api/sessions/{id}/restart - Start a new game (body: {"difficulty": 3})
//   - POST /api/sessions/{id}/save - Save the game in progress
//   - POST /api/sessions/{id}/load - Restore the last saved game
//   - GET /api/sessions/{id}/leaderboard - Get the session's top scores
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Move and bomb responses carry the
// full game state plus the engine's message log so clients can render the
// turn's events:
//
//	{
//	  "success": true,
//	  "game_state": { "status": "playing", "hp": 8, "score": 12, ... },
//	  "messages": ["You move right.", "You picked up gold! +2 score."]
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
//
// WebSocket:
//
// GET /ws?session={id} upgrades the connection and streams the session's
// game state to the client after every turn.
package api
