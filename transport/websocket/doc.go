// Package websocket provides real-time game state streaming for dungeon
// sessions.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after moves, bombs, restarts, and loads
//   - Connection lifecycle management with ping/pong keepalive
//   - Fan-out to multiple spectators of the same session
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection runs a read goroutine and
// a write goroutine that handle keepalive and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//
// Incoming messages are ignored; game actions go through the REST API,
// which triggers a broadcast to every client watching the session.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12)
// when establishing the connection. State updates are broadcast only to
// clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a state change:
//	hub.BroadcastToSession("ab12", engine.State())
package websocket
