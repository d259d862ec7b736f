// Package service provides the business logic layer for MiniDungeon.
//
// The service package implements:
//   - Multi-session game management
//   - Turn execution (moves and bomb activations)
//   - Save, load, and restart orchestration
//   - Configuration management and loading
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, persistence, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game engine
// instance with an independent dungeon, player, and leaderboard.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "easy")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute a turn
//	result, err := gameService.Move(ctx, sessionInfo.ID, "up")
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time and last access time, and are
// auto-saved after every turn when persistence is configured.
package service
