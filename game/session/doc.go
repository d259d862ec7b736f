// Package session provides session management for MiniDungeon.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - File-based persistence of game snapshots
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// FilePersistence stores each session as a JSON file whose payload is the
// engine's own save format, so a session file is also a complete save of
// the game in progress.
//
// Session Identifiers:
//
// Sessions use 4-character hexadecimal IDs for easy reference, generated
// with cryptographic randomness. Lookups are case-insensitive.
//
// Concurrency:
//
// The session manager is thread-safe and supports concurrent operations.
// Multiple goroutines can safely create, retrieve, and modify different
// sessions simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	persistence, err := session.NewFilePersistence("sessions", configMgr)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := session.NewManagerWithPersistence(persistence)
//
//	// Create a new session
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Save and later restore the game in progress
//	manager.Save(sess.ID)
//	manager.Restore(sess.ID)
//
// Cleanup:
//
// Sessions can be explicitly deleted or may expire based on inactivity.
// The manager provides cleanup methods for removing stale sessions and
// freeing resources.
package session
