package service

import (
	"time"

	"github.com/minidungeon/minidungeon/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// MoveResult contains the result of a move operation. Success reports
// whether the player actually moved; a rejected move still returns the
// current state and log so clients can show why.
type MoveResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Messages  []string          `json:"messages"`
}

// BombResult contains the result of a bomb activation
type BombResult struct {
	Success   bool              `json:"success"`
	GameState *engine.GameState `json:"game_state"`
	Messages  []string          `json:"messages"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Difficulty  int    `json:"difficulty"`
	MaxSteps    int    `json:"max_steps"`
}
