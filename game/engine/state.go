package engine

// GameState is a read-only view of the engine suitable for serialization
// over transports. Grid holds one string of display symbols per row,
// without the player overlaid; clients place the player using PlayerPos.
type GameState struct {
	Status     GameStatus   `json:"status"`
	Level      int          `json:"level"`
	Difficulty int          `json:"difficulty"`
	HP         int          `json:"hp"`
	Score      int          `json:"score"`
	Steps      int          `json:"steps"`
	MaxSteps   int          `json:"max_steps"`
	Bombs      int          `json:"bombs"`
	PlayerPos  Position     `json:"player_pos"`
	Rows       int          `json:"rows"`
	Cols       int          `json:"cols"`
	Grid       []string     `json:"grid"`
	Messages   []string     `json:"messages"`
	TopScores  []ScoreEntry `json:"top_scores"`
}

// State builds a snapshot view of the current game
func (e *GameEngine) State() *GameState {
	return &GameState{
		Status:     e.status,
		Level:      e.currentLevel,
		Difficulty: e.currentDifficulty,
		HP:         e.player.HP(),
		Score:      e.player.Score(),
		Steps:      e.stepsTaken,
		MaxSteps:   e.maxSteps,
		Bombs:      e.player.BombCount(),
		PlayerPos:  e.player.Position(),
		Rows:       e.currentMap.Rows(),
		Cols:       e.currentMap.Cols(),
		Grid:       e.currentMap.SymbolRows(),
		Messages:   e.Messages(),
		TopScores:  e.topScores.Entries(),
	}
}
