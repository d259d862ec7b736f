package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrNoSaveFile indicates the requested save file does not exist
	ErrNoSaveFile = errors.New("no saved game found")
	// ErrCorruptSave indicates the save file could not be parsed or
	// failed validation
	ErrCorruptSave = errors.New("saved game is invalid")
)

// PlayerData is the persisted player section of a save file
type PlayerData struct {
	HP    int `json:"hp"`
	Score int `json:"score"`
	Row   int `json:"row"`
	Col   int `json:"col"`
	Bombs int `json:"bombs"`
}

// ProgressData is the persisted progress section of a save file.
// The ladder coordinates are -1/-1 while the player is still on level 1.
type ProgressData struct {
	Level           int `json:"level"`
	StepsTaken      int `json:"steps_taken"`
	Difficulty      int `json:"difficulty"`
	Level1LadderRow int `json:"level1_ladder_row"`
	Level1LadderCol int `json:"level1_ladder_col"`
}

// MapData is the persisted map section of a save file. Cells holds one
// string of display symbols per grid row and is the authoritative record
// of the level layout.
type MapData struct {
	Rows          int        `json:"rows"`
	Cols          int        `json:"cols"`
	Cells         []string   `json:"cells"`
	RangedMutants []Position `json:"ranged_mutants"`
}

// SaveState is the complete serialized form of a game in progress
type SaveState struct {
	Player    PlayerData   `json:"player"`
	Progress  ProgressData `json:"progress"`
	Map       MapData      `json:"map"`
	TopScores []ScoreEntry `json:"top_scores"`
}

// Snapshot captures the full current game state as a SaveState
func (e *GameEngine) Snapshot() *SaveState {
	pos := e.player.Position()
	s := &SaveState{
		Player: PlayerData{
			HP:    e.player.HP(),
			Score: e.player.Score(),
			Row:   pos.Row,
			Col:   pos.Col,
			Bombs: e.player.BombCount(),
		},
		Progress: ProgressData{
			Level:           e.currentLevel,
			StepsTaken:      e.stepsTaken,
			Difficulty:      e.currentDifficulty,
			Level1LadderRow: -1,
			Level1LadderCol: -1,
		},
		Map: MapData{
			Rows:          e.currentMap.Rows(),
			Cols:          e.currentMap.Cols(),
			Cells:         e.currentMap.SymbolRows(),
			RangedMutants: e.currentMap.RangedMutantPositions(),
		},
		TopScores: e.topScores.Entries(),
	}
	if e.level1Ladder != nil {
		s.Progress.Level1LadderRow = e.level1Ladder.Row
		s.Progress.Level1LadderCol = e.level1Ladder.Col
	}
	return s
}

// RestoreSnapshot replaces the engine's state with the snapshot's. The
// snapshot is validated up front and the engine is left untouched when
// anything is rejected; the restored game is always in playing status.
func (e *GameEngine) RestoreSnapshot(s *SaveState) error {
	if err := validateSnapshot(s); err != nil {
		return err
	}

	restored := NewEmptyMap(s.Map.Rows, s.Map.Cols)
	for r, row := range s.Map.Cells {
		for c := 0; c < s.Map.Cols; c++ {
			symbol := string(row[c])
			if symbol == EmptySymbol {
				continue
			}
			t, ok := ThingTypeFromSymbol(symbol)
			if !ok {
				return fmt.Errorf("%w: unknown symbol %q at row %d col %d", ErrCorruptSave, symbol, r, c)
			}
			restored.SetThing(Position{Row: r, Col: c}, t)
		}
	}

	// The ranged mutant list wins over the grid symbols. Rebuilding the
	// occupants from the list keeps both records in agreement.
	for _, pos := range restored.RangedMutantPositions() {
		restored.SetThing(pos, "")
	}
	for _, pos := range s.Map.RangedMutants {
		if !restored.InBounds(pos) {
			return fmt.Errorf("%w: ranged mutant at %s out of bounds", ErrCorruptSave, pos)
		}
		restored.SetThing(pos, RangedMutant)
	}

	playerPos := Position{Row: s.Player.Row, Col: s.Player.Col}
	if !restored.IsTraversable(playerPos) {
		return fmt.Errorf("%w: player position %s is not traversable", ErrCorruptSave, playerPos)
	}

	e.currentMap = restored
	e.player = NewPlayer(s.Player.HP, s.Player.Score, playerPos)
	e.player.AddBombs(s.Player.Bombs)
	e.currentLevel = s.Progress.Level
	e.stepsTaken = s.Progress.StepsTaken
	e.currentDifficulty = s.Progress.Difficulty
	e.maxSteps = e.config.MaxSteps
	e.status = StatusPlaying
	e.level1Ladder = nil
	if s.Progress.Level1LadderRow >= 0 && s.Progress.Level1LadderCol >= 0 {
		e.level1Ladder = &Position{Row: s.Progress.Level1LadderRow, Col: s.Progress.Level1LadderCol}
	}
	e.topScores.Merge(s.TopScores)
	return nil
}

func validateSnapshot(s *SaveState) error {
	if s == nil {
		return fmt.Errorf("%w: empty snapshot", ErrCorruptSave)
	}
	if s.Map.Rows < MinMapSize || s.Map.Rows > MaxMapSize || s.Map.Cols < MinMapSize || s.Map.Cols > MaxMapSize {
		return fmt.Errorf("%w: map dimensions %dx%d out of range", ErrCorruptSave, s.Map.Rows, s.Map.Cols)
	}
	if len(s.Map.Cells) != s.Map.Rows {
		return fmt.Errorf("%w: expected %d cell rows, got %d", ErrCorruptSave, s.Map.Rows, len(s.Map.Cells))
	}
	for r, row := range s.Map.Cells {
		if len(row) != s.Map.Cols {
			return fmt.Errorf("%w: cell row %d has length %d, expected %d", ErrCorruptSave, r, len(row), s.Map.Cols)
		}
	}
	if s.Player.Row < 0 || s.Player.Row >= s.Map.Rows || s.Player.Col < 0 || s.Player.Col >= s.Map.Cols {
		return fmt.Errorf("%w: player position (%d, %d) out of bounds", ErrCorruptSave, s.Player.Row, s.Player.Col)
	}
	if s.Player.HP <= 0 || s.Player.HP > MaxHP {
		return fmt.Errorf("%w: player hp %d out of range", ErrCorruptSave, s.Player.HP)
	}
	if s.Player.Bombs < 0 {
		return fmt.Errorf("%w: negative bomb count", ErrCorruptSave)
	}
	if s.Progress.Level != 1 && s.Progress.Level != 2 {
		return fmt.Errorf("%w: level %d out of range", ErrCorruptSave, s.Progress.Level)
	}
	if s.Progress.StepsTaken < 0 {
		return fmt.Errorf("%w: negative step count", ErrCorruptSave)
	}
	if s.Progress.Difficulty < MinDifficulty || s.Progress.Difficulty > MaxDifficulty {
		return fmt.Errorf("%w: difficulty %d out of range", ErrCorruptSave, s.Progress.Difficulty)
	}
	return nil
}

// SaveGame writes the current game state to the given file path
func (e *GameEngine) SaveGame(path string) error {
	data, err := json.MarshalIndent(e.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize game state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	e.addMessage("Game saved.")
	return nil
}

// LoadGame reads a save file and restores the game from it. The current
// game is left untouched when the file is missing or invalid.
func (e *GameEngine) LoadGame(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.addMessage("No saved game found.")
			return fmt.Errorf("%w: %s", ErrNoSaveFile, path)
		}
		return fmt.Errorf("failed to read save file: %w", err)
	}

	var snapshot SaveState
	if err := json.Unmarshal(data, &snapshot); err != nil {
		e.addMessage("The save file could not be read.")
		return fmt.Errorf("%w: %v", ErrCorruptSave, err)
	}
	if err := e.RestoreSnapshot(&snapshot); err != nil {
		e.addMessage("The save file could not be read.")
		return err
	}
	e.addMessage("Game loaded.")
	return nil
}
