package engine

import (
	"strings"
	"testing"
)

func createTestConfig() *GameConfig {
	return &GameConfig{
		Name:              "Engine Test Config",
		Description:       "Configuration for engine tests",
		Rows:              7,
		Cols:              7,
		Difficulty:        3,
		MaxSteps:          100,
		GoldCount:         0,
		TrapCount:         0,
		MeleeMutantCount:  0,
		HealthPotionCount: 0,
		BombCount:         0,
		Seed:              42,
	}
}

func newTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	e, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return e
}

// openFieldEngine swaps the generated maze for an empty 7x7 map so tests
// can stage exact cell contents around the player.
func openFieldEngine(t *testing.T) *GameEngine {
	t.Helper()
	e := newTestEngine(t)
	e.currentMap = NewEmptyMap(7, 7)
	e.player.SetPosition(Position{Row: 3, Col: 3})
	return e
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t)

	if e.Status() != StatusPlaying {
		t.Errorf("Expected status %q, got %q", StatusPlaying, e.Status())
	}
	if e.PlayerHP() != InitialHP {
		t.Errorf("Expected initial HP %d, got %d", InitialHP, e.PlayerHP())
	}
	if e.PlayerScore() != 0 {
		t.Errorf("Expected initial score 0, got %d", e.PlayerScore())
	}
	if e.StepsTaken() != 0 {
		t.Errorf("Expected 0 steps taken, got %d", e.StepsTaken())
	}
	if e.CurrentLevel() != 1 {
		t.Errorf("Expected level 1, got %d", e.CurrentLevel())
	}
	if e.BombCount() != 0 {
		t.Errorf("Expected empty bomb inventory, got %d", e.BombCount())
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Rows = 3

	if _, err := NewEngine(config); err == nil {
		t.Error("Expected error for undersized map, got nil")
	}

	if _, err := NewEngine(nil); err == nil {
		t.Error("Expected error for nil config, got nil")
	}
}

func TestStartGameClampsDifficulty(t *testing.T) {
	e := newTestEngine(t)

	e.StartGame(99)
	if e.CurrentDifficulty() != MaxDifficulty {
		t.Errorf("Expected difficulty clamped to %d, got %d", MaxDifficulty, e.CurrentDifficulty())
	}

	e.StartGame(-5)
	if e.CurrentDifficulty() != MinDifficulty {
		t.Errorf("Expected difficulty clamped to %d, got %d", MinDifficulty, e.CurrentDifficulty())
	}
}

func TestStartGameResetsState(t *testing.T) {
	e := newTestEngine(t)
	e.player.TakeDamage(5)
	e.player.AddScore(20)
	e.stepsTaken = 30

	e.StartGame(2)

	if e.PlayerHP() != InitialHP {
		t.Errorf("Expected HP reset to %d, got %d", InitialHP, e.PlayerHP())
	}
	if e.PlayerScore() != 0 {
		t.Errorf("Expected score reset to 0, got %d", e.PlayerScore())
	}
	if e.StepsTaken() != 0 {
		t.Errorf("Expected steps reset to 0, got %d", e.StepsTaken())
	}
	if e.Status() != StatusPlaying {
		t.Errorf("Expected status %q, got %q", StatusPlaying, e.Status())
	}
}

func TestLeaderboardSurvivesRestart(t *testing.T) {
	e := newTestEngine(t)
	e.Leaderboard().Add(40, testDate(2026, 1, 10))

	e.StartGame(3)

	if e.Leaderboard().Len() != 1 {
		t.Errorf("Expected leaderboard to survive restart, got %d entries", e.Leaderboard().Len())
	}
}

func TestMessageLogIsBounded(t *testing.T) {
	e := newTestEngine(t)
	e.ClearMessages()

	for i := 0; i < MaxLogMessages+5; i++ {
		e.addMessage("message %d", i)
	}

	messages := e.Messages()
	if len(messages) != MaxLogMessages {
		t.Fatalf("Expected log capped at %d messages, got %d", MaxLogMessages, len(messages))
	}
	if messages[0] != "message 5" {
		t.Errorf("Expected oldest messages evicted, first is %q", messages[0])
	}
	if messages[len(messages)-1] != "message 14" {
		t.Errorf("Expected newest message kept, last is %q", messages[len(messages)-1])
	}
}

func TestMessagesLoggedCountsEvictedEntries(t *testing.T) {
	e := newTestEngine(t)
	before := e.MessagesLogged()

	for i := 0; i < MaxLogMessages+5; i++ {
		e.addMessage("message %d", i)
	}

	if got := e.MessagesLogged() - before; got != MaxLogMessages+5 {
		t.Errorf("Expected %d messages counted, got %d", MaxLogMessages+5, got)
	}
	if len(e.Messages()) != MaxLogMessages {
		t.Errorf("Expected bounded log unchanged at %d entries, got %d", MaxLogMessages, len(e.Messages()))
	}
}

func TestSeededEnginesGenerateIdenticalMaps(t *testing.T) {
	config := DefaultGameConfig()
	config.Seed = 1234

	e1, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create first engine: %v", err)
	}
	e2, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create second engine: %v", err)
	}

	rows1 := e1.CurrentMap().SymbolRows()
	rows2 := e2.CurrentMap().SymbolRows()
	if strings.Join(rows1, "\n") != strings.Join(rows2, "\n") {
		t.Error("Expected identical maps for identical seeds")
	}
}

func TestPlayerStatusLine(t *testing.T) {
	e := newTestEngine(t)
	line := e.PlayerStatusLine()

	if !strings.Contains(line, "HP: 10") {
		t.Errorf("Expected status line to report HP, got %q", line)
	}
	if !strings.Contains(line, "Steps: 0/100") {
		t.Errorf("Expected status line to report steps, got %q", line)
	}
}

func TestStateView(t *testing.T) {
	e := newTestEngine(t)
	state := e.State()

	if state.Status != StatusPlaying {
		t.Errorf("Expected status %q, got %q", StatusPlaying, state.Status)
	}
	if state.Rows != 7 || state.Cols != 7 {
		t.Errorf("Expected 7x7 grid, got %dx%d", state.Rows, state.Cols)
	}
	if len(state.Grid) != 7 {
		t.Fatalf("Expected 7 grid rows, got %d", len(state.Grid))
	}
	if state.PlayerPos != e.PlayerPosition() {
		t.Errorf("Expected player position %s, got %s", e.PlayerPosition(), state.PlayerPos)
	}
	if state.HP != InitialHP {
		t.Errorf("Expected HP %d, got %d", InitialHP, state.HP)
	}
}
