package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// GameEngine is the central coordinator for a single game: it owns the
// current level map, the player, the leaderboard, and the bounded message
// log, and resolves every player action synchronously.
type GameEngine struct {
	config *GameConfig
	rng    *rand.Rand

	currentMap        *DungeonMap
	player            *Player
	currentLevel      int
	currentDifficulty int
	stepsTaken        int
	maxSteps          int
	status            GameStatus
	level1Ladder      *Position

	topScores      *Leaderboard
	messages       []string
	messagesLogged int
}

// NewEngine creates a new game engine from the provided configuration and
// starts a game at the configuration's difficulty
func NewEngine(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &GameEngine{
		config:    config,
		rng:       rand.New(rand.NewSource(seed)),
		topScores: NewLeaderboard(),
	}
	e.StartGame(config.Difficulty)
	return e, nil
}

// NewEngineWithDefaults creates an engine using the reference configuration
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(DefaultGameConfig())
	if err != nil {
		// The default config is always valid.
		panic(err)
	}
	return e
}

// StartGame begins a new game at the given difficulty (clamped to 0-10).
// Player stats, steps, and the message log reset; the leaderboard survives
// across games within the engine's lifetime.
func (e *GameEngine) StartGame(difficulty int) {
	if difficulty < MinDifficulty {
		difficulty = MinDifficulty
	}
	if difficulty > MaxDifficulty {
		difficulty = MaxDifficulty
	}

	e.currentLevel = 1
	e.currentDifficulty = difficulty
	e.stepsTaken = 0
	e.maxSteps = e.config.MaxSteps
	e.status = StatusPlaying
	e.level1Ladder = nil
	e.messages = nil

	e.addMessage("Welcome to MiniDungeon!")
	e.addMessage("Starting Level 1 with difficulty %d...", difficulty)

	e.currentMap = GenerateMap(e.config, difficulty, true, nil, e.rng)
	spawn := e.currentMap.SpawnPosition(true, nil)
	e.player = NewPlayer(InitialHP, InitialScore, spawn)

	e.addMessage("Player HP: %d, Score: %d, Steps: %d", e.player.HP(), e.player.Score(), e.stepsTaken)
}

// Status returns the current game status
func (e *GameEngine) Status() GameStatus {
	return e.status
}

// CurrentMap returns the active level map
func (e *GameEngine) CurrentMap() *DungeonMap {
	return e.currentMap
}

// Player returns the player, primarily for tests
func (e *GameEngine) Player() *Player {
	return e.player
}

// PlayerPosition returns the player's current position
func (e *GameEngine) PlayerPosition() Position {
	return e.player.Position()
}

// PlayerHP returns the player's current health
func (e *GameEngine) PlayerHP() int {
	return e.player.HP()
}

// PlayerScore returns the player's current score
func (e *GameEngine) PlayerScore() int {
	return e.player.Score()
}

// BombCount returns the player's bomb inventory
func (e *GameEngine) BombCount() int {
	return e.player.BombCount()
}

// StepsTaken returns the number of steps taken this game
func (e *GameEngine) StepsTaken() int {
	return e.stepsTaken
}

// MaxSteps returns the step budget
func (e *GameEngine) MaxSteps() int {
	return e.maxSteps
}

// CurrentLevel returns the current level number (1 or 2)
func (e *GameEngine) CurrentLevel() int {
	return e.currentLevel
}

// CurrentDifficulty returns the difficulty of the current level
func (e *GameEngine) CurrentDifficulty() int {
	return e.currentDifficulty
}

// Config returns the engine's configuration
func (e *GameEngine) Config() *GameConfig {
	return e.config
}

// Leaderboard returns the engine's leaderboard
func (e *GameEngine) Leaderboard() *Leaderboard {
	return e.topScores
}

// TopScoresDisplay returns a formatted listing of the top scores
func (e *GameEngine) TopScoresDisplay() string {
	return e.topScores.Display()
}

// PlayerStatusLine returns a one-line summary of the player's stats
func (e *GameEngine) PlayerStatusLine() string {
	return fmt.Sprintf("HP: %d | Score: %d | Steps: %d/%d | Bombs: %d",
		e.player.HP(), e.player.Score(), e.stepsTaken, e.maxSteps, e.player.BombCount())
}

// Messages returns the accumulated game log, oldest first
func (e *GameEngine) Messages() []string {
	out := make([]string, len(e.messages))
	copy(out, e.messages)
	return out
}

// ClearMessages empties the game log
func (e *GameEngine) ClearMessages() {
	e.messages = nil
}

// MessagesLogged returns the total number of messages logged over the
// engine's lifetime, counting entries already evicted from the bounded log.
// Callers can diff two readings to recover the messages one action produced.
func (e *GameEngine) MessagesLogged() int {
	return e.messagesLogged
}

// addMessage appends to the bounded game log, evicting the oldest entry
// once the cap is reached
func (e *GameEngine) addMessage(format string, args ...any) {
	e.messages = append(e.messages, fmt.Sprintf(format, args...))
	e.messagesLogged++
	if len(e.messages) > MaxLogMessages {
		e.messages = e.messages[len(e.messages)-MaxLogMessages:]
	}
}
