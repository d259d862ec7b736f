// Package engine provides the core game logic for MiniDungeon.
//
// The engine package implements the game mechanics including:
//   - Procedural maze generation with guaranteed connectivity
//   - Turn-based movement, combat, and item interactions
//   - Two-level progression with scaling difficulty
//   - Win/loss resolution and a persistent top-score leaderboard
//   - Full-state save and load via JSON snapshots
//
// Core Types:
//
// GameEngine drives a single game and resolves every player action
// synchronously. DungeonMap holds the grid of Cells, each occupied by at
// most one ThingType. GameConfig defines a difficulty preset loaded from
// JSON files.
//
// Usage:
//
//	config, err := engine.LoadGameConfig("configs/classic.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewEngine(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Move the player
//	game.MovePlayer("up")
//	state := game.State()
//
// Game Rules:
//
// The player explores a two-level dungeon, collecting gold and bombs,
// drinking potions, fighting mutants, and dodging traps while racing a
// fixed step budget. Climbing the level 1 ladder descends to a harder
// level 2; climbing the level 2 ladder wins the game. Running out of
// health or steps loses the game with a sentinel score of -1.
package engine
