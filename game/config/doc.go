// Package config provides configuration management for MiniDungeon.
//
// The config package handles:
//   - Loading difficulty presets from JSON files
//   - Configuration validation and caching
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Map dimensions (rows and cols)
//   - Base difficulty and the step budget
//   - Entity counts (gold, traps, mutants, potions, bombs)
//   - An optional seed for reproducible maps
//
// Available Configurations:
//
// The repository ships three presets:
//   - classic: the reference 20x20 dungeon with a 100-step budget
//   - easy: a smaller, gentler dungeon for new players
//   - hard: a large dungeon dense with mutants and traps
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("easy")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
package config
