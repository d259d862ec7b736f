package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.Rows < MinMapSize || config.Rows > MaxMapSize {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinMapSize, MaxMapSize, config.Rows)
	}
	if config.Cols < MinMapSize || config.Cols > MaxMapSize {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinMapSize, MaxMapSize, config.Cols)
	}

	if config.Difficulty < MinDifficulty || config.Difficulty > MaxDifficulty {
		return fmt.Errorf("config validation: difficulty must be between %d and %d, got %d", MinDifficulty, MaxDifficulty, config.Difficulty)
	}

	if config.MaxSteps < 1 {
		return fmt.Errorf("config validation: max_steps must be at least 1, got %d", config.MaxSteps)
	}

	counts := map[string]int{
		"gold_count":          config.GoldCount,
		"trap_count":          config.TrapCount,
		"melee_mutant_count":  config.MeleeMutantCount,
		"health_potion_count": config.HealthPotionCount,
		"bomb_count":          config.BombCount,
	}
	for name, count := range counts {
		if count < 0 {
			return fmt.Errorf("config validation: %s must not be negative, got %d", name, count)
		}
	}

	return nil
}

// LoadGameConfig loads a game configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultGameConfig returns the reference configuration: a 20x20 dungeon
// with the classic entity counts and a 100-step budget.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Name:              "classic",
		Description:       "Classic 20x20 dungeon with the reference entity counts",
		Rows:              20,
		Cols:              20,
		Difficulty:        DefaultDifficulty,
		MaxSteps:          DefaultMaxSteps,
		GoldCount:         10,
		TrapCount:         8,
		MeleeMutantCount:  6,
		HealthPotionCount: 4,
		BombCount:         3,
	}
}
