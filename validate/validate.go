// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Dimension, difficulty, and step-budget bounds
//   - Entity count sanity (non-negative, not absurdly dense for the map size)
//   - Generation smoke test: a map generated from the config places a
//     reachable ladder and every requested entity pool fits
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/minidungeon/minidungeon/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfigFile loads and validates a single configuration JSON file.
// It performs structural checks and a generation smoke test.
func validateConfigFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	config, err := engine.LoadGameConfig(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Entity density check: the requested pool should fit into the floor
	// space a maze of this size can provide. Mazes carve roughly half the
	// cells, so flag configs that ask for more than a quarter of the map.
	totalCells := config.Rows * config.Cols
	requested := config.GoldCount + config.TrapCount + config.MeleeMutantCount +
		config.HealthPotionCount + config.BombCount +
		config.Difficulty*engine.RangedMutantsPerDifficulty
	if requested > totalCells/4 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("⚠ High entity density: %d entities requested for %d cells (placement may be truncated)",
				requested, totalCells))
	}

	// Generation smoke test across a few seeds
	for _, seed := range []int64{1, 2, 3} {
		if err := smokeTestGeneration(config, seed); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Generation failure (seed %d): %v", seed, err))
		}
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Map: %dx%d", config.Rows, config.Cols))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Difficulty: %d", config.Difficulty))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Max steps: %d", config.MaxSteps))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Entities: gold=%d traps=%d melee=%d potions=%d bombs=%d",
			config.GoldCount, config.TrapCount, config.MeleeMutantCount,
			config.HealthPotionCount, config.BombCount))
	}

	return result
}

// smokeTestGeneration generates one map from the config and verifies the
// structural invariants every playable map must satisfy.
func smokeTestGeneration(config *engine.GameConfig, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	m := engine.GenerateMap(config, config.Difficulty, true, nil, rng)

	entry, ok := m.FindThing(engine.Entry)
	if !ok {
		return fmt.Errorf("no entry placed")
	}

	ladder, ok := m.FindThing(engine.Ladder)
	if !ok {
		return fmt.Errorf("no ladder placed")
	}

	spawn := m.SpawnPosition(true, nil)
	if !m.IsTraversable(spawn) {
		return fmt.Errorf("spawn position (%d,%d) is not traversable", spawn.Row, spawn.Col)
	}

	reachable := m.ReachablePositions(spawn)
	if !reachable[ladder] {
		return fmt.Errorf("ladder at (%d,%d) unreachable from spawn", ladder.Row, ladder.Col)
	}
	if !reachable[entry] {
		return fmt.Errorf("entry at (%d,%d) unreachable from spawn", entry.Row, entry.Col)
	}

	return nil
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfigFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
