// Command analyze prints quick, human-readable heuristics about configuration
// files in the project's configs directory. For each config it generates
// sample maps across several seeds and reports entity counts, wall density,
// and whether every placed thing is reachable from the spawn point.
package main

import (
	"fmt"
	"math/rand"
	"path/filepath"

	"github.com/minidungeon/minidungeon/game/engine"
)

// sampleSeeds are the seeds used for the generation sweep of each config.
var sampleSeeds = []int64{1, 2, 3, 4, 5}

func main() {
	configs := []string{
		"classic.json",
		"easy.json",
		"hard.json",
	}

	for _, configFile := range configs {
		fmt.Printf("\n=== Analyzing %s ===\n", configFile)
		analyzeConfig(filepath.Join("configs", configFile))
	}
}

func analyzeConfig(path string) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Map Size: %d x %d\n", config.Rows, config.Cols)
	fmt.Printf("Difficulty: %d\n", config.Difficulty)
	fmt.Printf("Max Steps: %d\n", config.MaxSteps)
	fmt.Printf("Requested: gold=%d traps=%d melee=%d potions=%d bombs=%d ranged=%d\n",
		config.GoldCount, config.TrapCount, config.MeleeMutantCount,
		config.HealthPotionCount, config.BombCount,
		config.Difficulty*engine.RangedMutantsPerDifficulty)

	for _, seed := range sampleSeeds {
		analyzeGeneratedMap(config, seed)
	}
}

// analyzeGeneratedMap generates one map for the config and reports
// placement counts and reachability from the spawn point.
func analyzeGeneratedMap(config *engine.GameConfig, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	m := engine.GenerateMap(config, config.Difficulty, true, nil, rng)

	spawn := m.SpawnPosition(true, nil)
	reachable := m.ReachablePositions(spawn)

	walls := m.CountThing(engine.Wall)
	total := config.Rows * config.Cols
	wallPct := float64(walls) * 100 / float64(total)

	fmt.Printf("\n  seed=%d\n", seed)
	fmt.Printf("  Walls: %d/%d cells (%.1f%%)\n", walls, total, wallPct)
	fmt.Printf("  Placed: gold=%d traps=%d melee=%d ranged=%d potions=%d bombs=%d\n",
		m.CountThing(engine.Gold),
		m.CountThing(engine.Trap),
		m.CountThing(engine.MeleeMutant),
		m.CountThing(engine.RangedMutant),
		m.CountThing(engine.HealthPotion),
		m.CountThing(engine.Bomb))
	fmt.Printf("  Reachable cells from spawn: %d\n", len(reachable))

	unreachable := unreachableThings(m, reachable)
	if len(unreachable) > 0 {
		fmt.Printf("  ⚠️  WARNING: %d things are unreachable from the spawn!\n", len(unreachable))
		for i, p := range unreachable {
			if i >= 5 {
				fmt.Printf("     ... and %d more\n", len(unreachable)-5)
				break
			}
			cell := m.CellAt(p)
			fmt.Printf("     Unreachable: (%d, %d) - %s\n", p.Row, p.Col, cell.Thing.Symbol())
		}
	} else {
		fmt.Printf("  ✅ Every placed thing is reachable from the spawn\n")
	}

	ladder, ok := m.FindThing(engine.Ladder)
	if !ok {
		fmt.Printf("  ⚠️  CRITICAL: no ladder placed!\n")
	} else if !reachable[ladder] {
		fmt.Printf("  ⚠️  CRITICAL: ladder at (%d, %d) is unreachable!\n", ladder.Row, ladder.Col)
	}
}

// unreachableThings lists positions of non-wall things outside the reachable set.
func unreachableThings(m *engine.DungeonMap, reachable map[engine.Position]bool) []engine.Position {
	var result []engine.Position
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			pos := engine.Position{Row: r, Col: c}
			cell := m.CellAt(pos)
			if cell.Thing == "" || cell.Thing == engine.Wall {
				continue
			}
			if !reachable[pos] {
				result = append(result, pos)
			}
		}
	}
	return result
}
