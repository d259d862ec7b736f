package engine

import (
	"strings"
	"time"
)

// Direction constants for player movement
const (
	DirectionUp    = "up"
	DirectionDown  = "down"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

var directionDeltas = map[string][2]int{
	DirectionUp:    {-1, 0},
	DirectionDown:  {1, 0},
	DirectionLeft:  {0, -1},
	DirectionRight: {0, 1},
}

// NormalizeDirection maps a raw direction token (full word or single-letter
// shorthand, any case) to its canonical form. Returns false for unknown input.
func NormalizeDirection(direction string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(direction)) {
	case "up", "u", "w":
		return DirectionUp, true
	case "down", "d", "s":
		return DirectionDown, true
	case "left", "l", "a":
		return DirectionLeft, true
	case "right", "r":
		return DirectionRight, true
	}
	return "", false
}

// MovePlayer resolves a single turn for a move in the given direction.
// A rejected move (bad direction, map edge, wall, game over) consumes no
// step and triggers no attacks; the return value reports whether the
// player actually moved.
func (e *GameEngine) MovePlayer(direction string) bool {
	if e.status != StatusPlaying {
		e.addMessage("The game is over. Start a new game to keep playing.")
		return false
	}

	dir, ok := NormalizeDirection(direction)
	if !ok {
		e.addMessage("Unknown direction %q. Use up, down, left or right.", direction)
		return false
	}

	delta := directionDeltas[dir]
	target := Position{Row: e.player.Position().Row + delta[0], Col: e.player.Position().Col + delta[1]}

	if !e.currentMap.InBounds(target) {
		e.addMessage("You can't move outside the dungeon.")
		return false
	}
	if e.currentMap.CellAt(target).Contains(Wall) {
		e.addMessage("A wall blocks your path.")
		return false
	}

	// Ranged mutants fire before the player leaves their square.
	e.resolveRangedAttacks()

	e.player.SetPosition(target)
	e.stepsTaken++
	e.addMessage("You move %s.", dir)

	e.resolveCellInteraction(target)
	e.checkEndConditions()
	return true
}

// resolveRangedAttacks lets every ranged mutant within attack range of the
// player's current position take a shot. Each shot independently hits with
// 50% probability for fixed damage.
func (e *GameEngine) resolveRangedAttacks() {
	playerPos := e.player.Position()
	for _, pos := range e.currentMap.RangedMutantPositions() {
		if pos.ManhattanDistanceTo(playerPos) > RangedAttackRange {
			continue
		}
		if e.rng.Intn(2) == 0 {
			e.player.TakeDamage(MutantDamage)
			e.addMessage("A ranged mutant hits you for %d damage!", MutantDamage)
		} else {
			e.addMessage("A ranged mutant attacks you, but misses.")
		}
	}
}

// resolveCellInteraction applies the effect of the thing occupying the cell
// the player just stepped onto
func (e *GameEngine) resolveCellInteraction(pos Position) {
	cell := e.currentMap.CellAt(pos)
	if cell.IsEmpty() {
		return
	}

	switch cell.Thing {
	case Gold:
		e.player.AddScore(GoldScore)
		e.currentMap.SetThing(pos, "")
		e.addMessage("You picked up gold! +%d score.", GoldScore)

	case HealthPotion:
		e.player.Heal(PotionHeal)
		e.currentMap.SetThing(pos, "")
		e.addMessage("You drank a health potion. +%d HP.", PotionHeal)

	case Trap:
		// Traps are permanent fixtures and stay armed.
		e.player.TakeDamage(TrapDamage)
		e.addMessage("You stepped on a trap! -%d HP.", TrapDamage)

	case MeleeMutant:
		e.player.TakeDamage(MutantDamage)
		e.player.AddScore(MutantScore)
		e.currentMap.SetThing(pos, "")
		e.addMessage("You fought a melee mutant! -%d HP, +%d score.", MutantDamage, MutantScore)

	case RangedMutant:
		e.player.AddScore(MutantScore)
		e.currentMap.SetThing(pos, "")
		e.addMessage("You defeated a ranged mutant! +%d score.", MutantScore)

	case Bomb:
		e.player.AddBombs(1)
		e.currentMap.SetThing(pos, "")
		e.addMessage("You picked up a bomb.")

	case Ladder:
		e.player.AddScore(LadderScorePerDifficulty * e.currentDifficulty)
		e.addMessage("You climbed the ladder! +%d score.", LadderScorePerDifficulty*e.currentDifficulty)
		if e.currentLevel == 1 {
			e.advanceLevel(pos)
		} else {
			e.status = StatusWon
		}
	}
}

// advanceLevel transitions from level 1 to level 2. The ladder's position
// seeds the new map so the player re-enters exactly where they climbed,
// and the difficulty steps up with the level.
func (e *GameEngine) advanceLevel(ladderPos Position) {
	e.level1Ladder = &Position{Row: ladderPos.Row, Col: ladderPos.Col}
	e.currentLevel = 2
	e.currentDifficulty = DefaultDifficulty + 2*(e.currentLevel-1)

	e.addMessage("You descend to Level %d. Difficulty is now %d.", e.currentLevel, e.currentDifficulty)

	e.currentMap = GenerateMap(e.config, e.currentDifficulty, false, e.level1Ladder, e.rng)
	e.player.SetPosition(e.currentMap.SpawnPosition(false, e.level1Ladder))
}

// checkEndConditions finalizes the turn. Death and step exhaustion both
// lose the game with the sentinel score and take precedence over a win
// earned on the same turn.
func (e *GameEngine) checkEndConditions() {
	switch {
	case e.player.HP() <= 0:
		e.status = StatusLost
		e.player.SetScore(-1)
		e.addMessage("You died in the dungeon. Game over. Final score: %d", e.player.Score())

	case e.stepsTaken >= e.maxSteps:
		e.status = StatusLost
		e.player.SetScore(-1)
		e.addMessage("You ran out of steps. Game over. Final score: %d", e.player.Score())

	case e.status == StatusWon:
		e.addMessage("You escaped the dungeon! Final score: %d", e.player.Score())
		if e.topScores.Add(e.player.Score(), time.Now()) {
			e.addMessage("You made the top scores!")
		}
	}
}

// ActivateBomb detonates one bomb from the player's inventory, destroying
// every wall and trap in the 8 cells around the player. Activating a bomb
// does not consume a step.
func (e *GameEngine) ActivateBomb() bool {
	if e.status != StatusPlaying {
		e.addMessage("The game is over. Start a new game to keep playing.")
		return false
	}
	if !e.player.UseBomb() {
		e.addMessage("You have no bombs to activate.")
		return false
	}

	targets := e.currentMap.AdjacentPositionsWithAnyOf(e.player.Position(), Wall, Trap)
	walls, traps := 0, 0
	for _, pos := range targets {
		switch e.currentMap.CellAt(pos).Thing {
		case Wall:
			walls++
		case Trap:
			traps++
		}
		e.currentMap.SetThing(pos, "")
	}

	e.player.AddScore(BombScore)
	e.addMessage("BOOM! The bomb destroyed %d walls and %d traps. +%d score.", walls, traps, BombScore)
	e.checkEndConditions()
	return true
}
