package engine

import (
	"strings"
	"testing"
)

func placeRightOfPlayer(e *GameEngine, thing ThingType) Position {
	pos := e.PlayerPosition()
	target := Position{Row: pos.Row, Col: pos.Col + 1}
	e.CurrentMap().SetThing(target, thing)
	return target
}

func TestNormalizeDirection(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"up", DirectionUp, true},
		{"U", DirectionUp, true},
		{"d", DirectionDown, true},
		{" left ", DirectionLeft, true},
		{"R", DirectionRight, true},
		{"w", DirectionUp, true},
		{"north", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeDirection(tc.input)
		if got != tc.want || ok != tc.ok {
			t.Errorf("NormalizeDirection(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRejectedMovesConsumeNoStep(t *testing.T) {
	e := openFieldEngine(t)

	t.Run("unknown direction", func(t *testing.T) {
		if e.MovePlayer("sideways") {
			t.Error("Expected unknown direction to be rejected")
		}
		if e.StepsTaken() != 0 {
			t.Errorf("Expected 0 steps after rejection, got %d", e.StepsTaken())
		}
	})

	t.Run("map edge", func(t *testing.T) {
		e.player.SetPosition(Position{Row: 0, Col: 0})
		if e.MovePlayer("up") {
			t.Error("Expected move off the map to be rejected")
		}
		if e.StepsTaken() != 0 {
			t.Errorf("Expected 0 steps after edge rejection, got %d", e.StepsTaken())
		}
		if e.PlayerPosition() != (Position{Row: 0, Col: 0}) {
			t.Errorf("Expected player to stay put, got %s", e.PlayerPosition())
		}
	})

	t.Run("wall", func(t *testing.T) {
		e.player.SetPosition(Position{Row: 3, Col: 3})
		e.CurrentMap().SetThing(Position{Row: 3, Col: 4}, Wall)

		for i := 0; i < 3; i++ {
			if e.MovePlayer("right") {
				t.Fatal("Expected wall to block the move")
			}
		}
		if e.StepsTaken() != 0 {
			t.Errorf("Expected repeated rejections to consume no steps, got %d", e.StepsTaken())
		}
		if e.PlayerHP() != InitialHP {
			t.Errorf("Expected rejections to trigger no attacks, HP is %d", e.PlayerHP())
		}
	})
}

func TestSuccessfulMoveConsumesOneStep(t *testing.T) {
	e := openFieldEngine(t)

	if !e.MovePlayer("right") {
		t.Fatal("Expected move into open cell to succeed")
	}
	if e.StepsTaken() != 1 {
		t.Errorf("Expected 1 step taken, got %d", e.StepsTaken())
	}
	if e.PlayerPosition() != (Position{Row: 3, Col: 4}) {
		t.Errorf("Expected player at (3, 4), got %s", e.PlayerPosition())
	}
}

func TestGoldPickup(t *testing.T) {
	e := openFieldEngine(t)
	target := placeRightOfPlayer(e, Gold)

	e.MovePlayer("right")

	if e.PlayerScore() != GoldScore {
		t.Errorf("Expected score %d after gold pickup, got %d", GoldScore, e.PlayerScore())
	}
	if !e.CurrentMap().CellAt(target).IsEmpty() {
		t.Error("Expected gold to be removed after pickup")
	}
}

func TestHealthPotionHealsAndCaps(t *testing.T) {
	e := openFieldEngine(t)
	e.player.TakeDamage(6)
	placeRightOfPlayer(e, HealthPotion)

	e.MovePlayer("right")

	if e.PlayerHP() != 4+PotionHeal {
		t.Errorf("Expected HP %d after potion, got %d", 4+PotionHeal, e.PlayerHP())
	}

	// A second potion at near-full health caps at the maximum.
	placeRightOfPlayer(e, HealthPotion)
	e.MovePlayer("right")

	if e.PlayerHP() != MaxHP {
		t.Errorf("Expected HP capped at %d, got %d", MaxHP, e.PlayerHP())
	}
}

func TestTrapDamagesAndStaysArmed(t *testing.T) {
	e := openFieldEngine(t)
	target := placeRightOfPlayer(e, Trap)

	e.MovePlayer("right")

	if e.PlayerHP() != InitialHP-TrapDamage {
		t.Errorf("Expected HP %d after trap, got %d", InitialHP-TrapDamage, e.PlayerHP())
	}
	if !e.CurrentMap().CellAt(target).Contains(Trap) {
		t.Error("Expected trap to remain after triggering")
	}

	// Stepping off and back on triggers it again.
	e.MovePlayer("left")
	e.MovePlayer("right")

	if e.PlayerHP() != InitialHP-2*TrapDamage {
		t.Errorf("Expected HP %d after second trigger, got %d", InitialHP-2*TrapDamage, e.PlayerHP())
	}
}

func TestMeleeMutantFight(t *testing.T) {
	e := openFieldEngine(t)
	target := placeRightOfPlayer(e, MeleeMutant)

	e.MovePlayer("right")

	if e.PlayerHP() != InitialHP-MutantDamage {
		t.Errorf("Expected HP %d after melee fight, got %d", InitialHP-MutantDamage, e.PlayerHP())
	}
	if e.PlayerScore() != MutantScore {
		t.Errorf("Expected score %d after melee fight, got %d", MutantScore, e.PlayerScore())
	}
	if !e.CurrentMap().CellAt(target).IsEmpty() {
		t.Error("Expected melee mutant to be removed after the fight")
	}
}

func TestRangedMutantStomp(t *testing.T) {
	e := openFieldEngine(t)
	target := placeRightOfPlayer(e, RangedMutant)

	e.MovePlayer("right")

	if e.PlayerScore() != MutantScore {
		t.Errorf("Expected score %d after defeating ranged mutant, got %d", MutantScore, e.PlayerScore())
	}
	if !e.CurrentMap().CellAt(target).IsEmpty() {
		t.Error("Expected ranged mutant to be removed")
	}
}

func TestRangedMutantAttacksBeforeMove(t *testing.T) {
	e := openFieldEngine(t)
	// Two cells above the player, exactly at attack range.
	e.CurrentMap().SetThing(Position{Row: 1, Col: 3}, RangedMutant)

	e.MovePlayer("right")

	hp := e.PlayerHP()
	if hp != InitialHP && hp != InitialHP-MutantDamage {
		t.Fatalf("Expected HP %d (miss) or %d (hit), got %d", InitialHP, InitialHP-MutantDamage, hp)
	}

	log := strings.Join(e.Messages(), "\n")
	if !strings.Contains(log, "ranged mutant") {
		t.Errorf("Expected an attack message in the log, got:\n%s", log)
	}
}

func TestRangedMutantOutOfRangeNeverAttacks(t *testing.T) {
	e := openFieldEngine(t)
	// Manhattan distance 3 from the player, one past attack range.
	e.CurrentMap().SetThing(Position{Row: 0, Col: 3}, RangedMutant)

	for i := 0; i < 5; i++ {
		e.MovePlayer("right")
		e.MovePlayer("left")
	}

	if e.PlayerHP() != InitialHP {
		t.Errorf("Expected no damage from out-of-range mutant, HP is %d", e.PlayerHP())
	}
}

func TestLadderAdvancesToLevelTwo(t *testing.T) {
	e := openFieldEngine(t)
	ladderPos := placeRightOfPlayer(e, Ladder)

	e.MovePlayer("right")

	if e.CurrentLevel() != 2 {
		t.Fatalf("Expected level 2 after climbing, got %d", e.CurrentLevel())
	}
	wantScore := LadderScorePerDifficulty * 3
	if e.PlayerScore() != wantScore {
		t.Errorf("Expected score %d from ladder at difficulty 3, got %d", wantScore, e.PlayerScore())
	}
	wantDifficulty := DefaultDifficulty + 2
	if e.CurrentDifficulty() != wantDifficulty {
		t.Errorf("Expected level 2 difficulty %d, got %d", wantDifficulty, e.CurrentDifficulty())
	}
	if e.PlayerPosition() != ladderPos {
		t.Errorf("Expected player to re-enter at %s, got %s", ladderPos, e.PlayerPosition())
	}
	if e.Status() != StatusPlaying {
		t.Errorf("Expected game still playing on level 2, got %q", e.Status())
	}
}

func TestLadderOnLevelTwoWinsGame(t *testing.T) {
	e := openFieldEngine(t)
	e.currentLevel = 2
	e.currentDifficulty = 5
	placeRightOfPlayer(e, Ladder)

	e.MovePlayer("right")

	if e.Status() != StatusWon {
		t.Fatalf("Expected status %q, got %q", StatusWon, e.Status())
	}
	wantScore := LadderScorePerDifficulty * 5
	if e.PlayerScore() != wantScore {
		t.Errorf("Expected final score %d, got %d", wantScore, e.PlayerScore())
	}
	if e.Leaderboard().Len() != 1 {
		t.Errorf("Expected winning score on the leaderboard, got %d entries", e.Leaderboard().Len())
	}
}

func TestDeathLosesWithSentinelScore(t *testing.T) {
	e := openFieldEngine(t)
	e.player.TakeDamage(InitialHP - TrapDamage)
	placeRightOfPlayer(e, Trap)

	e.MovePlayer("right")

	if e.Status() != StatusLost {
		t.Fatalf("Expected status %q, got %q", StatusLost, e.Status())
	}
	if e.PlayerScore() != -1 {
		t.Errorf("Expected sentinel score -1, got %d", e.PlayerScore())
	}
}

func TestStepExhaustionLosesWithSentinelScore(t *testing.T) {
	e := openFieldEngine(t)
	e.player.AddScore(25)
	e.stepsTaken = e.MaxSteps() - 1

	e.MovePlayer("right")

	if e.Status() != StatusLost {
		t.Fatalf("Expected status %q, got %q", StatusLost, e.Status())
	}
	if e.PlayerScore() != -1 {
		t.Errorf("Expected sentinel score -1, got %d", e.PlayerScore())
	}
}

func TestLossTakesPrecedenceOverWin(t *testing.T) {
	e := openFieldEngine(t)
	e.currentLevel = 2
	e.currentDifficulty = 5
	e.stepsTaken = e.MaxSteps() - 1
	placeRightOfPlayer(e, Ladder)

	e.MovePlayer("right")

	if e.Status() != StatusLost {
		t.Fatalf("Expected exhaustion to override the win, got %q", e.Status())
	}
	if e.PlayerScore() != -1 {
		t.Errorf("Expected sentinel score -1, got %d", e.PlayerScore())
	}
	if e.Leaderboard().Len() != 0 {
		t.Errorf("Expected no leaderboard entry for a lost game, got %d", e.Leaderboard().Len())
	}
}

func TestNoMovesAfterGameOver(t *testing.T) {
	e := openFieldEngine(t)
	e.status = StatusLost

	if e.MovePlayer("right") {
		t.Error("Expected moves to be rejected after game over")
	}
	if e.StepsTaken() != 0 {
		t.Errorf("Expected no steps consumed after game over, got %d", e.StepsTaken())
	}
}

func TestBombPickupAndActivation(t *testing.T) {
	e := openFieldEngine(t)
	placeRightOfPlayer(e, Bomb)

	e.MovePlayer("right")

	if e.BombCount() != 1 {
		t.Fatalf("Expected 1 bomb in inventory, got %d", e.BombCount())
	}
	if e.PlayerScore() != 0 {
		t.Errorf("Expected pickup to leave score unchanged, got %d", e.PlayerScore())
	}

	// Surround the player with walls and a trap, then detonate.
	playerPos := e.PlayerPosition()
	wallPos := Position{Row: playerPos.Row - 1, Col: playerPos.Col}
	trapPos := Position{Row: playerPos.Row + 1, Col: playerPos.Col}
	e.CurrentMap().SetThing(wallPos, Wall)
	e.CurrentMap().SetThing(trapPos, Trap)

	if !e.ActivateBomb() {
		t.Fatal("Expected bomb activation to succeed")
	}
	if e.BombCount() != 0 {
		t.Errorf("Expected bomb inventory emptied, got %d", e.BombCount())
	}
	if e.PlayerScore() != BombScore {
		t.Errorf("Expected score %d after detonation, got %d", BombScore, e.PlayerScore())
	}
	if !e.CurrentMap().CellAt(wallPos).IsEmpty() {
		t.Error("Expected adjacent wall destroyed")
	}
	if !e.CurrentMap().CellAt(trapPos).IsEmpty() {
		t.Error("Expected adjacent trap destroyed")
	}
}

func TestActivateBombWithEmptyInventory(t *testing.T) {
	e := openFieldEngine(t)

	if e.ActivateBomb() {
		t.Error("Expected activation with no bombs to fail")
	}

	log := strings.Join(e.Messages(), "\n")
	if !strings.Contains(log, "no bombs") {
		t.Errorf("Expected a no-bombs message, got:\n%s", log)
	}
}

func TestBombDoesNotDestroyDistantCells(t *testing.T) {
	e := openFieldEngine(t)
	e.player.AddBombs(1)

	farWall := Position{Row: 0, Col: 0}
	e.CurrentMap().SetThing(farWall, Wall)

	e.ActivateBomb()

	if !e.CurrentMap().CellAt(farWall).Contains(Wall) {
		t.Error("Expected wall outside blast radius to survive")
	}
}
