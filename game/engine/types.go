package engine

import (
	"fmt"
)

// ThingType identifies the kind of occupant sitting on a map cell
type ThingType string

const (
	Entry        ThingType = "entry"
	Ladder       ThingType = "ladder"
	Wall         ThingType = "wall"
	Trap         ThingType = "trap"
	Gold         ThingType = "gold"
	MeleeMutant  ThingType = "melee_mutant"
	RangedMutant ThingType = "ranged_mutant"
	HealthPotion ThingType = "health_potion"
	Bomb         ThingType = "bomb"
)

// ThingCategory groups thing types for interaction and display logic
type ThingCategory string

const (
	CategoryStructural ThingCategory = "structural"
	CategoryItem       ThingCategory = "item"
	CategoryHostile    ThingCategory = "hostile"
)

// Game rule constants
const (
	MaxHP             = 10
	InitialHP         = 10
	InitialScore      = 0
	DefaultDifficulty = 3
	DefaultMaxSteps   = 100
	MaxTopScores      = 5
	MaxLogMessages    = 10

	MinDifficulty = 0
	MaxDifficulty = 10

	// Validation constants
	MinMapSize = 7
	MaxMapSize = 51

	// Combat and scoring literals
	GoldScore                  = 2
	PotionHeal                 = 4
	TrapDamage                 = 2
	MutantDamage               = 2
	MutantScore                = 2
	BombScore                  = 5
	LadderScorePerDifficulty   = 10
	RangedAttackRange          = 2
	RangedMutantsPerDifficulty = 2

	PlayerSymbol = "P"
	EmptySymbol  = " "
)

var thingSymbols = map[ThingType]string{
	Entry:        "E",
	Ladder:       "L",
	Wall:         "#",
	Trap:         "T",
	Gold:         "G",
	MeleeMutant:  "M",
	RangedMutant: "R",
	HealthPotion: "H",
	Bomb:         "B",
}

// Symbol returns the one-character display symbol for the thing type
func (t ThingType) Symbol() string {
	return thingSymbols[t]
}

// Category returns the grouping of the thing type
func (t ThingType) Category() ThingCategory {
	switch t {
	case Wall, Entry, Ladder:
		return CategoryStructural
	case Gold, HealthPotion, Bomb:
		return CategoryItem
	case MeleeMutant, RangedMutant:
		return CategoryHostile
	}
	return ""
}

// ThingTypeFromSymbol resolves a display symbol back to its thing type.
// Returns false for a space (empty cell) or an unknown symbol.
func ThingTypeFromSymbol(symbol string) (ThingType, bool) {
	for t, s := range thingSymbols {
		if s == symbol {
			return t, true
		}
	}
	return "", false
}

// Position represents row,col coordinates on the dungeon map
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ManhattanDistanceTo returns the Manhattan distance to another position
func (p Position) ManhattanDistanceTo(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Cell represents a single grid cell holding at most one thing
type Cell struct {
	Thing ThingType `json:"thing,omitempty"`
}

// IsEmpty reports whether the cell has no occupant
func (c Cell) IsEmpty() bool {
	return c.Thing == ""
}

// IsTraversable reports whether the player may move onto this cell.
// A cell is traversable iff it is empty or its occupant is not a wall.
func (c Cell) IsTraversable() bool {
	return c.Thing != Wall
}

// Contains reports whether the cell holds a thing of the given type
func (c Cell) Contains(t ThingType) bool {
	return c.Thing == t && t != ""
}

// DisplaySymbol returns the cell's symbol, or a space when empty
func (c Cell) DisplaySymbol() string {
	if c.IsEmpty() {
		return EmptySymbol
	}
	return c.Thing.Symbol()
}

// GameStatus represents the possible states of a game
type GameStatus string

const (
	StatusPlaying GameStatus = "playing"
	StatusWon     GameStatus = "won"
	StatusLost    GameStatus = "lost"
)

// GameConfig represents a difficulty preset loaded from JSON
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Difficulty  int    `json:"difficulty"`
	MaxSteps    int    `json:"max_steps"`

	GoldCount         int `json:"gold_count"`
	TrapCount         int `json:"trap_count"`
	MeleeMutantCount  int `json:"melee_mutant_count"`
	HealthPotionCount int `json:"health_potion_count"`
	BombCount         int `json:"bomb_count"`

	// Seed pins the engine's random source for reproducible games.
	// Zero means a time-based seed.
	Seed int64 `json:"seed,omitempty"`
}
