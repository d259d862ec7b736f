package engine

import (
	"fmt"
	"math/rand"
	"strings"
)

// DungeonMap represents a single level of the dungeon: a fixed-size grid of
// cells carved into a maze and populated with items and mutants.
type DungeonMap struct {
	rows int
	cols int
	grid [][]Cell
}

// GenerateMap builds a fully-connected playable level.
//
// Every cell starts as a wall; a recursive-backtracker carve then opens a
// spanning tree of corridors, leaving exactly one simple path between any
// two carved cells. Structural markers (entry, ladder) and the entity
// scatter are applied afterwards and only ever clear or fill floor cells,
// so reachability from the spawn is preserved.
//
// For level 1 the carve starts near the spawn corner; for level 2 it starts
// at level 1's ladder coordinate (seedPos), which also becomes the entry.
func GenerateMap(config *GameConfig, difficulty int, level1 bool, seedPos *Position, rng *rand.Rand) *DungeonMap {
	m := newWallMap(config.Rows, config.Cols)

	start := m.carveStart(level1, seedPos)
	m.carveMaze(start.Row, start.Col, rng)

	entryPos := m.EntryPosition(level1, seedPos)
	spawnPos := m.SpawnPosition(level1, seedPos)

	// Structural overrides: the spawn cell is always cleared, and the entry
	// marker is forced regardless of carve state. On level 2 the spawn and
	// entry coincide, so the entry marker is written last.
	m.grid[spawnPos.Row][spawnPos.Col].Thing = ""
	m.grid[entryPos.Row][entryPos.Col].Thing = Entry

	// Placement pool: shuffled eligible empty floor cells, consumed greedily.
	// Bounded by construction; if a preset asks for more entities than there
	// is floor, the remainder is skipped.
	pool := m.emptyFloorPositions(spawnPos, entryPos)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	pool = m.placeFromPool(pool, Ladder, 1)
	pool = m.placeFromPool(pool, Gold, config.GoldCount)
	pool = m.placeFromPool(pool, Trap, config.TrapCount)
	pool = m.placeFromPool(pool, MeleeMutant, config.MeleeMutantCount)
	pool = m.placeFromPool(pool, HealthPotion, config.HealthPotionCount)
	pool = m.placeFromPool(pool, Bomb, config.BombCount)
	m.placeFromPool(pool, RangedMutant, RangedMutantsPerDifficulty*difficulty)

	return m
}

// NewEmptyMap builds a map of the given dimensions with every cell empty.
// Used when restoring a saved game, where the snapshot's per-cell symbols
// are the sole source of truth.
func NewEmptyMap(rows, cols int) *DungeonMap {
	m := newWallMap(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.grid[r][c].Thing = ""
		}
	}
	return m
}

func newWallMap(rows, cols int) *DungeonMap {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
		for c := range grid[r] {
			grid[r][c] = Cell{Thing: Wall}
		}
	}
	return &DungeonMap{rows: rows, cols: cols, grid: grid}
}

// EntryPosition returns the entry coordinate for a level: bottom-left for
// level 1, the level-1 ladder coordinate for level 2.
func (m *DungeonMap) EntryPosition(level1 bool, seedPos *Position) Position {
	if level1 || seedPos == nil {
		return Position{Row: m.rows - 1, Col: 0}
	}
	return *seedPos
}

// SpawnPosition returns the player spawn coordinate for a level. On level 1
// the player spawns one cell above the entry; on level 2 the spawn is the
// entry itself.
func (m *DungeonMap) SpawnPosition(level1 bool, seedPos *Position) Position {
	if level1 || seedPos == nil {
		return Position{Row: m.rows - 2, Col: 0}
	}
	return *seedPos
}

// carveStart picks the maze-carving origin. Carving proceeds in steps of
// two to leave walls between corridors, so both coordinates must be odd;
// adjusted coordinates that fall outside the grid are clamped back in.
func (m *DungeonMap) carveStart(level1 bool, seedPos *Position) Position {
	row, col := m.rows-2, 1
	if !level1 && seedPos != nil {
		row, col = seedPos.Row, seedPos.Col
	}

	if row%2 == 0 {
		row++
	}
	if col%2 == 0 {
		col++
	}
	if row >= m.rows {
		row = m.rows - 2
		if row%2 == 0 {
			row--
		}
	}
	if col >= m.cols {
		col = m.cols - 2
		if col%2 == 0 {
			col--
		}
	}
	if row < 1 {
		row = 1
	}
	if col < 1 {
		col = 1
	}
	return Position{Row: row, Col: col}
}

// carveMaze opens corridors with a recursive backtracker: carve the current
// cell, then recurse into randomly-ordered 2-step neighbors that are still
// walls, clearing the wall cell between.
func (m *DungeonMap) carveMaze(row, col int, rng *rand.Rand) {
	m.grid[row][col].Thing = ""

	directions := [][2]int{{0, 2}, {0, -2}, {2, 0}, {-2, 0}}
	rng.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})

	for _, dir := range directions {
		nextRow, nextCol := row+dir[0], col+dir[1]
		wallRow, wallCol := row+dir[0]/2, col+dir[1]/2

		if m.InBounds(Position{Row: nextRow, Col: nextCol}) && m.grid[nextRow][nextCol].Contains(Wall) {
			m.grid[wallRow][wallCol].Thing = ""
			m.carveMaze(nextRow, nextCol, rng)
		}
	}
}

// emptyFloorPositions lists every empty cell except the given exclusions
func (m *DungeonMap) emptyFloorPositions(exclude ...Position) []Position {
	var positions []Position
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if !m.grid[r][c].IsEmpty() {
				continue
			}
			pos := Position{Row: r, Col: c}
			skip := false
			for _, ex := range exclude {
				if pos == ex {
					skip = true
					break
				}
			}
			if !skip {
				positions = append(positions, pos)
			}
		}
	}
	return positions
}

// placeFromPool fills up to count cells from the front of the shuffled pool
// with the given thing type and returns the remaining pool
func (m *DungeonMap) placeFromPool(pool []Position, t ThingType, count int) []Position {
	if count > len(pool) {
		count = len(pool)
	}
	for i := 0; i < count; i++ {
		m.grid[pool[i].Row][pool[i].Col].Thing = t
	}
	return pool[count:]
}

// Rows returns the number of rows in the map
func (m *DungeonMap) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the map
func (m *DungeonMap) Cols() int {
	return m.cols
}

// InBounds reports whether the position lies within the map
func (m *DungeonMap) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < m.rows && pos.Col >= 0 && pos.Col < m.cols
}

// CellAt returns the cell at the given position. Requesting a cell outside
// the grid is a programming error and panics.
func (m *DungeonMap) CellAt(pos Position) Cell {
	if !m.InBounds(pos) {
		panic(fmt.Sprintf("engine: position %s out of map bounds %dx%d", pos, m.rows, m.cols))
	}
	return m.grid[pos.Row][pos.Col]
}

// SetThing places a thing (or clears the cell with the empty type) at pos.
// Out-of-bounds positions are a programming error and panic.
func (m *DungeonMap) SetThing(pos Position, t ThingType) {
	if !m.InBounds(pos) {
		panic(fmt.Sprintf("engine: position %s out of map bounds %dx%d", pos, m.rows, m.cols))
	}
	m.grid[pos.Row][pos.Col].Thing = t
}

// IsTraversable reports whether the player may occupy the given position.
// Out-of-bounds positions are not traversable.
func (m *DungeonMap) IsTraversable(pos Position) bool {
	return m.InBounds(pos) && m.grid[pos.Row][pos.Col].IsTraversable()
}

// AdjacentPositionsWithAnyOf scans the 8 neighbors of center and returns
// the positions holding any of the given thing types
func (m *DungeonMap) AdjacentPositionsWithAnyOf(center Position, types ...ThingType) []Position {
	offsets := [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	var matches []Position
	for _, off := range offsets {
		pos := Position{Row: center.Row + off[0], Col: center.Col + off[1]}
		if !m.InBounds(pos) {
			continue
		}
		cell := m.grid[pos.Row][pos.Col]
		for _, t := range types {
			if cell.Contains(t) {
				matches = append(matches, pos)
				break
			}
		}
	}
	return matches
}

// RangedMutantPositions derives the current ranged-mutant coordinates by
// scanning the grid. The list is recomputed on every call so it can never
// drift from the actual cell contents.
func (m *DungeonMap) RangedMutantPositions() []Position {
	var positions []Position
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.grid[r][c].Contains(RangedMutant) {
				positions = append(positions, Position{Row: r, Col: c})
			}
		}
	}
	return positions
}

// FindThing returns the position of the first occurrence of the given
// thing type, scanning row-major, and whether one was found
func (m *DungeonMap) FindThing(t ThingType) (Position, bool) {
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.grid[r][c].Contains(t) {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// CountThing returns the number of cells holding the given thing type
func (m *DungeonMap) CountThing(t ThingType) int {
	count := 0
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if m.grid[r][c].Contains(t) {
				count++
			}
		}
	}
	return count
}

// SymbolRows renders each grid row as a string of display symbols
func (m *DungeonMap) SymbolRows() []string {
	rows := make([]string, m.rows)
	for r := 0; r < m.rows; r++ {
		var b strings.Builder
		for c := 0; c < m.cols; c++ {
			b.WriteString(m.grid[r][c].DisplaySymbol())
		}
		rows[r] = b.String()
	}
	return rows
}

// Render returns a printable view of the map with the player overlaid
func (m *DungeonMap) Render(playerPos Position) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("-", m.cols*2) + "\n")
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if playerPos.Row == r && playerPos.Col == c {
				b.WriteString(PlayerSymbol + " ")
			} else {
				b.WriteString(m.grid[r][c].DisplaySymbol() + " ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("-", m.cols*2))
	return b.String()
}
