package engine

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ReachablePositions flood-fills the map from start over traversable cells
// using 4-directional movement and returns the set of visited positions.
func (m *DungeonMap) ReachablePositions(start Position) map[Position]bool {
	visited := make(map[Position]bool)
	if !m.InBounds(start) || !m.IsTraversable(start) {
		return visited
	}

	queue := []Position{start}
	visited[start] = true
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		for _, next := range []Position{
			{Row: pos.Row - 1, Col: pos.Col},
			{Row: pos.Row + 1, Col: pos.Col},
			{Row: pos.Row, Col: pos.Col - 1},
			{Row: pos.Row, Col: pos.Col + 1},
		} {
			if visited[next] || !m.InBounds(next) || !m.IsTraversable(next) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

// IsReachable reports whether target can be reached from start
func (m *DungeonMap) IsReachable(start, target Position) bool {
	return m.ReachablePositions(start)[target]
}
