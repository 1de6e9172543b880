package searcher

import "quoridor/game"

// rowDistance is how many rows separate a square from a target row.
func rowDistance(p game.Position, row int) int {
	return abs(p.Row - row)
}

// chebyshev is the king-move distance between a fence center and a square.
func chebyshev(e game.Edge, p game.Position) int {
	return max(abs(e.Row-p.Row), abs(e.Col-p.Col))
}

// adjacent reports whether a fence center is within one row and one column of
// the square.
func adjacent(e game.Edge, p game.Position) bool {
	return chebyshev(e, p) < 2
}

// fitness ranks a fence by how much it should slow a pawn heading for goal:
// closer to the pawn is better, then in front of it, then horizontal, since only
// horizontal fences cut forward progress.
func fitness(f game.Fence, pawn game.Position, goal int) int {
	score := -4 * chebyshev(f.Edge, pawn)
	if inFront(f.Edge.Row, pawn.Row, goal) {
		score += 2
	}
	if f.Orientation == game.Horizontal {
		score++
	}
	return score
}

func inFront(edgeRow, pawnRow, goal int) bool {
	if goal > pawnRow {
		return edgeRow >= pawnRow
	}
	return edgeRow < pawnRow
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
