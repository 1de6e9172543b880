// Package game holds the Quoridor data model, the contract of the external rules
// engine, the board wrapper handed to agents, and the actions agents return.
package game

import "fmt"

const (
	BoardSize = 9  // Rows and columns, indexed 0 to BoardSize-1
	FencesMax = 10 // Fences a single player may place over a whole match
)

// Position is a square on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Edge is the center coordinate of a fence placement.
type Edge struct {
	Row int
	Col int
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.Row, e.Col)
}

// Fence is a placed (or placeable) fence: its center edge and its direction.
type Fence struct {
	Edge        Edge
	Orientation Orientation
}

func (f Fence) String() string {
	return fmt.Sprintf("%c%s", f.Orientation.Tag(), f.Edge)
}

// Conflicts reports whether two fences cannot stand together: they share a
// center, or run along the same line less than two squares apart. A fence
// conflicts with itself.
func (f Fence) Conflicts(other Fence) bool {
	if f.Edge == other.Edge {
		return true
	}
	if f.Orientation != other.Orientation {
		return false
	}
	if f.Orientation == Horizontal {
		return f.Edge.Row == other.Edge.Row && abs(f.Edge.Col-other.Edge.Col) < 2
	}
	return f.Edge.Col == other.Edge.Col && abs(f.Edge.Row-other.Edge.Row) < 2
}

// GoalRow returns the row the player's pawn must reach to win. White starts on
// row 0 and advances toward row 8, black the other way round.
func GoalRow(p Player) int {
	if p == White {
		return BoardSize - 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
