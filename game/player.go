package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidPlayer      = errors.New("player must be one of \"white\" or \"black\"")
	ErrInvalidOrientation = errors.New("orientation must be one of \"horizontal\" or \"vertical\"")
)

// Player identifies one of the two sides.
type Player int

const (
	White Player = iota + 1 // Moves first, from row 0 toward row 8
	Black
)

// ParsePlayer converts a player label ("white" or "black") into a Player.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	}
	return 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidPlayer)
}

func (p Player) Valid() bool {
	return p == White || p == Black
}

func (p Player) Opponent() Player {
	switch p {
	case White:
		return Black
	case Black:
		return White
	}
	return 0
}

func (p Player) String() string {
	switch p {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return fmt.Sprintf("player(%d)", int(p))
}

// Orientation is the direction of a fence.
type Orientation int

const (
	Horizontal Orientation = iota + 1
	Vertical
)

// ParseOrientation accepts any spelling whose first letter is 'h' or 'v',
// ignoring case, so "horizontal", "h" and "H" are equivalent.
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parsing empty orientation: %w", ErrInvalidOrientation)
	}
	switch s[0] {
	case 'h', 'H':
		return Horizontal, nil
	case 'v', 'V':
		return Vertical, nil
	}
	return 0, fmt.Errorf("parsing %q: %w", s, ErrInvalidOrientation)
}

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// Tag is the single-letter form of the orientation used by rules engines.
func (o Orientation) Tag() byte {
	switch o {
	case Horizontal:
		return 'h'
	case Vertical:
		return 'v'
	}
	return '?'
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("orientation(%d)", int(o))
}
