package model

import "fmt"

type Color string

const (
	Black Color = "black"
	White Color = "white"
)

// Colors lists both sides in the order they move at the start of a game.
var Colors = []Color{Black, White}

func (c Color) Opponent() Color {
	if c == Black {
		return White
	}
	return Black
}

// kingRow is the back row of the opponent, where a man is crowned.
func (c Color) kingRow() int {
	if c == White {
		return 0
	}
	return BoardSize - 1
}

// forward returns the two diagonals a man of this color may move along.
func (c Color) forward() []Direction {
	if c == White {
		return []Direction{{DRow: -1, DCol: 1}, {DRow: -1, DCol: -1}}
	}
	return []Direction{{DRow: 1, DCol: 1}, {DRow: 1, DCol: -1}}
}

func ParseColor(s string) (Color, error) {
	switch Color(s) {
	case Black, White:
		return Color(s), nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}
