package model

import "fmt"

const BoardSize = 8

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Direction struct {
	DRow int `json:"dRow"`
	DCol int `json:"dCol"`
}

func (p Position) step(d Direction, n int) Position {
	return Position{Row: p.Row + d.DRow*n, Col: p.Col + d.DCol*n}
}

// midpoint is the cell jumped over when moving from p to to.
func (p Position) midpoint(to Position) Position {
	return Position{Row: p.Row + (to.Row-p.Row)/2, Col: p.Col + (to.Col-p.Col)/2}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Row, p.Col)
}

// SquareNumber returns the standard 1..32 checkers square number of a dark
// square, counting row-major from row 0. Light squares return 0.
func (p Position) SquareNumber() int {
	if !boundaryCheck(p) || (p.Row+p.Col)%2 == 0 {
		return 0
	}
	return p.Row*4 + p.Col/2 + 1
}

func boundaryCheck(p Position) bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
