package model

import "fmt"

// Board is the 8x8 grid. Every piece in the grid has a Position matching
// its cell, and a piece is moved only through the Board.
type Board struct {
	grid [][]*Piece
}

func NewEmptyBoard() *Board {
	board := &Board{}
	for i := 0; i < BoardSize; i++ {
		board.grid = append(board.grid, make([]*Piece, BoardSize))
	}
	return board
}

// NewStandardBoard lays out twelve men per side on the dark squares: black
// on rows 0-2, white on rows 5-7.
func NewStandardBoard() *Board {
	board := NewEmptyBoard()
	for _, row := range []int{0, 1, 2, 5, 6, 7} {
		color := Black
		if row > 2 {
			color = White
		}
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 == 1 {
				board.Place(&Piece{Position: Position{Row: row, Col: col}, Color: color})
			}
		}
	}
	return board
}

func (b *Board) IsInBounds(pos Position) bool {
	return boundaryCheck(pos)
}

// CellAt returns the occupant of pos, or nil when the cell is empty.
func (b *Board) CellAt(pos Position) (*Piece, error) {
	if !boundaryCheck(pos) {
		return nil, fmt.Errorf("position %v is off the board", pos)
	}
	return b.grid[pos.Row][pos.Col], nil
}

// at is CellAt for callers that already treat off-board cells as empty.
func (b *Board) at(pos Position) *Piece {
	if !boundaryCheck(pos) {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// Place writes piece into the cell at its position, overwriting any
// previous occupant.
func (b *Board) Place(piece *Piece) {
	b.grid[piece.Position.Row][piece.Position.Col] = piece
}

func (b *Board) Remove(pos Position) {
	if boundaryCheck(pos) {
		b.grid[pos.Row][pos.Col] = nil
	}
}

// MovePiece clears the piece's old cell, places it at to and crowns it when
// to is on its king row. It reports whether the piece was crowned by this
// move.
func (b *Board) MovePiece(piece *Piece, to Position) bool {
	b.Remove(piece.Position)
	piece.Position = to
	b.Place(piece)
	if !piece.King && to.Row == piece.Color.kingRow() {
		piece.King = true
		return true
	}
	return false
}

// AllPieces returns every occupant in row-major order, keeping only those
// accepted by all filters.
func (b *Board) AllPieces(filters ...func(*Piece) bool) []*Piece {
	pieces := []*Piece{}
	for row := 0; row < BoardSize; row++ {
	cells:
		for col := 0; col < BoardSize; col++ {
			piece := b.grid[row][col]
			if piece == nil {
				continue
			}
			for _, keep := range filters {
				if !keep(piece) {
					continue cells
				}
			}
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

// OfColor is an AllPieces filter.
func OfColor(color Color) func(*Piece) bool {
	return func(p *Piece) bool { return p.Color == color }
}

// Pieces returns a read-only snapshot of the occupants, row-major.
func (b *Board) Pieces() []Piece {
	pieces := []Piece{}
	for _, piece := range b.AllPieces() {
		pieces = append(pieces, *piece)
	}
	return pieces
}

// Clone returns a deep copy sharing no grid cells or pieces with b.
func (b *Board) Clone() *Board {
	board := NewEmptyBoard()
	for _, piece := range b.AllPieces() {
		copied := *piece
		board.Place(&copied)
	}
	return board
}
