package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBoard builds a board holding exactly the given pieces.
func newTestBoard(pieces ...Piece) *Board {
	board := NewEmptyBoard()
	for i := range pieces {
		piece := pieces[i]
		board.Place(&piece)
	}
	return board
}

func man(color Color, row, col int) Piece {
	return Piece{Color: color, Position: Position{Row: row, Col: col}}
}

func king(color Color, row, col int) Piece {
	p := man(color, row, col)
	p.King = true
	return p
}

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// requireConsistent checks that every piece sits in the cell its position
// names and that its move lists respect the board.
func requireConsistent(t *testing.T, board *Board) {
	t.Helper()
	for _, piece := range board.AllPieces() {
		cell, err := board.CellAt(piece.Position)
		require.NoError(t, err)
		require.Same(t, piece, cell)

		for _, to := range piece.SlideMoves(board) {
			require.True(t, board.IsInBounds(to), "slide %v off the board", to)
			require.Nil(t, board.at(to), "slide %v onto an occupied cell", to)
		}
		for _, to := range piece.JumpMoves(board) {
			require.True(t, board.IsInBounds(to), "jump %v off the board", to)
			require.Nil(t, board.at(to), "jump %v onto an occupied cell", to)
			over := board.at(piece.Position.midpoint(to))
			require.NotNil(t, over)
			require.Equal(t, piece.Color.Opponent(), over.Color)
		}
	}
}

func TestNewStandardBoard(t *testing.T) {
	board := NewStandardBoard()

	require.Len(t, board.AllPieces(OfColor(Black)), 12)
	require.Len(t, board.AllPieces(OfColor(White)), 12)
	for _, piece := range board.AllPieces() {
		assert.Equal(t, 1, (piece.Position.Row+piece.Position.Col)%2, "piece on light square %v", piece.Position)
		assert.False(t, piece.King)
		if piece.Color == Black {
			assert.LessOrEqual(t, piece.Position.Row, 2)
		} else {
			assert.GreaterOrEqual(t, piece.Position.Row, 5)
		}
	}
	requireConsistent(t, board)
}

func TestCellAt(t *testing.T) {
	board := NewStandardBoard()

	piece, err := board.CellAt(pos(2, 1))
	require.NoError(t, err)
	require.NotNil(t, piece)
	assert.Equal(t, Black, piece.Color)

	piece, err = board.CellAt(pos(3, 0))
	require.NoError(t, err)
	assert.Nil(t, piece)

	for _, p := range []Position{pos(-1, 0), pos(0, 8), pos(8, 8), pos(3, -2)} {
		assert.False(t, board.IsInBounds(p))
		_, err := board.CellAt(p)
		assert.Error(t, err, "%v", p)
	}
}

func TestAllPiecesRowMajor(t *testing.T) {
	board := newTestBoard(man(White, 5, 2), man(Black, 0, 7), man(Black, 0, 1), man(White, 3, 4))

	var got []Position
	for _, piece := range board.AllPieces() {
		got = append(got, piece.Position)
	}
	assert.Equal(t, []Position{pos(0, 1), pos(0, 7), pos(3, 4), pos(5, 2)}, got)

	whites := board.AllPieces(OfColor(White))
	require.Len(t, whites, 2)
	assert.Equal(t, pos(3, 4), whites[0].Position)

	kings := board.AllPieces(func(p *Piece) bool { return p.King })
	assert.Empty(t, kings)
}

func TestPlaceAndRemove(t *testing.T) {
	board := NewEmptyBoard()
	piece := man(Black, 3, 2)
	board.Place(&piece)

	cell, err := board.CellAt(pos(3, 2))
	require.NoError(t, err)
	require.Same(t, &piece, cell)

	board.Remove(pos(3, 2))
	cell, err = board.CellAt(pos(3, 2))
	require.NoError(t, err)
	assert.Nil(t, cell)
	assert.Empty(t, board.AllPieces())
}

func TestMovePieceCrowns(t *testing.T) {
	board := newTestBoard(man(Black, 6, 1), man(White, 1, 2))
	black := board.at(pos(6, 1))
	white := board.at(pos(1, 2))

	assert.True(t, board.MovePiece(black, pos(7, 2)))
	assert.True(t, black.King)
	assert.Nil(t, board.at(pos(6, 1)))
	assert.Same(t, black, board.at(pos(7, 2)))

	// Kings stay kings when they leave the back row.
	assert.False(t, board.MovePiece(black, pos(6, 3)))
	assert.True(t, black.King)

	assert.True(t, board.MovePiece(white, pos(0, 1)))
	assert.True(t, white.King)
	requireConsistent(t, board)
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewStandardBoard()
	clone := board.Clone()

	require.Equal(t, board.Pieces(), clone.Pieces())

	piece := clone.at(pos(2, 1))
	require.NotSame(t, board.at(pos(2, 1)), piece)
	clone.MovePiece(piece, pos(3, 2))
	clone.Remove(pos(5, 0))

	original := board.at(pos(2, 1))
	require.NotNil(t, original)
	assert.Equal(t, pos(2, 1), original.Position)
	assert.Nil(t, board.at(pos(3, 2)))
	assert.NotNil(t, board.at(pos(5, 0)))
	assert.Len(t, board.AllPieces(), 24)
	requireConsistent(t, board)
	requireConsistent(t, clone)
}

func TestPiecesSnapshotIsReadOnly(t *testing.T) {
	board := NewStandardBoard()
	snapshot := board.Pieces()
	require.Len(t, snapshot, 24)

	snapshot[0].King = true
	snapshot[0].Position = pos(4, 4)
	assert.False(t, board.at(pos(0, 1)).King)
	assert.Nil(t, board.at(pos(4, 4)))
}

func TestSquareNumber(t *testing.T) {
	assert.Equal(t, 1, pos(0, 1).SquareNumber())
	assert.Equal(t, 4, pos(0, 7).SquareNumber())
	assert.Equal(t, 5, pos(1, 0).SquareNumber())
	assert.Equal(t, 32, pos(7, 6).SquareNumber())
	assert.Equal(t, 0, pos(0, 0).SquareNumber())
	assert.Equal(t, 0, pos(8, 1).SquareNumber())
}
