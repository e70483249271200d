package model

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveResult describes what a successfully applied sequence did.
type MoveResult struct {
	Captured []Piece `json:"captured"`
	Promoted bool    `json:"promoted"`
}

// Turn is one entry of a game's move history.
type Turn struct {
	Color    Color      `json:"color"`
	Sequence []Position `json:"sequence"`
	Captured []Piece    `json:"captured"`
	Promoted bool       `json:"promoted"`
	Notation string     `json:"notation"`
}

// ApplyMoveSequence moves the piece at sequence[0] through the remaining
// positions: a single slide, or one or more chained jumps. The sequence is
// first replayed on a clone of board; board is only changed when the whole
// sequence is legal, so on error it is exactly as it was before the call.
func ApplyMoveSequence(board *Board, sequence []Position, color Color) (MoveResult, error) {
	if _, err := performMoves(board.Clone(), sequence, color); err != nil {
		return MoveResult{}, err
	}
	return performMoves(board, sequence, color)
}

// performMoves applies sequence to board without any rollback.
func performMoves(board *Board, sequence []Position, color Color) (MoveResult, error) {
	if len(sequence) == 0 {
		return MoveResult{}, ruleError(KindNoPieceAtOrigin, "no move given")
	}
	origin, destinations := sequence[0], sequence[1:]
	piece := board.at(origin)
	if piece == nil {
		return MoveResult{}, ruleError(KindNoPieceAtOrigin, fmt.Sprintf("no piece at %v", origin))
	}
	if piece.Color != color {
		return MoveResult{}, ErrNotYourPiece
	}
	if len(destinations) == 0 {
		return MoveResult{}, ruleError(KindIllegalSlide, "no destination given")
	}

	if isJumpMove(piece, destinations) {
		return jumpMove(board, piece, destinations)
	}
	return slideMove(board, piece, destinations[0])
}

// isJumpMove treats a sequence as a jump chain when it has several
// destinations or its only destination is more than one row away.
func isJumpMove(piece *Piece, destinations []Position) bool {
	return len(destinations) > 1 || abs(destinations[0].Row-piece.Position.Row) > 1
}

func jumperPieces(board *Board, color Color) []*Piece {
	return board.AllPieces(OfColor(color), func(p *Piece) bool {
		return len(p.JumpMoves(board)) > 0
	})
}

func slideMove(board *Board, piece *Piece, to Position) (MoveResult, error) {
	if len(jumperPieces(board, piece.Color)) > 0 {
		return MoveResult{}, ErrMandatoryJumpPending
	}
	if !containsPosition(piece.SlideMoves(board), to) {
		return MoveResult{}, ruleError(KindIllegalSlide, fmt.Sprintf("that piece can't move to %v", to))
	}
	return MoveResult{Promoted: board.MovePiece(piece, to)}, nil
}

func jumpMove(board *Board, piece *Piece, destinations []Position) (MoveResult, error) {
	if !containsPosition(piece.JumpMoves(board), destinations[0]) {
		return MoveResult{}, ruleError(KindIllegalJump, fmt.Sprintf("that piece can't jump to %v", destinations[0]))
	}

	result := MoveResult{Captured: []Piece{}}
	for _, to := range destinations {
		// A man crowned by a jump ends the move there.
		if result.Promoted {
			return MoveResult{}, ruleError(KindIllegalJump, "a newly crowned king can't keep jumping this turn")
		}
		captured, promoted, err := performJump(board, piece, to)
		if err != nil {
			return MoveResult{}, err
		}
		result.Captured = append(result.Captured, captured)
		result.Promoted = promoted
	}

	if !result.Promoted && len(piece.JumpMoves(board)) > 0 {
		return MoveResult{}, ErrMustContinueJumping
	}
	return result, nil
}

func performJump(board *Board, piece *Piece, to Position) (Piece, bool, error) {
	from := piece.Position
	if abs(to.Row-from.Row) != 2 || abs(to.Col-from.Col) != 2 {
		return Piece{}, false, ruleError(KindIllegalJump, fmt.Sprintf("that piece can't jump to %v", to))
	}
	between := from.midpoint(to)
	captured := board.at(between)
	if captured == nil {
		return Piece{}, false, ruleError(KindNoPieceToCapture, fmt.Sprintf("no piece to jump at %v", between))
	}
	if !containsPosition(piece.JumpMoves(board), to) {
		return Piece{}, false, ruleError(KindIllegalJump, fmt.Sprintf("that piece can't jump to %v", to))
	}
	taken := *captured
	board.Remove(between)
	return taken, board.MovePiece(piece, to), nil
}

// Notation writes a sequence with standard square numbers: "11-15" for a
// slide, "15x22x29" for a jump chain.
func Notation(sequence []Position, jump bool) string {
	separator := "-"
	if jump {
		separator = "x"
	}
	squares := make([]string, 0, len(sequence))
	for _, pos := range sequence {
		squares = append(squares, strconv.Itoa(pos.SquareNumber()))
	}
	return strings.Join(squares, separator)
}
