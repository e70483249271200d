package model

// HasAnyMove reports whether some piece of color can move.
func HasAnyMove(board *Board, color Color) bool {
	for _, piece := range board.AllPieces(OfColor(color)) {
		if moves, _ := piece.AvailableMoves(board); len(moves) > 0 {
			return true
		}
	}
	return false
}

// IsDraw reports whether no piece on the board, of either color, can move.
func IsDraw(board *Board) bool {
	for _, color := range Colors {
		if HasAnyMove(board, color) {
			return false
		}
	}
	return true
}

// Winner returns the color whose opponent has no legal move left, which
// includes having no pieces. A drawn board has no winner.
func Winner(board *Board) (Color, bool) {
	if IsDraw(board) {
		return "", false
	}
	for _, color := range Colors {
		if !HasAnyMove(board, color.Opponent()) {
			return color, true
		}
	}
	return "", false
}

// Result is the final state of a finished game.
type Result struct {
	Draw   bool  `json:"draw"`
	Winner Color `json:"winner,omitempty"`
}

func (r Result) String() string {
	if r.Draw {
		return "draw"
	}
	return string(r.Winner) + " wins"
}

// Outcome evaluates board, returning nil while the game is still going.
func Outcome(board *Board) *Result {
	if IsDraw(board) {
		return &Result{Draw: true}
	}
	if winner, ok := Winner(board); ok {
		return &Result{Winner: winner}
	}
	return nil
}
