package model

type Piece struct {
	Color    Color    `json:"color"`
	Position Position `json:"position"`
	King     bool     `json:"king"`
}

// DiagonalDirections returns the forward diagonals of a man, or all four for
// a king.
func (p *Piece) DiagonalDirections() []Direction {
	if p.King {
		return append(Black.forward(), White.forward()...)
	}
	return p.Color.forward()
}

// SlideMoves returns the adjacent empty cells along the piece's diagonals.
func (p *Piece) SlideMoves(board *Board) []Position {
	moves := []Position{}
	for _, dir := range p.DiagonalDirections() {
		target := p.Position.step(dir, 1)
		if board.IsInBounds(target) && board.at(target) == nil {
			moves = append(moves, target)
		}
	}
	return moves
}

// JumpMoves returns the landing cells of every single capture available to
// the piece: an opponent on the adjacent diagonal with an empty cell behind.
func (p *Piece) JumpMoves(board *Board) []Position {
	moves := []Position{}
	for _, dir := range p.DiagonalDirections() {
		landing := p.Position.step(dir, 2)
		if !board.IsInBounds(landing) || board.at(landing) != nil {
			continue
		}
		over := board.at(p.Position.step(dir, 1))
		if over == nil || over.Color == p.Color {
			continue
		}
		moves = append(moves, landing)
	}
	return moves
}

// AvailableMoves returns the jumps when there are any, otherwise the slides.
// It only looks at this piece; forcing a jump across pieces is done by
// ApplyMoveSequence.
func (p *Piece) AvailableMoves(board *Board) (moves []Position, mustJump bool) {
	if jumps := p.JumpMoves(board); len(jumps) > 0 {
		return jumps, true
	}
	return p.SlideMoves(board), false
}

func containsPosition(positions []Position, target Position) bool {
	for _, pos := range positions {
		if pos == target {
			return true
		}
	}
	return false
}
