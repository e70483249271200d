package model

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// The Game struct holds a single game's state. Turn order is enforced here;
// the rules of a single move are enforced by ApplyMoveSequence.
type Game struct {
	ID     string
	mu     sync.Mutex
	state  GameState
	clocks map[Color]*Clock
}

type GameState struct {
	Board          *Board           `json:"-"`
	Pieces         []Piece          `json:"pieces"`
	ToMove         Color            `json:"toMove"`
	MoveHistory    []Turn           `json:"moveHistory"`
	CapturedPieces CapturedPieces   `json:"capturedPieces"`
	LastMove       []Position       `json:"lastMove"`
	TimeSpent      map[Color]string `json:"timeSpent"`
	Result         *Result          `json:"result"`
}

// CapturedPieces lists the pieces taken by each side.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func NewGame(id string, first Color) *Game {
	g := &Game{
		ID:    id,
		state: newGameState(first),
		clocks: map[Color]*Clock{
			Black: NewClock(),
			White: NewClock(),
		},
	}
	g.clocks[first].Start()
	return g
}

func newGameState(first Color) GameState {
	return GameState{
		Board:       NewStandardBoard(),
		ToMove:      first,
		MoveHistory: make([]Turn, 0),
		CapturedPieces: CapturedPieces{
			White: make([]Piece, 0),
			Black: make([]Piece, 0),
		},
	}
}

// GetState returns a snapshot that shares nothing with the live game.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	state := g.state
	state.Board = g.state.Board.Clone()
	state.Pieces = state.Board.Pieces()
	state.MoveHistory = append([]Turn(nil), g.state.MoveHistory...)
	state.CapturedPieces = CapturedPieces{
		White: append([]Piece(nil), g.state.CapturedPieces.White...),
		Black: append([]Piece(nil), g.state.CapturedPieces.Black...),
	}
	state.LastMove = append([]Position(nil), g.state.LastMove...)
	state.TimeSpent = map[Color]string{}
	for color, clock := range g.clocks {
		state.TimeSpent[color] = clock.Spent().Round(time.Second).String()
	}
	return state
}

// MakeMove applies sequence for color. It fails with ErrGameOver once the
// game has a result, ErrNotYourTurn when color is not to move, or a
// *RuleError when the sequence is illegal; in every failure case the game
// is unchanged.
func (g *Game) MakeMove(color Color, sequence []Position) (Turn, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	log.Debug().Str("game", g.ID).Str("color", string(color)).Interface("sequence", sequence).Msg("making move")

	if g.state.Result != nil {
		return Turn{}, ErrGameOver
	}
	if color != g.state.ToMove {
		return Turn{}, ErrNotYourTurn
	}

	result, err := ApplyMoveSequence(g.state.Board, sequence, color)
	if err != nil {
		return Turn{}, err
	}
	g.clocks[color].Stop()

	turn := Turn{
		Color:    color,
		Sequence: append([]Position(nil), sequence...),
		Captured: result.Captured,
		Promoted: result.Promoted,
		Notation: Notation(sequence, len(result.Captured) > 0),
	}
	g.state.MoveHistory = append(g.state.MoveHistory, turn)
	switch color {
	case White:
		g.state.CapturedPieces.White = append(g.state.CapturedPieces.White, result.Captured...)
	case Black:
		g.state.CapturedPieces.Black = append(g.state.CapturedPieces.Black, result.Captured...)
	}
	g.state.LastMove = turn.Sequence

	g.switchTurn()
	g.state.Result = Outcome(g.state.Board)
	if g.state.Result != nil {
		log.Debug().Str("game", g.ID).Stringer("result", g.state.Result).Msg("game over")
	} else {
		g.clocks[g.state.ToMove].Start()
	}

	return turn, nil
}

func (g *Game) switchTurn() {
	g.state.ToMove = g.state.ToMove.Opponent()
}
