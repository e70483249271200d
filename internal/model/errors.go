package model

import "errors"

// Kind is a machine-readable rule violation code.
type Kind string

const (
	KindNoPieceAtOrigin      Kind = "NO_PIECE_AT_ORIGIN"
	KindNotYourPiece         Kind = "NOT_YOUR_PIECE"
	KindMandatoryJumpPending Kind = "MANDATORY_JUMP_PENDING"
	KindIllegalSlide         Kind = "ILLEGAL_SLIDE"
	KindIllegalJump          Kind = "ILLEGAL_JUMP"
	KindNoPieceToCapture     Kind = "NO_PIECE_TO_CAPTURE"
	KindMustContinueJumping  Kind = "MUST_CONTINUE_JUMPING"
)

// RuleError is returned when a move sequence breaks a rule. The board it
// was applied to is left untouched.
type RuleError struct {
	Kind    Kind
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Is reports whether target is a RuleError of the same kind.
func (e *RuleError) Is(target error) bool {
	if t, ok := target.(*RuleError); ok {
		return e.Kind == t.Kind
	}
	return false
}

func ruleError(kind Kind, message string) *RuleError {
	return &RuleError{Kind: kind, Message: message}
}

// Sentinels for errors.Is; only the kind is compared.
var (
	ErrNoPieceAtOrigin      = ruleError(KindNoPieceAtOrigin, "no piece at origin")
	ErrNotYourPiece         = ruleError(KindNotYourPiece, "you can only move your own pieces")
	ErrMandatoryJumpPending = ruleError(KindMandatoryJumpPending, "you have a piece that's able to jump, so you have to jump")
	ErrIllegalSlide         = ruleError(KindIllegalSlide, "that piece can't move there")
	ErrIllegalJump          = ruleError(KindIllegalJump, "that piece can't jump there")
	ErrNoPieceToCapture     = ruleError(KindNoPieceToCapture, "no piece to jump")
	ErrMustContinueJumping  = ruleError(KindMustContinueJumping, "jumping is mandatory if you're able to")
)

// Game-level errors raised by Game rather than by the rules engine.
var (
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game is over")
)

// KindOf returns the rule violation kind carried by err, or "" if err is not
// a rule violation.
func KindOf(err error) Kind {
	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return ruleErr.Kind
	}
	return ""
}
