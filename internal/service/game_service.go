package service

import (
	"fmt"

	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(first model.Color) (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID, first); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// HandleMove applies a move sequence for color. Rule violations come back
// as *model.RuleError and leave the game as it was.
func (gs *GameService) HandleMove(gameID string, color model.Color, sequence []model.Position) (model.Turn, error) {
	return gs.gameManager.MakeMove(gameID, color, sequence)
}

func (gs *GameService) EndGame(gameID string) {
	gs.gameManager.RemoveGame(gameID)
}
