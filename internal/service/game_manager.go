// service/game_manager.go
package service

import (
	"errors"
	"sync"

	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string, first model.Color) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = model.NewGame(gameID, first)
	log.Info().Str("game", gameID).Str("first", string(first)).Msg("game created")
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) MakeMove(gameID string, color model.Color, sequence []model.Position) (model.Turn, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.Turn{}, err
	}

	turn, err := game.MakeMove(color, sequence)
	if err != nil {
		log.Debug().Err(err).Str("game", gameID).Str("kind", string(model.KindOf(err))).Msg("move rejected")
		return model.Turn{}, err
	}
	return turn, nil
}

func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	delete(gm.games, gameID)
}
