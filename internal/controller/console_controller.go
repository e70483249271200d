package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/benbeisheim/checkers-backend/internal/console"
	"github.com/benbeisheim/checkers-backend/internal/model"
	"github.com/benbeisheim/checkers-backend/internal/service"
	"github.com/rs/zerolog/log"
)

const prompt = "Type a sequence of coordinates you would like to move to (Ex: 2,1 3,2)"

// ConsoleController runs a hot-seat game: both players share one terminal
// and take turns typing coordinate sequences.
type ConsoleController struct {
	gameService *service.GameService
	renderer    *console.Renderer
	in          *bufio.Scanner
	out         io.Writer

	startReader sync.Once
	lines       chan readResult
}

type readResult struct {
	line string
	err  error
}

func NewConsoleController(gameService *service.GameService, renderer *console.Renderer, in io.Reader, out io.Writer) *ConsoleController {
	return &ConsoleController{
		gameService: gameService,
		renderer:    renderer,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

// Play runs a new game until it is decided, the input ends or ctx is
// cancelled, and returns the final state.
func (cc *ConsoleController) Play(ctx context.Context, first model.Color) (model.GameState, error) {
	gameID, err := cc.gameService.CreateGame(first)
	if err != nil {
		return model.GameState{}, err
	}
	defer cc.gameService.EndGame(gameID)

	for {
		state, err := cc.gameService.GetGameState(gameID)
		if err != nil {
			return model.GameState{}, err
		}
		if state.Result != nil {
			fmt.Fprint(cc.out, cc.renderer.Render(state.Pieces))
			cc.printResult(*state.Result)
			return state, nil
		}
		if err := ctx.Err(); err != nil {
			return state, err
		}

		if err := cc.playTurn(ctx, gameID, state); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return state, ctxErr
			}
			if errors.Is(err, io.EOF) {
				log.Info().Str("game", gameID).Msg("input closed, leaving game")
				return state, nil
			}
			return state, err
		}
	}
}

// playTurn prompts the player to move until a legal sequence is entered.
func (cc *ConsoleController) playTurn(ctx context.Context, gameID string, state model.GameState) error {
	color := state.ToMove
	fmt.Fprintf(cc.out, "%s turn!\n", capitalize(string(color)))
	fmt.Fprint(cc.out, cc.renderer.Render(state.Pieces))

	for {
		fmt.Fprintln(cc.out, prompt)
		line, err := cc.readLine(ctx)
		if err != nil {
			return err
		}

		sequence, err := console.ParseSequence(line)
		if err != nil {
			fmt.Fprintln(cc.out, cc.renderer.Emphasize(err.Error()))
			continue
		}

		turn, err := cc.gameService.HandleMove(gameID, color, sequence)
		if err != nil {
			var ruleErr *model.RuleError
			if !errors.As(err, &ruleErr) {
				return err
			}
			fmt.Fprintln(cc.out, cc.renderer.Emphasize(ruleErr.Message))
			continue
		}
		log.Debug().Str("game", gameID).Str("move", turn.Notation).Msg("move played")
		return nil
	}
}

// readLine waits for the next input line or for ctx to be done, whichever
// comes first. Lines are read by a single background goroutine so that a
// blocked read never holds up cancellation.
func (cc *ConsoleController) readLine(ctx context.Context) (string, error) {
	cc.startReader.Do(func() {
		cc.lines = make(chan readResult)
		go cc.scan()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-cc.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

func (cc *ConsoleController) scan() {
	defer close(cc.lines)
	for cc.in.Scan() {
		cc.lines <- readResult{line: cc.in.Text()}
	}
	if err := cc.in.Err(); err != nil {
		cc.lines <- readResult{err: fmt.Errorf("read move: %w", err)}
	}
}

func (cc *ConsoleController) printResult(result model.Result) {
	if result.Draw {
		fmt.Fprintln(cc.out, cc.renderer.Emphasize("IT'S A DRAW"))
		return
	}
	fmt.Fprintln(cc.out, cc.renderer.Emphasize(strings.ToUpper(string(result.Winner))+" WINS"))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
