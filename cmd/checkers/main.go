package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/checkers-backend/internal/config"
	"github.com/benbeisheim/checkers-backend/internal/console"
	"github.com/benbeisheim/checkers-backend/internal/controller"
	"github.com/benbeisheim/checkers-backend/internal/logging"
	"github.com/benbeisheim/checkers-backend/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	app := &cli.App{
		Name:  "checkers",
		Usage: "Play a game of checkers for two players on one terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
				Value: cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "colored board output: auto, always or never",
				Value: cfg.Color,
			},
			&cli.StringFlag{
				Name:  "first",
				Usage: "side that moves first: black or white",
				Value: cfg.First,
			},
		},
		Action: func(cCtx *cli.Context) error {
			cfg.LogLevel = cCtx.String("log-level")
			cfg.Color = cCtx.String("color")
			cfg.First = cCtx.String("first")
			return run(cCtx.Context, cfg)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Restore default signal handling after the first interrupt so a second
	// one kills the process.
	go func() {
		<-ctx.Done()
		stop()
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("checkers")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if err := logging.Configure(cfg.LogLevel, os.Stderr); err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	out, colored := console.NewOutput(settings.Color, os.Stdout)
	consoleController := controller.NewConsoleController(gameService, console.NewRenderer(colored), os.Stdin, out)

	_, err = consoleController.Play(ctx, settings.First)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
