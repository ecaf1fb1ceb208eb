package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "tabletop-hub/internal/api/http"
	"tabletop-hub/internal/api/ws"
	"tabletop-hub/internal/config"
	"tabletop-hub/internal/game"
	"tabletop-hub/internal/logging"
	"tabletop-hub/internal/pubsub"
	"tabletop-hub/internal/room"
	"tabletop-hub/internal/store"

	// swagger packages
	_ "tabletop-hub/docs"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Tabletop Hub API
// @version 1.0
// @description Rooms, lobbies and live play for chess, checkers and card games, with bots
// @contact.name Backend Team
// @contact.email backend@yourcompany.com
// @BasePath /
func main() {
	app := &cli.App{
		Name:  "tabletop-server",
		Usage: "serve the tabletop room hub",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default $TABLETOP_CONFIG or ./config.yaml)",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.String("config"))
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	difficulty, err := game.ParseDifficulty(cfg.Bot.DefaultDifficulty)
	if err != nil {
		return err
	}
	var engineOpts []game.Option
	if cfg.Rules.Seed != 0 {
		engineOpts = append(engineOpts, game.WithSeed(cfg.Rules.Seed))
	}
	engine := game.NewEngine(game.Rules{
		StrictCards:  cfg.Rules.StrictCards,
		HeartsTarget: cfg.Rules.HeartsTarget,
		SpadesTarget: cfg.Rules.SpadesTarget,
	}, engineOpts...)

	var st room.Store
	if cfg.Database.URL != "" {
		pg, err := store.OpenPostgres(ctx, cfg.Database.URL, logger)
		if err != nil {
			return err
		}
		defer pg.Close()
		st = pg
		logger.Info("using postgres store")
	} else {
		st = store.NewMemoryStore()
		logger.Info("using in-memory store")
	}

	rm := room.NewManager(engine, st, logger, room.Options{
		MinBotDelay:       cfg.Bot.MinDelay,
		MaxBotDelay:       cfg.Bot.MaxDelay,
		DefaultDifficulty: difficulty,
	})
	hub := ws.NewHub(rm, cfg.WS.AllowedOrigins, logger)

	if cfg.NATS.URL != "" {
		bridge, err := pubsub.Connect(cfg.NATS.URL, cfg.NATS.SubjectPrefix, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := bridge.Close(); err != nil {
				logger.Warn("nats close", zap.Error(err))
			}
		}()
		rm.SetBroadcaster(room.Broadcasters{hub, bridge})
		if err := bridge.Serve(rm); err != nil {
			return err
		}
	} else {
		rm.SetBroadcaster(hub)
	}
	// bots stop before the sinks they publish to
	defer func() {
		rm.Close()
		hub.Close()
	}()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httpapi.NewRouter(rm, hub, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
