package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/zombiearena/internal/ai"
	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/audio"
	"github.com/udisondev/zombiearena/internal/config"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/snapshot"
	"github.com/udisondev/zombiearena/internal/terminal"
)

const ArenaConfigPath = "config/arena.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		fmt.Fprintf(os.Stderr, "arena: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ArenaConfigPath
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadArena(cfgPath)
	if err != nil {
		return fmt.Errorf("loading arena config: %w", err)
	}

	// tcell владеет stdout, логи пишем в файл
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	ai.EnableDebugLogging(cfg.Debug.AILogging)

	slog.Info("arena starting",
		"config", cfgPath,
		"log_level", cfg.LogLevel,
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed)

	idx := geo.NewDefaultIndex()

	board, err := openScoreboard(ctx, cfg.Scoreboard, idx.Fingerprint())
	if err != nil {
		return fmt.Errorf("opening scoreboard: %w", err)
	}
	defer board.Close()

	recorder, err := openRecorder(cfg.Recorder)
	if err != nil {
		return fmt.Errorf("opening frame recorder: %w", err)
	}
	defer func() {
		if recorder == nil {
			return
		}
		if err := recorder.Close(); err != nil {
			slog.Warn("closing frame recorder", "err", err)
		}
	}()

	sound := audio.NewPlayer(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Init(); err != nil {
			slog.Warn("audio disabled", "err", err)
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	presenter := terminal.NewPresenter(screen, idx)

	var sess *arena.Session
	controls := terminal.NewControls(0, func() model.Vec3 {
		return sess.World().Player.Position
	})

	sess = arena.NewSession(idx, arena.Hooks{
		Effects:  presenter,
		Sound:    sound,
		Input:    controls,
		Camera:   controls,
		Notifier: presenter,
	}, arena.Options{
		Seed:   cfg.Seed,
		Tuning: cfg.Tuning.PlayerTuning(),
	})
	controls.Reset(sess.InitialYaw())

	sess.SetGameOverFunc(board.Submit)

	ctx, quit := context.WithCancel(ctx)
	defer quit()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		runID := sess.RunID()
		err := sess.Run(gctx, cfg.TickRate, func(s *arena.Session) {
			if id := s.RunID(); id != runID {
				runID = id
				controls.Reset(s.InitialYaw())
			}
			f := snapshot.Capture(s)
			presenter.Draw(f)
			if recorder == nil {
				return
			}
			if err := recorder.Record(f); err != nil {
				slog.Warn("frame recorder failed, disabling", "err", err)
				if err := recorder.Close(); err != nil {
					slog.Debug("closing failed recorder", "err", err)
				}
				recorder = nil
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("arena loop: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		// будим PollEvent, чтобы цикл ввода увидел отмену
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil || gctx.Err() != nil {
				return nil
			}
			action := controls.Handle(ev)
			switch action {
			case terminal.ActionQuit:
				slog.Info("quit requested")
				quit()
				return nil
			case terminal.ActionResize:
				presenter.Resize()
			default:
				if cmd, ok := action.Command(); ok {
					sess.Post(cmd)
				}
			}
		}
	})

	g.Go(func() error {
		if err := board.Run(gctx, presenter.SetStatus); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("scoreboard writer: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("arena error: %w", err)
	}
	slog.Info("arena stopped", "ticks", sess.Ticks())
	return nil
}

// openRecorder returns nil when recording is disabled.
func openRecorder(cfg config.RecorderConfig) (*snapshot.Recorder, error) {
	if cfg.Path == "" {
		return nil, nil
	}
	rec, err := snapshot.CreateRecorder(cfg.Path, cfg.EveryNTicks)
	if err != nil {
		return nil, err
	}
	slog.Info("frame recorder enabled", "path", cfg.Path, "every_n_ticks", cfg.EveryNTicks)
	return rec, nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
