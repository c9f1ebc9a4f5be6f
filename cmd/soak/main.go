// Command soak plays seeded headless runs with a scripted bot and checks the arena invariants every tick.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
)

func main() {
	runs := flag.Int("runs", 8, "number of seeded runs")
	ticks := flag.Int("ticks", constants.TestSoakTicks, "ticks per run")
	seed := flag.Uint64("seed", 1, "seed of the first run; run i uses seed+i")
	parallel := flag.Int("parallel", 4, "runs played concurrently")
	tickMs := flag.Int("tick-ms", 16, "simulated tick length in milliseconds")
	level := flag.String("log-level", "info", "debug, info, warn, error")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(*level),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := soakConfig{
		runs:     *runs,
		ticks:    *ticks,
		seed:     *seed,
		parallel: *parallel,
		dt:       time.Duration(*tickMs) * time.Millisecond,
	}
	if err := run(ctx, cfg); err != nil {
		slog.Error("soak failed", "err", err)
		os.Exit(1)
	}
}

type soakConfig struct {
	runs     int
	ticks    int
	seed     uint64
	parallel int
	dt       time.Duration
}

// summary aggregates finished runs.
type summary struct {
	mu        sync.Mutex
	ticks     uint64
	gameOvers int
	bestScore int
	bestWave  int
}

func (s *summary) add(r runReport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ticks += r.ticks
	s.gameOvers += r.gameOvers
	s.bestScore = max(s.bestScore, r.bestScore)
	s.bestWave = max(s.bestWave, r.bestWave)
}

func run(ctx context.Context, cfg soakConfig) error {
	if cfg.runs <= 0 || cfg.ticks <= 0 || cfg.dt <= 0 {
		return fmt.Errorf("runs, ticks and tick-ms must be positive")
	}

	idx := geo.NewDefaultIndex()
	slog.Info("soak starting",
		"runs", cfg.runs,
		"ticks", cfg.ticks,
		"seed", cfg.seed,
		"layout", idx.Fingerprint())

	var sum summary
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.parallel, 1))
	for i := range cfg.runs {
		seed := cfg.seed + uint64(i)
		g.Go(func() error {
			report, err := soakRun(gctx, idx, seed, cfg.ticks, cfg.dt)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			sum.add(report)
			slog.Info("run passed",
				"seed", seed,
				"gameOvers", report.gameOvers,
				"bestScore", report.bestScore,
				"bestWave", report.bestWave)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("soak passed",
		"ticks", sum.ticks,
		"gameOvers", sum.gameOvers,
		"bestScore", sum.bestScore,
		"bestWave", sum.bestWave,
		"elapsed", time.Since(started))
	return nil
}

type runReport struct {
	ticks     uint64
	gameOvers int
	bestScore int
	bestWave  int
}

// soakRun plays one seeded session, restarting after every game over.
func soakRun(ctx context.Context, idx *geo.Index, seed uint64, ticks int, dt time.Duration) (runReport, error) {
	var (
		report runReport
		sess   *arena.Session
	)
	b := &bot{}

	sess = arena.NewSession(idx, arena.Hooks{Input: b, Camera: b}, arena.Options{Seed: seed})
	b.sess = sess
	sess.SetGameOverFunc(func(res arena.Result) {
		report.gameOvers++
		report.bestScore = max(report.bestScore, res.Score)
	})

	chk := newChecker(sess)
	for tick := range ticks {
		if tick%256 == 0 && ctx.Err() != nil {
			return report, ctx.Err()
		}

		b.tick = tick
		sess.Tick(dt)
		report.ticks++

		if err := chk.check(); err != nil {
			return report, fmt.Errorf("tick %d: %w", tick, err)
		}
		w := sess.World()
		report.bestWave = max(report.bestWave, w.Wave.Wave)
		if w.GameOver {
			sess.Restart()
			chk = newChecker(sess)
		}
	}
	return report, nil
}

// checker validates per-tick invariants of one run.
type checker struct {
	sess      *arena.Session
	lastScore int
	lastWave  int
	gameOver  bool
}

func newChecker(sess *arena.Session) *checker {
	return &checker{sess: sess, lastWave: 1}
}

func (c *checker) check() error {
	w := c.sess.World()
	p := w.Player.Position

	if !w.Index.IsOutsideWalls(p) {
		return fmt.Errorf("player inside a wall at %+v", p)
	}
	if math.Abs(p.X) > constants.MapHalfExtent || math.Abs(p.Z) > constants.MapHalfExtent {
		return fmt.Errorf("player outside the map at %+v", p)
	}

	wave := w.Wave
	if wave.Quota != model.QuotaFor(wave.Wave) {
		return fmt.Errorf("wave %d quota = %d, want %d", wave.Wave, wave.Quota, model.QuotaFor(wave.Wave))
	}
	if wave.Killed >= wave.Quota {
		return fmt.Errorf("wave %d killed %d of quota %d without advancing", wave.Wave, wave.Killed, wave.Quota)
	}
	if wave.Score < c.lastScore {
		return fmt.Errorf("score went down: %d -> %d", c.lastScore, wave.Score)
	}
	if wave.Wave < c.lastWave || wave.Wave > c.lastWave+1 {
		return fmt.Errorf("wave jumped: %d -> %d", c.lastWave, wave.Wave)
	}
	if h := w.Player.Health(); h > constants.PlayerMaxHealth {
		return fmt.Errorf("player health %d above maximum", h)
	}

	if c.gameOver && !w.GameOver {
		return fmt.Errorf("game over reverted without restart")
	}
	if w.GameOver {
		if _, ok := c.sess.Result(); !ok {
			return fmt.Errorf("game over without a result")
		}
	}

	c.lastScore = wave.Score
	c.lastWave = wave.Wave
	c.gameOver = w.GameOver
	return nil
}

// bot aims at the nearest enemy, holds fire and strafes; it dashes and updrafts on a schedule.
type bot struct {
	sess *arena.Session
	tick int
}

func (b *bot) InputState() model.InputState {
	phase := (b.tick / 90) % 4
	return model.InputState{
		Forward:    phase == 0,
		Left:       phase == 1,
		Backward:   phase == 2,
		Right:      phase == 3,
		Jump:       b.tick%150 == 0,
		FireHeld:   true,
		UseDash:    b.tick%400 == 7,
		UseUpdraft: b.tick%700 == 11,
	}
}

func (b *bot) ViewDirection() model.Vec3 {
	w := b.sess.World()
	eye := w.Player.Position

	var (
		target model.Vec3
		best   = math.Inf(1)
	)
	for _, e := range w.AllEnemies() {
		if d := e.Position.DistanceSquared(eye); d < best {
			best, target = d, e.Position
		}
	}
	if math.IsInf(best, 1) {
		return model.DirectionFromYaw(b.sess.InitialYaw())
	}
	return target.Sub(eye).Normalize()
}

func (b *bot) CameraPosition() model.Vec3 {
	return b.sess.World().Player.Position
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
