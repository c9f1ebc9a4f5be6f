// Package arena wires the simulation components into a Session that runs one tick at a time
// in a fixed order: input, movement, melee AI, ranged AI, projectiles, hitscan, abilities,
// wave bookkeeping, presentation.
package arena

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/zombiearena/internal/ai"
	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/game/ability"
	"github.com/udisondev/zombiearena/internal/game/combat"
	"github.com/udisondev/zombiearena/internal/game/fx"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/game/movement"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/spawn"
	"github.com/udisondev/zombiearena/internal/world"
)

// Options configures a session.
type Options struct {
	// Seed for the session RNG; 0 seeds from the wall clock.
	Seed uint64

	// Tuning overrides player constants; the zero value means model.DefaultPlayerTuning().
	Tuning model.PlayerTuning

	// Clock stamps run start/end times; nil means time.Now.
	Clock func() time.Time
}

// TickStats reports what happened during one tick. Used by the soak tool and tests.
type TickStats struct {
	Step        movement.StepResult
	Melee       int
	Ranged      int
	Projectiles combat.ProjectileStats
	Fired       bool
	Shot        combat.HitResult
	Deaths      int
}

// growlState: таймер фонового рычания зомби.
type growlState struct {
	last       model.Cooldown
	cooldownMs int64
}

// Session: одна игровая сессия арены.
//
// Не потокобезопасна: Tick, SetPaused и Restart вызываются только из потока симуляции.
// Другие горутины отправляют команды через Post (см. Run).
type Session struct {
	index *geo.Index
	hooks Hooks
	opts  Options
	rng   *rand.Rand

	world     *world.World
	resolver  *movement.Resolver
	ai        *ai.Manager
	combat    *combat.CombatManager
	abilities *ability.Manager
	director  *spawn.Director
	effects   *fx.List

	elapsed    time.Duration
	ticks      uint64
	paused     bool
	growl      growlState
	initialYaw float64

	runID     uuid.UUID
	startedAt time.Time
	result    *Result

	// gameOverFunc is called once per run with the finished result (scoreboard).
	gameOverFunc func(Result)

	commands chan Command
}

// NewSession creates a session over idx and starts wave 1.
func NewSession(idx *geo.Index, hooks Hooks, opts Options) *Session {
	if opts.Tuning == (model.PlayerTuning{}) {
		opts.Tuning = model.DefaultPlayerTuning()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Session{
		index:     idx,
		opts:      opts,
		rng:       rand.New(rand.NewPCG(seed, seed)),
		resolver:  movement.NewResolver(idx),
		combat:    combat.NewCombatManager(),
		abilities: ability.NewManager(idx),
		director:  spawn.NewDirector(spawn.NewFinder(idx)),
		effects:   fx.NewList(),
		commands:  make(chan Command, commandBuffer),
	}
	s.hooks = hooks.withDefaults(s)
	s.ai = ai.NewManager(func(amount int32) {
		s.combat.DamagePlayer(s.world, amount)
	})
	s.wire()
	s.start()

	slog.Info("session created",
		"seed", seed,
		"walls", len(idx.Walls()),
		"layout", idx.Fingerprint())
	return s
}

// SetGameOverFunc sets the callback invoked once per run when the player dies.
func (s *Session) SetGameOverFunc(fn func(Result)) {
	s.gameOverFunc = fn
}

// World returns the current world. It is replaced on Restart.
func (s *Session) World() *world.World {
	return s.world
}

// Index returns the collision geometry.
func (s *Session) Index() *geo.Index {
	return s.index
}

// Effects returns the transient effects list.
func (s *Session) Effects() *fx.List {
	return s.effects
}

// Dashing reports whether a dash is in progress.
func (s *Session) Dashing() bool {
	return s.abilities.Dashing()
}

// InitialYaw is the heading the host camera should face at spawn (towards the map origin).
func (s *Session) InitialYaw() float64 {
	return s.initialYaw
}

// RunID identifies the current run.
func (s *Session) RunID() uuid.UUID {
	return s.runID
}

// Ticks returns the number of ticks simulated in the current run.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Paused reports whether ticks are suspended.
func (s *Session) Paused() bool {
	return s.paused
}

// SetPaused suspends or resumes ticking. The session clock does not advance while paused,
// so cooldowns are frozen.
func (s *Session) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused
	slog.Debug("session pause changed", "paused", paused, "nowMs", s.world.NowMs)
}

// Result returns the finished run, if the player has died.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Restart recreates the world wholesale and starts wave 1.
func (s *Session) Restart() {
	prev := s.world.Wave
	s.start()
	slog.Info("session restarted",
		"runID", s.runID,
		"previousScore", prev.Score,
		"previousWave", prev.Wave)
}

// Tick advances the simulation by dt. Paused and finished sessions do not tick.
func (s *Session) Tick(dt time.Duration) TickStats {
	var stats TickStats
	w := s.world
	if s.paused || w.GameOver || dt <= 0 {
		return stats
	}

	s.elapsed += dt
	s.ticks++
	w.NowMs = s.elapsed.Milliseconds()
	now := w.NowMs
	dtMs := float64(dt) / float64(time.Millisecond)

	in := s.hooks.Input.InputState()
	view := s.hooks.Camera.ViewDirection()

	stats.Step = s.resolver.Step(w.Player, in, view, dtMs, s.abilities.Dashing())
	stats.Melee = s.ai.TickMelee(w, dtMs)
	stats.Ranged = s.ai.TickRanged(w, dtMs)
	s.tickGrowl(w)
	stats.Projectiles = s.combat.TickProjectiles(w, dtMs)

	w.Player.IsShooting = in.FireHeld
	if in.FireHeld && !w.GameOver && w.Player.CanShoot(now) {
		stats.Fired = true
		stats.Shot = s.fire(w, view)
	}

	if !w.GameOver {
		s.abilities.Tick(w.Player, in, view, now)
	}
	stats.Deaths = s.director.HandleDeaths(w)
	s.effects.Tick(now)
	return stats
}

// fire shoots one hitscan round from the camera along view.
func (s *Session) fire(w *world.World, view model.Vec3) combat.HitResult {
	w.Player.Shot.Mark(w.NowMs)
	s.play(SoundShoot)

	origin := s.hooks.Camera.CameraPosition()
	res := s.combat.Hitscan(w, origin, view)

	end := origin.Add(view.Normalize().Scale(2 * constants.MapHalfExtent))
	if res.Hit {
		end = res.Point
	}
	s.effects.Spawn(w.IDs().NextEffectID(), fx.KindTracer, origin, end, w.NowMs)
	return res
}

// tickGrowl plays an ambient growl when a melee enemy is near and the growl timer elapsed.
func (s *Session) tickGrowl(w *world.World) {
	now := w.NowMs
	if !s.growl.last.Elapsed(now, s.growl.cooldownMs) {
		return
	}

	near := false
	for _, e := range w.Melee {
		if e.Position.DistanceTo(w.Player.Position) < constants.GrowlRadius {
			near = true
			break
		}
	}
	if !near || w.Rand.Float64() >= constants.GrowlChance {
		return
	}

	s.play(SoundZombieGrowl)
	s.growl.last.Mark(now)
	s.growl.cooldownMs = constants.GrowlMinCooldownMs + w.Rand.Int64N(constants.GrowlCooldownJitterMs)
}

// play forwards a cue to the sound collaborator; a panicking backend never reaches the tick.
func (s *Session) play(kind SoundKind) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("sound playback failed", "kind", kind, "panic", r)
		}
	}()
	s.hooks.Sound.Play(kind)
}

// wire connects component callbacks to the collaborators.
func (s *Session) wire() {
	n := s.hooks.Notifier

	s.combat.SetHealthFunc(n.HealthChanged)
	s.combat.SetGameOverFunc(s.onGameOver)
	s.combat.SetEnemyHitFunc(func(e *model.Enemy, point model.Vec3) {
		s.play(SoundHit)
		s.hooks.Effects.HitEffect(point)
		s.effects.Spawn(s.world.IDs().NextEffectID(), fx.KindHit, point, point, s.world.NowMs)
	})
	s.combat.SetEnemyKilledFunc(func(e *model.Enemy) {
		s.hooks.Effects.DeathEffect(e.Position)
		s.effects.Spawn(s.world.IDs().NextEffectID(), fx.KindDeath, e.Position, e.Position, s.world.NowMs)
	})

	s.director.SetScoreFunc(n.ScoreChanged)
	s.director.SetWaveFunc(n.WaveChanged)

	s.abilities.SetActivatedFunc(func(kind model.AbilityKind, from, to model.Vec3) {
		switch kind {
		case model.AbilityDash:
			s.play(SoundDash)
			s.effects.Spawn(s.world.IDs().NextEffectID(), fx.KindDashTrail, from, to, s.world.NowMs)
		case model.AbilityUpdraft:
			s.play(SoundUpdraft)
		}
	})
}

// start builds a fresh world, places the player at a random spawn marker and runs wave 1.
func (s *Session) start() {
	spawnPos := s.playerSpawn()
	player := model.NewPlayer(spawnPos, s.opts.Tuning)

	s.world = world.New(s.index, player, s.rng)
	s.abilities.Reset()
	s.effects.Clear()
	s.elapsed = 0
	s.ticks = 0
	s.paused = false
	s.result = nil
	s.growl = growlState{cooldownMs: constants.GrowlInitialCooldownMs}
	s.growl.last.Mark(0)

	s.initialYaw = 0
	if toOrigin := spawnPos.Scale(-1).Horizontal(); toOrigin.LenSquared() > 0 {
		s.initialYaw = toOrigin.Yaw()
	}

	s.runID = uuid.New()
	s.startedAt = s.opts.Clock()

	n := s.hooks.Notifier
	n.ScoreChanged(0)
	n.HealthChanged(player.Health())
	s.director.StartWave(s.world)

	slog.Info("run started",
		"runID", s.runID,
		"spawn", spawnPos,
		"enemies", s.world.LiveEnemies())
}

// playerSpawn picks one of the layout's spawn markers with equal probability.
func (s *Session) playerSpawn() model.Vec3 {
	markers := s.index.Layout().SpawnPoints
	if len(markers) == 0 {
		return model.NewVec3(0, constants.PlayerEyeHeight, constants.PlayerSpawnZ)
	}
	m := markers[s.rng.IntN(len(markers))]
	return model.NewVec3(m.X, constants.PlayerEyeHeight, m.Z)
}

func (s *Session) onGameOver() {
	w := s.world
	res := Result{
		RunID:             s.runID,
		StartedAt:         s.startedAt,
		EndedAt:           s.opts.Clock(),
		Score:             w.Wave.Score,
		WavesCompleted:    w.Wave.WavesCompleted(),
		Kills:             w.Wave.TotalKills,
		Ticks:             s.ticks,
		LayoutFingerprint: s.index.Fingerprint(),
	}
	s.result = &res

	slog.Info("run finished",
		"runID", res.RunID,
		"score", res.Score,
		"wavesCompleted", res.WavesCompleted,
		"kills", res.Kills,
		"duration", res.Duration())

	s.hooks.Notifier.GameOver(res.Score, res.WavesCompleted)
	if s.gameOverFunc != nil {
		s.gameOverFunc(res)
	}
}
