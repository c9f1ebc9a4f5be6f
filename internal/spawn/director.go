// Package spawn implements the wave director: kill bookkeeping, score, replacements and
// wave-start batches, plus the random spawn-position search.
package spawn

import (
	"log/slog"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/world"
)

// Director reacts to deaths recorded during a tick and keeps the arena populated.
// Uses callback injection to avoid an import cycle with the session.
type Director struct {
	finder *Finder

	// scoreFunc is called after every kill with the new score.
	scoreFunc func(score int)

	// waveFunc is called after every kill and on wave start with the wave number and progress.
	waveFunc func(wave int, progressPercent float64)

	// spawnedFunc is called for every enemy put into the world.
	spawnedFunc func(e *model.Enemy)
}

// NewDirector creates a director using finder for spawn positions.
func NewDirector(finder *Finder) *Director {
	return &Director{finder: finder}
}

// SetScoreFunc sets the callback invoked when the score changes.
func (d *Director) SetScoreFunc(fn func(score int)) {
	d.scoreFunc = fn
}

// SetWaveFunc sets the callback invoked when wave progress changes.
func (d *Director) SetWaveFunc(fn func(wave int, progressPercent float64)) {
	d.waveFunc = fn
}

// SetSpawnedFunc sets the callback invoked for every spawned enemy.
func (d *Director) SetSpawnedFunc(fn func(e *model.Enemy)) {
	d.spawnedFunc = fn
}

// HandleDeaths drains the deaths recorded this tick and applies them in order.
// Returns the number of deaths processed.
func (d *Director) HandleDeaths(w *world.World) int {
	deaths := w.DrainDeaths()
	for _, e := range deaths {
		d.OnKill(w, e)
	}
	return len(deaths)
}

// OnKill awards score for e, counts the kill and either spawns a replacement or
// advances the wave when the quota is reached.
func (d *Director) OnKill(w *world.World, e *model.Enemy) {
	w.Wave.Score += e.KillScore()
	w.Wave.Killed++
	w.Wave.TotalKills++
	if d.scoreFunc != nil {
		d.scoreFunc(w.Wave.Score)
	}

	if w.Wave.QuotaReached() {
		w.Wave.Advance()
		d.StartWave(w)
		return
	}
	d.notifyWave(w)

	if w.LiveEnemies() < constants.LiveEnemyFloor && w.Wave.Killed < w.Wave.Quota {
		d.Spawn(w, d.replacementKind(w))
	}
}

// StartWave populates the arena for the current wave.
// From MixedWaveFirst on, live ranged enemies are removed and a mixed batch is spawned;
// earlier waves spawn melee only.
func (d *Director) StartWave(w *world.World) {
	quota := w.Wave.Quota
	var melee, ranged, cleared int

	if w.Wave.Wave >= constants.MixedWaveFirst {
		cleared = w.ClearRanged()
		ranged = min(quota/3, constants.WaveStartMaxRanged)
		melee = min(quota-ranged, constants.WaveStartMaxMelee)
	} else {
		melee = min(quota, constants.WaveStartMaxMeleeEarly)
	}

	spawnedMelee := d.spawnN(w, model.EnemyMelee, melee)
	spawnedRanged := d.spawnN(w, model.EnemyRanged, ranged)

	slog.Info("wave started",
		"wave", w.Wave.Wave,
		"quota", quota,
		"melee", spawnedMelee,
		"ranged", spawnedRanged,
		"clearedRanged", cleared,
		"score", w.Wave.Score)

	d.notifyWave(w)
}

// Spawn creates one enemy of kind at a searched position.
// Returns false (and spawns nothing) when the attempt budget is exhausted.
func (d *Director) Spawn(w *world.World, kind model.EnemyKind) (*model.Enemy, bool) {
	pos, ok := d.finder.Find(w.Rand, kind, w.Player.Position)
	if !ok {
		slog.Debug("spawn budget exhausted",
			"kind", kind,
			"wave", w.Wave.Wave,
			"budget", d.finder.budget)
		return nil, false
	}

	speed := constants.EnemyBaseSpeed + w.Rand.Float64()*constants.EnemySpeedJitter
	id := w.IDs().NextEnemyID()

	var e *model.Enemy
	switch kind {
	case model.EnemyRanged:
		e = model.NewRangedEnemy(id, pos, speed)
	default:
		e = model.NewMeleeEnemy(id, pos, speed)
	}
	e.FaceTowards(w.Player.Position)
	w.AddEnemy(e)

	if d.spawnedFunc != nil {
		d.spawnedFunc(e)
	}
	return e, true
}

func (d *Director) spawnN(w *world.World, kind model.EnemyKind, n int) int {
	spawned := 0
	for range n {
		if _, ok := d.Spawn(w, kind); ok {
			spawned++
		}
	}
	return spawned
}

func (d *Director) replacementKind(w *world.World) model.EnemyKind {
	if w.Wave.Wave >= constants.RangedFirstWave && w.Rand.Float64() < constants.RangedReplacementChance {
		return model.EnemyRanged
	}
	return model.EnemyMelee
}

func (d *Director) notifyWave(w *world.World) {
	if d.waveFunc != nil {
		d.waveFunc(w.Wave.Wave, w.Wave.ProgressPercent())
	}
}
