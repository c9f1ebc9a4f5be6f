package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/zombiearena/internal/constants"
	"github.com/udisondev/zombiearena/internal/model"
)

// Arena holds all configuration for the arena binaries.
type Arena struct {
	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
	LogFile  string `yaml:"log_file"`  // terminal owns stdout

	// Simulation
	TickRate int    `yaml:"tick_rate"` // Hz
	Seed     uint64 `yaml:"seed"`      // 0 = time-based

	Audio      AudioConfig      `yaml:"audio"`
	Scoreboard ScoreboardConfig `yaml:"scoreboard"`
	Recorder   RecorderConfig   `yaml:"recorder"`
	Debug      DebugConfig      `yaml:"debug"`
	Tuning     TuningConfig     `yaml:"tuning"`
}

// AudioConfig controls the tone synthesizer.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// ScoreboardConfig holds the PostgreSQL scoreboard settings. Empty DSN disables persistence.
type ScoreboardConfig struct {
	DSN     string `yaml:"dsn"`
	Migrate bool   `yaml:"migrate"`
	TopN    int    `yaml:"top_n"`
}

// Enabled reports whether finished runs are persisted.
func (s ScoreboardConfig) Enabled() bool {
	return s.DSN != ""
}

// RecorderConfig controls the msgpack frame recorder. Empty path disables it.
type RecorderConfig struct {
	Path        string `yaml:"path"`
	EveryNTicks int    `yaml:"every_n_ticks"`
}

// DebugConfig holds debug switches.
type DebugConfig struct {
	AILogging bool `yaml:"ai_logging"`
}

// TuningConfig overrides player constants.
type TuningConfig struct {
	ShootCooldownMs int64   `yaml:"shoot_cooldown_ms"`
	JumpForce       float64 `yaml:"jump_force"`
	UpdraftForce    float64 `yaml:"updraft_force"`
}

// PlayerTuning converts to the model type.
func (t TuningConfig) PlayerTuning() model.PlayerTuning {
	return model.PlayerTuning{
		JumpForce:       t.JumpForce,
		ShootCooldownMs: t.ShootCooldownMs,
		UpdraftForce:    t.UpdraftForce,
	}
}

// DefaultArena returns Arena config with sensible defaults.
func DefaultArena() Arena {
	return Arena{
		LogLevel: "info",
		LogFile:  "arena.log",
		TickRate: 60,
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Scoreboard: ScoreboardConfig{
			Migrate: true,
			TopN:    10,
		},
		Recorder: RecorderConfig{
			EveryNTicks: 6,
		},
		Tuning: TuningConfig{
			ShootCooldownMs: constants.ShootCooldownMs,
			JumpForce:       constants.JumpForce,
			UpdraftForce:    constants.UpdraftForce,
		},
	}
}

// LoadArena loads arena config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadArena(path string) (Arena, error) {
	cfg := DefaultArena()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (a Arena) Validate() error {
	var errs []error
	if a.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", a.TickRate))
	}
	if a.Audio.Volume < 0 || a.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", a.Audio.Volume))
	}
	if a.Recorder.Path != "" && a.Recorder.EveryNTicks <= 0 {
		errs = append(errs, fmt.Errorf("recorder.every_n_ticks must be positive, got %d", a.Recorder.EveryNTicks))
	}
	if a.Tuning.ShootCooldownMs <= 0 {
		errs = append(errs, fmt.Errorf("tuning.shoot_cooldown_ms must be positive, got %d", a.Tuning.ShootCooldownMs))
	}
	switch a.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", a.LogLevel))
	}
	return errors.Join(errs...)
}
