// Package terminal is the tcell front end: key handling, camera and the top-down presenter.
package terminal

import (
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/model"
)

const (
	// holdWindow: терминал не присылает key-up; клавиша считается зажатой это время после последнего повтора.
	holdWindow = 180 * time.Millisecond

	turnStep  = math.Pi / 24
	pitchStep = math.Pi / 36
	maxPitch  = math.Pi/2 - 0.05
)

// Action is a session-level request produced by a key.
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionTogglePause
	ActionRestart
	ActionResize
)

// String returns human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionTogglePause:
		return "togglePause"
	case ActionRestart:
		return "restart"
	case ActionResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Command maps an action to the session command it posts. ok is false for actions the session does not handle.
func (a Action) Command() (arena.Command, bool) {
	switch a {
	case ActionTogglePause:
		return arena.CommandTogglePause, true
	case ActionRestart:
		return arena.CommandRestart, true
	default:
		return 0, false
	}
}

type control uint8

const (
	ctrlForward control = iota
	ctrlBackward
	ctrlLeft
	ctrlRight
	ctrlJump
	ctrlFire
	ctrlDash
	ctrlUpdraft
	ctrlCount
)

// Controls turns tcell key events into arena.Input and arena.Camera.
// Handle runs on the event goroutine; InputState and the camera methods run on the simulation goroutine.
type Controls struct {
	mu sync.Mutex

	now     func() time.Time
	heldTil [ctrlCount]time.Time
	// one-shot: ability keys fire once per press, not per hold window
	pending [ctrlCount]bool

	yaw   float64
	pitch float64

	follow func() model.Vec3
}

var (
	_ arena.Input  = (*Controls)(nil)
	_ arena.Camera = (*Controls)(nil)
)

// NewControls creates controls looking along yaw. follow supplies the camera position.
func NewControls(yaw float64, follow func() model.Vec3) *Controls {
	if follow == nil {
		follow = func() model.Vec3 { return model.Vec3{} }
	}
	return &Controls{
		now:    time.Now,
		yaw:    yaw,
		follow: follow,
	}
}

// SetClock overrides the time source used for hold windows.
func (c *Controls) SetClock(now func() time.Time) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Reset clears held keys and points the camera along yaw.
func (c *Controls) Reset(yaw float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.heldTil = [ctrlCount]time.Time{}
	c.pending = [ctrlCount]bool{}
	c.yaw = yaw
	c.pitch = 0
}

// Handle processes one tcell event.
func (c *Controls) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return ActionResize
	case *tcell.EventKey:
		return c.handleKey(ev)
	default:
		return ActionNone
	}
}

func (c *Controls) handleKey(ev *tcell.EventKey) Action {
	return c.press(ev.Key(), ev.Rune())
}

// press applies one key. r is meaningful for tcell.KeyRune only.
func (c *Controls) press(key tcell.Key, r rune) Action {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyLeft:
		c.yaw += turnStep
		return ActionNone
	case tcell.KeyRight:
		c.yaw -= turnStep
		return ActionNone
	case tcell.KeyUp:
		c.pitch = min(c.pitch+pitchStep, maxPitch)
		return ActionNone
	case tcell.KeyDown:
		c.pitch = max(c.pitch-pitchStep, -maxPitch)
		return ActionNone
	case tcell.KeyEnter:
		c.hold(ctrlFire)
		return ActionNone
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	switch r {
	case 'w', 'W':
		c.hold(ctrlForward)
	case 's', 'S':
		c.hold(ctrlBackward)
	case 'a', 'A':
		c.hold(ctrlLeft)
	case 'd', 'D':
		c.hold(ctrlRight)
	case ' ':
		c.hold(ctrlJump)
	case 'f', 'F':
		c.hold(ctrlFire)
	case 'e', 'E':
		c.pending[ctrlDash] = true
	case 'q', 'Q':
		c.pending[ctrlUpdraft] = true
	case 'p', 'P':
		return ActionTogglePause
	case 'r', 'R':
		return ActionRestart
	}
	return ActionNone
}

func (c *Controls) hold(ctrl control) {
	c.heldTil[ctrl] = c.now().Add(holdWindow)
}

// InputState implements arena.Input. Pending ability presses are consumed.
func (c *Controls) InputState() model.InputState {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	held := func(ctrl control) bool { return now.Before(c.heldTil[ctrl]) }

	in := model.InputState{
		Forward:    held(ctrlForward),
		Backward:   held(ctrlBackward),
		Left:       held(ctrlLeft),
		Right:      held(ctrlRight),
		Jump:       held(ctrlJump),
		FireHeld:   held(ctrlFire),
		UseDash:    c.pending[ctrlDash],
		UseUpdraft: c.pending[ctrlUpdraft],
	}
	c.pending[ctrlDash] = false
	c.pending[ctrlUpdraft] = false
	return in
}

// ViewDirection implements arena.Camera.
func (c *Controls) ViewDirection() model.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()

	cp := math.Cos(c.pitch)
	return model.Vec3{
		X: math.Sin(c.yaw) * cp,
		Y: math.Sin(c.pitch),
		Z: math.Cos(c.yaw) * cp,
	}
}

// CameraPosition implements arena.Camera.
func (c *Controls) CameraPosition() model.Vec3 {
	return c.follow()
}

// Yaw returns the current heading.
func (c *Controls) Yaw() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}
