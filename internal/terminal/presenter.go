package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/udisondev/zombiearena/internal/arena"
	"github.com/udisondev/zombiearena/internal/game/fx"
	"github.com/udisondev/zombiearena/internal/game/geo"
	"github.com/udisondev/zombiearena/internal/model"
	"github.com/udisondev/zombiearena/internal/snapshot"
)

const (
	hudWidth = 30
	// flashFrames: сколько кадров рамка подсвечена после попадания по игроку.
	flashFrames = 6
)

var zoneColors = map[geo.Zone]tcell.Color{
	geo.ZoneOuter:      tcell.ColorGray,
	geo.ZoneSiteA:      tcell.ColorOrange,
	geo.ZoneSiteB:      tcell.ColorTeal,
	geo.ZoneMid:        tcell.ColorOlive,
	geo.ZoneConnectors: tcell.ColorSilver,
}

// Presenter draws frames on a tcell screen and implements arena.Notifier and arena.Effects.
type Presenter struct {
	screen tcell.Screen
	index  *geo.Index

	mu      sync.Mutex
	minimap *snapshot.Minimap
	status  string
	flash   int
	hits    int
	deaths  int
	health  int32
}

var (
	_ arena.Notifier = (*Presenter)(nil)
	_ arena.Effects  = (*Presenter)(nil)
)

// NewPresenter creates a presenter on an initialized screen.
func NewPresenter(screen tcell.Screen, idx *geo.Index) *Presenter {
	p := &Presenter{
		screen: screen,
		index:  idx,
	}
	p.Resize()
	return p
}

// Resize rebuilds the minimap for the current screen size.
func (p *Presenter) Resize() {
	w, h := p.screen.Size()
	mapH := max(h-1, 1)
	// терминальная ячейка примерно вдвое выше ширины
	mapW := max(min(w-hudWidth-1, mapH*2), 1)

	p.mu.Lock()
	p.minimap = snapshot.NewMinimap(p.index, mapW, mapH)
	p.mu.Unlock()
	p.screen.Sync()
}

// Draw renders f and shows the screen.
func (p *Presenter) Draw(f snapshot.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.screen.Clear()
	p.drawMap(f)
	p.drawEffects(f)
	p.drawHUD(f, p.minimap.Width+1)
	if p.flash > 0 {
		p.flash--
	}
	p.screen.Show()
}

func (p *Presenter) drawMap(f snapshot.Frame) {
	m := p.minimap
	cells := m.Render(f)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			r, style := cellGlyph(cells[row*m.Width+col])
			p.screen.SetContent(col, row, r, nil, style)
		}
	}
	if p.flash > 0 {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		for col := 0; col < m.Width; col++ {
			p.screen.SetContent(col, m.Height, '▀', nil, style)
		}
	}
}

func (p *Presenter) drawEffects(f snapshot.Frame) {
	for _, e := range f.Effects {
		var r rune
		var style tcell.Style
		switch e.Kind {
		case fx.KindHit:
			r, style = 'x', tcell.StyleDefault.Foreground(tcell.ColorYellow)
		case fx.KindDeath:
			r, style = '✖', tcell.StyleDefault.Foreground(tcell.ColorRed)
		case fx.KindDashTrail:
			r, style = '~', tcell.StyleDefault.Foreground(tcell.ColorAqua)
		default:
			// трассеры живут 50 мс, в терминале их не видно
			continue
		}
		if col, row, ok := p.minimap.Project(e.X, e.Z); ok {
			p.screen.SetContent(col, row, r, nil, style)
		}
	}
}

func (p *Presenter) drawHUD(f snapshot.Frame, x int) {
	hud := f.HUD
	lines := []string{
		fmt.Sprintf("HP     %d", hud.Health),
		fmt.Sprintf("Score  %d", hud.Score),
		fmt.Sprintf("Wave   %d  %3.0f%%", hud.Wave, hud.WaveProgress),
		fmt.Sprintf("Kills  %d", hud.Kills),
		"Dash    " + abilityLabel(hud.Dash),
		"Updraft " + abilityLabel(hud.Updraft),
		fmt.Sprintf("Enemies %d", len(f.Enemies)),
		"",
		"WASD move  SPACE jump",
		"F/ENTER fire  arrows look",
		"E dash  Q updraft",
		"P pause  R restart  ESC quit",
	}
	switch {
	case hud.GameOver:
		lines = append(lines, "", fmt.Sprintf("GAME OVER  score %d", hud.Score), "press R to restart")
	case hud.Paused:
		lines = append(lines, "", "PAUSED")
	}
	if p.status != "" {
		lines = append(lines, "", p.status)
	}

	style := tcell.StyleDefault
	for row, line := range lines {
		col := x
		for _, r := range line {
			p.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}
}

func abilityLabel(a snapshot.AbilityView) string {
	switch a.Phase {
	case model.AbilityReady:
		return "READY"
	case model.AbilityActive:
		return "ACTIVE"
	default:
		return fmt.Sprintf("%ds", a.RemainingSeconds())
	}
}

func cellGlyph(c snapshot.Cell) (rune, tcell.Style) {
	switch c.Kind {
	case snapshot.CellWall:
		color, ok := zoneColors[c.Zone]
		if !ok {
			color = tcell.ColorWhite
		}
		return '█', tcell.StyleDefault.Foreground(color)
	case snapshot.CellSite:
		r := '?'
		for _, l := range c.Label {
			r = l
			break
		}
		return r, tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	case snapshot.CellSpawn:
		return '·', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case snapshot.CellProjectile:
		return '*', tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case snapshot.CellMelee:
		return 'z', tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case snapshot.CellRanged:
		return 'R', tcell.StyleDefault.Foreground(tcell.ColorPurple)
	case snapshot.CellPlayer:
		return '@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	default:
		return ' ', tcell.StyleDefault
	}
}

// HitEffect implements arena.Effects.
func (p *Presenter) HitEffect(model.Vec3) {
	p.mu.Lock()
	p.hits++
	p.mu.Unlock()
}

// DeathEffect implements arena.Effects.
func (p *Presenter) DeathEffect(model.Vec3) {
	p.mu.Lock()
	p.deaths++
	p.mu.Unlock()
}

// ScoreChanged implements arena.Notifier. The HUD reads score from the frame.
func (p *Presenter) ScoreChanged(int) {}

// HealthChanged implements arena.Notifier.
func (p *Presenter) HealthChanged(health int32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if health < p.health {
		p.flash = flashFrames
	}
	p.health = health
}

// WaveChanged implements arena.Notifier.
func (p *Presenter) WaveChanged(wave int, progressPercent float64) {
	if progressPercent != 0 {
		return
	}
	p.mu.Lock()
	p.status = fmt.Sprintf("Wave %d!", wave)
	p.mu.Unlock()
}

// GameOver implements arena.Notifier.
func (p *Presenter) GameOver(finalScore, wavesCompleted int) {
	p.mu.Lock()
	p.status = fmt.Sprintf("Final score %d, waves %d", finalScore, wavesCompleted)
	p.mu.Unlock()
}

// SetStatus replaces the notification line.
func (p *Presenter) SetStatus(status string) {
	p.mu.Lock()
	p.status = status
	p.mu.Unlock()
}

// Status returns the last notification line.
func (p *Presenter) Status() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// Counts returns hit and death effects seen since creation.
func (p *Presenter) Counts() (hits, deaths int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hits, p.deaths
}
