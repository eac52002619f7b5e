//go:build ebiten

package app

import (
	"fmt"
	"time"

	"gridstep/internal/core"
	"gridstep/internal/kernel"
	"gridstep/internal/render"
	"gridstep/internal/ui"
	pcore "gridstep/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the step kernel to the ebiten.Game interface. It owns the two
// grid buffers and swaps them after every step, as a foreign host would.
type Game struct {
	rule    core.Rule
	n       int
	pattern string
	cur     []float32
	nxt     []float32
	painter *render.GridPainter
	hud     *ui.HUD

	scale    int
	tick     int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided rule and seeds its grid.
func New(rule core.Rule, cfg *Config) (*Game, error) {
	g := &Game{
		rule:    rule,
		n:       cfg.N,
		pattern: cfg.Pattern,
		cur:     make([]float32, cfg.N*cfg.N),
		nxt:     make([]float32, cfg.N*cfg.N),
		painter: render.NewGridPainter(cfg.N),
		hud:     ui.NewHUD(rule),
		scale:   cfg.Scale,
		seed:    cfg.Seed,
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset reseeds the grid with the configured pattern.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tick = 0
	g.tickOnce = false
	if err := pcore.FillPattern(g.pattern, pcore.NewRNG(seed), g.cur, g.n); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

// Update handles per-frame logic and advances the grid.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if next, changed := g.hud.Update(g.cur, g.n, g.tick, g.paused); changed {
		g.rule = next
	}

	if !g.paused || g.tickOnce {
		if err := kernel.Apply(g.rule, g.nxt, g.cur, g.n); err != nil {
			return err
		}
		g.cur, g.nxt = g.nxt, g.cur
		g.tick++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current grid state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cur, g.scale)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.n * g.scale, g.n * g.scale
}
