//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"gridstep/internal/core"
	"gridstep/internal/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUD prints the rule, tick and grid statistics over the view and lets the
// user nudge the rule's first float control with +/-.
type HUD struct {
	rule    core.Rule
	summary stats.Summarizer
	lines   []string
	visible bool
}

// NewHUD constructs a HUD for the provided rule.
func NewHUD(rule core.Rule) *HUD {
	return &HUD{rule: rule, visible: true}
}

// Update refreshes the text for the current state and handles HUD keys. It
// returns a replacement rule when a parameter changed.
func (h *HUD) Update(cells []float32, n, tick int, paused bool) (core.Rule, bool) {
	if h == nil {
		return nil, false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	next, changed := h.handleInput()
	if changed {
		h.rule = next
	}

	s := h.summary.Summarize(cells)
	state := "running"
	if paused {
		state = "paused"
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines,
		fmt.Sprintf("%s  n=%d  tick=%d  %s", h.rule.Name(), n, tick, state),
		fmt.Sprintf("min=%.4g max=%.4g mean=%.4g", s.Min, s.Max, s.Mean),
	)
	if provider, ok := h.rule.(core.ParameterProvider); ok {
		for _, p := range provider.Parameters().Params {
			h.lines = append(h.lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return h.rule, changed
}

func (h *HUD) handleInput() (core.Rule, bool) {
	provider, ok := h.rule.(core.ParameterControlsProvider)
	if !ok {
		return nil, false
	}
	setter, ok := h.rule.(core.FloatParameterSetter)
	if !ok {
		return nil, false
	}
	controls := provider.ParameterControls()
	if len(controls) == 0 {
		return nil, false
	}
	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		delta = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		delta = -1
	}
	if delta == 0 {
		return nil, false
	}
	ctrl := controls[0]
	current := currentValue(h.rule, ctrl.Key)
	return setter.WithFloatParameter(ctrl.Key, ctrl.Clamp(current+delta*ctrl.Step))
}

func currentValue(rule core.Rule, key string) float64 {
	provider, ok := rule.(core.ParameterProvider)
	if !ok {
		return 0
	}
	for _, p := range provider.Parameters().Params {
		if p.Key != key {
			continue
		}
		var v float64
		if _, err := fmt.Sscan(p.Value, &v); err == nil {
			return v
		}
	}
	return 0
}

// Draw paints the HUD text in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(h.lines, "\n"), 4, 4)
}
