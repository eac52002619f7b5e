//go:build !ebiten

package ui

import "gridstep/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Rule) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update([]float32, int, int, bool) (core.Rule, bool) { return nil, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
