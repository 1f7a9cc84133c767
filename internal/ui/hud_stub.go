//go:build !ebiten

package ui

import "cave-ca/internal/core"

// HUD has no panel to draw in headless builds; NewHUD returns nil and the
// nil receiver methods below are safe.
type HUD struct{}

// NewHUD returns nil.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update never changes a parameter.
func (*HUD) Update(int) bool { return false }

// Draw does nothing.
func (*HUD) Draw(any, int, int) {}
