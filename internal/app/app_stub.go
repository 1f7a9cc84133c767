//go:build !ebiten

package app

import (
	"errors"

	"cave-ca/internal/core"
)

// ErrNoGUI is what New panics with and Update returns without the ebiten tag.
var ErrNoGUI = errors.New("app: the cave viewer needs -tags ebiten; use cmd/cavegen for headless output")

// Game stands in for the viewer so headless builds keep the same API.
type Game struct{}

// New panics with ErrNoGUI.
func New(core.Sim, *Config) *Game { panic(ErrNoGUI) }

// Reset does nothing without a window.
func (g *Game) Reset(int64) {}

// Update reports ErrNoGUI.
func (g *Game) Update() error { return ErrNoGUI }

// Draw does nothing without a window.
func (g *Game) Draw(any) {}

// Layout has no screen to size.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
