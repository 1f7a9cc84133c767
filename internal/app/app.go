//go:build ebiten

package app

import (
	"image/color"
	"log"

	"cave-ca/internal/core"
	"cave-ca/internal/render"
	"cave-ca/internal/ui"
	pkgcore "cave-ca/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	stepper *core.FixedStep
	seeds   *pkgcore.RNG

	fallback []color.RGBA

	scale    int
	hudWidth int
	playing  bool
	seed     int64
}

// New constructs a Game for a sim that Launch has already seeded.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	seed := CurrentSeed(sim, cfg.Seed)
	hudWidth := cfg.HUDWidth
	if hudWidth < 0 {
		hudWidth = 0
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		stepper:  core.NewFixedStep(cfg.Rate),
		seeds:    pkgcore.NewRNG(seed),
		fallback: render.BinaryPalette(color.Black, color.White),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// Reset regenerates the map from seed and stops auto-iteration.
func (g *Game) Reset(seed int64) {
	g.playing = false
	if err := g.sim.Reset(seed); err != nil {
		log.Printf("reset %s with seed %d: %v", g.sim.Name(), seed, err)
	}
	g.seed = CurrentSeed(g.sim, seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.Reset(g.seeds.Int64())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.stepper.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.step()
	}

	g.overlay.Update()
	if g.hud.Update(g.sim.Size().W * g.scale) {
		// The sim regenerated with the new rule.
		g.playing = false
	}

	if g.playing {
		for n := g.stepper.Due(); n > 0; n-- {
			g.step()
		}
	}
	return nil
}

func (g *Game) step() {
	if err := g.sim.Step(); err != nil {
		log.Printf("step %s: %v", g.sim.Name(), err)
		g.playing = false
	}
}

// Draw renders the map, the overlay and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	palette := g.fallback
	if provider, ok := g.sim.(core.PaletteProvider); ok {
		palette = provider.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen, g.playing)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
