//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"cave-ca/internal/core"
	"cave-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFG    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFG    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimFG      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	selectedBG = color.RGBA{R: 40, G: 42, B: 56, A: 255}
)

// HUD renders the rule panel to the right of the map. Controls are adjusted by
// clicking the -/+ buttons or with Up/Down to select and Left/Right to change.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls    []controlRow
	selected    int
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
	title       string

	pixel *ebiten.Image
}

type controlRow struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: "Rules"}
	if sim != nil && sim.Name() != "" {
		h.title = strings.ToUpper(sim.Name()[:1]) + sim.Name()[1:] + " rules"
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, controlRow{control: ctrl, value: "--"})
		}
		h.layout()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Update refreshes the snapshot and applies clicks and arrow keys. It reports
// whether a parameter changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	provider, ok := h.sim.(core.ParametersProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return false
	}
	h.snapshot = provider.Parameters()
	h.refresh()
	return h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBG)
	h.drawControls()
	h.drawInfo(height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	for i := range h.controls {
		row := &h.controls[i]
		row.hasValue = false
		row.value = "--"
		param, ok := h.snapshot.Lookup(row.control.Key)
		if !ok {
			continue
		}
		switch row.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			row.intValue, row.floatValue = v, float64(v)
			row.value = strconv.Itoa(v)
			row.hasValue = true
		case core.ParamTypeFloat:
			v, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			row.floatValue = v
			row.value = formatFloat(row.control, v)
			row.hasValue = true
		}
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 {
		return false
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		h.selected = (h.selected + 1) % len(h.controls)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return h.adjust(&h.controls[h.selected], -1)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return h.adjust(&h.controls[h.selected], 1)
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		row := &h.controls[i]
		switch {
		case pt.In(row.minusRect):
			h.selected = i
			return h.adjust(row, -1)
		case pt.In(row.plusRect):
			h.selected = i
			return h.adjust(row, 1)
		}
	}
	return false
}

// target returns the value one step in direction and whether it differs from
// the current value once clamped.
func (h *HUD) target(row *controlRow, direction int) (float64, bool) {
	if !row.hasValue || direction == 0 {
		return 0, false
	}
	switch row.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		step := int(math.Round(row.control.Step))
		if step <= 0 {
			step = 1
		}
		next := row.control.ClampInt(row.intValue + direction*step)
		return float64(next), next != row.intValue
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		step := row.control.Step
		if step <= 0 {
			step = 0.05
		}
		next := row.control.ClampFloat(row.floatValue + float64(direction)*step)
		// Snap to the step grid so repeated presses don't drift.
		next = math.Round(next/step) * step
		return next, math.Abs(next-row.floatValue) >= 1e-9
	}
	return 0, false
}

func (h *HUD) adjust(row *controlRow, direction int) bool {
	next, ok := h.target(row, direction)
	if !ok {
		return false
	}
	if row.control.Type == core.ParamTypeInt {
		v := int(next)
		if !h.intSetter.SetIntParameter(row.control.Key, v) {
			return false
		}
		row.intValue, row.floatValue = v, next
		row.value = strconv.Itoa(v)
		return true
	}
	if !h.floatSetter.SetFloatParameter(row.control.Key, next) {
		return false
	}
	row.floatValue = next
	row.value = formatFloat(row.control, next)
	return true
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleFG)
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, panelPadding+headerBaseline+lineHeight, dimFG)
		return
	}
	for i := range h.controls {
		row := &h.controls[i]
		if i == h.selected {
			h.fillRect(image.Rect(0, row.top, h.width, row.top+lineHeight), selectedBG)
		}
		text.Draw(h.panel, row.control.Label, face, panelPadding, row.top+labelBaseline, labelFG)
		fg := labelFG
		if !row.hasValue {
			fg = dimFG
		}
		valueX := row.minusRect.Min.X - buttonGap - text.BoundString(face, row.value).Dx()
		text.Draw(h.panel, row.value, face, valueX, row.top+labelBaseline, fg)

		_, canDec := h.target(row, -1)
		_, canInc := h.target(row, 1)
		h.drawButton(row.minusRect, "-", canDec)
		h.drawButton(row.plusRect, "+", canInc)
	}
}

// drawInfo lists the snapshot values that have no control, with a swatch for
// colours.
func (h *HUD) drawInfo(height int) {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, group := range h.snapshot.Groups {
		for _, p := range group.Params {
			if h.hasControl(p.Key) {
				continue
			}
			if y > height-panelPadding {
				return
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, dimFG)
			valueX := h.width - panelPadding - text.BoundString(face, p.Value).Dx()
			if p.Type == core.ParamTypeColor {
				if c, err := render.ParseHexColor(p.Value); err == nil {
					valueX -= swatchSize + buttonGap
					h.fillRect(image.Rect(h.width-panelPadding-swatchSize, y-swatchSize+2, h.width-panelPadding, y+2), c)
				}
			}
			text.Draw(h.panel, p.Value, face, valueX, y, labelFG)
			y += infoLineHeight
		}
	}
}

func (h *HUD) hasControl(key string) bool {
	for _, row := range h.controls {
		if row.control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

const (
	panelPadding   = 12
	lineHeight     = 36
	infoLineHeight = 18
	buttonSize     = 24
	buttonGap      = 6
	swatchSize     = 12
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
