//go:build !ebiten

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessWidgetsAreInert(t *testing.T) {
	hud := NewHUD(nil, 240)
	assert.Nil(t, hud)
	assert.False(t, hud.Update(0))
	assert.NotPanics(t, func() { hud.Draw(nil, 0, 4) })

	overlay := NewOverlay(nil, 4)
	assert.NotPanics(t, func() {
		overlay.Update()
		overlay.Draw(nil, true)
	})
}
