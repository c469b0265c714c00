//go:build ebiten

package ui

import (
	"fmt"
	"strings"

	"atom-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type populationProvider interface {
	Counts() (empty, fish, shark int)
}

// HUD draws a toggleable status and parameter panel over the world. Tab
// shows or hides it, up/down select a control, left/right adjust it through
// the world's parameter setters.
type HUD struct {
	sim      core.Sim
	visible  bool
	selected int
	controls []core.ParameterControl
}

// NewHUD constructs a HUD for the provided world.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = p.ParameterControls()
	}
	return h
}

// Update processes HUD input.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.visible = !h.visible
	}
	if !h.visible || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		h.adjust(+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		h.adjust(-1)
	}
}

// Draw renders the HUD when visible.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if !h.visible {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s", h.sim.Name())
	if paused {
		b.WriteString("  [paused]")
	}
	b.WriteByte('\n')

	if p, ok := h.sim.(populationProvider); ok {
		empty, fish, shark := p.Counts()
		fmt.Fprintf(&b, "empty %d  fish %d  shark %d\n", empty, fish, shark)
	}

	if p, ok := h.sim.(interface{ ParameterSnapshot() core.ParameterSnapshot }); ok {
		i := 0
		for _, group := range p.ParameterSnapshot().Groups {
			fmt.Fprintf(&b, "%s\n", group.Name)
			for _, param := range group.Params {
				marker := "  "
				if i < len(h.controls) && i == h.selected {
					marker = "> "
				}
				fmt.Fprintf(&b, "%s%s: %s\n", marker, param.Label, param.Value)
				i++
			}
		}
	}

	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)
}

func (h *HUD) adjust(direction float64) {
	c := h.controls[h.selected]
	switch c.Type {
	case core.ParamTypeInt:
		setter, ok := h.sim.(core.IntParameterSetter)
		if !ok {
			return
		}
		step := int(c.Step)
		if step == 0 {
			step = 1
		}
		value := h.currentInt(c) + int(direction)*step
		value = clampInt(value, c)
		setter.SetIntParameter(c.Key, value)
	case core.ParamTypeFloat:
		setter, ok := h.sim.(core.FloatParameterSetter)
		if !ok {
			return
		}
		value := h.currentFloat(c) + direction*c.Step
		value = clampFloat(value, c)
		setter.SetFloatParameter(c.Key, value)
	}
}

func (h *HUD) currentInt(c core.ParameterControl) int {
	v, _ := h.currentValue(c.Key)
	var n int
	fmt.Sscanf(v, "%d", &n)
	return n
}

func (h *HUD) currentFloat(c core.ParameterControl) float64 {
	v, _ := h.currentValue(c.Key)
	var f float64
	fmt.Sscanf(v, "%f", &f)
	return f
}

func (h *HUD) currentValue(key string) (string, bool) {
	p, ok := h.sim.(interface{ ParameterSnapshot() core.ParameterSnapshot })
	if !ok {
		return "", false
	}
	for _, group := range p.ParameterSnapshot().Groups {
		for _, param := range group.Params {
			if param.Key == key {
				return param.Value, true
			}
		}
	}
	return "", false
}

func clampInt(v int, c core.ParameterControl) int {
	if c.HasMin && float64(v) < c.Min {
		v = int(c.Min)
	}
	if c.HasMax && float64(v) > c.Max {
		v = int(c.Max)
	}
	return v
}

func clampFloat(v float64, c core.ParameterControl) float64 {
	if c.HasMin && v < c.Min {
		v = c.Min
	}
	if c.HasMax && v > c.Max {
		v = c.Max
	}
	return v
}
