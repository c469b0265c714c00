//go:build !ebiten

package ui

import "atom-ca/internal/core"

// HUD is a placeholder for the headless build.
type HUD struct{}

// NewHUD returns an inert HUD when the GUI build tag is absent.
func NewHUD(core.Sim) *HUD { return &HUD{} }

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, bool) {}
