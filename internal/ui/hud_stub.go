//go:build !ebiten

package ui

import "gridlines/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sketch, int) *HUD { return nil }

// Editing always reports false in the headless build.
func (h *HUD) Editing() bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
