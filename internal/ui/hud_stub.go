//go:build !ebiten

package ui

import "lifeee/internal/core"

// Panel is what the HUD displays and adjusts.
type Panel interface {
	Parameters() core.ParameterSnapshot
	Adjust(key string, steps int) bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Panel, int) *HUD { return nil }

// Width is always zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, string, string) bool { return false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
