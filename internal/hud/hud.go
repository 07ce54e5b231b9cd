// Package hud provides a data-driven overlay showing cursor position,
// intersection counts, and controls help during the demo.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/linecross/internal/render"
)

// Config defines what to display in the HUD
type Config struct {
	ShowCursor  bool    `json:"show_cursor"`  // Show cursor coordinates
	ShowHits    bool    `json:"show_hits"`    // Show intersection hit count
	ShowProbe   bool    `json:"show_probe"`   // Show probe length and state
	ShowHelp    bool    `json:"show_help"`    // Show key bindings
	Position    string  `json:"position"`     // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity     float64 `json:"opacity"`      // Background opacity (0-1)
	StartHidden bool    `json:"start_hidden"` // Begin with the HUD toggled off
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *Config {
	return &Config{
		ShowCursor:  true,
		ShowHits:    true,
		ShowProbe:   true,
		ShowHelp:    true,
		Position:    "top-left",
		Opacity:     0.7,
		StartHidden: false,
	}
}

// Stats carries the per-frame values the HUD displays.
type Stats struct {
	CursorX     int
	CursorY     int
	HitCount    int
	WallCount   int
	ProbeLength float64
	Paused      bool
}

// HUD manages the overlay display
type HUD struct {
	config   *Config
	renderer render.Renderer
	visible  bool

	// Cached 1x1 backdrop pixel, scaled to the box size at draw time
	backdrop     render.Image
	backdropOpts *render.DrawImageOptions
}

// New creates a HUD bound to a renderer.
func New(cfg *Config, renderer render.Renderer) *HUD {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &HUD{
		config:   cfg,
		renderer: renderer,
		visible:  !cfg.StartHidden,
	}
}

// Toggle flips HUD visibility.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the HUD is currently shown.
func (h *HUD) Visible() bool {
	return h.visible
}

// Draw renders the overlay onto the screen. A hidden HUD draws nothing.
func (h *HUD) Draw(screen render.Image, stats Stats) {
	if !h.visible {
		return
	}

	lines := h.buildLines(stats)
	if len(lines) == 0 {
		return
	}

	blockWidth, blockHeight := h.measureBlock(lines)

	const padding = 8
	boxWidth := blockWidth + 2*padding
	boxHeight := blockHeight + 2*padding
	screenWidth, screenHeight := screen.Size()
	originX, originY := anchorOrigin(h.config.Position, screenWidth, screenHeight, boxWidth, boxHeight)

	h.drawBackdrop(screen, originX, originY, boxWidth, boxHeight)

	_, lineHeight := h.renderer.MeasureText("M", 1.0)
	textColor := color.RGBA{255, 255, 255, 255}
	for i, line := range lines {
		h.renderer.DrawText(screen, line, originX+padding, originY+padding+i*lineHeight, textColor, 1.0)
	}
}

// buildLines assembles the text block per the config switches.
func (h *HUD) buildLines(stats Stats) []string {
	var lines []string

	if h.config.ShowCursor {
		lines = append(lines, fmt.Sprintf("Cursor: (%d, %d)", stats.CursorX, stats.CursorY))
	}
	if h.config.ShowHits {
		lines = append(lines, fmt.Sprintf("Hits: %d / %d walls", stats.HitCount, stats.WallCount))
	}
	if h.config.ShowProbe {
		state := "spinning"
		if stats.Paused {
			state = "paused"
		}
		lines = append(lines, fmt.Sprintf("Probe: %.0fpx, %s", stats.ProbeLength, state))
	}
	if h.config.ShowHelp {
		lines = append(lines,
			"",
			"Space - pause  R - new walls",
			"Up/Down - probe length",
			"H - toggle HUD  Esc - quit",
		)
	}

	return lines
}

// measureBlock returns the pixel size of the text block.
func (h *HUD) measureBlock(lines []string) (width, height int) {
	_, lineHeight := h.renderer.MeasureText("M", 1.0)
	for _, line := range lines {
		w, _ := h.renderer.MeasureText(line, 1.0)
		if w > width {
			width = w
		}
	}
	return width, lineHeight * len(lines)
}

// drawBackdrop draws the translucent box behind the text by scaling a
// cached 1x1 pixel to the box size, so a changing text block never
// reallocates an image.
func (h *HUD) drawBackdrop(screen render.Image, x, y, width, height int) {
	if h.backdrop == nil {
		h.backdrop = h.renderer.NewImage(1, 1)
		alpha := uint8(h.config.Opacity * 255)
		h.backdrop.Fill(color.RGBA{0, 0, 0, alpha})
		h.backdropOpts = &render.DrawImageOptions{GeoM: render.NewGeoM()}
	}

	h.backdropOpts.GeoM.Reset()
	h.backdropOpts.GeoM.Scale(float64(width), float64(height))
	h.backdropOpts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(h.backdrop, h.backdropOpts)
}

// anchorOrigin maps a corner name to the top-left origin of a box of the
// given size, inset from the screen edges. Unknown names fall back to
// top-left.
func anchorOrigin(position string, screenWidth, screenHeight, boxWidth, boxHeight int) (x, y int) {
	const inset = 10

	switch position {
	case "top-right":
		return screenWidth - boxWidth - inset, inset
	case "bottom-left":
		return inset, screenHeight - boxHeight - inset
	case "bottom-right":
		return screenWidth - boxWidth - inset, screenHeight - boxHeight - inset
	default:
		return inset, inset
	}
}
