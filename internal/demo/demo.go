// Package demo implements the interactive segment-intersection demo: a
// probe segment rotates around the mouse cursor while the frame loop tests
// it against every wall and marks the crossing points.
package demo

import (
	"errors"
	"image/color"
	"math"
	"math/rand"

	"github.com/charmbracelet/harmonica"

	"chosenoffset.com/linecross/geometry"
	"chosenoffset.com/linecross/internal/config"
	"chosenoffset.com/linecross/internal/hud"
	"chosenoffset.com/linecross/internal/render"
	"chosenoffset.com/linecross/internal/scene"
)

// ErrQuit signals a user-requested clean shutdown from the game loop.
var ErrQuit = errors.New("quit requested")

// Marker pulse bounds in pixels.
const (
	pulseSmall = 4.0
	pulseLarge = 7.0
)

// Demo holds all demo state and logic.
type Demo struct {
	ScreenWidth  int
	ScreenHeight int
	Renderer     render.Renderer
	InputMgr     render.InputManager

	cfg       *config.Config
	generator *scene.Generator
	walls     []geometry.Segment
	gameHUD   *hud.HUD

	// Probe state
	cursor       geometry.Point
	angle        float64
	paused       bool
	probeLength  float64
	targetLength float64
	lengthVel    float64
	lengthSpring harmonica.Spring

	// Intersection marker pulse
	pulseRadius float64
	pulseVel    float64
	pulseSpring harmonica.Spring

	// Per-frame intersection results, reused across frames
	hits []geometry.Point

	// Previous-frame mouse state for click edge detection
	prevMouseDown bool

	frameCount int
}

// New creates a Demo from config, generating the initial wall set.
func New(cfg *config.Config, renderer render.Renderer, inputMgr render.InputManager, rng *rand.Rand) *Demo {
	generator := scene.NewGenerator(rng, cfg.Screen.Width, cfg.Screen.Height, cfg.Walls.Margin)

	d := &Demo{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Renderer:     renderer,
		InputMgr:     inputMgr,
		cfg:          cfg,
		generator:    generator,
		walls:        generator.Walls(cfg.Walls.Count),
		gameHUD:      hud.New(&cfg.HUD, renderer),
		probeLength:  cfg.Probe.Length,
		targetLength: cfg.Probe.Length,
		lengthSpring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0),
		pulseRadius:  pulseSmall,
		pulseSpring:  harmonica.NewSpring(harmonica.FPS(60), 3.0, 0.5),
		// Start the probe centered so the first frame is sensible even if
		// the cursor has not entered the window yet.
		cursor: geometry.Point{
			X: float64(cfg.Screen.Width) / 2,
			Y: float64(cfg.Screen.Height) / 2,
		},
	}

	return d
}

// Update handles demo logic updates.
func (d *Demo) Update() error {
	d.frameCount++

	if d.InputMgr.IsKeyPressed(render.KeyEscape) {
		return ErrQuit
	}

	d.handleInput()

	if !d.paused {
		d.angle += d.cfg.Probe.RotationSpeed
		if d.angle > 2*math.Pi {
			d.angle -= 2 * math.Pi
		}
	}

	// Smooth the length toward its target (springs handle timing internally)
	d.probeLength, d.lengthVel = d.lengthSpring.Update(d.probeLength, d.lengthVel, d.targetLength)

	// Markers breathe between two radii on a half-second beat
	pulseTarget := pulseSmall
	if (d.frameCount/30)%2 == 0 {
		pulseTarget = pulseLarge
	}
	d.pulseRadius, d.pulseVel = d.pulseSpring.Update(d.pulseRadius, d.pulseVel, pulseTarget)

	d.collectHits()

	return nil
}

// handleInput applies key and mouse state for this tick.
func (d *Demo) handleInput() {
	cx, cy := d.InputMgr.GetCursorPosition()
	// Ignore positions outside the window (reported when the cursor leaves)
	if cx >= 0 && cx <= d.ScreenWidth && cy >= 0 && cy <= d.ScreenHeight {
		d.cursor = geometry.Point{X: float64(cx), Y: float64(cy)}
	}

	if d.InputMgr.IsKeyJustPressed(render.KeySpace) {
		d.paused = !d.paused
	}
	if d.InputMgr.IsKeyJustPressed(render.KeyR) {
		d.regenerateWalls()
	}
	if d.InputMgr.IsKeyJustPressed(render.KeyH) {
		d.gameHUD.Toggle()
	}

	// A click also scatters a fresh wall set; edge-detect so a held button
	// regenerates once.
	mouseDown := d.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	if mouseDown && !d.prevMouseDown {
		d.regenerateWalls()
	}
	d.prevMouseDown = mouseDown

	if d.InputMgr.IsKeyPressed(render.KeyUp) {
		d.targetLength += d.cfg.Probe.LengthStep
	}
	if d.InputMgr.IsKeyPressed(render.KeyDown) {
		d.targetLength -= d.cfg.Probe.LengthStep
	}
	if d.targetLength < d.cfg.Probe.MinLength {
		d.targetLength = d.cfg.Probe.MinLength
	}
	if d.targetLength > d.cfg.Probe.MaxLength {
		d.targetLength = d.cfg.Probe.MaxLength
	}
}

// regenerateWalls replaces the scene with a fresh wall set.
func (d *Demo) regenerateWalls() {
	d.walls = d.generator.Walls(d.cfg.Walls.Count)
}

// Probe returns the current probe segment centered on the cursor.
func (d *Demo) Probe() geometry.Segment {
	return geometry.SpanAngle(d.cursor, d.angle, d.probeLength)
}

// collectHits intersects the probe against every wall, reusing the hits slice.
func (d *Demo) collectHits() {
	probe := d.Probe()

	d.hits = d.hits[:0]
	for _, wall := range d.walls {
		if p, ok := geometry.Intersect(probe, wall); ok {
			d.hits = append(d.hits, p)
		}
	}
}

// Hits returns the intersection points found on the last update.
func (d *Demo) Hits() []geometry.Point {
	return d.hits
}

// Walls returns the current wall set.
func (d *Demo) Walls() []geometry.Segment {
	return d.walls
}

// Paused reports whether probe rotation is paused.
func (d *Demo) Paused() bool {
	return d.paused
}

// Draw draws the demo screen.
func (d *Demo) Draw(screen render.Image) {
	screen.Fill(color.RGBA{18, 18, 26, 255})

	d.drawWalls(screen)
	d.drawProbe(screen)
	d.drawMarkers(screen)

	d.gameHUD.Draw(screen, hud.Stats{
		CursorX:     int(d.cursor.X),
		CursorY:     int(d.cursor.Y),
		HitCount:    len(d.hits),
		WallCount:   len(d.walls),
		ProbeLength: d.probeLength,
		Paused:      d.paused,
	})
}

// drawWalls strokes every wall, tinting the ones whose front side faces
// the cursor.
func (d *Demo) drawWalls(screen render.Image) {
	facing := color.RGBA{140, 160, 220, 255}
	away := color.RGBA{80, 90, 110, 255}

	for _, wall := range d.walls {
		clr := away
		if geometry.IsFacingPoint(wall, d.cursor) {
			clr = facing
		}
		d.Renderer.StrokeLine(screen,
			float32(wall.A.X), float32(wall.A.Y),
			float32(wall.B.X), float32(wall.B.Y),
			2, clr)
	}
}

// drawProbe strokes the rotating segment and dots its endpoints.
func (d *Demo) drawProbe(screen render.Image) {
	probe := d.Probe()

	d.Renderer.StrokeLine(screen,
		float32(probe.A.X), float32(probe.A.Y),
		float32(probe.B.X), float32(probe.B.Y),
		3, color.RGBA{240, 220, 90, 255})

	endpointColor := color.RGBA{240, 240, 240, 255}
	d.Renderer.FillCircle(screen, float32(probe.A.X), float32(probe.A.Y), 3, endpointColor)
	d.Renderer.FillCircle(screen, float32(probe.B.X), float32(probe.B.Y), 3, endpointColor)
}

// drawMarkers draws a pulsing dot with a ring at every intersection.
func (d *Demo) drawMarkers(screen render.Image) {
	dot := color.RGBA{255, 90, 90, 255}
	ring := color.RGBA{255, 170, 170, 255}

	for _, hit := range d.hits {
		d.Renderer.FillCircle(screen, float32(hit.X), float32(hit.Y), float32(d.pulseRadius), dot)
		d.Renderer.StrokeCircle(screen, float32(hit.X), float32(hit.Y), float32(d.pulseRadius)+3, 1, ring)
	}
}

// Layout implements render.Game.
func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.ScreenWidth, d.ScreenHeight
}
