// linecross - Interactive 2D segment intersection demo
//
// A probe segment rotates around the mouse cursor while random wall
// segments fill the screen. Every frame the probe is intersected against
// every wall and the crossing points are marked.
//
// Controls:
//
//	Mouse     - Move the probe
//	Space     - Pause/resume rotation
//	R         - Regenerate walls
//	Up/Down   - Adjust probe length
//	H         - Toggle HUD overlay
//	Esc       - Quit
package main

import (
	"errors"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"chosenoffset.com/linecross/internal/config"
	"chosenoffset.com/linecross/internal/demo"
	ebitenrender "chosenoffset.com/linecross/internal/render/ebiten"
)

var (
	configPath string
	width      int
	height     int
	wallCount  int
	speed      float64
	length     float64
	seed       int64
)

func main() {
	cmd := &cobra.Command{
		Use:   "linecross",
		Short: "Interactive 2D segment intersection demo",
		Long: `linecross - Interactive 2D segment intersection demo

A probe segment rotates around the mouse cursor while random wall
segments fill the screen. Every frame the probe is intersected against
every wall and the crossing points are marked.

Controls:
  Mouse     - Move the probe
  Space     - Pause/resume rotation
  R         - Regenerate walls
  Up/Down   - Adjust probe length
  H         - Toggle HUD overlay
  Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "linecross.json", "Path to JSON config file")
	cmd.Flags().IntVar(&width, "width", 0, "Window width (overrides config)")
	cmd.Flags().IntVar(&height, "height", 0, "Window height (overrides config)")
	cmd.Flags().IntVar(&wallCount, "walls", 0, "Number of random walls (overrides config)")
	cmd.Flags().Float64Var(&speed, "speed", 0, "Probe rotation speed in radians per tick (overrides config)")
	cmd.Flags().Float64Var(&length, "length", 0, "Probe length in pixels (overrides config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for wall generation (0 = time-based)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Flags beat the config file when explicitly set
	if cmd.Flags().Changed("width") {
		cfg.Screen.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Screen.Height = height
	}
	if cmd.Flags().Changed("walls") {
		cfg.Walls.Count = wallCount
	}
	if cmd.Flags().Changed("speed") {
		cfg.Probe.RotationSpeed = speed
	}
	if cmd.Flags().Changed("length") {
		cfg.Probe.Length = length
		cfg.Probe.MaxLength = max(cfg.Probe.MaxLength, length)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Walls.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	rngSeed := cfg.Walls.Seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	game := demo.New(cfg, renderer, inputMgr, rng)

	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(cfg.Screen.Title)
	engine.SetWindowResizable(cfg.Screen.Resizable)

	log.Printf("Starting demo: %dx%d, %d walls, seed %d", cfg.Screen.Width, cfg.Screen.Height, cfg.Walls.Count, rngSeed)
	if err := engine.RunGame(game); err != nil && !errors.Is(err, demo.ErrQuit) {
		return err
	}

	return nil
}
