package main

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/sheikhrachel/deltalife/model"
	"github.com/sheikhrachel/deltalife/utils"
)

// stopReason tells why the drive loop returned
type stopReason int

const (
	stopRepeating stopReason = iota
	stopGenerationLimit
	stopInterrupted
)

func (r stopReason) String() string {
	switch r {
	case stopRepeating:
		return "repeating pattern detected"
	case stopGenerationLimit:
		return "generation limit reached"
	case stopInterrupted:
		return "interrupted"
	}
	return "unknown"
}

// Game owns the board and drives it generation by generation
type Game struct {
	config   utils.Config
	board    *model.Board
	stepper  *model.Stepper
	renderer *model.TerminalRenderer
	detector model.RepeatDetector
	stats    *utils.Stats
	sleep    func(time.Duration)

	generation int
}

// newGame builds a seeded board for config rendering to out
func newGame(config utils.Config, out io.Writer) *Game {
	board := model.NewBoard(config.Rows, config.Cols)
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	model.Seeders[config.Pattern](board, rand.New(rand.NewSource(seed)), config.Density)

	return &Game{
		config:   config,
		board:    board,
		stepper:  model.NewStepper(config.WrapRows, config.WrapCols, config.Workers),
		renderer: model.NewTerminalRenderer(out),
		stats:    utils.NewStats(),
		sleep:    time.Sleep,
	}
}

// Run draws the initial frame and advances the board until a repeat, the generation limit or ctx is done.
// Write failures end the loop immediately.
func (g *Game) Run(ctx context.Context) (stopReason, error) {
	if err := g.renderer.Frame(g.board); err != nil {
		return 0, err
	}
	if err := g.renderer.Flush(); err != nil {
		return 0, err
	}

	counter := 0
	for {
		select {
		case <-ctx.Done():
			if err := g.renderer.Park(g.board); err != nil {
				return stopInterrupted, err
			}
			return stopInterrupted, g.renderer.Flush()
		default:
			// Continue with game loop
		}

		counter = (counter + 1) % g.config.FullFrameEvery
		delta := g.stepper.Tick(g.board)
		g.generation++
		g.stats.Update(g.generation, g.board.CountAlive(), len(delta))

		if err := g.renderer.Paint(g.board, delta); err != nil {
			return 0, err
		}
		// periodic full frame heals any partial write that went missing
		if counter == 0 {
			if err := g.renderer.Frame(g.board); err != nil {
				return 0, err
			}
		}
		if err := g.renderer.Flush(); err != nil {
			return 0, err
		}

		g.sleep(time.Duration(g.config.FramePeriod))

		if g.detector.Observe(delta) {
			return stopRepeating, nil
		}
		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			return stopGenerationLimit, nil
		}
	}
}
