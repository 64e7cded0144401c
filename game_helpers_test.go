package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/deltalife/model"
	"github.com/sheikhrachel/deltalife/utils"
)

func testConfig(pattern string, rows, cols int) utils.Config {
	c := utils.DefaultConfig()
	c.Rows, c.Cols = rows, cols
	c.Pattern = pattern
	c.Seed = 1
	c.FramePeriod = 0
	return c
}

func newTestGame(config utils.Config, out *bytes.Buffer) (*Game, *[]time.Duration) {
	g := newGame(config, out)
	var slept []time.Duration
	g.sleep = func(d time.Duration) { slept = append(slept, d) }
	return g, &slept
}

func TestGameStopsOnBlinker(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		t.Run(fmt.Sprintf("wrap=%v", wrap), func(t *testing.T) {
			config := testConfig("blinker", 5, 5)
			config.WrapRows, config.WrapCols = wrap, wrap
			config.FramePeriod = utils.Duration(10 * time.Millisecond)

			var out bytes.Buffer
			g, slept := newTestGame(config, &out)
			reason, err := g.Run(context.Background())
			if err != nil {
				t.Fatalf("Run() = %v", err)
			}
			if reason != stopRepeating {
				t.Fatalf("reason = %v, want %v", reason, stopRepeating)
			}
			if g.generation != 2 {
				t.Fatalf("stopped after %d generations, want 2", g.generation)
			}
			if len(*slept) != 2 || (*slept)[0] != 10*time.Millisecond {
				t.Fatalf("slept %v, want two 10ms pauses", *slept)
			}
		})
	}
}

func TestGameOutputSequence(t *testing.T) {
	config := testConfig("blinker", 5, 5)
	config.FullFrameEvery = 256

	var out bytes.Buffer
	g, _ := newTestGame(config, &out)
	if _, err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	b := model.NewBoard(5, 5)
	model.Seeders["blinker"](b, nil, 0)
	want := string(model.FullFrame(b))
	stepper := model.NewStepper(true, true, 1)
	for range 2 {
		delta := stepper.Tick(b)
		want += string(model.PartialFrame(b, delta))
	}
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestGameFullFrameCadence(t *testing.T) {
	// glider on a torus never repeats its delta, so the limit decides the length of the run
	const generations = 12
	for _, every := range []int{1, 2, 3, 5, 256} {
		t.Run(fmt.Sprintf("every=%d", every), func(t *testing.T) {
			config := testConfig("glider", 12, 12)
			config.FullFrameEvery = every
			config.MaxGenerations = generations

			var out bytes.Buffer
			g, _ := newTestGame(config, &out)
			reason, err := g.Run(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if reason != stopGenerationLimit || g.generation != generations {
				t.Fatalf("stopped with %v after %d generations", reason, g.generation)
			}

			frames := strings.Count(out.String(), "\x1b[2J")
			if want := 1 + generations/every; frames != want {
				t.Fatalf("%d full frames, want %d", frames, want)
			}
			if !strings.HasSuffix(out.String(), string(model.FullFrame(g.board))) && generations%every == 0 {
				t.Fatal("final full frame does not match the board")
			}
		})
	}
}

func TestGameInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	g, _ := newTestGame(testConfig("random", 8, 8), &out)
	reason, err := g.Run(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if reason != stopInterrupted || g.generation != 0 {
		t.Fatalf("stopped with %v after %d generations", reason, g.generation)
	}
	if !strings.HasSuffix(out.String(), "\x1b[11;1H") {
		t.Fatalf("cursor not parked below the frame: %q", out.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("terminal went away")
}

func TestGameWriteFailure(t *testing.T) {
	g := newGame(testConfig("random", 4, 4), failingWriter{})
	g.sleep = func(time.Duration) {}
	if _, err := g.Run(context.Background()); !utils.IsKind(err, utils.ErrIOWriteFailed) {
		t.Fatalf("Run() = %v, want ErrIOWriteFailed", err)
	}
	if g.generation != 0 {
		t.Fatalf("advanced %d generations after the first write failed", g.generation)
	}
}

func TestGameParallelWorkers(t *testing.T) {
	seq, par := testConfig("random", 30, 40), testConfig("random", 30, 40)
	seq.MaxGenerations, par.MaxGenerations = 50, 50
	par.Workers = 4

	var seqOut, parOut bytes.Buffer
	gs, _ := newTestGame(seq, &seqOut)
	gp, _ := newTestGame(par, &parOut)
	if _, err := gs.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := gp.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if seqOut.String() != parOut.String() {
		t.Fatal("parallel run rendered differently from the sequential one")
	}
}
