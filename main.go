package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/deltalife/model"
	"github.com/sheikhrachel/deltalife/utils"
)

const (
	appName = "deltalife"

	exitOK          = 0
	exitWriteFailed = 1
	exitBadArgument = 2
)

// terminalSize queries the controlling terminal, replaced in tests
var terminalSize = func() (int, int, error) {
	return utils.TerminalSize(int(os.Stdout.Fd()))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses args, plays the game on stdout and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, appName+": ", 0)

	config, err := parseArgs(args)
	if err != nil {
		logger.Println(err)
		return exitBadArgument
	}

	game := newGame(config, stdout)
	reason, err := game.Run(ctx)
	if err != nil {
		logger.Println(err)
		return exitWriteFailed
	}

	if _, err = fmt.Fprintf(stdout, "%s after %d generations\n%s\n", reason, game.generation, game.stats); err != nil {
		logger.Println(errors.Wrapf(utils.ErrIOWriteFailed, "[run] %v", err))
		return exitWriteFailed
	}
	return exitOK
}

// valueFlags take the following token as their value, even when it reads as a negative number
var valueFlags = map[string]bool{
	"c": true, "config": true,
	"i": true, "interval": true,
	"f": true, "full-every": true,
	"d": true, "density": true,
	"s": true, "seed": true,
	"p": true, "pattern": true,
	"m": true, "max-generations": true,
	"w": true, "workers": true,
}

// parseArgs builds the config from defaults, an optional JSON file, flags and the COLS ROWS positionals
func parseArgs(args []string) (utils.Config, error) {
	flagArgs, positionals, configPath := splitArgs(args)
	if len(positionals) > 2 {
		return utils.DefaultConfig(), errors.Wrapf(utils.ErrBadArgument, "[parseArgs] unexpected argument %q", positionals[2])
	}

	config := utils.DefaultConfig()
	if configPath != "" {
		var err error
		if config, err = utils.LoadConfig(configPath); err != nil {
			return config, errors.Wrapf(utils.ErrBadArgument, "[parseArgs] %v", err)
		}
	}

	// flags start from the file or the defaults, so help shows real defaults and zero values reach Validate
	var (
		p = flaggy.NewParser(appName)

		colsArg, rowsArg string
		interval         = time.Duration(config.FramePeriod)
		fullEvery        = config.FullFrameEvery
		density          = config.Density
		seed             = config.Seed
		pattern          = config.Pattern
		maxGenerations   = config.MaxGenerations
		workers          = config.Workers
		clampRows        = !config.WrapRows
		clampCols        = !config.WrapCols
	)
	p.Description = "Conway's Game of Life in the terminal"
	p.ShowHelpOnUnexpected = true
	p.AddPositionalValue(&colsArg, "COLS", 1, false, "Width of the board in cells")
	p.AddPositionalValue(&rowsArg, "ROWS", 2, false, "Height of the board in cells")
	p.String(&configPath, "c", "config", "JSON configuration file")
	p.Duration(&interval, "i", "interval", "Pause between generations, for example 10ms")
	p.Int(&fullEvery, "f", "full-every", "Redraw the full frame every N generations")
	p.Float64(&density, "d", "density", "Probability of a cell starting alive")
	p.Int64(&seed, "s", "seed", "Random seed, 0 picks one from the clock")
	p.String(&pattern, "p", "pattern", "Initial pattern ["+strings.Join(model.SeederNames(), "|")+"]")
	p.Int(&maxGenerations, "m", "max-generations", "Stop after N generations, 0 runs until a repeat")
	p.Int(&workers, "w", "workers", "Rows evaluated concurrently in N bands")
	p.Bool(&clampRows, "", "clamp-rows", "Clamp row neighbors at the edges instead of wrapping")
	p.Bool(&clampCols, "", "clamp-cols", "Clamp column neighbors at the edges instead of wrapping")

	if err := p.ParseArgs(flagArgs); err != nil {
		return config, errors.Wrapf(utils.ErrBadArgument, "[parseArgs] %v", err)
	}

	config.FramePeriod = utils.Duration(interval)
	config.FullFrameEvery = fullEvery
	config.Density = density
	config.Seed = seed
	config.Pattern = pattern
	config.MaxGenerations = maxGenerations
	config.Workers = workers
	config.WrapRows = !clampRows
	config.WrapCols = !clampCols

	if len(positionals) > 0 {
		colsArg = positionals[0]
	}
	if len(positionals) > 1 {
		rowsArg = positionals[1]
	}
	if err := resolveSize(&config, colsArg, rowsArg); err != nil {
		return config, err
	}
	return config, config.Validate(model.SeederNames())
}

// splitArgs separates the positionals from the flags and finds the config file path.
// A token such as "-5" is a positional unless it is the value of a flag, so parseDimension can report it.
func splitArgs(args []string) (flagArgs, positionals []string, configPath string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || isInteger(arg) {
			positionals = append(positionals, arg)
			continue
		}

		flagArgs = append(flagArgs, arg)
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !valueFlags[name] {
			continue
		}
		if !hasValue && i+1 < len(args) {
			i++
			value = args[i]
			flagArgs = append(flagArgs, value)
		}
		if name == "c" || name == "config" {
			configPath = value
		}
	}
	return flagArgs, positionals, configPath
}

func isInteger(token string) bool {
	_, err := strconv.Atoi(token)
	return err == nil
}

// resolveSize applies the positionals, or sizes the board from the terminal when the config has no size
func resolveSize(config *utils.Config, colsArg, rowsArg string) error {
	switch {
	case colsArg != "" && rowsArg != "":
		cols, err := parseDimension("COLS", colsArg)
		if err != nil {
			return err
		}
		rows, err := parseDimension("ROWS", rowsArg)
		if err != nil {
			return err
		}
		config.Cols, config.Rows = cols, rows
		return nil
	case colsArg != "":
		return errors.Wrapf(utils.ErrBadArgument, "[resolveSize] ROWS is required with COLS %q", colsArg)
	}

	if config.Cols > 0 && config.Rows > 0 {
		return nil
	}

	// terminal errors are recoverable, BoardSize returns the fallback with them
	width, height, err := terminalSize()
	if err != nil {
		config.Cols, config.Rows = utils.FallbackCols, utils.FallbackRows
		return nil
	}
	config.Cols, config.Rows, _ = utils.BoardSize(width, height)
	return nil
}

func parseDimension(name, token string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil || n < 1 {
		return 0, errors.Wrapf(utils.ErrBadArgument, "[parseDimension] %s must be a positive integer, got %q", name, token)
	}
	return n, nil
}
