package main

import (
	"flag"
	"github.com/gostonefire/lensmap/internal/conf"
	"github.com/gostonefire/lensmap/internal/cubegame"
	"github.com/gostonefire/lensmap/internal/input"
	"github.com/gostonefire/lensmap/internal/output"
	"github.com/gostonefire/lensmap/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
)

func main() {
	flags := setup.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, logger, err := flags.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up")
	}

	result, err := run(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.InputFile).Msg("failed to solve cube game")
	}

	if err = output.Write(os.Stdout, cfg.OutputFormat, result); err != nil {
		logger.Fatal().Err(err).Msg("failed to write result")
	}
}

// run - Checks every game of the input file against the configured bag
func run(cfg conf.Config, logger zerolog.Logger) (result output.Result, err error) {
	lines, err := input.Lines(cfg.InputFile)
	if err != nil {
		return
	}

	limits := cubegame.Limits{Red: cfg.Cubes.Red, Green: cfg.Cubes.Green, Blue: cfg.Cubes.Blue}
	logger.Debug().
		Str("file", cfg.InputFile).
		Int("games", len(lines)).
		Interface("limits", limits).
		Msg("read games")

	feasibleIDs, power, err := cubegame.Sums(lines, limits)
	if err != nil {
		return
	}

	result = output.Result{
		Puzzle: "cubegame",
		Answers: []output.Answer{
			{Label: "Sum of possible game IDs", Value: int64(feasibleIDs)},
			{Label: "Sum of power of each game", Value: int64(power)},
		},
	}

	return
}
