package main

import (
	"flag"
	"github.com/gostonefire/lensmap/internal/calibration"
	"github.com/gostonefire/lensmap/internal/conf"
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
		logger.Fatal().Err(err).Str("file", cfg.InputFile).Msg("failed to solve calibration")
	}

	if err = output.Write(os.Stdout, cfg.OutputFormat, result); err != nil {
		logger.Fatal().Err(err).Msg("failed to write result")
	}
}

// run - Sums the calibration values of every line of the input file
func run(cfg conf.Config, logger zerolog.Logger) (result output.Result, err error) {
	lines, err := input.Lines(cfg.InputFile)
	if err != nil {
		return
	}
	logger.Debug().Str("file", cfg.InputFile).Int("lines", len(lines)).Msg("read calibration document")

	digits, err := calibration.Sum(lines, false)
	if err != nil {
		return
	}
	spelled, err := calibration.Sum(lines, true)
	if err != nil {
		return
	}

	result = output.Result{
		Puzzle: "calibration",
		Answers: []output.Answer{
			{Label: "Sum of calibration values", Value: int64(digits)},
			{Label: "Sum of calibration values with spelled digits", Value: int64(spelled)},
		},
	}

	return
}
