package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/lensmap"
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
		logger.Fatal().Err(err).Str("file", cfg.InputFile).Msg("failed to solve lens map")
	}

	if err = output.Write(os.Stdout, cfg.OutputFormat, result); err != nil {
		logger.Fatal().Err(err).Msg("failed to write result")
	}
}

// run - Hashes and replays the first line of the input file
func run(cfg conf.Config, logger zerolog.Logger) (result output.Result, err error) {
	line, err := input.FirstLine(cfg.InputFile)
	if err != nil {
		return
	}
	logger.Debug().Str("file", cfg.InputFile).Int("length", len(line)).Msg("read instruction line")

	lm, err := lensmap.NewLensMap(nil)
	if err != nil {
		return
	}
	lm.SetLogger(logger)

	if _, err = lm.ApplyAll(line); err != nil {
		err = fmt.Errorf("error while replaying instructions: %w", err)
		return
	}

	checksum, err := lm.Checksum()
	if err != nil {
		return
	}

	stat := lm.Stat(false)
	logger.Debug().
		Int64("records", stat.Records).
		Int64("usedBoxes", stat.UsedBoxes).
		Int64("largestBox", stat.LargestBox).
		Msg("lens map state")

	result = output.Result{
		Puzzle: "lensmap",
		Answers: []output.Answer{
			{Label: "Sum of hash of all strings in line", Value: lensmap.HashSum(line)},
			{Label: "Power of resulting hash map", Value: checksum},
		},
	}

	return
}
