package setup

import (
	"flag"
	"fmt"
	"github.com/gostonefire/lensmap/internal/conf"
	"github.com/gostonefire/lensmap/internal/logger"
	"github.com/rs/zerolog"
)

// Flags - Command line flags shared by all puzzle commands, an empty value leaves the configuration as loaded
type Flags struct {
	ConfigFile *string
	InputFile  *string
	Format     *string
	LogLevel   *string
}

// RegisterFlags - Registers the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		ConfigFile: fs.String("config", "", "Optional YAML configuration file"),
		InputFile:  fs.String("input", "", "Puzzle input file (default \""+conf.DefaultInputFile+"\")"),
		Format:     fs.String("format", "", "Output format, 'text' or 'json'"),
		LogLevel:   fs.String("log-level", "", "Log level, e.g. 'debug' or 'trace'"),
	}
}

// Load - Loads the configuration and applies the flags on top of it, then builds the logger.
// Flags must have been parsed before calling Load.
//
// It returns:
//   - cfg is the validated configuration
//   - log is a logger configured from cfg
//   - err is a standard error, if something went wrong
func (F *Flags) Load() (cfg conf.Config, log zerolog.Logger, err error) {
	cfg, err = conf.Read(*F.ConfigFile)
	if err != nil {
		err = fmt.Errorf("error while loading configuration: %w", err)
		return
	}

	if *F.InputFile != "" {
		cfg.InputFile = *F.InputFile
	}
	if *F.Format != "" {
		cfg.OutputFormat = *F.Format
	}
	if *F.LogLevel != "" {
		cfg.LogLevel = *F.LogLevel
	}
	if err = cfg.Validate(); err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	log = logger.New(cfg.LogLevel, cfg.LogFormat)

	return
}
