package conf

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
)

// Log and output formats accepted by Validate
const (
	LogFormatConsole string = "console"
	LogFormatJSON    string = "json"
	OutputText       string = "text"
	OutputJSON       string = "json"
)

// CubeLimits - Number of cubes of each color in the bag for the cube game
type CubeLimits struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// Config - Run configuration shared by all puzzle commands
//   - InputFile is the puzzle input to read
//   - LogLevel is a zerolog level name, "info" if empty
//   - LogFormat is either "console" or "json"
//   - OutputFormat is either "text" or "json"
//   - Cubes is the bag content used by the cube game
type Config struct {
	InputFile    string     `yaml:"input_file"`
	LogLevel     string     `yaml:"log_level"`
	LogFormat    string     `yaml:"log_format"`
	OutputFormat string     `yaml:"output_format"`
	Cubes        CubeLimits `yaml:"cubes"`
}

// Default - Returns the configuration used when nothing is configured
func Default() Config {
	return Config{
		InputFile:    DefaultInputFile,
		LogLevel:     zerolog.InfoLevel.String(),
		LogFormat:    LogFormatConsole,
		OutputFormat: OutputText,
		Cubes: CubeLimits{
			Red:   DefaultRedCubes,
			Green: DefaultGreenCubes,
			Blue:  DefaultBlueCubes,
		},
	}
}

// Load - Builds the run configuration with Read and validates it
//   - path is an optional YAML configuration file
//
// It returns:
//   - cfg is the validated configuration
//   - err is a standard error, if something went wrong
func Load(path string) (cfg Config, err error) {
	cfg, err = Read(path)
	if err != nil {
		return
	}

	err = cfg.Validate()

	return
}

// Read - Builds the run configuration without validating it. Defaults are overridden by the YAML file at path
// (skipped if path is empty), which in turn is overridden by environment variables. A .env file in the working
// directory is loaded into the environment first if it exists, without replacing variables already set.
//   - path is an optional YAML configuration file
//
// It returns:
//   - cfg is the configuration, callers apply their own overrides and then call Validate
//   - err is a standard error, if something went wrong
func Read(path string) (cfg Config, err error) {
	cfg = Default()

	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			err = fmt.Errorf("error while reading configuration file: %w", err)
			return
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			err = fmt.Errorf("error while parsing configuration file %s: %w", path, err)
			return
		}
	}

	if err = godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("error while loading .env file: %w", err)
			return
		}
		err = nil
	}

	// env caches the environment on first use
	env.Load()
	cfg.applyEnv()

	return
}

// applyEnv - Overrides configuration with any environment variables set
func (C *Config) applyEnv() {
	C.InputFile = env.Str(EnvPrefix+"INPUT", C.InputFile)
	C.LogLevel = env.Str(EnvPrefix+"LOG_LEVEL", C.LogLevel)
	C.LogFormat = env.Str(EnvPrefix+"LOG_FORMAT", C.LogFormat)
	C.OutputFormat = env.Str(EnvPrefix+"OUTPUT_FORMAT", C.OutputFormat)
	C.Cubes.Red = env.Int(EnvPrefix+"CUBES_RED", C.Cubes.Red)
	C.Cubes.Green = env.Int(EnvPrefix+"CUBES_GREEN", C.Cubes.Green)
	C.Cubes.Blue = env.Int(EnvPrefix+"CUBES_BLUE", C.Cubes.Blue)
}

// Validate - Checks that the configuration can be used
func (C *Config) Validate() error {
	if C.InputFile == "" {
		return fmt.Errorf("input file can not be empty")
	}
	if _, err := zerolog.ParseLevel(C.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", C.LogLevel, err)
	}
	if C.LogFormat != LogFormatConsole && C.LogFormat != LogFormatJSON {
		return fmt.Errorf("log format must be %q or %q, got %q", LogFormatConsole, LogFormatJSON, C.LogFormat)
	}
	if C.OutputFormat != OutputText && C.OutputFormat != OutputJSON {
		return fmt.Errorf("output format must be %q or %q, got %q", OutputText, OutputJSON, C.OutputFormat)
	}
	if C.Cubes.Red < 0 || C.Cubes.Green < 0 || C.Cubes.Blue < 0 {
		return fmt.Errorf("cube limits can not be negative")
	}

	return nil
}
