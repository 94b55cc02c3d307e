package utils

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Renderer names accepted by the -renderer flag
const (
	RendererTerminal = "terminal"
	RendererTcell    = "tcell"
	RendererWindow   = "window"
	RendererNone     = "none"
)

// ErrUsage marks configuration problems the user fixes on the command line
var ErrUsage = errors.New("usage")

// Config holds the configuration for the simulation
type Config struct {
	File       string        `json:"file"`
	Speed      string        `json:"speed"`
	Renderer   string        `json:"renderer"`
	FrameRate  time.Duration `json:"frame_rate"`
	CellSize   int           `json:"cell_size"`
	Workers    int           `json:"workers"`
	Strict     bool          `json:"strict"`
	MaxFrames  uint64        `json:"max_frames"`
	ShowStatus bool          `json:"show_status"`

	// ConfigPath is only settable from the command line
	ConfigPath string `json:"-"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Renderer:   RendererTerminal,
		FrameRate:  time.Second / 60,
		CellSize:   10,
		Workers:    0, // one per CPU
		ShowStatus: true,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "file", c.File, "pattern file to load (required)")
	fs.StringVar(&c.Speed, "speed", c.Speed, "speed level 1-5 (required)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file, flags take precedence")
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "terminal, tcell, window or none")
	fs.DurationVar(&c.FrameRate, "frame-rate", c.FrameRate, "time between frames")
	fs.IntVar(&c.CellSize, "cell-size", c.CellSize, "window pixels per cell")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation, 0 for one per CPU")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "reject characters other than '#' and '_'")
	fs.Uint64Var(&c.MaxFrames, "frames", c.MaxFrames, "stop after this many frames, 0 to run until quit")
	fs.BoolVar(&c.ShowStatus, "status", c.ShowStatus, "show the status line")
}

// ParseArgs builds a Config from defaults, the optional -config file and
// the command line, in increasing order of precedence
func ParseArgs(name string, args []string, output io.Writer) (Config, error) {
	config := DefaultConfig()
	if err := newFlagSet(name, &config, output).Parse(args); err != nil {
		return config, flagError(err)
	}

	if config.ConfigPath != "" {
		path := config.ConfigPath
		fileConfig, err := LoadConfig(path)
		if err != nil {
			return config, err
		}
		// Parse again so explicit flags override the file
		fileConfig.ConfigPath = path
		if err = newFlagSet(name, &fileConfig, io.Discard).Parse(args); err != nil {
			return fileConfig, flagError(err)
		}
		config = fileConfig
	}

	return config, config.Validate()
}

// flagError keeps flag.ErrHelp intact and marks everything else as a usage error
func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return errors.Wrapf(ErrUsage, "[ParseArgs] %v", err)
}

func newFlagSet(name string, config *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	config.Bind(fs)
	return fs
}

// Validate checks everything that does not need the simulation packages
func (c Config) Validate() error {
	switch {
	case c.File == "":
		return errors.Wrap(ErrUsage, "[Validate] -file is required")
	case c.Speed == "":
		return errors.Wrap(ErrUsage, "[Validate] -speed is required")
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrUsage, "[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.CellSize < 1:
		return errors.Wrapf(ErrUsage, "[Validate] cell size must be at least 1, got %d", c.CellSize)
	case c.Workers < 0:
		return errors.Wrapf(ErrUsage, "[Validate] workers must not be negative, got %d", c.Workers)
	}

	switch c.Renderer {
	case RendererTerminal, RendererTcell, RendererWindow, RendererNone:
		return nil
	}
	return errors.Wrapf(ErrUsage, "[Validate] unknown renderer %q", c.Renderer)
}

// TPS converts the frame period into ticks per second, at least 1
func (c Config) TPS() int {
	if c.FrameRate <= 0 {
		return 60
	}
	return max(1, int(time.Second/c.FrameRate))
}
