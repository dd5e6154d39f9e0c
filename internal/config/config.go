// Package config loads pixmaze settings from a TOML file.
//
// Every field has a default (see Default); a file only needs the keys it
// overrides. Command-line flags override the file.
//
//	strategy  = "graph"
//	suffix    = "_solved"
//	scale     = 4
//	bench_runs = 1000
//
//	[generate]
//	cols   = 20
//	rows   = 20
//	method = "kruskal"
//	loops  = 0
//
//	[server]
//	addr             = ":8080"
//	max_upload_bytes = 8388608
//	max_pixels       = 4194304
//	read_timeout     = "10s"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pixmaze/mazegen"
	"github.com/katalvlaran/pixmaze/mst"
	"github.com/katalvlaran/pixmaze/solve"
)

// DefaultPath is read by Load when no path is given and the file exists.
const DefaultPath = "pixmaze.toml"

var (
	// ErrUnknownKey indicates a key that maps to no setting.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a setting outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// Config holds all settings.
type Config struct {
	Strategy  string   `toml:"strategy"`
	Suffix    string   `toml:"suffix"`
	Scale     int      `toml:"scale"`
	Corridors bool     `toml:"corridors"`
	BenchRuns int      `toml:"bench_runs"`
	Generate  Generate `toml:"generate"`
	Server    Server   `toml:"server"`
}

// Generate holds the defaults of the generate command.
type Generate struct {
	Cols   int    `toml:"cols"`
	Rows   int    `toml:"rows"`
	Method string `toml:"method"`
	Loops  int    `toml:"loops"`
}

// Server configures the HTTP endpoint.
type Server struct {
	Addr           string        `toml:"addr"`
	MaxUploadBytes int64         `toml:"max_upload_bytes"`
	MaxPixels      int64         `toml:"max_pixels"` // width*height of an uploaded or generated bitmap
	ReadTimeout    time.Duration `toml:"read_timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Strategy:  solve.Grid.String(),
		Suffix:    "_solved",
		Scale:     1,
		BenchRuns: 1000,
		Generate: Generate{
			Cols:   20,
			Rows:   20,
			Method: string(mst.MethodKruskal),
		},
		Server: Server{
			Addr:           ":8080",
			MaxUploadBytes: 8 << 20,
			MaxPixels:      4 << 20,
			ReadTimeout:    10 * time.Second,
		},
	}
}

// Load reads path over Default. An empty path falls back to DefaultPath
// when that file exists, and to Default otherwise.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			return cfg, nil
		}
		path = DefaultPath
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := solve.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	switch {
	case c.Suffix == "":
		return fmt.Errorf("%w: suffix must not be empty", ErrInvalid)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d < 1", ErrInvalid, c.Scale)
	case c.BenchRuns < 1:
		return fmt.Errorf("%w: bench_runs %d < 1", ErrInvalid, c.BenchRuns)
	case c.Generate.Cols < 1 || c.Generate.Cols > mazegen.MaxCells:
		return fmt.Errorf("%w: generate.cols %d outside [1,%d]", ErrInvalid, c.Generate.Cols, mazegen.MaxCells)
	case c.Generate.Rows < 1 || c.Generate.Rows > mazegen.MaxCells:
		return fmt.Errorf("%w: generate.rows %d outside [1,%d]", ErrInvalid, c.Generate.Rows, mazegen.MaxCells)
	case c.Generate.Method != string(mst.MethodKruskal) && c.Generate.Method != string(mst.MethodPrim):
		return fmt.Errorf("%w: generate.method %q", ErrInvalid, c.Generate.Method)
	case c.Generate.Loops < 0:
		return fmt.Errorf("%w: generate.loops %d < 0", ErrInvalid, c.Generate.Loops)
	case c.Server.MaxUploadBytes < 1:
		return fmt.Errorf("%w: server.max_upload_bytes %d < 1", ErrInvalid, c.Server.MaxUploadBytes)
	case c.Server.MaxPixels < 1:
		return fmt.Errorf("%w: server.max_pixels %d < 1", ErrInvalid, c.Server.MaxPixels)
	}
	return nil
}

// StrategyValue returns the parsed strategy.
func (c Config) StrategyValue() solve.Strategy {
	s, err := solve.ParseStrategy(c.Strategy)
	if err != nil {
		return solve.Grid
	}
	return s
}
