// Package cli implements the pixmaze command-line interface.
//
// Commands:
//
//   - solve: solve a maze image and write the path overlay
//   - graph: summarize or export the compressed corridor graph
//   - print: draw a maze (and optionally its solution) in the terminal
//   - bench: compare build times of the dense and compressed models
//   - generate: draw a random maze
//   - serve: run the HTTP solver
//
// All commands accept --verbose (-v) for debug logging and --config for a
// TOML settings file. The logger travels through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pixmaze/internal/config"
)

// version is set with -ldflags "-X github.com/katalvlaran/pixmaze/internal/cli.version=...".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root command with all subcommands registered.
// Settings are loaded from --config before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pixmaze",
		Short:        "pixmaze solves mazes drawn as bitmaps",
		Long:         `pixmaze reads a PNG or BMP maze whose white pixels are paths, finds the route from the opening in the top row to the opening in the bottom row, and writes the image back with the route painted in.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default "+config.DefaultPath+" if present)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.printCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())

	return root
}
