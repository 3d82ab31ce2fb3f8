// Package cli wires the kilomoco commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/kilomoco/kilomoco/internal/config"
	"github.com/kilomoco/kilomoco/internal/launcher"
	"github.com/kilomoco/kilomoco/internal/output"
	"github.com/kilomoco/kilomoco/internal/tui"
)

var (
	cfgFile string
	cfg     *config.Settings

	// Global JSON output flag, inherited by all subcommands.
	jsonOutput bool

	// Build information, set via ldflags.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kilomoco",
	Short: "Manage Kilo Code mode/model profiles and launch VS Code with them",
	Long: `kilomoco manages named profiles that map Kilo Code operation modes
(code, debug, ask, ...) to model identifiers, and launches VS Code against a
selected profile using an isolated temporary user-data directory.

Quick Start:
  kilomoco                      # Interactive profile selector
  kilomoco list                 # List available profiles
  kilomoco launch lopr          # Launch VS Code with the 'lopr' profile
  kilomoco instances            # Show running instances and their profiles

Profiles are YAML files discovered from $KILOMOCO_PROFILES_DIR, ./profiles
and ~/.kilomoco/profiles; built-in profiles are used when none are found.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		s, err := config.LoadSettings(cfgFile)
		if err != nil {
			return err
		}
		cfg = s
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// No subcommand: run the interactive selector, then launch.
		id, err := tui.RunProfileSelector(cfg)
		if err != nil {
			return err
		}
		if id == "" {
			return nil
		}

		code, err := launcher.PrepareAndLaunch(id, launcher.Options{Settings: cfg})
		if err != nil {
			return profileError(err)
		}
		if code != 0 {
			return &editorExitError{code: code}
		}
		return nil
	},
}

func setupLogging() {
	level := zerolog.WarnLevel
	if env := os.Getenv("KILOMOCO_LOG"); env != "" {
		if parsed, err := zerolog.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// IsJSONOutput reports whether --json was set.
func IsJSONOutput() bool {
	return jsonOutput
}

func formatter() *output.Formatter {
	return output.New(output.WithJSON(jsonOutput))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/kilomoco/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newLaunchCmd(),
		newInstancesCmd(),
		newDiffCmd(),
		newVersionCmd(),
	)
}

// Execute runs the root command and returns the process exit status.
func Execute() int {
	return exitStatus(rootCmd.Execute())
}

// exitStatus renders err and maps it to a process exit code. An editor exit
// passes its code through unchanged; an already-rendered error is not
// printed again.
func exitStatus(err error) int {
	if err == nil {
		return 0
	}

	var editorErr *editorExitError
	if errors.As(err, &editorErr) {
		return editorErr.code
	}

	var silent *output.SilentError
	if errors.As(err, &silent) {
		return 1
	}

	var cliErr *output.CLIError
	if errors.As(err, &cliErr) {
		output.PrintCLIError(cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return 1
}
