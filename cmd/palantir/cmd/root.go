// Package cmd implements the palantir CLI commands.
//
// A root command loads palantir.yaml and sets up logging, then dispatches
// to subcommands (demo, palette, click).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/palantir-ui/palantir/internal/config"
	"github.com/palantir-ui/palantir/internal/logger"
	"github.com/palantir-ui/palantir/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by the commands of one root invocation.
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger zerolog.Logger
}

// commands holds the subcommand constructors registered by init functions.
var commands []func(*app) *cobra.Command

// RegisterCommand adds a subcommand constructor to the CLI.
func RegisterCommand(build func(*app) *cobra.Command) {
	commands = append(commands, build)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// newRootCmd builds an isolated command tree. Tests use the returned app to
// inspect the resolved configuration.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), cfg: &config.Config{}, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "palantir",
		Short: "Inspect palantir view trees",
		Long: `palantir builds sample view trees and prints them, lists the color
palette, and simulates clicks through the event dispatcher.

Settings are read from palantir.yaml in the nearest enclosing directory,
or from the file named by --config. Environment variables prefixed with
PALANTIR_ (PALANTIR_CONFIG, PALANTIR_LOG_LEVEL) override the file.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is palantir.yaml in the project root)")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error, disabled)")
	_ = a.v.BindPFlag("config", flags.Lookup("config"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	a.v.SetEnvPrefix("PALANTIR")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	for _, build := range commands {
		root.AddCommand(build(a))
	}
	return root, a
}

func (a *app) initialize(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := a.v.GetString("log.level")
	if level == "" {
		level = cfg.Log.Level
	}
	log, err := logger.New(loggerOptions(level, cfg.Log.Verbose, cmd))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	a.logger = log

	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Log.Verbose, Writer: cmd.ErrOrStderr()})
	a.logger.Debug().Str("command", cmd.Name()).Msg("configured")
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if path := a.v.GetString("config"); path != "" {
		return config.Load(path)
	}
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(root)
}

// loggerOptions maps CLI settings onto logger options writing to the command's
// error stream.
func loggerOptions(level string, verbose bool, cmd *cobra.Command) logger.Options {
	return logger.Options{Level: level, HumanReadable: verbose, Writer: cmd.ErrOrStderr()}
}
