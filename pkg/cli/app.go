package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mchmarny/mch/pkg/advisor"
	"github.com/mchmarny/mch/pkg/config"
	"github.com/mchmarny/mch/pkg/logging"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	exitCodeError = 1
	exitCodeUsage = 2
)

const (
	debugFlagName      = "debug"
	dataFileFlagName   = "data"
	configFileFlagName = "config"
	formatFlagName     = "format"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""
)

// Flags hold their parsed state, so every command tree gets fresh instances.
func newDebugFlag() *urfave.BoolFlag {
	return &urfave.BoolFlag{
		Name:  debugFlagName,
		Usage: "Prints verbose logs (optional, default: false)",
	}
}

func newDataFileFlag() *urfave.StringFlag {
	return &urfave.StringFlag{
		Name:  dataFileFlagName,
		Usage: "Path to the role table CSV file (optional, defaults to the built-in table)",
	}
}

func newConfigFileFlag() *urfave.StringFlag {
	return &urfave.StringFlag{
		Name:  configFileFlagName,
		Usage: fmt.Sprintf("Path to the config file (optional, defaults to $HOME/.%s/config.yaml)", config.AppName),
	}
}

func newFormatFlag() *urfave.StringFlag {
	return &urfave.StringFlag{
		Name:  formatFlagName,
		Usage: "Output format [table, json, yaml]",
	}
}

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefault(os.Stderr, "info")

	cmd := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ec urfave.ExitCoder
	if errors.As(err, &ec) {
		slog.Error(ec.Error())
		return ec.ExitCode()
	}
	slog.Error("fatal error", "error", err)
	return exitCodeError
}

// app carries the per-invocation state shared by the command actions.
type app struct {
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	cfg        *config.Config
	cfgErr     error
	configPath string
}

func newApp(in io.Reader, out, errOut io.Writer) *urfave.Command {
	a := &app{
		in:     in,
		out:    out,
		errOut: errOut,
		cfg:    config.Default(),
	}

	return &urfave.Command{
		Name:                  config.AppName,
		Version:               fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:                 "Recommends colony worker roles from colonist skill points",
		EnableShellCompletion: true,
		HideHelpCommand:       true,
		Reader:                in,
		Writer:                out,
		ErrWriter:             errOut,
		Flags: []urfave.Flag{
			newDebugFlag(),
			newDataFileFlag(),
			newConfigFileFlag(),
			newFormatFlag(),
		},
		Commands: []*urfave.Command{
			a.lookupCmd(),
			a.rolesCmd(),
			a.recCmd(),
			a.rrecCmd(),
			a.configCmd(),
		},
		Before: a.before,
		Action: func(_ context.Context, cmd *urfave.Command) error {
			if cmd.Args().Present() {
				return usageError(cmd, fmt.Sprintf("unknown command %q", cmd.Args().First()))
			}
			return usageError(cmd, "command required")
		},
		OnUsageError: func(_ context.Context, _ *urfave.Command, err error, _ bool) error {
			return urfave.Exit(err.Error(), exitCodeUsage)
		},
		// exit codes are mapped in Execute so the command tree never calls os.Exit
		ExitErrHandler: func(context.Context, *urfave.Command, error) {},
	}
}

func (a *app) before(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
	a.configPath = cmd.String(configFileFlagName)
	if a.configPath == "" {
		a.configPath = config.DefaultPath()
	}

	// reported by the actions that need it, "config init" can still overwrite a broken file
	cfg, err := config.Load(a.configPath)
	if err != nil {
		a.cfgErr = fmt.Errorf("loading config: %w", err)
		cfg = config.Default()
	}

	if cmd.IsSet(dataFileFlagName) {
		cfg.DataFile = cmd.String(dataFileFlagName)
	}
	if cmd.IsSet(formatFlagName) {
		cfg.Format = cmd.String(formatFlagName)
		if err := cfg.Validate(); err != nil {
			return ctx, urfave.Exit(err.Error(), exitCodeUsage)
		}
	}
	if cmd.Bool(debugFlagName) {
		cfg.LogLevel = "debug"
	}

	logging.SetDefault(a.errOut, cfg.LogLevel)
	slog.Debug("config resolved",
		"file", a.configPath,
		"data", cfg.DataFile,
		"format", cfg.Format,
		"log_level", cfg.LogLevel,
	)

	a.cfg = cfg
	return ctx, nil
}

// withConfig fails the action when the config could not be loaded.
func (a *app) withConfig(fn urfave.ActionFunc) urfave.ActionFunc {
	return func(ctx context.Context, cmd *urfave.Command) error {
		if a.cfgErr != nil {
			return a.cfgErr
		}
		return fn(ctx, cmd)
	}
}

// table loads the role table for the current invocation.
func (a *app) table() (*advisor.Table, error) {
	if a.cfg.DataFile == "" {
		return advisor.LoadDefault()
	}
	return advisor.LoadFile(a.cfg.DataFile)
}

func (a *app) textOutput() bool {
	return a.cfg.Format == config.FormatTable
}

func (a *app) encode(v any) error {
	if a.cfg.Format == config.FormatYAML {
		e := yaml.NewEncoder(a.out)
		e.SetIndent(2)
		if err := e.Encode(v); err != nil {
			return err
		}
		return e.Close()
	}
	e := json.NewEncoder(a.out)
	e.SetIndent("", "  ")
	return e.Encode(v)
}

func usageError(cmd *urfave.Command, msg string) error {
	if cmd.Root() == cmd {
		_ = urfave.ShowAppHelp(cmd)
	} else {
		_ = urfave.ShowSubcommandHelp(cmd)
	}
	return urfave.Exit(msg, exitCodeUsage)
}
