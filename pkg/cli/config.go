package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mchmarny/mch/pkg/config"
	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const forceFlagName = "force"

func newForceFlag() *urfave.BoolFlag {
	return &urfave.BoolFlag{
		Name:  forceFlagName,
		Usage: "Overwrite an existing config file",
	}
}

func (a *app) configCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "config",
		Usage: "Show or initialize the config",
		Commands: []*urfave.Command{
			{
				Name:   "show",
				Usage:  "Print the effective config",
				Action: a.withConfig(a.cmdConfigShow),
			},
			{
				Name:   "init",
				Usage:  "Write the default config file",
				Action: a.cmdConfigInit,
				Flags: []urfave.Flag{
					newForceFlag(),
				},
			},
		},
	}
}

func (a *app) cmdConfigShow(_ context.Context, _ *urfave.Command) error {
	if !a.textOutput() {
		return a.encode(a.cfg)
	}

	b, err := yaml.Marshal(a.cfg)
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	_, err = fmt.Fprintf(a.out, "# %s\n%s", a.configPath, b)
	return err
}

func (a *app) cmdConfigInit(_ context.Context, cmd *urfave.Command) error {
	if _, err := os.Stat(a.configPath); err == nil && !cmd.Bool(forceFlagName) {
		return fmt.Errorf("config file %s already exists, use --%s to overwrite", a.configPath, forceFlagName)
	}

	if err := config.Save(a.configPath, config.Default()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	slog.Debug("config written", "path", a.configPath)
	_, err := fmt.Fprintln(a.out, a.configPath)
	return err
}
