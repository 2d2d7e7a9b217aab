package cli

import (
	"context"

	"github.com/mchmarny/mch/pkg/config"
	urfave "github.com/urfave/cli/v3"
)

func (a *app) rolesCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "roles",
		Usage:     "List roles",
		UsageText: config.AppName + " roles",
		Action:    a.withConfig(a.cmdRoles),
	}
}

func (a *app) cmdRoles(_ context.Context, cmd *urfave.Command) error {
	if cmd.Args().Present() {
		return usageError(cmd, "roles takes no arguments")
	}

	tbl, err := a.table()
	if err != nil {
		return err
	}

	if !a.textOutput() {
		return a.encode(tbl.Roles())
	}
	return renderRoles(a.out, tbl.Roles())
}
