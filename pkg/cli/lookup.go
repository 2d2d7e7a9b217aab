package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mchmarny/mch/pkg/advisor"
	"github.com/mchmarny/mch/pkg/config"
	urfave "github.com/urfave/cli/v3"
)

func (a *app) lookupCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "lookup",
		Usage:     "Lookup necessary skills by role",
		ArgsUsage: "<worker>",
		UsageText: config.AppName + " lookup builder",
		Action:    a.withConfig(a.cmdLookup),
	}
}

func (a *app) cmdLookup(_ context.Context, cmd *urfave.Command) error {
	if cmd.NArg() != 1 {
		return usageError(cmd, "exactly one worker role required")
	}

	tbl, err := a.table()
	if err != nil {
		return err
	}

	role, err := tbl.Lookup(cmd.Args().First())
	if err != nil {
		if errors.Is(err, advisor.ErrRoleNotFound) {
			return fmt.Errorf("%w (run \"%s roles\" to list roles)", err, config.AppName)
		}
		return err
	}

	if !a.textOutput() {
		return a.encode(role)
	}
	return renderRole(a.out, role)
}
