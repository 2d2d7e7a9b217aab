package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mchmarny/mch/pkg/advisor"
	"github.com/mchmarny/mch/pkg/config"
	urfave "github.com/urfave/cli/v3"
)

func (a *app) recCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "rec",
		Usage:     "Recommend a job based on skill points",
		ArgsUsage: "<skill:value> [<skill:value> ...]",
		UsageText: fmt.Sprintf(`%[1]s rec strength:5 stamina:3     # rank roles for two skills
   %[1]s --format json rec focus:4 agility:2   # machine readable ranking`, config.AppName),
		Action: a.withConfig(a.cmdRecommend),
	}
}

func (a *app) rrecCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "rrec",
		Usage:     "List-style version of the rec command, where you fill in one field at a time",
		UsageText: config.AppName + " rrec",
		Action:    a.withConfig(a.cmdRapidRecommend),
	}
}

func (a *app) cmdRecommend(_ context.Context, cmd *urfave.Command) error {
	if !cmd.Args().Present() {
		return usageError(cmd, "at least one skill:value argument required")
	}

	skills, err := advisor.ParseSkills(cmd.Args().Slice())
	if err != nil {
		return usageError(cmd, err.Error())
	}

	return a.recommend(skills)
}

func (a *app) cmdRapidRecommend(_ context.Context, cmd *urfave.Command) error {
	if cmd.Args().Present() {
		return usageError(cmd, "rrec takes no arguments")
	}

	// keep stdout clean for machine readable output
	var prompts io.Writer = a.out
	if !a.textOutput() {
		prompts = a.errOut
	}

	fmt.Fprintln(prompts, givenHeader)
	skills, err := advisor.Prompt(a.in, prompts)
	if err != nil {
		return fmt.Errorf("reading skill points: %w", err)
	}
	fmt.Fprintln(prompts)

	return a.recommend(skills)
}

// recommend is shared by the argument and prompt driven commands.
func (a *app) recommend(skills []advisor.SkillInput) error {
	tbl, err := a.table()
	if err != nil {
		return err
	}

	slog.Debug("recommending", "skills", len(skills), "roles", tbl.Len())
	rec := tbl.Recommend(skills)

	if !a.textOutput() {
		return a.encode(rec)
	}
	return renderRecommendation(a.out, rec)
}
