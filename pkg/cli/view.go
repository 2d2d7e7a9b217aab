package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mchmarny/mch/pkg/advisor"
)

const givenHeader = ">>> Given parameters"

var (
	recHeaders = []string{"Score", "Role", "P. Skill", "V1", "S. Skill", "V2"}

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

func renderRole(w io.Writer, r advisor.Role) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s : %s\n%s : %s\n",
		advisor.Capitalize(r.Name),
		advisor.Capitalize(r.Primary.Skill), r.Primary.Description,
		advisor.Capitalize(r.Secondary.Skill), r.Secondary.Description,
	)
	return err
}

func renderRoles(w io.Writer, roles []string) error {
	list := make([]string, len(roles))
	for i, r := range roles {
		list[i] = advisor.Title(r)
	}
	_, err := fmt.Fprintln(w, strings.Join(list, ", "))
	return err
}

func renderRecommendation(w io.Writer, rec *advisor.Recommendation) error {
	var b strings.Builder

	b.WriteString(givenHeader + "\n")
	for _, s := range rec.Given {
		fmt.Fprintf(&b, "\t%s: %d\n", advisor.Capitalize(s.Skill), s.Value)
	}
	b.WriteString("\n")

	t := table.New().
		Border(lipgloss.ASCIIBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
		Headers(recHeaders...)

	for _, s := range rec.Scores {
		t.Row(
			strconv.Itoa(s.Score),
			advisor.Capitalize(s.Role),
			advisor.Capitalize(s.PrimarySkill),
			strconv.Itoa(s.PrimaryValue),
			advisor.Capitalize(s.SecondarySkill),
			strconv.Itoa(s.SecondaryValue),
		)
	}

	b.WriteString(t.Render())
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
