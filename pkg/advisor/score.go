package advisor

import (
	"cmp"
	"log/slog"
	"slices"
)

// Score is the ranking of a single role against the given skills.
type Score struct {
	Role           string `json:"role" yaml:"role"`
	Score          int    `json:"score" yaml:"score"`
	PrimarySkill   string `json:"primary_skill" yaml:"primary_skill"`
	PrimaryValue   int    `json:"primary_value" yaml:"primary_value"`
	SecondarySkill string `json:"secondary_skill" yaml:"secondary_skill"`
	SecondaryValue int    `json:"secondary_value" yaml:"secondary_value"`
}

// Recommendation holds the given skills, highest first, and the qualifying roles.
type Recommendation struct {
	Given  []SkillInput `json:"given" yaml:"given"`
	Scores []Score      `json:"scores" yaml:"scores"`
}

// Recommend ranks every role by the sum of the supplied values of its skills.
// Repeated skills all count toward the sum, while the reported per-skill
// values use the last occurrence. Roles are dropped when the sum is zero or
// when either of their skills has no non-zero value.
func (t *Table) Recommend(skills []SkillInput) *Recommendation {
	values := make(map[string]int, len(skills))
	for _, s := range skills {
		values[s.Skill] = s.Value
	}

	given := slices.Clone(skills)
	if given == nil {
		given = []SkillInput{}
	}
	slices.SortStableFunc(given, func(a, b SkillInput) int {
		return cmp.Compare(b.Value, a.Value)
	})

	ranked := make([]Score, 0, len(t.order))
	for _, name := range t.order {
		role := t.roles[name]
		s := Score{
			Role:           role.Name,
			PrimarySkill:   role.Primary.Skill,
			PrimaryValue:   values[role.Primary.Skill],
			SecondarySkill: role.Secondary.Skill,
			SecondaryValue: values[role.Secondary.Skill],
		}
		for _, in := range skills {
			if role.Requires(in.Skill) {
				s.Score += in.Value
			}
		}
		ranked = append(ranked, s)
	}

	slices.SortStableFunc(ranked, func(a, b Score) int {
		return cmp.Compare(b.Score, a.Score)
	})

	list := make([]Score, 0, len(ranked))
	for _, s := range ranked {
		if s.Score == 0 || s.PrimaryValue == 0 || s.SecondaryValue == 0 {
			continue
		}
		list = append(list, s)
	}

	slog.Debug("roles scored", "skills", len(skills), "roles", len(ranked), "qualified", len(list))

	return &Recommendation{
		Given:  given,
		Scores: list,
	}
}
