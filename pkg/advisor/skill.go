package advisor

import (
	"fmt"
	"strconv"
	"strings"
)

const skillSeparator = ":"

// KnownSkills lists every skill a colonist can have, in prompt order.
var KnownSkills = []string{
	"athletics",
	"dexterity",
	"strength",
	"agility",
	"stamina",
	"mana",
	"adaptability",
	"focus",
	"creativity",
	"knowledge",
	"intelligence",
}

// SkillInput is a skill name with the points assigned to it.
type SkillInput struct {
	Skill string `json:"skill" yaml:"skill"`
	Value int    `json:"value" yaml:"value"`
}

// ParseSkill parses a "name:value" token.
func ParseSkill(token string) (SkillInput, error) {
	name, val, ok := strings.Cut(token, skillSeparator)
	if !ok {
		return SkillInput{}, fmt.Errorf("%w: %q, expected skill:value", ErrMalformedSkill, token)
	}

	name = normalize(name)
	if name == "" {
		return SkillInput{}, fmt.Errorf("%w: %q has no skill name", ErrMalformedSkill, token)
	}

	v, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return SkillInput{}, fmt.Errorf("%w: %q has non-integer value", ErrMalformedSkill, token)
	}

	return SkillInput{Skill: name, Value: v}, nil
}

// ParseSkills parses every token, keeping input order.
func ParseSkills(tokens []string) ([]SkillInput, error) {
	list := make([]SkillInput, 0, len(tokens))
	for _, t := range tokens {
		s, err := ParseSkill(t)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
