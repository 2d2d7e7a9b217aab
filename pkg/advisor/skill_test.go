package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkill(t *testing.T) {
	tests := []struct {
		in   string
		want SkillInput
	}{
		{"strength:5", SkillInput{"strength", 5}},
		{"Strength:5", SkillInput{"strength", 5}},
		{"STAMINA: 7", SkillInput{"stamina", 7}},
		{"mana:-3", SkillInput{"mana", -3}},
		{"focus:0", SkillInput{"focus", 0}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSkill(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSkill_Malformed(t *testing.T) {
	tests := []string{
		"",
		"strength",
		":5",
		"strength:",
		"strength:five",
		"strength:1.5",
		"strength:1:2",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSkill(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedSkill)
		})
	}
}

func TestParseSkills(t *testing.T) {
	list, err := ParseSkills([]string{"strength:5", "stamina:3", "strength:1"})
	require.NoError(t, err)
	assert.Equal(t, []SkillInput{{"strength", 5}, {"stamina", 3}, {"strength", 1}}, list)

	_, err = ParseSkills([]string{"strength:5", "bad"})
	assert.ErrorIs(t, err, ErrMalformedSkill)
}

func TestKnownSkills(t *testing.T) {
	assert.Len(t, KnownSkills, 11)
	assert.Equal(t, "athletics", KnownSkills[0])
	assert.Equal(t, "intelligence", KnownSkills[len(KnownSkills)-1])
}
