package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleNames(scores []Score) []string {
	list := make([]string, len(scores))
	for i, s := range scores {
		list[i] = s.Role
	}
	return list
}

func TestRecommend_BothSkills(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"strength", 5}, {"stamina", 3}})

	require.Len(t, rec.Scores, 1)
	assert.Equal(t, Score{
		Role:           "builder",
		Score:          8,
		PrimarySkill:   "strength",
		PrimaryValue:   5,
		SecondarySkill: "stamina",
		SecondaryValue: 3,
	}, rec.Scores[0])
}

func TestRecommend_MissingSecondary(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"strength", 5}})
	assert.Empty(t, rec.Scores)
}

func TestRecommend_ZeroValueDisqualifies(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"strength", 5}, {"stamina", 0}, {"athletics", 2}})
	assert.Equal(t, []string{"miner"}, roleNames(rec.Scores))
	assert.Equal(t, 7, rec.Scores[0].Score)
}

func TestRecommend_ZeroWeightExcluded(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"strength", 2}, {"stamina", -2}})
	for _, s := range rec.Scores {
		assert.NotZero(t, s.Score)
	}
	assert.Empty(t, rec.Scores)
}

func TestRecommend_NegativeValues(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"strength", -3}, {"stamina", 1}})
	require.Len(t, rec.Scores, 1)
	assert.Equal(t, "builder", rec.Scores[0].Role)
	assert.Equal(t, -2, rec.Scores[0].Score)
}

func TestRecommend_OrderAndTies(t *testing.T) {
	tbl := loadTestTable(t)

	rec := tbl.Recommend([]SkillInput{{"strength", 1}, {"stamina", 1}, {"athletics", 1}})
	assert.Equal(t, []string{"builder", "farmer", "miner"}, roleNames(rec.Scores))

	rec = tbl.Recommend([]SkillInput{{"strength", 1}, {"stamina", 2}, {"athletics", 9}})
	assert.Equal(t, []string{"farmer", "miner", "builder"}, roleNames(rec.Scores))
	assert.Equal(t, []int{11, 10, 3}, []int{rec.Scores[0].Score, rec.Scores[1].Score, rec.Scores[2].Score})
}

func TestRecommend_DuplicateSkills(t *testing.T) {
	tbl := loadTestTable(t)
	in := []SkillInput{{"strength", 1}, {"stamina", 3}, {"strength", 5}}
	rec := tbl.Recommend(in)

	require.Len(t, rec.Scores, 1)
	assert.Equal(t, 9, rec.Scores[0].Score)
	assert.Equal(t, 5, rec.Scores[0].PrimaryValue)
	assert.Equal(t, 3, rec.Scores[0].SecondaryValue)

	assert.Equal(t, []SkillInput{{"strength", 5}, {"stamina", 3}, {"strength", 1}}, rec.Given)
}

func TestRecommend_DuplicateLastZeroWins(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"strength", 4}, {"stamina", 3}, {"stamina", 0}})
	assert.Empty(t, rec.Scores)
}

func TestRecommend_GivenSortedStable(t *testing.T) {
	tbl := loadTestTable(t)
	in := []SkillInput{{"focus", 2}, {"mana", 2}, {"agility", 3}, {"strength", -1}}
	rec := tbl.Recommend(in)

	assert.Equal(t, []SkillInput{{"agility", 3}, {"focus", 2}, {"mana", 2}, {"strength", -1}}, rec.Given)
	assert.Equal(t, SkillInput{"focus", 2}, in[0], "input must not be reordered")
}

func TestRecommend_UnknownSkillsIgnored(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"wizardry", 10}, {"strength", 2}, {"stamina", 2}})
	require.Len(t, rec.Scores, 1)
	assert.Equal(t, 4, rec.Scores[0].Score)
}

func TestRecommend_DescriptionDoesNotMatch(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend([]SkillInput{{"mines faster", 10}, {"strength", 1}, {"athletics", 1}})
	require.Len(t, rec.Scores, 1)
	assert.Equal(t, "miner", rec.Scores[0].Role)
	assert.Equal(t, 2, rec.Scores[0].Score)
}

func TestRecommend_Empty(t *testing.T) {
	tbl := loadTestTable(t)
	rec := tbl.Recommend(nil)
	assert.NotNil(t, rec.Given)
	assert.Empty(t, rec.Given)
	assert.Empty(t, rec.Scores)
}

func TestRecommend_Monotonic(t *testing.T) {
	tbl := loadTestTable(t)
	prev := 0
	for v := 1; v <= 10; v++ {
		rec := tbl.Recommend([]SkillInput{{"strength", v}, {"stamina", 1}})
		require.Len(t, rec.Scores, 1)
		assert.GreaterOrEqual(t, rec.Scores[0].Score, prev)
		prev = rec.Scores[0].Score
	}
}
