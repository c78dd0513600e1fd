package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/pathwise/internal/cache"
	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
)

func TestSkillAdd_Validation(t *testing.T) {
	svc := NewSkillService(&fakeSkillRepo{}, newMemCache())
	ctx := context.Background()

	cases := []struct {
		name        string
		skill       string
		category    string
		proficiency string
	}{
		{"empty name", "", models.CategoryTechnical, models.ProficiencyBeginner},
		{"bad category", "Go", "language", models.ProficiencyBeginner},
		{"bad proficiency", "Go", models.CategoryTechnical, "guru"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(ctx, "u1", tc.skill, tc.category, tc.proficiency)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestSkillAdd_InvalidatesStatsCache(t *testing.T) {
	repo := &fakeSkillRepo{}
	c := newMemCache()
	svc := NewSkillService(repo, c)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, cache.StatsKey("u1"), map[string]int{"x": 1}, 0))

	row, err := svc.Add(ctx, "u1", "  Go  ", models.CategoryTechnical, models.ProficiencyAdvanced)
	require.NoError(t, err)
	assert.Equal(t, "Go", row.Name)
	assert.NotEmpty(t, row.ID)

	_, ok := c.data[cache.StatsKey("u1")]
	assert.False(t, ok)
}

func TestSkillAddBatch_SkipsBlankNames(t *testing.T) {
	repo := &fakeSkillRepo{}
	svc := NewSkillService(repo, newMemCache())

	rows, err := svc.AddBatch(context.Background(), "u1", []ExtractedSkill{
		{Name: "  ", Category: models.CategoryTechnical, Proficiency: models.ProficiencyBeginner},
		{Name: "SQL", Category: models.CategoryTechnical, Proficiency: models.ProficiencyIntermediate},
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "SQL", rows[0].Name)
	assert.Len(t, repo.rows, 1)
}

func TestSkillAddBatch_EmptyInputIsNoop(t *testing.T) {
	repo := &fakeSkillRepo{}
	svc := NewSkillService(repo, newMemCache())

	rows, err := svc.AddBatch(context.Background(), "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, repo.rows)
}

func TestSkillRemove(t *testing.T) {
	repo := &fakeSkillRepo{rows: []models.Skill{
		{ID: "s1", UserID: "u1", Name: "Go"},
		{ID: "s2", UserID: "u2", Name: "Theirs"},
	}}
	svc := NewSkillService(repo, newMemCache())
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "u1", "s1"))
	assert.Len(t, repo.rows, 1)

	// cannot remove another user's skill
	err := svc.Remove(ctx, "u1", "s2")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))

	err = svc.Remove(ctx, "u1", "s1")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
