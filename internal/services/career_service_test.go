package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
)

func newCareerFixture(t *testing.T) (*fakeUserRepo, *fakeSkillRepo, *fakeCareerPathRepo, *fakeRoadmapRepo, *memCache, CareerService) {
	t.Helper()

	users := newFakeUserRepo(&models.User{ID: "u1", Email: "u1@example.com"})
	skills := &fakeSkillRepo{rows: []models.Skill{
		{ID: "s1", UserID: "u1", Name: "React", Category: models.CategoryTechnical, Proficiency: models.ProficiencyIntermediate},
	}}
	paths := &fakeCareerPathRepo{}
	roadmaps := newFakeRoadmapRepo()
	c := newMemCache()

	engine := NewRecommendationService(nil, &fakeGenLogs{}, testLogger())
	svc := NewCareerService(users, skills, paths, roadmaps, engine, c)
	return users, skills, paths, roadmaps, c, svc
}

func TestCareerGenerate_RequiresSkills(t *testing.T) {
	_, skills, _, _, _, svc := newCareerFixture(t)
	skills.rows = nil

	_, err := svc.Generate(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestCareerGenerate_StoresSortedRecommendations(t *testing.T) {
	_, skills, paths, _, _, svc := newCareerFixture(t)
	// both keyword families match, so the fallback yields two entries
	skills.rows = append(skills.rows, models.Skill{ID: "s2", UserID: "u1", Name: "Python"})

	rows, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].MatchPercentage, rows[i].MatchPercentage)
	}
	for _, r := range rows {
		assert.Equal(t, "u1", r.UserID)
		assert.NotEmpty(t, r.ID)
		assert.False(t, r.IsSelected)
	}
	assert.Len(t, paths.rows, 2)
}

func TestCareerGenerate_ReplacesPreviousBatch(t *testing.T) {
	_, _, paths, _, _, svc := newCareerFixture(t)
	paths.rows = []models.CareerPath{
		{ID: "old", UserID: "u1", Title: "Old Path", IsSelected: true},
		{ID: "other", UserID: "u2", Title: "Someone Else"},
	}

	rows, err := svc.Generate(context.Background(), "u1")
	require.NoError(t, err)

	for _, p := range paths.rows {
		if p.UserID == "u1" {
			assert.NotEqual(t, "old", p.ID)
			assert.False(t, p.IsSelected)
		}
	}
	// another user's rows are untouched
	other, err := paths.GetByID(context.Background(), "u2", "other")
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", other.Title)
	assert.NotEmpty(t, rows)
}

func TestCareerGenerate_StorageFailureSurfaces(t *testing.T) {
	_, _, paths, _, _, svc := newCareerFixture(t)
	paths.replaceErr = errors.New("db down")

	_, err := svc.Generate(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
}

func TestCareerSelect_MaterializesRoadmap(t *testing.T) {
	_, _, paths, roadmaps, _, svc := newCareerFixture(t)
	paths.rows = []models.CareerPath{
		{ID: "cp1", UserID: "u1", Title: "Full-Stack Developer", RequiredSkills: []string{"a", "b", "c"}},
		{ID: "cp2", UserID: "u1", Title: "Data Analyst"},
	}

	roadmap, steps, err := svc.Select(context.Background(), "u1", "cp1")
	require.NoError(t, err)

	assert.Equal(t, 1, paths.selectedCount("u1"))
	sel, err := paths.SelectedByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "cp1", sel.ID)

	require.NotNil(t, roadmap)
	require.NotNil(t, roadmap.CareerPathID)
	assert.Equal(t, "cp1", *roadmap.CareerPathID)
	assert.Equal(t, "Full-Stack Developer Roadmap", roadmap.Title)

	require.Len(t, steps, 9)
	for i, st := range steps {
		assert.Equal(t, i, st.OrderIndex)
		assert.Equal(t, roadmap.ID, st.RoadmapID)
		assert.False(t, st.IsCompleted)
	}

	stored, storedSteps, err := roadmaps.CurrentByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, roadmap.ID, stored.ID)
	assert.Len(t, storedSteps, 9)
}

func TestCareerSelect_MovesSelection(t *testing.T) {
	_, _, paths, _, _, svc := newCareerFixture(t)
	paths.rows = []models.CareerPath{
		{ID: "cp1", UserID: "u1", Title: "Full-Stack Developer"},
		{ID: "cp2", UserID: "u1", Title: "Data Analyst"},
	}

	_, _, err := svc.Select(context.Background(), "u1", "cp1")
	require.NoError(t, err)
	_, _, err = svc.Select(context.Background(), "u1", "cp2")
	require.NoError(t, err)

	assert.Equal(t, 1, paths.selectedCount("u1"))
	sel, err := paths.SelectedByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "cp2", sel.ID)
}

func TestCareerSelect_UnknownPath(t *testing.T) {
	_, _, _, _, _, svc := newCareerFixture(t)

	_, _, err := svc.Select(context.Background(), "u1", "nope")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestCareerSelect_OtherUsersPathIsNotFound(t *testing.T) {
	_, _, paths, _, _, svc := newCareerFixture(t)
	paths.rows = []models.CareerPath{{ID: "cp1", UserID: "u2", Title: "Theirs"}}

	_, _, err := svc.Select(context.Background(), "u1", "cp1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestCareerSelect_RoadmapStorageFailureSurfaces(t *testing.T) {
	_, _, paths, roadmaps, _, svc := newCareerFixture(t)
	paths.rows = []models.CareerPath{{ID: "cp1", UserID: "u1", Title: "Full-Stack Developer"}}
	roadmaps.replaceErr = errors.New("db down")

	_, _, err := svc.Select(context.Background(), "u1", "cp1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInternal))
}

func TestCurrentRoadmap_NoneYet(t *testing.T) {
	_, _, _, _, _, svc := newCareerFixture(t)

	_, _, err := svc.CurrentRoadmap(context.Background(), "u1")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
