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

func newProgressFixture(t *testing.T) (*fakeSkillRepo, *fakeCareerPathRepo, *fakeRoadmapRepo, *fakeSavedRepo, *memCache, ProgressService) {
	t.Helper()

	skills := &fakeSkillRepo{}
	paths := &fakeCareerPathRepo{}
	roadmaps := newFakeRoadmapRepo()
	saved := &fakeSavedRepo{}
	c := newMemCache()

	svc := NewProgressService(skills, paths, roadmaps, saved, c)
	return skills, paths, roadmaps, saved, c, svc
}

func TestDashboardStats_EmptyAccount(t *testing.T) {
	_, _, _, _, _, svc := newProgressFixture(t)

	stats, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalSkills)
	assert.Zero(t, stats.TotalCareerPaths)
	assert.Zero(t, stats.TotalSteps)
	assert.Zero(t, stats.CompletedSteps)
	assert.Zero(t, stats.SavedCourses)
	assert.Zero(t, stats.SavedProjects)
	assert.Empty(t, stats.SelectedCareerPath)
}

func TestDashboardStats_Counts(t *testing.T) {
	skills, paths, roadmaps, saved, _, svc := newProgressFixture(t)

	skills.rows = []models.Skill{
		{ID: "s1", UserID: "u1", Name: "Go"},
		{ID: "s2", UserID: "u1", Name: "SQL"},
		{ID: "s3", UserID: "u2", Name: "Other"},
	}
	paths.rows = []models.CareerPath{
		{ID: "cp1", UserID: "u1", Title: "Backend Developer", IsSelected: true},
		{ID: "cp2", UserID: "u1", Title: "Data Analyst"},
	}
	roadmaps.roadmaps["u1"] = &models.Roadmap{ID: "r1", UserID: "u1"}
	roadmaps.steps["u1"] = []models.RoadmapStep{
		{ID: "st1", RoadmapID: "r1", IsCompleted: true},
		{ID: "st2", RoadmapID: "r1"},
		{ID: "st3", RoadmapID: "r1"},
	}
	saved.courses = []models.SavedCourse{{ID: "sc1", UserID: "u1", CourseID: "c1"}}
	saved.projects = []models.SavedProject{
		{ID: "sp1", UserID: "u1", ProjectID: "p1", IsCompleted: true},
		{ID: "sp2", UserID: "u1", ProjectID: "p2"},
	}

	stats, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalSkills)
	assert.EqualValues(t, 2, stats.TotalCareerPaths)
	assert.Equal(t, "Backend Developer", stats.SelectedCareerPath)
	assert.EqualValues(t, 3, stats.TotalSteps)
	assert.EqualValues(t, 1, stats.CompletedSteps)
	assert.EqualValues(t, 1, stats.SavedCourses)
	assert.EqualValues(t, 2, stats.SavedProjects)
	assert.EqualValues(t, 1, stats.CompletedProjects)
}

func TestDashboardStats_ServedFromCache(t *testing.T) {
	skills, _, _, _, c, svc := newProgressFixture(t)
	skills.rows = []models.Skill{{ID: "s1", UserID: "u1", Name: "Go"}}

	first, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.TotalSkills)
	assert.Equal(t, 1, c.sets)

	// underlying data changes, but the cached copy is still served
	skills.rows = append(skills.rows, models.Skill{ID: "s2", UserID: "u1", Name: "SQL"})

	second, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, second.TotalSkills)
	assert.Equal(t, 1, c.sets)
}

func TestToggleStep(t *testing.T) {
	_, _, roadmaps, _, c, svc := newProgressFixture(t)
	roadmaps.roadmaps["u1"] = &models.Roadmap{ID: "r1", UserID: "u1"}
	roadmaps.steps["u1"] = []models.RoadmapStep{{ID: "st1", RoadmapID: "r1"}}

	// warm the cache, then verify the toggle drops it
	_, err := svc.DashboardStats(context.Background(), "u1")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleStep(context.Background(), "u1", "st1", true))
	assert.True(t, roadmaps.steps["u1"][0].IsCompleted)
	_, ok := c.data[cache.StatsKey("u1")]
	assert.False(t, ok)

	require.NoError(t, svc.ToggleStep(context.Background(), "u1", "st1", false))
	assert.False(t, roadmaps.steps["u1"][0].IsCompleted)
}

func TestToggleStep_UnknownStep(t *testing.T) {
	_, _, _, _, _, svc := newProgressFixture(t)

	err := svc.ToggleStep(context.Background(), "u1", "missing", true)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestToggleStep_OtherUsersStep(t *testing.T) {
	_, _, roadmaps, _, _, svc := newProgressFixture(t)
	roadmaps.roadmaps["u2"] = &models.Roadmap{ID: "r2", UserID: "u2"}
	roadmaps.steps["u2"] = []models.RoadmapStep{{ID: "st1", RoadmapID: "r2"}}

	err := svc.ToggleStep(context.Background(), "u1", "st1", true)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestToggleProject(t *testing.T) {
	_, _, _, saved, _, svc := newProgressFixture(t)
	saved.projects = []models.SavedProject{{ID: "sp1", UserID: "u1", ProjectID: "p1"}}

	require.NoError(t, svc.ToggleProject(context.Background(), "u1", "p1", true))
	assert.True(t, saved.projects[0].IsCompleted)

	err := svc.ToggleProject(context.Background(), "u1", "unknown", true)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
