package services

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yoockh/pathwise/internal/models"
	"github.com/yoockh/pathwise/internal/utils"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type fakeProvider struct {
	resp       string
	err        error
	lastPrompt string
	calls      int
}

func (p *fakeProvider) Complete(_ context.Context, prompt string) (string, error) {
	p.calls++
	p.lastPrompt = prompt
	return p.resp, p.err
}

func (p *fakeProvider) Close() error { return nil }

type fakeGenLogs struct {
	mu   sync.Mutex
	rows []*models.GenerationLog
}

func (f *fakeGenLogs) Insert(_ context.Context, l *models.GenerationLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, l)
	return nil
}

func (f *fakeGenLogs) last() *models.GenerationLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) == 0 {
		return nil
	}
	return f.rows[len(f.rows)-1]
}

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
	dels int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.dels++
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *models.User) error {
	r.users[u.ID] = u
	return nil
}

type fakeSkillRepo struct {
	rows []models.Skill
}

func (r *fakeSkillRepo) ListByUser(_ context.Context, userID string) ([]models.Skill, error) {
	var out []models.Skill
	for _, s := range r.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	rows, _ := r.ListByUser(ctx, userID)
	return int64(len(rows)), nil
}

func (r *fakeSkillRepo) Insert(_ context.Context, s *models.Skill) error {
	r.rows = append(r.rows, *s)
	return nil
}

func (r *fakeSkillRepo) InsertBatch(_ context.Context, rows []models.Skill) error {
	r.rows = append(r.rows, rows...)
	return nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, userID, id string) error {
	for i, s := range r.rows {
		if s.UserID == userID && s.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type fakeCareerPathRepo struct {
	rows       []models.CareerPath
	replaceErr error
	selectErr  error
}

func (r *fakeCareerPathRepo) ListByUser(_ context.Context, userID string) ([]models.CareerPath, error) {
	var out []models.CareerPath
	for _, p := range r.rows {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeCareerPathRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	rows, _ := r.ListByUser(ctx, userID)
	return int64(len(rows)), nil
}

func (r *fakeCareerPathRepo) GetByID(_ context.Context, userID, id string) (*models.CareerPath, error) {
	for i := range r.rows {
		if r.rows[i].UserID == userID && r.rows[i].ID == id {
			p := r.rows[i]
			return &p, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeCareerPathRepo) SelectedByUser(_ context.Context, userID string) (*models.CareerPath, error) {
	for i := range r.rows {
		if r.rows[i].UserID == userID && r.rows[i].IsSelected {
			p := r.rows[i]
			return &p, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (r *fakeCareerPathRepo) Replace(_ context.Context, userID string, rows []models.CareerPath) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	kept := r.rows[:0]
	for _, p := range r.rows {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	r.rows = append(kept, rows...)
	return nil
}

func (r *fakeCareerPathRepo) Select(_ context.Context, userID, id string) error {
	if r.selectErr != nil {
		return r.selectErr
	}
	found := false
	for i := range r.rows {
		if r.rows[i].UserID != userID {
			continue
		}
		r.rows[i].IsSelected = r.rows[i].ID == id
		if r.rows[i].IsSelected {
			found = true
		}
	}
	if !found {
		return utils.ErrNotFound
	}
	return nil
}

func (r *fakeCareerPathRepo) selectedCount(userID string) int {
	n := 0
	for _, p := range r.rows {
		if p.UserID == userID && p.IsSelected {
			n++
		}
	}
	return n
}

type fakeRoadmapRepo struct {
	roadmaps   map[string]*models.Roadmap
	steps      map[string][]models.RoadmapStep
	replaceErr error
}

func newFakeRoadmapRepo() *fakeRoadmapRepo {
	return &fakeRoadmapRepo{
		roadmaps: map[string]*models.Roadmap{},
		steps:    map[string][]models.RoadmapStep{},
	}
}

func (r *fakeRoadmapRepo) Replace(_ context.Context, userID string, roadmap *models.Roadmap, steps []models.RoadmapStep) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.roadmaps[userID] = roadmap
	r.steps[userID] = steps
	return nil
}

func (r *fakeRoadmapRepo) CurrentByUser(_ context.Context, userID string) (*models.Roadmap, []models.RoadmapStep, error) {
	rm, ok := r.roadmaps[userID]
	if !ok {
		return nil, nil, utils.ErrNotFound
	}
	return rm, r.steps[userID], nil
}

func (r *fakeRoadmapRepo) SetStepCompleted(_ context.Context, userID, stepID string, done bool) error {
	steps := r.steps[userID]
	for i := range steps {
		if steps[i].ID == stepID {
			steps[i].IsCompleted = done
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *fakeRoadmapRepo) CountSteps(_ context.Context, userID string) (int64, int64, error) {
	var total, completed int64
	for _, st := range r.steps[userID] {
		total++
		if st.IsCompleted {
			completed++
		}
	}
	return total, completed, nil
}

type fakeSavedRepo struct {
	courses  []models.SavedCourse
	projects []models.SavedProject
}

func (r *fakeSavedRepo) SaveCourse(_ context.Context, row *models.SavedCourse) error {
	for _, c := range r.courses {
		if c.UserID == row.UserID && c.CourseID == row.CourseID {
			return nil
		}
	}
	r.courses = append(r.courses, *row)
	return nil
}

func (r *fakeSavedRepo) UnsaveCourse(_ context.Context, userID, courseID string) error {
	for i, c := range r.courses {
		if c.UserID == userID && c.CourseID == courseID {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *fakeSavedRepo) ListSavedCourses(_ context.Context, userID string) ([]models.SavedCourse, error) {
	var out []models.SavedCourse
	for _, c := range r.courses {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeSavedRepo) CountSavedCourses(ctx context.Context, userID string) (int64, error) {
	rows, _ := r.ListSavedCourses(ctx, userID)
	return int64(len(rows)), nil
}

func (r *fakeSavedRepo) SaveProject(_ context.Context, row *models.SavedProject) error {
	for _, p := range r.projects {
		if p.UserID == row.UserID && p.ProjectID == row.ProjectID {
			return nil
		}
	}
	r.projects = append(r.projects, *row)
	return nil
}

func (r *fakeSavedRepo) ListSavedProjects(_ context.Context, userID string) ([]models.SavedProject, error) {
	var out []models.SavedProject
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeSavedRepo) SetProjectCompleted(_ context.Context, userID, projectID string, done bool) error {
	for i := range r.projects {
		if r.projects[i].UserID == userID && r.projects[i].ProjectID == projectID {
			r.projects[i].IsCompleted = done
			return nil
		}
	}
	return utils.ErrNotFound
}

func (r *fakeSavedRepo) CountSavedProjects(_ context.Context, userID string) (int64, int64, error) {
	var total, completed int64
	for _, p := range r.projects {
		if p.UserID == userID {
			total++
			if p.IsCompleted {
				completed++
			}
		}
	}
	return total, completed, nil
}
