package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/gojobs/board/internal/apperrors"
	"github.com/gojobs/board/internal/models"
	"github.com/gojobs/board/internal/repositories"
)

// fakeVerifier accepts or rejects every token.
type fakeVerifier struct {
	accept bool
	calls  int
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) bool {
	f.calls++
	return f.accept
}

// fakeJobRepo is an in-memory JobRepository mirroring the real filters.
type fakeJobRepo struct {
	jobs   []models.Job
	nextID uint
	err    error
}

func (f *fakeJobRepo) Create(ctx context.Context, job *models.Job) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	job.ID = f.nextID
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	f.jobs = append(f.jobs, *job)
	return nil
}

func (f *fakeJobRepo) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			j := f.jobs[i]
			return &j, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeJobRepo) matchPublic(search string) []models.Job {
	var out []models.Job
	for _, j := range f.jobs {
		if !j.Public {
			continue
		}
		if search != "" {
			s := strings.ToLower(search)
			if !strings.Contains(strings.ToLower(j.Title), s) &&
				!strings.Contains(strings.ToLower(j.Description), s) {
				continue
			}
		}
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out
}

func (f *fakeJobRepo) CountPublic(ctx context.Context, search string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matchPublic(search))), nil
}

func (f *fakeJobRepo) ListPublic(ctx context.Context, search string, offset, limit int) ([]models.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	matched := f.matchPublic(search)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (f *fakeJobRepo) ListPremium(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	for _, j := range f.jobs {
		if j.Premium {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) CountByDaySince(ctx context.Context, since time.Time) ([]models.DailyJobCount, error) {
	counts := map[time.Time]int64{}
	for _, j := range f.jobs {
		if j.CreatedAt.Before(since) {
			continue
		}
		day := j.CreatedAt.Truncate(24 * time.Hour)
		counts[day]++
	}
	var out []models.DailyJobCount
	for day, total := range counts {
		out = append(out, models.DailyJobCount{Day: day, Total: total})
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Day.After(out[k].Day) })
	return out, nil
}

// fakeApplicationRepo enforces the (user, job) uniqueness the real unique
// index provides.
type fakeApplicationRepo struct {
	apps   map[[2]uint]models.JobApplication
	nextID uint
	err    error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[[2]uint]models.JobApplication{}}
}

func (f *fakeApplicationRepo) CreateIfAbsent(ctx context.Context, app *models.JobApplication) error {
	if f.err != nil {
		return f.err
	}
	key := [2]uint{app.UserID, app.JobID}
	if _, exists := f.apps[key]; exists {
		return nil // conflict, insert ignored
	}
	f.nextID++
	app.ID = f.nextID
	app.CreatedAt = time.Now()
	f.apps[key] = *app
	return nil
}

func (f *fakeApplicationRepo) Find(ctx context.Context, userID, jobID uint) (*models.JobApplication, error) {
	if app, ok := f.apps[[2]uint{userID, jobID}]; ok {
		return &app, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeApplicationRepo) Exists(ctx context.Context, userID, jobID uint) (bool, error) {
	_, ok := f.apps[[2]uint{userID, jobID}]
	return ok, nil
}

// fakeContactRepo records persisted contacts.
type fakeContactRepo struct {
	created []models.Contact
	err     error
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	if f.err != nil {
		return f.err
	}
	contact.ID = uint(len(f.created) + 1)
	f.created = append(f.created, *contact)
	return nil
}

// fakeUserRepo keeps accounts in memory and fails registration atomically.
type fakeUserRepo struct {
	users     map[uint]*models.User
	profiles  *fakeProfileRepo
	nextID    uint
	createErr error
}

func newFakeUserRepo(profiles *fakeProfileRepo) *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*models.User{}, profiles: profiles}
}

func (f *fakeUserRepo) CreateWithProfile(ctx context.Context, user *models.User, profile *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repositories.ErrDuplicateAccount
		}
	}
	f.nextID++
	user.ID = f.nextID
	f.users[user.ID] = user
	profile.UserID = user.ID
	profile.ID = user.ID
	if f.profiles != nil {
		f.profiles.byUserID[user.ID] = profile
	}
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeProfileRepo struct {
	byUserID  map[uint]*models.Profile
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: map[uint]*models.Profile{}}
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	if p, ok := f.byUserID[userID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.byUserID[profile.UserID] = profile
	return nil
}

var errRepoDown = errors.New("repository unavailable")
