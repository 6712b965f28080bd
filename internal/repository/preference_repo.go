package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go-wholesale-console/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPreferenceNotFound is returned when nothing was stored for an email yet.
var ErrPreferenceNotFound = errors.New("preference not found")

type PreferenceRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Preference, error)
	Upsert(ctx context.Context, pref *model.Preference) error
	DeleteByEmail(ctx context.Context, email string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type preferenceRepo struct {
	db *gorm.DB
}

func NewPreferenceRepo(db *gorm.DB) PreferenceRepository {
	return &preferenceRepo{db: db}
}

func (r *preferenceRepo) FindByEmail(ctx context.Context, email string) (*model.Preference, error) {
	var pref model.Preference
	err := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPreferenceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepo) Upsert(ctx context.Context, pref *model.Preference) error {
	pref.Email = normalizeEmail(pref.Email)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"language", "theme", "updated_at", "updated_by"}),
	}).Create(pref).Error
}

func (r *preferenceRepo) DeleteByEmail(ctx context.Context, email string) error {
	res := r.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Delete(&model.Preference{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPreferenceNotFound
	}
	return nil
}

func (r *preferenceRepo) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Preference{})
	return res.RowsAffected, res.Error
}

// memoryPreferenceRepo keeps preferences for the lifetime of the process. Used when no
// database is configured and in tests.
type memoryPreferenceRepo struct {
	mu    sync.RWMutex
	prefs map[string]model.Preference
}

func NewMemoryPreferenceRepo() PreferenceRepository {
	return &memoryPreferenceRepo{prefs: make(map[string]model.Preference)}
}

func (r *memoryPreferenceRepo) FindByEmail(_ context.Context, email string) (*model.Preference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pref, ok := r.prefs[normalizeEmail(email)]
	if !ok {
		return nil, ErrPreferenceNotFound
	}
	return &pref, nil
}

func (r *memoryPreferenceRepo) Upsert(_ context.Context, pref *model.Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pref.Email = normalizeEmail(pref.Email)
	now := time.Now()
	if existing, ok := r.prefs[pref.Email]; ok {
		pref.ID = existing.ID
		pref.CreatedAt = existing.CreatedAt
	} else {
		if pref.ID == uuid.Nil {
			pref.ID = uuid.New()
		}
		pref.CreatedAt = now
	}
	pref.UpdatedAt = now
	r.prefs[pref.Email] = *pref
	return nil
}

func (r *memoryPreferenceRepo) DeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalizeEmail(email)
	if _, ok := r.prefs[key]; !ok {
		return ErrPreferenceNotFound
	}
	delete(r.prefs, key)
	return nil
}

func (r *memoryPreferenceRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := int64(len(r.prefs))
	r.prefs = make(map[string]model.Preference)
	return n, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
