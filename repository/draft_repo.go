package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fueldelivery/models"
)

type DraftRepository interface {
	Create(ctx context.Context, draft *models.Draft) error
	// Get returns nil, nil for an unknown or expired draft.
	Get(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	Update(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// MemoryDraftRepo keeps drafts in process memory. Drafts idle for longer
// than MaxAge are dropped.
type MemoryDraftRepo struct {
	MaxAge time.Duration

	mu     sync.Mutex
	drafts map[uuid.UUID]models.Draft
	now    func() time.Time
}

func NewMemoryDraftRepo(maxAge time.Duration) *MemoryDraftRepo {
	return &MemoryDraftRepo{
		MaxAge: maxAge,
		drafts: make(map[uuid.UUID]models.Draft),
		now:    time.Now,
	}
}

func (r *MemoryDraftRepo) Create(_ context.Context, draft *models.Draft) error {
	now := r.now().UTC()
	if draft.ID == uuid.Nil {
		draft.ID = uuid.New()
	}
	draft.CreatedAt = now
	draft.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeLocked(now)
	r.drafts[draft.ID] = *draft
	return nil
}

func (r *MemoryDraftRepo) Get(_ context.Context, id uuid.UUID) (*models.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.drafts[id]
	if !ok || r.expired(d, r.now()) {
		delete(r.drafts, id)
		return nil, nil
	}
	return &d, nil
}

func (r *MemoryDraftRepo) Update(_ context.Context, draft *models.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[draft.ID]; !ok {
		return models.ErrNotFound
	}
	draft.UpdatedAt = r.now().UTC()
	r.drafts[draft.ID] = *draft
	return nil
}

func (r *MemoryDraftRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.drafts[id]
	delete(r.drafts, id)
	return ok, nil
}

func (r *MemoryDraftRepo) expired(d models.Draft, now time.Time) bool {
	return r.MaxAge > 0 && now.Sub(d.UpdatedAt) > r.MaxAge
}

func (r *MemoryDraftRepo) purgeLocked(now time.Time) {
	for id, d := range r.drafts {
		if r.expired(d, now) {
			delete(r.drafts, id)
		}
	}
}
