package repository

import (
	"context"
	"errors"
	"sync"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase/interfaces"
)

var ErrDraftExists = errors.New("draft already exists")

// DraftMemoryRepository holds drafts for the lifetime of the process.
// Drafts are copied on the way in and out so callers never share state.
type DraftMemoryRepository struct {
	mu     sync.RWMutex
	drafts map[string]*entities.DraftDocument
}

var _ interfaces.IDraftRepository = (*DraftMemoryRepository)(nil)

func NewDraftMemoryRepository() *DraftMemoryRepository {
	return &DraftMemoryRepository{drafts: map[string]*entities.DraftDocument{}}
}

func (r *DraftMemoryRepository) Create(_ context.Context, d *entities.DraftDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.drafts[d.ID]; ok {
		return ErrDraftExists
	}
	r.drafts[d.ID] = cloneDraft(d)
	return nil
}

func (r *DraftMemoryRepository) Get(_ context.Context, id string) (*entities.DraftDocument, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.drafts[id]
	if !ok {
		return nil, nil
	}
	return cloneDraft(d), nil
}

func (r *DraftMemoryRepository) Save(_ context.Context, d *entities.DraftDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[d.ID] = cloneDraft(d)
	return nil
}

func (r *DraftMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}

func cloneDraft(d *entities.DraftDocument) *entities.DraftDocument {
	c := *d
	c.Items = append([]entities.LineItem{}, d.Items...)
	c.PaymentTerms = append([]entities.PaymentTerm(nil), d.PaymentTerms...)
	if d.FinalizedAt != nil {
		ts := *d.FinalizedAt
		c.FinalizedAt = &ts
	}
	return &c
}
