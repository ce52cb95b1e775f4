package interfaces

import (
	"context"

	"quotation_desk/internal/domain/entities"
)

// IDraftRepository keeps in-progress documents, one per editing session.
// Get returns a nil draft when the id is unknown.
type IDraftRepository interface {
	Create(ctx context.Context, d *entities.DraftDocument) error
	Get(ctx context.Context, id string) (*entities.DraftDocument, error)
	Save(ctx context.Context, d *entities.DraftDocument) error
	Delete(ctx context.Context, id string) error
}
