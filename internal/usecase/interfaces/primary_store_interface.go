package interfaces

import "context"

// IPrimaryStore is the relational backend consulted first for reads and
// writes. Placeholders in query are "?" and rows come back keyed by column.
type IPrimaryStore interface {
	Query(ctx context.Context, query string, args ...any) ([]map[string]any, error)
	Execute(ctx context.Context, query string, args ...any) error
}
