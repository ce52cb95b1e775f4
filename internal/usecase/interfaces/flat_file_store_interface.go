package interfaces

import "context"

// IFlatFileStore reads and rewrites whole tables kept as local files.
// Reading a table that does not exist returns an error.
type IFlatFileStore interface {
	ReadTable(ctx context.Context, table string) ([]map[string]any, error)
	WriteTable(ctx context.Context, table string, columns []string, rows []map[string]any) error
}
