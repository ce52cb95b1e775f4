package repository

import (
	"context"

	"gorm.io/gorm"

	"quotation_desk/internal/usecase/interfaces"
)

// PrimaryGormStore runs raw SQL against the relational store. gorm rewrites
// "?" placeholders for the active dialect.
type PrimaryGormStore struct {
	db *gorm.DB
}

var _ interfaces.IPrimaryStore = (*PrimaryGormStore)(nil)

func NewPrimaryGormStore(db *gorm.DB) *PrimaryGormStore {
	return &PrimaryGormStore{db: db}
}

func (s *PrimaryGormStore) Query(ctx context.Context, query string, args ...any) ([]map[string]any, error) {
	var rows []map[string]any
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *PrimaryGormStore) Execute(ctx context.Context, query string, args ...any) error {
	return s.db.WithContext(ctx).Exec(query, args...).Error
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		base_id TEXT, date TEXT, type TEXT, number TEXT, amount NUMERIC,
		client_name TEXT, phone TEXT, location TEXT, note TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT, phone TEXT, email TEXT, address TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		device TEXT, description TEXT, unit_price NUMERIC, warranty INTEGER,
		image_base64 TEXT, image_path TEXT
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS records (
		id BIGSERIAL PRIMARY KEY,
		base_id TEXT, date DATE, type TEXT, number TEXT, amount NUMERIC(14,2),
		client_name TEXT, phone TEXT, location TEXT, note TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT, phone TEXT, email TEXT, address TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		device TEXT, description TEXT, unit_price NUMERIC(14,2), warranty INTEGER,
		image_base64 TEXT, image_path TEXT
	)`,
}

// EnsureSchema creates the records, customers and products tables when
// they are missing.
func (s *PrimaryGormStore) EnsureSchema(ctx context.Context) error {
	ddl := sqliteSchema
	if s.db.Dialector.Name() == "postgres" {
		ddl = postgresSchema
	}
	for _, stmt := range ddl {
		if err := s.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
