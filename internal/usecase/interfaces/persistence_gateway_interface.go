package interfaces

import (
	"context"
	"errors"

	"quotation_desk/internal/domain/entities"
)

// ErrPrimaryUnavailable is returned by primary-only operations when no
// relational store is configured.
var ErrPrimaryUnavailable = errors.New("primary store unavailable")

// Source names the backend a read was served from.
type Source string

const (
	SourcePrimary  Source = "primary"
	SourceFlatFile Source = "flat_file"
	SourceEmpty    Source = "empty"
)

// IPersistenceGateway hides the primary store and flat file behind one API.
//
// Reads try the primary store, fall back to the flat file and end with an
// empty table; they never fail. Writes treat the flat file as authoritative:
// its error is returned, while primary store failures are only logged.
type IPersistenceGateway interface {
	ReadRecords(ctx context.Context) ([]entities.Record, Source)
	ReadCustomers(ctx context.Context) ([]entities.Customer, Source)
	ReadCatalog(ctx context.Context) ([]entities.CatalogItem, Source)

	// ReadCustomersFlat reads the customer table from the flat file only. A
	// missing file is an empty table; any other read failure is returned.
	ReadCustomersFlat(ctx context.Context) ([]entities.Customer, error)

	WriteRecord(ctx context.Context, r entities.Record) error
	WriteCustomers(ctx context.Context, customers []entities.Customer) error

	// UpsertCustomerPrimary matches by exact name or phone in the primary
	// store and updates phone and address, or inserts a new row.
	UpsertCustomerPrimary(ctx context.Context, name, phone, location string) error
}
