package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"quotation_desk/internal/adapter/persistence/schema"
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase/interfaces"
)

// Flat file table names.
const (
	TableRecords   = "records"
	TableCustomers = "customers"
	TableProducts  = "products"
)

const (
	selectRecordsSQL   = `SELECT base_id, date, type, number, amount, client_name, phone, location, note FROM records ORDER BY date`
	selectCustomersSQL = `SELECT id, name, phone, email, address FROM customers ORDER BY id`
	selectCatalogSQL   = `SELECT device AS "Device", description AS "Description", unit_price AS "UnitPrice", warranty AS "Warranty", image_base64 AS "ImageBase64", image_path AS "ImagePath" FROM products ORDER BY id`

	deleteRecordSQL = `DELETE FROM records WHERE type = ? AND number = ?`
	insertRecordSQL = `INSERT INTO records(base_id, date, type, number, amount, client_name, phone, location, note) VALUES (?,?,?,?,?,?,?,?,?)`

	findCustomerExactSQL   = `SELECT id FROM customers WHERE name = ? AND phone = ?`
	findCustomerLooseSQL   = `SELECT id FROM customers WHERE name = ? OR phone = ?`
	findCustomerByNameSQL  = `SELECT id FROM customers WHERE name = ?`
	updateCustomerInfoSQL  = `UPDATE customers SET email = ?, address = ? WHERE id = ?`
	updateCustomerPhoneSQL = `UPDATE customers SET phone = ?, address = ? WHERE id = ?`
	insertCustomerSQL      = `INSERT INTO customers(name, phone, email, address) VALUES (?,?,?,?)`
)

// PersistenceGateway reads from the primary store first and falls back to the
// flat files; writes go to both, with the flat file as the source of truth.
type PersistenceGateway struct {
	primary interfaces.IPrimaryStore
	flat    interfaces.IFlatFileStore
	mirror  interfaces.ICloudMirror
	log     *zap.Logger
}

var _ interfaces.IPersistenceGateway = (*PersistenceGateway)(nil)

// NewPersistenceGateway wires the backends. primary and mirror may be nil.
func NewPersistenceGateway(primary interfaces.IPrimaryStore, flat interfaces.IFlatFileStore, mirror interfaces.ICloudMirror, log *zap.Logger) *PersistenceGateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &PersistenceGateway{primary: primary, flat: flat, mirror: mirror, log: log}
}

// readTable walks primary -> flat file -> empty and reports where the rows
// came from.
func (g *PersistenceGateway) readTable(ctx context.Context, table, query string) ([]map[string]any, interfaces.Source) {
	if g.primary != nil {
		rows, err := g.primary.Query(ctx, query)
		switch {
		case err != nil:
			g.log.Warn("[gateway][read] primary store failed, using flat file", zap.String("table", table), zap.Error(err))
		case len(rows) > 0:
			return rows, interfaces.SourcePrimary
		}
	}

	rows, err := g.flat.ReadTable(ctx, table)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			g.log.Warn("[gateway][read] flat file failed", zap.String("table", table), zap.Error(err))
		}
		return nil, interfaces.SourceEmpty
	}
	if len(rows) == 0 {
		return nil, interfaces.SourceEmpty
	}
	return rows, interfaces.SourceFlatFile
}

func (g *PersistenceGateway) ReadRecords(ctx context.Context) ([]entities.Record, interfaces.Source) {
	rows, src := g.readTable(ctx, TableRecords, selectRecordsSQL)
	return schema.RecordsFromRows(rows), src
}

func (g *PersistenceGateway) ReadCustomers(ctx context.Context) ([]entities.Customer, interfaces.Source) {
	rows, src := g.readTable(ctx, TableCustomers, selectCustomersSQL)
	return schema.CustomersFromRows(rows), src
}

// ReadCustomersFlat skips the primary store, whose customer rows lack the
// follow-up columns only the flat file keeps.
func (g *PersistenceGateway) ReadCustomersFlat(ctx context.Context) ([]entities.Customer, error) {
	rows, err := g.flat.ReadTable(ctx, TableCustomers)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read customers file: %w", err)
	}
	return schema.CustomersFromRows(rows), nil
}

func (g *PersistenceGateway) ReadCatalog(ctx context.Context) ([]entities.CatalogItem, interfaces.Source) {
	rows, src := g.readTable(ctx, TableProducts, selectCatalogSQL)
	return schema.CatalogFromRows(rows), src
}

// WriteRecord replaces any record with the same (type, number).
//
// The primary delete and insert are not transactional and their failures are
// only logged. The flat file is rewritten and its error is returned; a records
// file that exists but cannot be read is left untouched.
func (g *PersistenceGateway) WriteRecord(ctx context.Context, r entities.Record) error {
	if g.primary != nil {
		g.writeRecordPrimary(ctx, r)
	}

	existing := []entities.Record{}
	rows, err := g.flat.ReadTable(ctx, TableRecords)
	switch {
	case err == nil:
		existing = schema.RecordsFromRows(rows)
	case !errors.Is(err, fs.ErrNotExist):
		g.log.Error("[gateway][write] unreadable records file, not rewritten", zap.String("number", r.Number), zap.Error(err))
		return fmt.Errorf("read records file: %w", err)
	}

	kept := make([]entities.Record, 0, len(existing)+1)
	for _, e := range existing {
		if e.Key() != r.Key() {
			kept = append(kept, e)
		}
	}
	kept = entities.DedupeRecords(append(kept, r))

	if err := g.flat.WriteTable(ctx, TableRecords, entities.RecordColumns, schema.RecordsToRows(kept)); err != nil {
		return fmt.Errorf("write records file: %w", err)
	}

	if g.mirror != nil && !g.mirror.SaveRecord(ctx, r) {
		g.log.Warn("[gateway][write] cloud mirror did not accept record", zap.String("number", r.Number))
	}
	return nil
}

func (g *PersistenceGateway) writeRecordPrimary(ctx context.Context, r entities.Record) {
	if r.Type != "" && r.Number != "" {
		if err := g.primary.Execute(ctx, deleteRecordSQL, string(r.Type), r.Number); err != nil {
			g.log.Warn("[gateway][write] primary delete failed", zap.String("number", r.Number), zap.Error(err))
		}
	}
	var date any
	if !r.Date.IsZero() {
		date = r.DateString()
	}
	err := g.primary.Execute(ctx, insertRecordSQL,
		r.BaseID, date, string(r.Type), r.Number, r.Amount.StringFixed(2),
		r.ClientName, r.Phone, r.Location, r.Note)
	if err != nil {
		g.log.Warn("[gateway][write] primary insert failed", zap.String("number", r.Number), zap.Error(err))
	}
}

// WriteCustomers upserts every row into the primary store by exact
// (name, phone) and then rewrites the flat file from the given table.
func (g *PersistenceGateway) WriteCustomers(ctx context.Context, customers []entities.Customer) error {
	if g.primary != nil {
		for _, c := range customers {
			g.writeCustomerPrimary(ctx, c)
		}
	}
	if err := g.flat.WriteTable(ctx, TableCustomers, entities.CustomerColumns, schema.CustomersToRows(customers)); err != nil {
		return fmt.Errorf("write customers file: %w", err)
	}
	return nil
}

func (g *PersistenceGateway) writeCustomerPrimary(ctx context.Context, c entities.Customer) {
	existing, err := g.primary.Query(ctx, findCustomerExactSQL, c.ClientName, c.Phone)
	if err != nil {
		g.log.Warn("[gateway][write] primary customer lookup failed", zap.String("client_name", c.ClientName), zap.Error(err))
		existing = nil
	}
	if len(existing) > 0 {
		err = g.primary.Execute(ctx, updateCustomerInfoSQL, c.Email, c.Location, existing[0]["id"])
	} else {
		err = g.primary.Execute(ctx, insertCustomerSQL, c.ClientName, c.Phone, c.Email, c.Location)
	}
	if err != nil {
		g.log.Warn("[gateway][write] primary customer upsert failed", zap.String("client_name", c.ClientName), zap.Error(err))
	}
}

// UpsertCustomerPrimary matches on exact name or phone. A blank phone only
// matches by name so it cannot pick an unrelated customer without a phone.
func (g *PersistenceGateway) UpsertCustomerPrimary(ctx context.Context, name, phone, location string) error {
	if g.primary == nil {
		return interfaces.ErrPrimaryUnavailable
	}

	var (
		existing []map[string]any
		err      error
	)
	if phone == "" {
		existing, err = g.primary.Query(ctx, findCustomerByNameSQL, name)
	} else {
		existing, err = g.primary.Query(ctx, findCustomerLooseSQL, name, phone)
	}
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return g.primary.Execute(ctx, updateCustomerPhoneSQL, phone, location, existing[0]["id"])
	}
	return g.primary.Execute(ctx, insertCustomerSQL, name, phone, "", location)
}

// EnsureCustomersFile creates an empty customers workbook so the table can
// be edited by hand before the first save.
func (g *PersistenceGateway) EnsureCustomersFile(ctx context.Context) error {
	if _, err := g.flat.ReadTable(ctx, TableCustomers); err == nil || !errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return g.flat.WriteTable(ctx, TableCustomers, entities.CustomerColumns, nil)
}
