package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RecordType identifies a stage of the quotation -> invoice -> receipt lifecycle.
type RecordType string

const (
	RecordTypeQuotation RecordType = "q"
	RecordTypeInvoice   RecordType = "i"
	RecordTypeReceipt   RecordType = "r"
)

var ErrInvalidRecordType = errors.New("invalid record type")

// ParseRecordType accepts the stored letter or the full name, in any case.
func ParseRecordType(raw string) (RecordType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "q", "quotation":
		return RecordTypeQuotation, nil
	case "i", "invoice":
		return RecordTypeInvoice, nil
	case "r", "receipt":
		return RecordTypeReceipt, nil
	}
	return "", ErrInvalidRecordType
}

// RecordColumns is the canonical column order of the records table, shared by
// the primary store projection and the flat file.
var RecordColumns = []string{"base_id", "date", "type", "number", "amount", "client_name", "phone", "location", "note"}

// DateLayout is the ISO date layout used for every persisted date.
const DateLayout = "2006-01-02"

// Record is one quotation, invoice or receipt.
//
// (Type, Number) is unique: a later write with the same pair replaces the
// earlier one. BaseID groups the documents of one project.
// A zero Date means the stored date could not be parsed.
type Record struct {
	BaseID     string          `json:"base_id"`
	Date       time.Time       `json:"date"`
	Type       RecordType      `json:"type"`
	Number     string          `json:"number"`
	Amount     decimal.Decimal `json:"amount"`
	ClientName string          `json:"client_name"`
	Phone      string          `json:"phone"`
	Location   string          `json:"location"`
	Note       string          `json:"note"`
}

// RecordKey is the replacement key of a record.
type RecordKey struct {
	Type   RecordType
	Number string
}

func (r Record) Key() RecordKey {
	return RecordKey{Type: r.Type, Number: r.Number}
}

// DateString returns the ISO date or "" when the date is unknown.
func (r Record) DateString() string {
	if r.Date.IsZero() {
		return ""
	}
	return r.Date.Format(DateLayout)
}

// DedupeRecords keeps the last record written for each (type, number) pair,
// preserving the position of that last write.
func DedupeRecords(records []Record) []Record {
	last := make(map[RecordKey]int, len(records))
	for i, r := range records {
		last[r.Key()] = i
	}
	out := make([]Record, 0, len(last))
	for i, r := range records {
		if last[r.Key()] == i {
			out = append(out, r)
		}
	}
	return out
}
