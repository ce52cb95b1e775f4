package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseRecordType(t *testing.T) {
	cases := map[string]RecordType{"q": RecordTypeQuotation, " Invoice ": RecordTypeInvoice, "R": RecordTypeReceipt}
	for in, want := range cases {
		got, err := ParseRecordType(in)
		if err != nil || got != want {
			t.Errorf("ParseRecordType(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseRecordType("x"); !errors.Is(err, ErrInvalidRecordType) {
		t.Errorf("err = %v", err)
	}
}

func TestDedupeRecords_LastWriteWins(t *testing.T) {
	first := Record{Type: RecordTypeInvoice, Number: "INV-1", Amount: decimal.NewFromInt(100)}
	other := Record{Type: RecordTypeQuotation, Number: "INV-1"}
	second := Record{Type: RecordTypeInvoice, Number: "INV-1", Amount: decimal.NewFromInt(250)}

	got := DedupeRecords([]Record{first, other, second})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Type != RecordTypeQuotation || !got[1].Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("got %+v", got)
	}
}

func TestRecordDateString(t *testing.T) {
	if (Record{}).DateString() != "" {
		t.Error("zero date should render empty")
	}
	r := Record{Date: time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)}
	if r.DateString() != "2025-03-09" {
		t.Errorf("DateString = %q", r.DateString())
	}
}
