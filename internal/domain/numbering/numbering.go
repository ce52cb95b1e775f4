package numbering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"quotation_desk/internal/domain/entities"
)

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

const (
	InvoiceTemplate   = "INV-{YYYY}{MM}{DD}-{SEQ3}"
	QuotationTemplate = "Q{YYYY}{SEQ4}"
	ReceiptTemplate   = "RCT-{YYYY}{MM}{DD}-{SEQ3}"
	BaseIDTemplate    = "{YYYY}{MM}{DD}-{SEQ3}"
)

// Format renders a document number template for the given day and sequence.
// Supported tokens are {YYYY}, {YY}, {MM}, {DD}, {SEQ} and {SEQn} (zero padded
// to n digits).
func Format(template string, at time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid sequence: %d", seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", at.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", at.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", at.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", at.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))
	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.ContainsAny(out, "{}") {
		return "", fmt.Errorf("unresolved token in number format: %s", out)
	}
	return out, nil
}

// NextInvoiceNumber counts every invoice ever recorded, so the sequence keeps
// growing across days.
func NextInvoiceNumber(records []entities.Record, at time.Time) string {
	n := 0
	for _, r := range records {
		if r.Type == entities.RecordTypeInvoice {
			n++
		}
	}
	out, _ := Format(InvoiceTemplate, at, int64(n+1))
	return out
}

// NextQuotationNumber restarts the sequence every calendar year.
func NextQuotationNumber(records []entities.Record, at time.Time) string {
	prefix := "Q" + at.Format("2006")
	n := 0
	for _, r := range records {
		if r.Type == entities.RecordTypeQuotation && strings.HasPrefix(r.Number, prefix) {
			n++
		}
	}
	out, _ := Format(QuotationTemplate, at, int64(n+1))
	return out
}

// NextReceiptNumber counts the receipts issued on the same day.
func NextReceiptNumber(records []entities.Record, at time.Time) string {
	prefix := "RCT-" + at.Format("20060102")
	n := 0
	for _, r := range records {
		if r.Type == entities.RecordTypeReceipt && strings.HasPrefix(r.Number, prefix) {
			n++
		}
	}
	out, _ := Format(ReceiptTemplate, at, int64(n+1))
	return out
}

// NextBaseID counts the records whose base id carries the same day stamp.
func NextBaseID(records []entities.Record, at time.Time) string {
	day := at.Format("20060102")
	n := 0
	for _, r := range records {
		if strings.Contains(r.BaseID, day) {
			n++
		}
	}
	out, _ := Format(BaseIDTemplate, at, int64(n+1))
	return out
}
