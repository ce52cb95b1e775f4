package response

import (
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/finance"
)

type DraftResponse struct {
	*entities.DraftDocument
	Totals   finance.DocumentTotals `json:"totals"`
	Warnings []string               `json:"warnings,omitempty"`
}

func FromDraft(d *entities.DraftDocument, warnings ...string) DraftResponse {
	return DraftResponse{
		DraftDocument: d,
		Totals:        finance.DraftTotals(d),
		Warnings:      warnings,
	}
}
