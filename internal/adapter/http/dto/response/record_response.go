package response

import (
	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/usecase"
	"quotation_desk/internal/usecase/interfaces"
)

// RecordResponse prints the amount with two decimals and the date as stored.
type RecordResponse struct {
	BaseID     string `json:"base_id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	Number     string `json:"number"`
	Amount     string `json:"amount"`
	ClientName string `json:"client_name"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Note       string `json:"note,omitempty"`
}

func FromRecord(r entities.Record) RecordResponse {
	return RecordResponse{
		BaseID:     r.BaseID,
		Date:       r.DateString(),
		Type:       string(r.Type),
		Number:     r.Number,
		Amount:     r.Amount.StringFixed(2),
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Location:   r.Location,
		Note:       r.Note,
	}
}

type RecordListResponse struct {
	Source  interfaces.Source `json:"source"`
	Records []RecordResponse  `json:"records"`
}

func FromRecords(records []entities.Record, src interfaces.Source) RecordListResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRecord(r))
	}
	return RecordListResponse{Source: src, Records: out}
}

type CustomerListResponse struct {
	Source    interfaces.Source   `json:"source"`
	Customers []entities.Customer `json:"customers"`
}

type CatalogResponse struct {
	Source interfaces.Source      `json:"source"`
	Items  []entities.CatalogItem `json:"items"`
}

type FinalizeResponse struct {
	Record     RecordResponse `json:"record"`
	Draft      DraftResponse  `json:"draft"`
	ExportPath string         `json:"export_path,omitempty"`
	Warnings   []string       `json:"warnings,omitempty"`
}

func FromFinalize(res usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		Record:     FromRecord(res.Record),
		Draft:      FromDraft(res.Draft),
		ExportPath: res.ExportPath,
		Warnings:   res.Warnings,
	}
}
