package request

import (
	"github.com/shopspring/decimal"

	"quotation_desk/internal/usecase"
)

type CreateDraftRequest struct {
	Kind          string `json:"kind" binding:"required"`
	FromQuotation string `json:"from_quotation"`
}

// UpdateDraftRequest is a partial update: omitted fields are left as they are.
type UpdateDraftRequest struct {
	ClientName           *string          `json:"client_name"`
	Phone                *string          `json:"phone"`
	Location             *string          `json:"location"`
	InstallationCost     *decimal.Decimal `json:"installation_cost"`
	DiscountPercent      *decimal.Decimal `json:"discount_percent"`
	DiscountValue        *decimal.Decimal `json:"discount_value"`
	DownPayment          *decimal.Decimal `json:"down_payment"`
	PreviouslyPaid       *decimal.Decimal `json:"previously_paid"`
	WarrantyText         *string          `json:"warranty_text"`
	WarrantyShippingCost *decimal.Decimal `json:"warranty_shipping_cost"`
	PowerProvider        *string          `json:"power_provider"`
	ProjectTitle         *string          `json:"project_title"`
	ProjectDescription   *string          `json:"project_description"`
	PreparedBy           *string          `json:"prepared_by"`
	ApprovedBy           *string          `json:"approved_by"`
}

func (r UpdateDraftRequest) ToPatch() usecase.DraftPatch {
	return usecase.DraftPatch{
		ClientName:           r.ClientName,
		Phone:                r.Phone,
		Location:             r.Location,
		InstallationCost:     r.InstallationCost,
		DiscountPercent:      r.DiscountPercent,
		DiscountValue:        r.DiscountValue,
		DownPayment:          r.DownPayment,
		PreviouslyPaid:       r.PreviouslyPaid,
		WarrantyText:         r.WarrantyText,
		WarrantyShippingCost: r.WarrantyShippingCost,
		PowerProvider:        r.PowerProvider,
		ProjectTitle:         r.ProjectTitle,
		ProjectDescription:   r.ProjectDescription,
		PreparedBy:           r.PreparedBy,
		ApprovedBy:           r.ApprovedBy,
	}
}

// AddItemRequest selects a catalog device. Omitting unit_price or warranty
// keeps the catalog value.
type AddItemRequest struct {
	Device    string           `json:"device" binding:"required"`
	Qty       int              `json:"qty"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	Warranty  *int             `json:"warranty"`
}

func (r AddItemRequest) ToInput() usecase.AddItemInput {
	in := usecase.AddItemInput{Device: r.Device, Qty: r.Qty, Warranty: r.Warranty}
	if r.UnitPrice != nil {
		in.UnitPrice = *r.UnitPrice
	}
	return in
}
