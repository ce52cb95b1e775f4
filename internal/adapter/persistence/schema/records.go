package schema

import (
	"strings"

	"quotation_desk/internal/domain/entities"
	"quotation_desk/internal/domain/normalize"
)

// RecordsFromRows canonicalizes raw record rows from either backend.
func RecordsFromRows(rows []map[string]any) []entities.Record {
	out := make([]entities.Record, 0, len(rows))
	for _, raw := range rows {
		row := NormalizeKeys(raw)
		out = append(out, entities.Record{
			BaseID:     String(row["base_id"]),
			Date:       Date(row["date"]),
			Type:       entities.RecordType(strings.ToLower(String(row["type"]))),
			Number:     String(row["number"]),
			Amount:     DecimalOrZero(row["amount"]),
			ClientName: String(row["client_name"]),
			Phone:      String(row["phone"]),
			Location:   String(row["location"]),
			Note:       String(row["note"]),
		})
	}
	return out
}

// RecordToRow projects a record onto the canonical columns.
func RecordToRow(r entities.Record) map[string]any {
	return map[string]any{
		"base_id":     r.BaseID,
		"date":        r.DateString(),
		"type":        string(r.Type),
		"number":      r.Number,
		"amount":      r.Amount.InexactFloat64(),
		"client_name": r.ClientName,
		"phone":       r.Phone,
		"location":    r.Location,
		"note":        r.Note,
	}
}

func RecordsToRows(records []entities.Record) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, RecordToRow(r))
	}
	return out
}

// CustomersFromRows accepts both the primary store projection
// (name, address) and the flat file columns (client_name, location).
func CustomersFromRows(rows []map[string]any) []entities.Customer {
	out := make([]entities.Customer, 0, len(rows))
	for _, raw := range rows {
		row := NormalizeKeys(raw)
		if _, ok := row["client_name"]; !ok {
			row["client_name"] = row["name"]
		}
		if _, ok := row["location"]; !ok {
			row["location"] = row["address"]
		}
		out = append(out, entities.Customer{
			ClientName:   String(row["client_name"]),
			Phone:        String(row["phone"]),
			Location:     String(row["location"]),
			Email:        String(row["email"]),
			Status:       String(row["status"]),
			Notes:        String(row["notes"]),
			Tags:         String(row["tags"]),
			NextFollowUp: String(row["next_follow_up"]),
			AssignedTo:   String(row["assigned_to"]),
			LastActivity: String(row["last_activity"]),
		})
	}
	return out
}

func CustomerToRow(c entities.Customer) map[string]any {
	return map[string]any{
		"client_name":    c.ClientName,
		"phone":          c.Phone,
		"location":       c.Location,
		"email":          c.Email,
		"status":         c.Status,
		"notes":          c.Notes,
		"tags":           c.Tags,
		"next_follow_up": c.NextFollowUp,
		"assigned_to":    c.AssignedTo,
		"last_activity":  c.LastActivity,
	}
}

func CustomersToRows(customers []entities.Customer) []map[string]any {
	out := make([]map[string]any, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerToRow(c))
	}
	return out
}

// CatalogFromRows maps product rows. The primary store aliases columns as
// Device, UnitPrice and ImageBase64; the flat file may use either spelling.
// Rows without a device are dropped.
func CatalogFromRows(rows []map[string]any) []entities.CatalogItem {
	out := make([]entities.CatalogItem, 0, len(rows))
	for _, raw := range rows {
		row := NormalizeKeys(raw)
		device, _ := firstPresent(row, "device")
		name := String(device)
		if name == "" {
			continue
		}
		price, _ := firstPresent(row, "unit_price", "unitprice")
		image, _ := firstPresent(row, "image", "imagebase64", "image_base64")
		out = append(out, entities.CatalogItem{
			Device:      name,
			Description: String(row["description"]),
			UnitPrice:   DecimalOrZero(price),
			Warranty:    Int(row["warranty"]),
			Image:       normalize.EnsureDataURL(String(image)),
		})
	}
	return out
}

func CatalogToRow(it entities.CatalogItem) map[string]any {
	return map[string]any{
		"device":      it.Device,
		"description": it.Description,
		"unit_price":  it.UnitPrice.InexactFloat64(),
		"warranty":    it.Warranty,
		"image":       it.Image,
	}
}
