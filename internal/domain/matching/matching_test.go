package matching

import (
	"testing"

	"quotation_desk/internal/domain/entities"
)

func TestMatchCustomer(t *testing.T) {
	existing := []entities.Customer{
		{ClientName: "John Smith", Phone: "0501234567"},
		{ClientName: "Sara Ali", Phone: "+971 55 765 4321"},
		{ClientName: "No Phone"},
	}

	tests := []struct {
		name, phone string
		wantIdx     int
		wantOK      bool
	}{
		{name: "  john SMITH ", phone: "", wantIdx: 0, wantOK: true},
		{name: "Jon Smyth", phone: "971501234567", wantIdx: 0, wantOK: true},
		{name: "Someone", phone: "055 765 4321", wantIdx: 1, wantOK: true},
		{name: "Someone", phone: "", wantIdx: -1, wantOK: false},
		{name: "Someone", phone: "n/a", wantIdx: -1, wantOK: false},
		{name: "Sara Ali", phone: "0501234567", wantIdx: 1, wantOK: true},
	}
	for _, tt := range tests {
		idx, ok := MatchCustomer(tt.name, tt.phone, existing)
		if idx != tt.wantIdx || ok != tt.wantOK {
			t.Errorf("MatchCustomer(%q, %q) = %d, %v; want %d, %v", tt.name, tt.phone, idx, ok, tt.wantIdx, tt.wantOK)
		}
	}
}
