package usecase

import (
	"fmt"
	"strings"

	"quotation_desk/internal/domain/entities"
)

// DescriptionPrompt builds the project description prompt from a draft's
// items. It returns "" when no item has a description.
func DescriptionPrompt(items []entities.LineItem) string {
	var lines []string
	for _, it := range items {
		desc := strings.TrimSpace(it.Description)
		if desc == "" {
			desc = strings.TrimSpace(it.Product)
		}
		if desc == "" {
			continue
		}
		qty := it.Qty
		if qty <= 0 {
			qty = 1
		}
		lines = append(lines, fmt.Sprintf("- %s (Qty: %d)", desc, qty))
	}
	if len(lines) == 0 {
		return ""
	}
	return "Generate a professional project description for a smart home installation project.\n\n" +
		"Selected Products:\n" + strings.Join(lines, "\n") + "\n\n" +
		"Create a brief, professional project description (2-3 sentences) that:\n" +
		"1. Summarizes what smart home systems/devices will be installed\n" +
		"2. Mentions the scope of work\n" +
		"3. Is suitable for a formal invoice\n\n" +
		"Be concise and professional."
}
