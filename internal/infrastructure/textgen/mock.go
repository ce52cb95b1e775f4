package textgen

import (
	"context"
	"strings"

	"quotation_desk/internal/usecase/interfaces"
)

var _ interfaces.ITextGenerator = (*MockGenerator)(nil)

// MockGenerator answers without any network call, for demos and tests.
type MockGenerator struct{}

func NewMockGenerator() *MockGenerator { return &MockGenerator{} }

func (MockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	var devices []string
	for _, line := range strings.Split(prompt, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- ") {
			continue
		}
		name := strings.TrimPrefix(line, "- ")
		if i := strings.Index(name, " (Qty:"); i >= 0 {
			name = name[:i]
		}
		devices = append(devices, name)
	}
	if len(devices) == 0 {
		return "Supply and installation of smart home devices, including configuration and handover.", nil
	}
	return "Supply, installation and configuration of " + strings.Join(devices, ", ") +
		". Work includes cabling, commissioning and a client handover session.", nil
}
