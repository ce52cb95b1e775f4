// Package textgen provides the project description generators.
package textgen

import (
	"strings"

	"go.uber.org/zap"

	"quotation_desk/internal/config"
	"quotation_desk/internal/usecase/interfaces"
)

// New picks the generator named by the config. It returns nil when text
// generation is disabled or the OpenAI key is missing.
func New(cfg config.TextGenConfig, log *zap.Logger) interfaces.ITextGenerator {
	if log == nil {
		log = zap.NewNop()
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "mock":
		log.Info("[textgen][infra] using mock generator")
		return NewMockGenerator()
	case "openai":
		if strings.TrimSpace(cfg.APIKey) == "" {
			log.Warn("[textgen][infra] openai selected without api key, disabled")
			return nil
		}
		log.Info("[textgen][infra] using openai", zap.String("model", cfg.Model))
		return NewOpenAIGenerator(cfg.APIKey, cfg.Model, cfg.BaseURL, nil)
	default:
		return nil
	}
}
