package interfaces

import "context"

// ITextGenerator writes free text from a prompt. Callers treat every error as
// a soft failure.
type ITextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
