package pdf

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"quotation_desk/internal/usecase/interfaces"
)

var (
	// ErrPDFUnavailable is returned when no engine could produce a PDF.
	ErrPDFUnavailable    = errors.New("pdf generation unavailable")
	ErrEngineUnavailable = errors.New("pdf engine not installed")
)

var _ interfaces.IPDFEngine = (*Chain)(nil)

// Chain tries each engine in order and returns the first success.
type Chain struct {
	engines []interfaces.IPDFEngine
	log     *zap.Logger
}

func NewChain(log *zap.Logger, engines ...interfaces.IPDFEngine) *Chain {
	if log == nil {
		log = zap.NewNop()
	}
	return &Chain{engines: engines, log: log}
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) Render(ctx context.Context, src interfaces.PDFSource) ([]byte, error) {
	var errs []error
	for _, e := range c.engines {
		out, err := e.Render(ctx, src)
		if err == nil && len(out) > 0 {
			c.log.Debug("[pdf][chain] rendered", zap.String("engine", e.Name()), zap.String("number", src.Number))
			return out, nil
		}
		if err == nil {
			err = errors.New("empty output")
		}
		c.log.Warn("[pdf][chain] engine failed", zap.String("engine", e.Name()), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
	}
	return nil, fmt.Errorf("%w: %w", ErrPDFUnavailable, errors.Join(errs...))
}
