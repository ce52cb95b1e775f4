package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"quotation_desk/internal/usecase/interfaces"
)

var _ interfaces.IPDFEngine = (*WkhtmltopdfEngine)(nil)

// WkhtmltopdfEngine pipes the rendered HTML through the wkhtmltopdf binary.
type WkhtmltopdfEngine struct {
	binary string
}

// NewWkhtmltopdfEngine uses path when set, otherwise looks wkhtmltopdf up
// on PATH at render time.
func NewWkhtmltopdfEngine(path string) *WkhtmltopdfEngine {
	return &WkhtmltopdfEngine{binary: strings.TrimSpace(path)}
}

func (e *WkhtmltopdfEngine) Name() string { return "wkhtmltopdf" }

func (e *WkhtmltopdfEngine) Render(ctx context.Context, src interfaces.PDFSource) ([]byte, error) {
	if strings.TrimSpace(src.HTML) == "" {
		return nil, fmt.Errorf("wkhtmltopdf: empty html")
	}
	bin := e.binary
	if bin == "" {
		bin = "wkhtmltopdf"
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	cmd := exec.CommandContext(ctx, path,
		"--quiet",
		"--encoding", "utf-8",
		"--page-size", "A4",
		"--enable-local-file-access",
		"-", "-",
	)
	cmd.Stdin = strings.NewReader(src.HTML)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("wkhtmltopdf: %v: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
