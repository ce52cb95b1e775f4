package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"quotation_desk/internal/adapter/persistence/schema"
	"quotation_desk/internal/usecase/interfaces"
)

const (
	QuotationTemplate = "quotation_A4.html"
	InvoiceTemplate   = "invoice_A4.html"
)

//go:embed templates/*.html
var embedded embed.FS

var funcs = template.FuncMap{
	"currency": FormatCurrency,
	"safe":     func(s string) template.HTML { return template.HTML(s) },
	"inc":      func(i int) int { return i + 1 },
	"nonzero": func(v any) bool {
		d, ok := schema.Decimal(v)
		return ok && !d.IsZero()
	},
}

var _ interfaces.IHTMLRenderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders named document templates. Templates found in the
// override directory win over the embedded ones.
type HTMLRenderer struct {
	overrideDir string

	mu     sync.Mutex
	cache  map[string]*template.Template
	source map[string]string
}

func NewHTMLRenderer(overrideDir string) *HTMLRenderer {
	return &HTMLRenderer{
		overrideDir: overrideDir,
		cache:       make(map[string]*template.Template),
		source:      make(map[string]string),
	}
}

// Render executes the named template against a prepared copy of data.
// Fields the template references but data lacks render empty.
func (r *HTMLRenderer) Render(name string, data map[string]any) (string, error) {
	tpl, src, err := r.load(name)
	if err != nil {
		return "", err
	}

	ctx := PrepareContext(data)
	fields, err := TemplateFields(src)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	for _, f := range fields {
		if _, ok := ctx[f]; !ok {
			ctx[f] = ""
		}
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	return buf.String(), nil
}

// Check compares the context keys a template reads with the given keys.
func (r *HTMLRenderer) Check(name string, keys []string) (missing, extra []string, err error) {
	_, src, err := r.load(name)
	if err != nil {
		return nil, nil, err
	}
	fields, err := TemplateFields(src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrRender, name, err)
	}
	missing, extra = Compare(fields, keys)
	return missing, extra, nil
}

func (r *HTMLRenderer) load(name string) (*template.Template, string, error) {
	name = filepath.Base(strings.TrimSpace(name))

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[name]; ok {
		return tpl, r.source[name], nil
	}

	raw, err := r.read(name)
	if err != nil {
		return nil, "", err
	}
	tpl, err := template.New(name).Funcs(funcs).Parse(string(raw))
	if err != nil {
		return nil, "", fmt.Errorf("%w: parse %s: %v", ErrRender, name, err)
	}
	r.cache[name] = tpl
	r.source[name] = string(raw)
	return tpl, string(raw), nil
}

func (r *HTMLRenderer) read(name string) ([]byte, error) {
	if r.overrideDir != "" {
		raw, err := os.ReadFile(filepath.Join(r.overrideDir, name))
		if err == nil {
			return raw, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: read %s: %v", ErrRender, name, err)
		}
	}
	raw, err := fs.ReadFile(embedded, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return raw, nil
}
