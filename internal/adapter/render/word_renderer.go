package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"

	"quotation_desk/internal/usecase/interfaces"
)

// WordPlaceholders are the tokens the invoice Word template carries.
var WordPlaceholders = []string{
	"{{client_name}}",
	"{{invoice_no}}",
	"{{client_location}}",
	"{{client_phone}}",
	"{{total_products}}",
	"{{installation}}",
	"{{discount_value}}",
	"{{discount_percent}}",
	"{{grand_total}}",
}

var xmlTag = regexp.MustCompile(`<[^>]+>`)

var _ interfaces.IWordRenderer = (*WordRenderer)(nil)

// WordRenderer fills placeholders in a .docx template. Without a template
// path it uses a built-in one page layout.
type WordRenderer struct {
	templatePath string
}

func NewWordRenderer(templatePath string) *WordRenderer {
	return &WordRenderer{templatePath: strings.TrimSpace(templatePath)}
}

// Render replaces every "{{key}}" occurrence with its value and returns the
// resulting document bytes.
func (w *WordRenderer) Render(values map[string]string) ([]byte, error) {
	raw, err := w.template()
	if err != nil {
		return nil, err
	}

	r, err := docx.ReadDocxFromMemory(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("%w: open docx: %v", ErrRender, err)
	}
	defer r.Close()

	doc := r.Editable()
	for key, val := range values {
		token := key
		if !strings.HasPrefix(token, "{{") {
			token = "{{" + token + "}}"
		}
		if err := doc.Replace(token, val, -1); err != nil {
			return nil, fmt.Errorf("%w: replace %s: %v", ErrRender, token, err)
		}
	}

	var out bytes.Buffer
	if err := doc.Write(&out); err != nil {
		return nil, fmt.Errorf("%w: write docx: %v", ErrRender, err)
	}
	return out.Bytes(), nil
}

// Placeholders lists the simple placeholders in the template body.
func (w *WordRenderer) Placeholders() ([]string, error) {
	raw, err := w.template()
	if err != nil {
		return nil, err
	}
	body, err := DocumentText(raw)
	if err != nil {
		return nil, err
	}
	return TextPlaceholders(body), nil
}

// Check compares the template placeholders with the given keys.
func (w *WordRenderer) Check(keys []string) (missing, extra []string, err error) {
	placeholders, err := w.Placeholders()
	if err != nil {
		return nil, nil, err
	}
	missing, extra = Compare(placeholders, keys)
	return missing, extra, nil
}

func (w *WordRenderer) template() ([]byte, error) {
	if w.templatePath == "" {
		return defaultInvoiceDocx()
	}
	raw, err := os.ReadFile(w.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, w.templatePath, err)
	}
	return raw, nil
}

// DocumentText returns the body of a .docx with markup stripped.
func DocumentText(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: open docx: %v", ErrRender, err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrRender, err)
		}
		defer rc.Close()
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRender, err)
		}
		return xmlTag.ReplaceAllString(buf.String(), ""), nil
	}
	return "", fmt.Errorf("%w: word/document.xml missing", ErrRender)
}

const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

	rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

	documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
)

var defaultInvoiceLines = []string{
	"INVOICE {{invoice_no}}",
	"Client: {{client_name}}",
	"Location: {{client_location}}",
	"Phone: {{client_phone}}",
	"Total products: {{total_products}}",
	"Installation: {{installation}}",
	"Discount ({{discount_percent}}%): {{discount_value}}",
	"Grand total: {{grand_total}}",
}

func defaultInvoiceDocx() ([]byte, error) {
	var body strings.Builder
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range defaultInvoiceLines {
		body.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		body.WriteString(line)
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct{ name, content string }{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/document.xml", body.String()},
	}
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("%w: build template: %v", ErrRender, err)
		}
		if _, err := f.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("%w: build template: %v", ErrRender, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: build template: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
