package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"quotation_desk/internal/adapter/render"
	"quotation_desk/internal/usecase/interfaces"
)

var _ interfaces.IPDFEngine = (*MarotoEngine)(nil)

// MarotoEngine lays the document out natively from its structured fields.
// It needs no external binary, so it is the last resort of the chain.
type MarotoEngine struct{}

func NewMarotoEngine() *MarotoEngine { return &MarotoEngine{} }

func (e *MarotoEngine) Name() string { return "maroto" }

func (e *MarotoEngine) Render(_ context.Context, src interfaces.PDFSource) ([]byte, error) {
	cur := src.Currency
	money := func(d decimal.Decimal) string { return render.FormatCurrency(d, cur) }

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, src.CompanyName, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(4, src.Title, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(18,
		col.New(6).Add(
			text.New("Number: "+src.Number, props.Text{Top: 0}),
			text.New("Date: "+src.Date, props.Text{Top: 5}),
		),
		col.New(6).Add(
			text.New(src.ClientName, props.Text{Style: fontstyle.Bold, Align: align.Right}),
			text.New(src.ClientPhone, props.Text{Top: 5, Align: align.Right}),
			text.New(src.Location, props.Text{Top: 10, Align: align.Right}),
		),
	)

	m.AddRow(8,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, it := range src.Items {
		m.AddRow(8,
			text.NewCol(6, it.Description, props.Text{Size: 9}),
			text.NewCol(2, it.Qty.String(), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(it.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(it.Total), props.Text{Size: 9, Align: align.Right}),
		)
	}

	totals := []struct {
		label string
		value decimal.Decimal
		bold  bool
	}{
		{"Subtotal", src.Subtotal, false},
		{"Installation", src.Installation, false},
		{"Discount", src.Discount.Neg(), false},
		{"Total", src.Total, true},
	}
	for _, t := range totals {
		style := fontstyle.Normal
		if t.bold {
			style = fontstyle.Bold
		}
		m.AddRow(8,
			col.New(6),
			text.NewCol(3, t.label, props.Text{Size: 9, Style: style}),
			text.NewCol(3, money(t.value), props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto: %w", err)
	}
	return doc.GetBytes(), nil
}
