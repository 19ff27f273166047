// Package pdf renders the printable freight request summary handed to
// carriers: route, cargo details and the publishing company.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoPDFGenerator implements usecase.RequestPDFGenerator.
var _ usecase.RequestPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator renders the summary with Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateRequestPDF renders the document and returns its bytes. company may
// be nil when the publishing company was removed; the block is then omitted.
func (g *MarotoPDFGenerator) GenerateRequestPDF(
	_ context.Context,
	req *entity.FreightRequest,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fraktforespørsel", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(req, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(routeRow(req))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(cargoRows(req)...)
	if req.SpecialNeeds != "" {
		m.AddRows(labelValueRow("Spesielle behov", req.SpecialNeeds))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(req))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company name (left) and request id + date (right).
func headerRow(req *entity.FreightRequest, company *entity.Company) core.Row {
	name := "Ukjent firma"
	if company != nil {
		name = company.Name
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Fraktforespørsel", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Ref: "+req.ID, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(req.CreatedAt.Format("02.01.2006"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// routeRow: pickup and delivery side by side.
func routeRow(req *entity.FreightRequest) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New("Fra", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(req.PickupLocation, props.Text{Size: 10, Top: 7}),
		),
		col.New(6).Add(
			text.New("Til", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
			text.New(req.DeliveryLocation, props.Text{Size: 10, Top: 7}),
		),
	)
}

func cargoRows(req *entity.FreightRequest) []core.Row {
	return []core.Row{
		labelValueRow("Type last", req.CargoType),
		labelValueRow("Vekt", req.Weight.String()+" kg"),
		labelValueRow("Antall kolli", fmt.Sprintf("%d", req.NumberOfItems)),
	}
}

func labelValueRow(label, value string) core.Row {
	return row.New(8).Add(
		col.New(4).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}),
		),
		col.New(8).Add(
			text.New(value, props.Text{Size: 9, Top: 1}),
		),
	)
}

func footerRow(req *entity.FreightRequest) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New("Status: "+req.Status+"  |  Generert av DGM Logistikk", props.Text{
				Size: 7, Color: colorGray, Top: 1,
			}),
		),
	)
}
