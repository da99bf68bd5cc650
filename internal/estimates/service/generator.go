package service

import (
	"math"

	"sidebar_backend/internal/estimates/transport"
)

const (
	taxRate        = 0.0825
	confidence     = 0.92
	marketLowBand  = 0.82
	marketHighBand = 1.15

	defaultProjectType = "roofing"
	customProjectType  = "custom"
)

// lineTemplate is one catalog entry for a project type. perSquare entries
// scale quantity by the project's roofing squares; the rest are lump sums.
type lineTemplate struct {
	name      string
	category  string
	unit      string
	unitCost  float64
	unitPrice float64
	perSquare bool
}

var templates = map[string][]lineTemplate{
	"roofing": {
		{name: "Tear-off & removal", category: "Labor", unit: "SQ", unitCost: 45, unitPrice: 72, perSquare: true},
		{name: "Shingles / roofing material", category: "Materials", unit: "SQ", unitCost: 95, unitPrice: 145, perSquare: true},
		{name: "Installation labor", category: "Labor", unit: "SQ", unitCost: 65, unitPrice: 110, perSquare: true},
		{name: "Underlayment", category: "Materials", unit: "SQ", unitCost: 22, unitPrice: 38, perSquare: true},
		{name: "Cleanup & disposal", category: "Equipment", unit: "LS", unitCost: 450, unitPrice: 650},
	},
	"remodel": {
		{name: "Demolition & prep", category: "Labor", unit: "SQ", unitCost: 35, unitPrice: 58, perSquare: true},
		{name: "Framing & structural", category: "Labor", unit: "SQ", unitCost: 55, unitPrice: 92, perSquare: true},
		{name: "Finish materials", category: "Materials", unit: "SQ", unitCost: 80, unitPrice: 130, perSquare: true},
		{name: "Electrical rough-in", category: "Subcontractor", unit: "LS", unitCost: 1800, unitPrice: 2800},
		{name: "Plumbing rough-in", category: "Subcontractor", unit: "LS", unitCost: 2200, unitPrice: 3400},
		{name: "Finish labor", category: "Labor", unit: "SQ", unitCost: 45, unitPrice: 75, perSquare: true},
		{name: "Cleanup & disposal", category: "Equipment", unit: "LS", unitCost: 600, unitPrice: 850},
	},
	"addition": {
		{name: "Foundation & footings", category: "Subcontractor", unit: "SQ", unitCost: 50, unitPrice: 82, perSquare: true},
		{name: "Framing package", category: "Materials", unit: "SQ", unitCost: 65, unitPrice: 105, perSquare: true},
		{name: "Framing labor", category: "Labor", unit: "SQ", unitCost: 55, unitPrice: 90, perSquare: true},
		{name: "Roofing tie-in", category: "Labor", unit: "LS", unitCost: 2500, unitPrice: 4000},
		{name: "Exterior finish", category: "Materials", unit: "SQ", unitCost: 40, unitPrice: 68, perSquare: true},
		{name: "Interior finish", category: "Materials", unit: "SQ", unitCost: 55, unitPrice: 90, perSquare: true},
		{name: "MEP (Mechanical/Electrical/Plumbing)", category: "Subcontractor", unit: "LS", unitCost: 5500, unitPrice: 8500},
		{name: "Permits & inspections", category: "General", unit: "LS", unitCost: 1200, unitPrice: 1500},
	},
	"commercial": {
		{name: "Site prep & mobilization", category: "Equipment", unit: "LS", unitCost: 3500, unitPrice: 5200},
		{name: "Structural work", category: "Labor", unit: "SQ", unitCost: 75, unitPrice: 120, perSquare: true},
		{name: "Commercial roofing system", category: "Materials", unit: "SQ", unitCost: 110, unitPrice: 175, perSquare: true},
		{name: "Installation labor", category: "Labor", unit: "SQ", unitCost: 70, unitPrice: 115, perSquare: true},
		{name: "HVAC penetrations", category: "Subcontractor", unit: "LS", unitCost: 2800, unitPrice: 4200},
		{name: "Safety & compliance", category: "General", unit: "LS", unitCost: 1500, unitPrice: 2200},
		{name: "Cleanup & disposal", category: "Equipment", unit: "LS", unitCost: 900, unitPrice: 1400},
	},
	customProjectType: {
		{name: "General labor", category: "Labor", unit: "SQ", unitCost: 50, unitPrice: 85, perSquare: true},
		{name: "Materials", category: "Materials", unit: "SQ", unitCost: 70, unitPrice: 115, perSquare: true},
		{name: "Subcontractor allowance", category: "Subcontractor", unit: "LS", unitCost: 2000, unitPrice: 3200},
		{name: "Equipment & disposal", category: "Equipment", unit: "LS", unitCost: 500, unitPrice: 750},
	},
}

// buildLineItems expands the template for projectType into quantified line
// items. Unknown project types use the custom catalog, and the per-square
// quantity never drops below one square even for tiny footprints.
func buildLineItems(projectType string, squareFootage float64) []transport.LineItem {
	catalog, ok := templates[projectType]
	if !ok {
		catalog = templates[customProjectType]
	}

	squares := math.Max(squareFootage/100, 1)

	items := make([]transport.LineItem, 0, len(catalog))
	for _, tpl := range catalog {
		qty := 1.0
		if tpl.perSquare {
			qty = squares
		}
		items = append(items, transport.LineItem{
			Name:       tpl.name,
			Category:   tpl.category,
			Quantity:   round2(qty),
			Unit:       tpl.unit,
			UnitCost:   tpl.unitCost,
			UnitPrice:  tpl.unitPrice,
			TotalCost:  round2(qty * tpl.unitCost),
			TotalPrice: round2(qty * tpl.unitPrice),
		})
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
