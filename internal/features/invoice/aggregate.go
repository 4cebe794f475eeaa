package invoice

// LineAccumulator folds scanned cart entries into quantity-aggregated
// invoice lines keyed by product name. First occurrence of a name snapshots
// the product's attributes; later occurrences only bump the quantity. Lines
// come back out in first-occurrence order.
//
// Keying by name rather than id merges distinct ids sharing a name; the
// catalog enforces name uniqueness, so this is safe.
type LineAccumulator struct {
	order []string
	lines map[string]*InvoiceLine
}

func NewLineAccumulator() *LineAccumulator {
	return &LineAccumulator{
		lines: make(map[string]*InvoiceLine),
	}
}

func (a *LineAccumulator) Add(name string, price int64, weight float64, unit string) {
	line, exists := a.lines[name]
	if !exists {
		a.order = append(a.order, name)
		a.lines[name] = &InvoiceLine{
			Name:     name,
			Price:    price,
			Weight:   weight,
			Unit:     unit,
			Quantity: 1,
		}
		return
	}

	line.Quantity++
}

func (a *LineAccumulator) Lines() []*InvoiceLine {
	lines := make([]*InvoiceLine, 0, len(a.order))
	for _, name := range a.order {
		lines = append(lines, a.lines[name])
	}

	return lines
}

// ProductTotals is one product's rollup inside a sales report.
type ProductTotals struct {
	Quantity   int64 `json:"quantity"`
	TotalPrice int64 `json:"total_price"`
}

// ReportAccumulator folds invoice lines across invoices into per-product
// totals plus a running grand total.
type ReportAccumulator struct {
	products     map[string]*ProductTotals
	totalProfits int64
}

func NewReportAccumulator() *ReportAccumulator {
	return &ReportAccumulator{
		products: make(map[string]*ProductTotals),
	}
}

func (a *ReportAccumulator) AddLine(line *InvoiceLine) {
	linePrice := line.Quantity * line.Price

	totals, exists := a.products[line.Name]
	if !exists {
		a.products[line.Name] = &ProductTotals{
			Quantity:   line.Quantity,
			TotalPrice: linePrice,
		}
	} else {
		totals.Quantity += line.Quantity
		totals.TotalPrice += linePrice
	}

	a.totalProfits += linePrice
}

// Products returns the per-product rollups. encoding/json marshals map keys
// in sorted order, so report output stays deterministic.
func (a *ReportAccumulator) Products() map[string]*ProductTotals {
	return a.products
}

func (a *ReportAccumulator) TotalProfits() int64 {
	return a.totalProfits
}
