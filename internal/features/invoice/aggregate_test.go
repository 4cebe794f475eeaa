package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineAccumulator_repeatedScansFoldIntoOneLine(t *testing.T) {
	acc := NewLineAccumulator()

	for i := 0; i < 3; i++ {
		acc.Add("Rice", 21500, 2.5, "kg")
	}

	lines := acc.Lines()
	require.Len(t, lines, 1)

	assert.Equal(t, "Rice", lines[0].Name)
	assert.Equal(t, int64(21500), lines[0].Price)
	assert.Equal(t, 2.5, lines[0].Weight)
	assert.Equal(t, "kg", lines[0].Unit)
	assert.Equal(t, int64(3), lines[0].Quantity)
}

func TestLineAccumulator_preservesFirstOccurrenceOrder(t *testing.T) {
	acc := NewLineAccumulator()

	acc.Add("Rice", 21500, 2.5, "kg")
	acc.Add("Salt", 3000, 500, "g")
	acc.Add("Rice", 21500, 2.5, "kg")
	acc.Add("Pepper", 8000, 100, "g")
	acc.Add("Salt", 3000, 500, "g")

	lines := acc.Lines()
	require.Len(t, lines, 3)

	assert.Equal(t, "Rice", lines[0].Name)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, "Salt", lines[1].Name)
	assert.Equal(t, int64(2), lines[1].Quantity)
	assert.Equal(t, "Pepper", lines[2].Name)
	assert.Equal(t, int64(1), lines[2].Quantity)
}

func TestLineAccumulator_emptyCartYieldsNoLines(t *testing.T) {
	acc := NewLineAccumulator()

	assert.Empty(t, acc.Lines())
}

func TestReportAccumulator_sumsAcrossInvoices(t *testing.T) {
	acc := NewReportAccumulator()

	// two invoices with overlapping product names
	acc.AddLine(&InvoiceLine{Name: "Rice", Price: 21500, Quantity: 3})
	acc.AddLine(&InvoiceLine{Name: "Salt", Price: 3000, Quantity: 1})
	acc.AddLine(&InvoiceLine{Name: "Rice", Price: 21500, Quantity: 2})

	products := acc.Products()
	require.Len(t, products, 2)

	assert.Equal(t, int64(5), products["Rice"].Quantity)
	assert.Equal(t, int64(5*21500), products["Rice"].TotalPrice)
	assert.Equal(t, int64(1), products["Salt"].Quantity)
	assert.Equal(t, int64(3000), products["Salt"].TotalPrice)

	assert.Equal(t, products["Rice"].TotalPrice+products["Salt"].TotalPrice, acc.TotalProfits())
}

func TestReportAccumulator_riceExample(t *testing.T) {
	acc := NewReportAccumulator()

	acc.AddLine(&InvoiceLine{Name: "Rice", Price: 21500, Weight: 2.5, Unit: "kg", Quantity: 3})

	assert.Equal(t, int64(64500), acc.TotalProfits())
	assert.Equal(t, int64(64500), acc.Products()["Rice"].TotalPrice)
	assert.Equal(t, int64(3), acc.Products()["Rice"].Quantity)
}
