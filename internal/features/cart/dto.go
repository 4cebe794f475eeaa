package cart

// CartProductDTO is one scanned entry as shown to the cashier. Repeated
// scans of the same product appear as repeated entries, in scan order.
type CartProductDTO struct {
	Name   string  `json:"name"`
	Price  int64   `json:"price"`
	Weight float64 `json:"weight"`
	Unit   string  `json:"unit"`
}

type CurrentInvoiceResponse struct {
	Cashier        string            `json:"cashier"`
	ListOfProducts []*CartProductDTO `json:"list_of_products"`
}

// scanResult is what a committed scan reports back to the service.
type scanResult struct {
	ProductID   int64
	ProductName string
	Remaining   int64
}
