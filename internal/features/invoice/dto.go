package invoice

// Requests

type ReportRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

// Responses

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ReportData struct {
	Date         DateRange                 `json:"date"`
	TotalProfits int64                     `json:"total_profits"`
	Products     map[string]*ProductTotals `json:"products"`
}

type ReportResponse struct {
	Report *ReportData `json:"report"`
}
