package product

type Product struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     int64   `json:"price"`
	Weight    float64 `json:"weight"`
	Unit      string  `json:"unit"`
}
