package product

// Requests
//
// Numeric fields arrive as strings on the wire; range checks happen in the
// service after parsing.

type CreateProductRequest struct {
	Name   string `json:"name" validate:"required,min=3,max=100,alphaspace"`
	Price  string `json:"price" validate:"required,number"`
	Weight string `json:"weight" validate:"required,numeric"`
	Unit   string `json:"unit" validate:"required,oneof=mg g kg"`
}

type AddStockRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity string `json:"quantity" validate:"required,number"`
}

// Responses

type ProductAndStockDTO struct {
	Product
	Quantity int64 `json:"quantity"`
}

type ListProductsResponse struct {
	ListOfProducts []*ProductAndStockDTO `json:"list_of_products"`
}
