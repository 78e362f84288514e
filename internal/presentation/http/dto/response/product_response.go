package response

import (
	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
)

// ProductResponse is the representation of a product
type ProductResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Model string    `json:"model"`
	Date  string    `json:"date"`
}

// ProductSuppliersResponse lists the links carrying a product
type ProductSuppliersResponse struct {
	ProductResponse
	Suppliers    []string `json:"suppliers"`
	SupplierList string   `json:"supplier_list"`
}

// NewProductResponse converts a product
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:    p.ID,
		Name:  p.Name,
		Model: p.Model,
		Date:  p.Date.Format(entity.DateLayout),
	}
}

// NewProductResponses converts a page of products
func NewProductResponses(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}

// NewProductSuppliersResponse converts the suppliers listing of a product
func NewProductSuppliersResponse(s *service.ProductSuppliers) ProductSuppliersResponse {
	return ProductSuppliersResponse{
		ProductResponse: NewProductResponse(s.Product),
		Suppliers:       s.Suppliers,
		SupplierList:    s.SupplierList(),
	}
}
