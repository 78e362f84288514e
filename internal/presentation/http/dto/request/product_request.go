package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Model string `json:"model" binding:"required,max=100"`
	// Date is the market release date, YYYY-MM-DD.
	Date string `json:"date" binding:"required"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Model *string `json:"model" binding:"omitempty,max=100"`
	Date  *string `json:"date"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Model    string `form:"model"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
