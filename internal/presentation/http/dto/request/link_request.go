package request

// ContactRequest is one contact of a link
type ContactRequest struct {
	Email    string `json:"email" binding:"required,email,max=100"`
	Country  string `json:"country" binding:"required,max=100"`
	City     string `json:"city" binding:"required,max=100"`
	Street   string `json:"street" binding:"required,max=100"`
	NumHouse string `json:"num_house" binding:"required,max=10"`
}

// CreateLinkRequest represents a link creation request. Debt and level are
// not accepted from clients.
type CreateLinkRequest struct {
	StatusLink string           `json:"status_link" binding:"required"`
	Supplier   *string          `json:"supplier"`
	Name       string           `json:"name" binding:"required,max=100"`
	Products   []string         `json:"products"`
	Contact    []ContactRequest `json:"contact" binding:"required,min=1,dive"`
}

// UpdateLinkRequest serves both PUT and PATCH. PUT additionally requires
// status_link, name and contact.
type UpdateLinkRequest struct {
	StatusLink *string           `json:"status_link"`
	Supplier   OptionalID        `json:"supplier"`
	Name       *string           `json:"name" binding:"omitempty,max=100"`
	Products   *[]string         `json:"products"`
	Contact    *[]ContactRequest `json:"contact" binding:"omitempty,min=1,dive"`
}

// LinkFilterRequest represents link list filters
type LinkFilterRequest struct {
	Country    string `form:"country"`
	City       string `form:"city"`
	StatusLink string `form:"status_link"`
	Supplier   string `form:"supplier"`
	Search     string `form:"search"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// ClearDebtRequest selects the links whose debt is cleared
type ClearDebtRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
