package request

// CreateContactRequest represents a contact creation request
type CreateContactRequest struct {
	Link     string `json:"link" binding:"required"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Country  string `json:"country" binding:"required,max=100"`
	City     string `json:"city" binding:"required,max=100"`
	Street   string `json:"street" binding:"required,max=100"`
	NumHouse string `json:"num_house" binding:"required,max=10"`
}

// UpdateContactRequest represents a contact update request
type UpdateContactRequest struct {
	Link     *string `json:"link"`
	Email    *string `json:"email" binding:"omitempty,email,max=100"`
	Country  *string `json:"country" binding:"omitempty,max=100"`
	City     *string `json:"city" binding:"omitempty,max=100"`
	Street   *string `json:"street" binding:"omitempty,max=100"`
	NumHouse *string `json:"num_house" binding:"omitempty,max=10"`
}

// ContactFilterRequest represents contact list filters
type ContactFilterRequest struct {
	Link     string `form:"link"`
	Country  string `form:"country"`
	City     string `form:"city"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
