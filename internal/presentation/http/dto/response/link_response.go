package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ContactResponse is a contact as nested in a link
type ContactResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Country  string    `json:"country"`
	City     string    `json:"city"`
	Street   string    `json:"street"`
	NumHouse string    `json:"num_house"`
}

// LinkResponse is the representation returned by list, create and update:
// products and supplier as ids.
type LinkResponse struct {
	ID         uuid.UUID         `json:"id"`
	StatusLink string            `json:"status_link"`
	Supplier   *uuid.UUID        `json:"supplier"`
	Name       string            `json:"name"`
	Level      int               `json:"level"`
	Products   []uuid.UUID       `json:"products"`
	Debt       *string           `json:"debt"`
	Contact    []ContactResponse `json:"contact"`
}

// LinkDetailResponse is the representation of a single link: nested products
// and the supplier rendered as its display string.
type LinkDetailResponse struct {
	ID         uuid.UUID         `json:"id"`
	StatusLink string            `json:"status_link"`
	Supplier   *string           `json:"supplier"`
	Name       string            `json:"name"`
	Level      int               `json:"level"`
	Products   []ProductResponse `json:"products"`
	Debt       *string           `json:"debt"`
	Contact    []ContactResponse `json:"contact"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewLinkResponse converts a link to its write representation
func NewLinkResponse(l *entity.Link) LinkResponse {
	return LinkResponse{
		ID:         l.ID,
		StatusLink: l.StatusLink.Display(),
		Supplier:   l.SupplierID,
		Name:       l.Name,
		Level:      l.Level,
		Products:   l.ProductIDs(),
		Debt:       debtString(l.Debt),
		Contact:    newContactResponses(l.Contacts),
	}
}

// NewLinkResponses converts a page of links
func NewLinkResponses(links []entity.Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for i := range links {
		out = append(out, NewLinkResponse(&links[i]))
	}
	return out
}

// NewLinkDetailResponse converts a link to its read representation
func NewLinkDetailResponse(l *entity.Link) LinkDetailResponse {
	var supplier *string
	if l.Supplier != nil {
		s := l.Supplier.String()
		supplier = &s
	}
	products := make([]ProductResponse, 0, len(l.Products))
	for i := range l.Products {
		products = append(products, NewProductResponse(&l.Products[i]))
	}
	return LinkDetailResponse{
		ID:         l.ID,
		StatusLink: l.StatusLink.Display(),
		Supplier:   supplier,
		Name:       l.Name,
		Level:      l.Level,
		Products:   products,
		Debt:       debtString(l.Debt),
		Contact:    newContactResponses(l.Contacts),
		CreatedAt:  l.CreatedAt,
	}
}

// debtString renders money with two decimals, null when unset.
func debtString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}

func newContactResponses(contacts []entity.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactResponse{
			ID:       c.ID,
			Email:    c.Email,
			Country:  c.Country,
			City:     c.City,
			Street:   c.Street,
			NumHouse: c.NumHouse,
		})
	}
	return out
}
