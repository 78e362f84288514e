package response

import (
	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
)

// ContactDetailResponse is a standalone contact, with its link id
type ContactDetailResponse struct {
	ContactResponse
	Link uuid.UUID `json:"link"`
}

// NewContactDetailResponse converts a contact
func NewContactDetailResponse(c *entity.Contact) ContactDetailResponse {
	return ContactDetailResponse{
		ContactResponse: newContactResponses([]entity.Contact{*c})[0],
		Link:            c.LinkID,
	}
}

// NewContactDetailResponses converts a page of contacts
func NewContactDetailResponses(contacts []entity.Contact) []ContactDetailResponse {
	out := make([]ContactDetailResponse, 0, len(contacts))
	for i := range contacts {
		out = append(out, NewContactDetailResponse(&contacts[i]))
	}
	return out
}
