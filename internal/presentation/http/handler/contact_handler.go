package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/request"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tradenet-api/pkg/apperror"
)

// ContactHandler handles contact requests
type ContactHandler struct {
	contactService *service.ContactService
	pageSize       int
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService, pageSize int) *ContactHandler {
	return &ContactHandler{contactService: contactService, pageSize: pageSize}
}

// List handles listing contacts
// @Router /contact/ [get]
func (h *ContactHandler) List(c *gin.Context) {
	var filter request.ContactFilterRequest
	if !bindListQuery(c, &filter) {
		return
	}

	params := &repository.ContactFilterParams{
		Pagination: paginationParams(filter.Page, filter.PageSize, h.pageSize),
		Country:    filter.Country,
		City:       filter.City,
	}
	if filter.Link != "" {
		linkID, err := uuid.Parse(filter.Link)
		if err != nil {
			response.Error(c, apperror.NewFieldError("link", msgInvalidFilterChoice))
			return
		}
		params.LinkID = &linkID
	}

	contacts, total, err := h.contactService.ListContacts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, response.NewContactDetailResponses(contacts), params.Pagination, total)
}

// Create handles attaching a contact to a link
// @Router /contact/ [post]
func (h *ContactHandler) Create(c *gin.Context) {
	var req request.CreateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := apperror.FieldErrors{}
	linkID, _ := parseID("link", req.Link, fields)
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), &service.CreateContactInput{
		LinkID: linkID,
		ContactInput: service.ContactInput{
			Email:    req.Email,
			Country:  req.Country,
			City:     req.City,
			Street:   req.Street,
			NumHouse: req.NumHouse,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.NewContactDetailResponse(contact))
}

// Get handles getting a contact by ID
// @Router /contact/{id}/ [get]
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Contact")
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewContactDetailResponse(contact))
}

// Update handles PUT and PATCH on a contact
// @Router /contact/{id}/ [put]
// @Router /contact/{id}/ [patch]
func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Contact")
	if !ok {
		return
	}

	var req request.UpdateContactRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := apperror.FieldErrors{}
	if c.Request.Method == http.MethodPut {
		required := map[string]bool{
			"link":      req.Link == nil,
			"email":     req.Email == nil,
			"country":   req.Country == nil,
			"city":      req.City == nil,
			"street":    req.Street == nil,
			"num_house": req.NumHouse == nil,
		}
		for field, missing := range required {
			if missing {
				fields.Add(field, msgRequired)
			}
		}
	}

	input := &service.UpdateContactInput{
		ID:       id,
		Email:    req.Email,
		Country:  req.Country,
		City:     req.City,
		Street:   req.Street,
		NumHouse: req.NumHouse,
	}
	if req.Link != nil {
		if linkID, ok := parseID("link", *req.Link, fields); ok {
			input.LinkID = &linkID
		}
	}
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewContactDetailResponse(contact))
}

// Delete handles deleting a contact
// @Router /contact/{id}/ [delete]
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Contact")
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
