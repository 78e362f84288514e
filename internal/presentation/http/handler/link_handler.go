package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/request"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tradenet-api/pkg/apperror"
)

const msgInvalidFilterChoice = "Select a valid choice. That choice is not one of the available choices."

// LinkHandler handles trading network link requests
type LinkHandler struct {
	linkService *service.LinkService
	pageSize    int
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkService *service.LinkService, pageSize int) *LinkHandler {
	return &LinkHandler{linkService: linkService, pageSize: pageSize}
}

// List handles listing links
// @Router /link/ [get]
func (h *LinkHandler) List(c *gin.Context) {
	var filter request.LinkFilterRequest
	if !bindListQuery(c, &filter) {
		return
	}

	params := &repository.LinkFilterParams{
		Pagination: paginationParams(filter.Page, filter.PageSize, h.pageSize),
		Country:    filter.Country,
		City:       filter.City,
		Search:     filter.Search,
	}

	fields := apperror.FieldErrors{}
	if filter.StatusLink != "" {
		status, err := enum.ParseLinkStatus(filter.StatusLink)
		if err != nil {
			fields.Add("status_link", msgInvalidFilterChoice)
		} else {
			params.Status = &status
		}
	}
	if filter.Supplier != "" {
		supplierID, err := uuid.Parse(filter.Supplier)
		if err != nil {
			fields.Add("supplier", msgInvalidFilterChoice)
		} else {
			params.SupplierID = &supplierID
		}
	}
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	links, total, err := h.linkService.ListLinks(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, response.NewLinkResponses(links), params.Pagination, total)
}

// Create handles creating a link with its contacts
// @Router /link/ [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req request.CreateLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := apperror.FieldErrors{}
	input := &service.CreateLinkInput{
		StatusLink: parseStatus(req.StatusLink, fields),
		Name:       req.Name,
		ProductIDs: parseIDs("products", req.Products, fields),
		Contacts:   contactInputs(req.Contact),
	}
	if req.Supplier != nil {
		if id, ok := parseID("supplier", *req.Supplier, fields); ok {
			input.SupplierID = &id
		}
	}
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	link, err := h.linkService.CreateLink(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.NewLinkResponse(link))
}

// Get handles getting a link with nested products and contacts
// @Router /link/{id}/ [get]
func (h *LinkHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Link")
	if !ok {
		return
	}

	link, err := h.linkService.GetLink(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewLinkDetailResponse(link))
}

// Update handles PUT and PATCH. PUT must carry status_link, name and contact.
// @Router /link/{id}/ [put]
// @Router /link/{id}/ [patch]
func (h *LinkHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Link")
	if !ok {
		return
	}

	var req request.UpdateLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := apperror.FieldErrors{}
	if c.Request.Method == http.MethodPut {
		if req.StatusLink == nil {
			fields.Add("status_link", msgRequired)
		}
		if req.Name == nil {
			fields.Add("name", msgRequired)
		}
		if req.Contact == nil {
			fields.Add("contact", msgRequired)
		}
	}

	input := &service.UpdateLinkInput{ID: id, Name: req.Name}
	if req.StatusLink != nil {
		status := parseStatus(*req.StatusLink, fields)
		input.StatusLink = &status
	}
	if req.Supplier.Set {
		input.SupplierSet = true
		if req.Supplier.Value != nil {
			if supplierID, ok := parseID("supplier", *req.Supplier.Value, fields); ok {
				input.SupplierID = &supplierID
			}
		}
	}
	if req.Products != nil {
		input.ProductsSet = true
		input.ProductIDs = parseIDs("products", *req.Products, fields)
	}
	if req.Contact != nil {
		input.Contacts = contactInputs(*req.Contact)
	}
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	link, err := h.linkService.UpdateLink(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewLinkResponse(link))
}

// Delete handles deleting a link and everything it supplies
// @Router /link/{id}/ [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Link")
	if !ok {
		return
	}

	if err := h.linkService.DeleteLink(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

func contactInputs(reqs []request.ContactRequest) []service.ContactInput {
	inputs := make([]service.ContactInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, service.ContactInput{
			Email:    r.Email,
			Country:  r.Country,
			City:     r.City,
			Street:   r.Street,
			NumHouse: r.NumHouse,
		})
	}
	return inputs
}
