package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/request"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tradenet-api/pkg/apperror"
)

// AdminHandler serves the staff-only actions
type AdminHandler struct {
	linkService    *service.LinkService
	productService *service.ProductService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(linkService *service.LinkService, productService *service.ProductService) *AdminHandler {
	return &AdminHandler{
		linkService:    linkService,
		productService: productService,
	}
}

// ClearDebt sets the debt of the selected links to null
// @Router /admin/link/clear-debt/ [post]
func (h *AdminHandler) ClearDebt(c *gin.Context) {
	var req request.ClearDebtRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := apperror.FieldErrors{}
	ids := parseIDs("ids", req.IDs, fields)
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	out, err := h.linkService.ClearDebt(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, out)
}

// ProductSuppliers lists the links carrying a product
// @Router /admin/product/{id}/suppliers/ [get]
func (h *AdminHandler) ProductSuppliers(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}

	suppliers, err := h.productService.Suppliers(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewProductSuppliersResponse(suppliers))
}
