package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/request"
	"github.com/sangkips/tradenet-api/internal/presentation/http/dto/response"
	"github.com/sangkips/tradenet-api/pkg/apperror"
)

const msgBadDate = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
	pageSize       int
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService, pageSize int) *ProductHandler {
	return &ProductHandler{productService: productService, pageSize: pageSize}
}

// List handles listing products
// @Router /product/ [get]
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if !bindListQuery(c, &filter) {
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: paginationParams(filter.Page, filter.PageSize, h.pageSize),
		Search:     filter.Search,
		Model:      filter.Model,
	}

	products, total, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, response.NewProductResponses(products), params.Pagination, total)
}

// Create handles creating a product
// @Router /product/ [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		response.Error(c, apperror.NewFieldError("date", msgBadDate))
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:  req.Name,
		Model: req.Model,
		Date:  date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.NewProductResponse(product))
}

// Get handles getting a product by ID
// @Router /product/{id}/ [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewProductResponse(product))
}

// Update handles PUT and PATCH on a product
// @Router /product/{id}/ [put]
// @Router /product/{id}/ [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	fields := apperror.FieldErrors{}
	if c.Request.Method == http.MethodPut {
		if req.Name == nil {
			fields.Add("name", msgRequired)
		}
		if req.Model == nil {
			fields.Add("model", msgRequired)
		}
		if req.Date == nil {
			fields.Add("date", msgRequired)
		}
	}

	input := &service.UpdateProductInput{ID: id, Name: req.Name, Model: req.Model}
	if req.Date != nil {
		date, err := time.Parse(entity.DateLayout, *req.Date)
		if err != nil {
			fields.Add("date", msgBadDate)
		} else {
			input.Date = &date
		}
	}
	if len(fields) > 0 {
		response.Error(c, apperror.NewValidationError(fields))
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, response.NewProductResponse(product))
}

// Delete handles deleting a product
// @Router /product/{id}/ [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
