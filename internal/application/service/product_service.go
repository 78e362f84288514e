package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/pagination"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	linkRepo    repository.LinkRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, linkRepo repository.LinkRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		linkRepo:    linkRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name  string
	Model string
	Date  time.Time
}

// UpdateProductInput represents a full or partial product update
type UpdateProductInput struct {
	ID    uuid.UUID
	Name  *string
	Model *string
	Date  *time.Time
}

// ProductSuppliers lists the links that carry a product.
type ProductSuppliers struct {
	Product   *entity.Product
	Suppliers []string
}

// SupplierList joins the supplier names for display.
func (p *ProductSuppliers) SupplierList() string {
	return strings.Join(p.Suppliers, ", ")
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:  input.Name,
		Model: input.Model,
		Date:  input.Date,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	log.Info().Str("product_id", product.ID.String()).Msg("product created")
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	return s.productRepo.List(ctx, params)
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Model != nil {
		product.Model = *input.Model
	}
	if input.Date != nil {
		product.Date = *input.Date
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product. Links that carried it simply lose it.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("product_id", id.String()).Msg("product deleted")
	return nil
}

// Suppliers returns the names of the links carrying the product, upstream first.
func (s *ProductService) Suppliers(ctx context.Context, id uuid.UUID) (*ProductSuppliers, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	links, err := s.linkRepo.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(links))
	for _, l := range links {
		names = append(names, l.Name)
	}
	return &ProductSuppliers{Product: product, Suppliers: names}, nil
}
