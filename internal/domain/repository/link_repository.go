package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/domain/hierarchy"
	"github.com/sangkips/tradenet-api/pkg/pagination"
)

// LinkRepository defines the interface for trading network link operations.
// Writes that touch a link, its contacts and its products run in one transaction.
type LinkRepository interface {
	Create(ctx context.Context, link *entity.Link) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Link, error)
	GetByName(ctx context.Context, name string) (*entity.Link, error)
	Update(ctx context.Context, link *entity.Link, opts LinkUpdateOptions) error
	// Delete removes the link together with every dependent link and all their
	// contacts. It returns the number of links removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context, params *LinkFilterParams) ([]entity.Link, int64, error)
	// ClearDebt sets debt to NULL on the given links without running hooks.
	ClearDebt(ctx context.Context, ids []uuid.UUID) (int64, error)
	// Dependents returns the links directly supplied by id, with their products.
	Dependents(ctx context.Context, id uuid.UUID) ([]entity.Link, error)
	SubtreeHeight(ctx context.Context, id uuid.UUID) (int, error)
	// ListByProduct returns the links carrying the product, ordered by level.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.Link, error)
	// Lookup exposes committed supplier state to the hierarchy validators.
	Lookup() hierarchy.LookupFunc
}

// LinkUpdateOptions selects which associations Update replaces.
type LinkUpdateOptions struct {
	ReplaceProducts bool
	ReplaceContacts bool
}

// LinkFilterParams contains filtering parameters for link queries
type LinkFilterParams struct {
	Pagination *pagination.PaginationParams
	Country    string
	City       string
	Status     *enum.LinkStatus
	SupplierID *uuid.UUID
	Search     string
}
