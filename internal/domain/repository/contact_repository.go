package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/pkg/pagination"
)

// ContactRepository defines the interface for contact data operations
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ContactFilterParams) ([]entity.Contact, int64, error)
}

// ContactFilterParams contains filtering parameters for contact queries
type ContactFilterParams struct {
	Pagination *pagination.PaginationParams
	LinkID     *uuid.UUID
	Country    string
	City       string
}
