package entity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/hierarchy"
	"gorm.io/gorm"
)

// maxSubtreeDepth stops SubtreeHeight on corrupted (cyclic) data.
const maxSubtreeDepth = 32

// SupplierLookup adapts a gorm handle to hierarchy.LookupFunc.
func SupplierLookup(db *gorm.DB) hierarchy.LookupFunc {
	return func(ctx context.Context, id uuid.UUID) (*hierarchy.Supplier, error) {
		var link Link
		err := db.WithContext(ctx).
			Select("id", "name", "supplier_id", "level").
			First(&link, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		var productIDs []uuid.UUID
		if err := db.WithContext(ctx).
			Table("link_products").
			Where("link_id = ?", id).
			Pluck("product_id", &productIDs).Error; err != nil {
			return nil, err
		}

		return &hierarchy.Supplier{
			ID:         link.ID,
			Name:       link.Name,
			SupplierID: link.SupplierID,
			Level:      link.Level,
			ProductIDs: productIDs,
		}, nil
	}
}

// SubtreeHeight returns how many levels of dependents hang below id.
func SubtreeHeight(ctx context.Context, db *gorm.DB, id uuid.UUID) (int, error) {
	height := 0
	frontier := []uuid.UUID{id}
	for height < maxSubtreeDepth {
		var children []uuid.UUID
		if err := db.WithContext(ctx).
			Model(&Link{}).
			Where("supplier_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return 0, err
		}
		if len(children) == 0 {
			return height, nil
		}
		height++
		frontier = children
	}
	return height, hierarchy.ErrCycle
}
