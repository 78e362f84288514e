package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/hierarchy"
	domainRepo "github.com/sangkips/tradenet-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *gorm.DB) domainRepo.LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("products.name ASC") }).
		Preload("Contacts")
}

// Create inserts the link, its contacts and its product associations atomically.
func (r *linkRepository) Create(ctx context.Context, link *entity.Link) error {
	contacts := link.Contacts
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(link).Error; err != nil {
			return err
		}
		if err := replaceProducts(tx, link); err != nil {
			return err
		}
		return insertContacts(tx, link.ID, contacts)
	})
}

func (r *linkRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var link entity.Link
	err := r.preloaded(ctx).First(&link, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &link, err
}

func (r *linkRepository) GetByName(ctx context.Context, name string) (*entity.Link, error) {
	var link entity.Link
	err := r.db.WithContext(ctx).First(&link, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &link, err
}

// Update saves the link row, optionally replaces its associations and
// refreshes the stored level of every descendant, all in one transaction.
func (r *linkRepository) Update(ctx context.Context, link *entity.Link, opts domainRepo.LinkUpdateOptions) error {
	contacts := link.Contacts
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(link).Error; err != nil {
			return err
		}
		if opts.ReplaceProducts {
			if err := replaceProducts(tx, link); err != nil {
				return err
			}
		}
		if opts.ReplaceContacts {
			if err := tx.Where("link_id = ?", link.ID).Delete(&entity.Contact{}).Error; err != nil {
				return err
			}
			if err := insertContacts(tx, link.ID, contacts); err != nil {
				return err
			}
		}
		return refreshDescendantLevels(tx, link.ID, link.Level)
	})
}

// Delete removes the subtree rooted at id, deepest links first.
func (r *linkRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		levels, err := subtree(tx, id)
		if err != nil {
			return err
		}
		for i := len(levels) - 1; i >= 0; i-- {
			ids := levels[i]
			if err := tx.Where("link_id IN ?", ids).Delete(&entity.Contact{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM link_products WHERE link_id IN ?", ids).Error; err != nil {
				return err
			}
			res := tx.Where("id IN ?", ids).Delete(&entity.Link{})
			if res.Error != nil {
				return res.Error
			}
			removed += res.RowsAffected
		}
		return nil
	})
	return removed, err
}

func (r *linkRepository) List(ctx context.Context, params *domainRepo.LinkFilterParams) ([]entity.Link, int64, error) {
	var links []entity.Link
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Link{}).
		Scopes(
			ContactCountryScope(params.Country),
			ContactCityScope(params.City),
			NameSearchScope(params.Search),
		)

	if params.Status != nil {
		query = query.Where("status_link = ?", *params.Status)
	}
	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Supplier").
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("products.name ASC") }).
		Preload("Contacts").
		Order("level ASC").Order("created_at ASC").Order("name ASC").
		Find(&links).Error

	return links, total, err
}

func (r *linkRepository) ClearDebt(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&entity.Link{}).
		Where("id IN ?", ids).
		Update("debt", gorm.Expr("NULL"))
	return res.RowsAffected, res.Error
}

func (r *linkRepository) Dependents(ctx context.Context, id uuid.UUID) ([]entity.Link, error) {
	var links []entity.Link
	err := r.db.WithContext(ctx).
		Preload("Products").
		Where("supplier_id = ?", id).
		Order("name ASC").
		Find(&links).Error
	return links, err
}

func (r *linkRepository) SubtreeHeight(ctx context.Context, id uuid.UUID) (int, error) {
	return entity.SubtreeHeight(ctx, r.db, id)
}

func (r *linkRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.Link, error) {
	var links []entity.Link
	err := r.db.WithContext(ctx).
		Joins("JOIN link_products ON link_products.link_id = links.id").
		Where("link_products.product_id = ?", productID).
		Order("links.level ASC").Order("links.name ASC").
		Find(&links).Error
	return links, err
}

func (r *linkRepository) Lookup() hierarchy.LookupFunc {
	return entity.SupplierLookup(r.db)
}

// replaceProducts makes link.Products the exact product set of the link.
// Hooks are skipped so the association save does not re-enter BeforeSave.
func replaceProducts(tx *gorm.DB, link *entity.Link) error {
	if len(link.Products) == 0 {
		return tx.Exec("DELETE FROM link_products WHERE link_id = ?", link.ID).Error
	}
	return tx.Session(&gorm.Session{SkipHooks: true}).
		Model(link).
		Association("Products").
		Replace(link.Products)
}

func insertContacts(tx *gorm.DB, linkID uuid.UUID, contacts []entity.Contact) error {
	if len(contacts) == 0 {
		return nil
	}
	for i := range contacts {
		contacts[i].ID = uuid.Nil
		contacts[i].LinkID = linkID
	}
	return tx.Create(&contacts).Error
}

// subtree returns the ids of the subtree rooted at id grouped by depth.
func subtree(tx *gorm.DB, id uuid.UUID) ([][]uuid.UUID, error) {
	levels := [][]uuid.UUID{{id}}
	for len(levels) <= hierarchy.MaxLevel+1 {
		var children []uuid.UUID
		if err := tx.Model(&entity.Link{}).
			Where("supplier_id IN ?", levels[len(levels)-1]).
			Pluck("id", &children).Error; err != nil {
			return nil, err
		}
		if len(children) == 0 {
			break
		}
		levels = append(levels, children)
	}
	return levels, nil
}

// refreshDescendantLevels rewrites the level column below id. Hooks are
// skipped; the new levels follow from a parent that already passed validation.
func refreshDescendantLevels(tx *gorm.DB, id uuid.UUID, level int) error {
	frontier := []uuid.UUID{id}
	for depth := level + 1; depth <= hierarchy.MaxLevel+1; depth++ {
		var children []uuid.UUID
		if err := tx.Model(&entity.Link{}).
			Where("supplier_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return err
		}
		if len(children) == 0 {
			return nil
		}
		if err := tx.Model(&entity.Link{}).
			Where("id IN ?", children).
			UpdateColumn("level", depth).Error; err != nil {
			return err
		}
		frontier = children
	}
	return nil
}
