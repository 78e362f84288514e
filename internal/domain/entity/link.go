package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/domain/hierarchy"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Link is a node of the trading network: a factory, a retail network or an
// entrepreneur, optionally supplied by another link.
type Link struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	StatusLink enum.LinkStatus     `gorm:"column:status_link;size:30;not null" json:"status_link"`
	SupplierID *uuid.UUID          `gorm:"type:uuid;index" json:"supplier"`
	Name       string              `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Level      int                 `gorm:"not null;default:0" json:"level"`
	Debt       decimal.NullDecimal `gorm:"type:decimal(20,2)" json:"debt"`
	CreatedAt  time.Time           `gorm:"<-:create" json:"created_at"`

	// Relationships
	Supplier *Link     `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"-"`
	Products []Product `gorm:"many2many:link_products;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	Contacts []Contact `gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE" json:"contact,omitempty"`
}

// BeforeCreate generates a UUID before creating a new link
func (l *Link) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// BeforeSave re-checks the hierarchy against the data visible to the writing
// transaction and recomputes Level. It runs for every Create and Save, so
// writes that bypass the service layer follow the same rules.
func (l *Link) BeforeSave(tx *gorm.DB) error {
	ctx := tx.Statement.Context
	// a fresh statement on the same connection; the Save statement must not leak
	// its model and destination into the lookups below
	db := tx.Session(&gorm.Session{NewDB: true, Initialized: true})
	lookup := SupplierLookup(db)

	candidate := l.Candidate()
	if l.ID != uuid.Nil {
		height, err := SubtreeHeight(ctx, db, l.ID)
		if err != nil {
			return err
		}
		candidate.Height = height
	}

	res, err := hierarchy.CheckHierarchy(ctx, candidate, lookup)
	if err != nil {
		return err
	}
	if len(l.Products) > 0 {
		products, err := hierarchy.CheckProducts(ctx, candidate, lookup)
		if err != nil {
			return err
		}
		res.Violations = append(res.Violations, products.Violations...)
	}
	if err := res.Err(); err != nil {
		return err
	}

	level, err := hierarchy.Level(ctx, l.SupplierID, lookup)
	if err != nil {
		return err
	}
	l.Level = level
	return nil
}

// TableName returns the table name for the Link model
func (Link) TableName() string {
	return "links"
}

// Candidate describes the link for the hierarchy validators.
func (l *Link) Candidate() hierarchy.Candidate {
	products := make([]hierarchy.Product, 0, len(l.Products))
	for _, p := range l.Products {
		products = append(products, hierarchy.Product{ID: p.ID, Name: p.Name})
	}
	return hierarchy.Candidate{
		ID:         l.ID,
		Status:     l.StatusLink,
		SupplierID: l.SupplierID,
		HasDebt:    l.Debt.Valid,
		Products:   products,
	}
}

// ProductIDs returns the ids of the loaded products.
func (l *Link) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l.Products))
	for _, p := range l.Products {
		ids = append(ids, p.ID)
	}
	return ids
}

func (l Link) String() string {
	return fmt.Sprintf("%s - %s (уровень - %d)", l.StatusLink.Display(), l.Name, l.Level)
}
