// Package testutil provides helpers shared by package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/infrastructure/database"
	"github.com/sangkips/tradenet-api/pkg/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory SQLite database closed at test end.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(":memory:", "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CreateProduct inserts a product released on 2024-03-04.
func CreateProduct(t *testing.T, db *gorm.DB, name string) *entity.Product {
	t.Helper()

	p := &entity.Product{
		Name:  name,
		Model: name,
		Date:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

// CreateLink inserts a link with one contact in the given country and
// attaches products. The save hook computes the level.
func CreateLink(t *testing.T, db *gorm.DB, name string, status enum.LinkStatus, supplier *entity.Link, country string, products ...*entity.Product) *entity.Link {
	t.Helper()

	link := &entity.Link{
		Name:       name,
		StatusLink: status,
	}
	if supplier != nil {
		link.SupplierID = &supplier.ID
	}
	ctx := context.Background()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Products", "Contacts", "Supplier").Create(link).Error; err != nil {
			return err
		}
		for _, p := range products {
			if err := tx.Exec("INSERT INTO link_products (link_id, product_id) VALUES (?, ?)", link.ID, p.ID).Error; err != nil {
				return err
			}
			link.Products = append(link.Products, *p)
		}
		contact := entity.Contact{
			LinkID:   link.ID,
			Email:    "test@test.com",
			Country:  country,
			City:     "City of " + name,
			Street:   "test",
			NumHouse: "12",
		}
		if err := tx.Create(&contact).Error; err != nil {
			return err
		}
		link.Contacts = []entity.Contact{contact}
		return nil
	})
	require.NoError(t, err)
	return link
}

// CreateUser inserts a user with password "0000".
func CreateUser(t *testing.T, db *gorm.DB, email string, active, staff bool) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword("0000")
	require.NoError(t, err)
	u := &entity.User{
		ID:       uuid.New(),
		Email:    email,
		Password: hash,
		IsActive: active,
		IsStaff:  staff,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
