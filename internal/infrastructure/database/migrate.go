package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/pkg/utils"
	"gorm.io/gorm"
)

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("running database migrations")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Link{},
		&entity.Contact{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info().Msg("database migrations completed")
	return nil
}

// ErrSuperuserExists is returned by CreateSuperuser when the email is taken.
var ErrSuperuserExists = errors.New("user with this email already exists")

// CreateSuperuser creates an active staff superuser account.
func CreateSuperuser(ctx context.Context, db *gorm.DB, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSuperuserExists
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Email:       email,
		Password:    hashed,
		FirstName:   "admin",
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SeedSuperuser creates the configured superuser on startup. An existing
// account is left alone.
func SeedSuperuser(ctx context.Context, db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	user, err := CreateSuperuser(ctx, db, email, password)
	if errors.Is(err, ErrSuperuserExists) {
		log.Info().Str("email", email).Msg("superuser already exists")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("email", user.Email).Msg("superuser created")
	return nil
}
