package service_test

import (
	"testing"
	"time"

	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/infrastructure/repository"
	"github.com/sangkips/tradenet-api/internal/testutil"
	"github.com/sangkips/tradenet-api/pkg/apperror"
	"github.com/sangkips/tradenet-api/pkg/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type services struct {
	db       *gorm.DB
	links    *service.LinkService
	products *service.ProductService
	contacts *service.ContactService
	auth     *service.AuthService
}

func newServices(t *testing.T) *services {
	t.Helper()
	db := testutil.NewDB(t)
	linkRepo := repository.NewLinkRepository(db)
	productRepo := repository.NewProductRepository(db)
	return &services{
		db:       db,
		links:    service.NewLinkService(linkRepo, productRepo),
		products: service.NewProductService(productRepo, linkRepo),
		contacts: service.NewContactService(repository.NewContactRepository(db), linkRepo),
		auth: service.NewAuthService(
			repository.NewUserRepository(db),
			utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour),
		),
	}
}

// requireAppError asserts err is an AppError with the given status and body.
func requireAppError(t *testing.T, err error, code int, body map[string]any) {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err), "unexpected error: %v", err)
	appErr := apperror.GetAppError(err)
	require.Equal(t, code, appErr.Code)
	require.Equal(t, body, appErr.Body())
}
