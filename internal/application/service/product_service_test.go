package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	domainRepo "github.com/sangkips/tradenet-api/internal/domain/repository"
	"github.com/sangkips/tradenet-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CRUD(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	created, err := s.products.CreateProduct(ctx, &service.CreateProductInput{
		Name: "test", Model: "test", Date: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	model := "test_2"
	updated, err := s.products.UpdateProduct(ctx, &service.UpdateProductInput{ID: created.ID, Model: &model})
	require.NoError(t, err)
	assert.Equal(t, "test", updated.Name)
	assert.Equal(t, "test_2", updated.Model)

	got, err := s.products.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "test_2", got.Model)

	products, total, err := s.products.ListProducts(ctx, &domainRepo.ProductFilterParams{Search: "TES"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, products, 1)

	require.NoError(t, s.products.DeleteProduct(ctx, created.ID))
	_, err = s.products.GetProduct(ctx, created.ID)
	requireAppError(t, err, http.StatusNotFound, map[string]any{"detail": "No Product matches the given query."})
}

func TestProductService_DeleteKeepsLinks(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := testutil.CreateProduct(t, s.db, "test")
	f := testutil.CreateLink(t, s.db, "F", enum.LinkStatusFactory, nil, "Russia", p)

	require.NoError(t, s.products.DeleteProduct(ctx, p.ID))

	link, err := s.links.GetLink(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, link.Products)
}

func TestProductService_Suppliers(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	p := testutil.CreateProduct(t, s.db, "test")
	f := testutil.CreateLink(t, s.db, "F", enum.LinkStatusFactory, nil, "Russia", p)
	testutil.CreateLink(t, s.db, "E", enum.LinkStatusEntrepreneur, f, "Russia", p)
	testutil.CreateLink(t, s.db, "Other", enum.LinkStatusFactory, nil, "Russia")

	out, err := s.products.Suppliers(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"F", "E"}, out.Suppliers)
	assert.Equal(t, "F, E", out.SupplierList())
}
