package handler_test

import (
	"net/http"
	"testing"

	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_CRUD(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/product/", s.userToken, map[string]any{
		"name": "phone", "model": "X1", "date": "2024-03-04",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, "2024-03-04", created["date"])
	path := "/product/" + created["id"].(string) + "/"

	w = s.do(http.MethodPatch, path, s.userToken, map[string]any{"model": "X2"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "X2", decode(t, w)["model"])

	w = s.do(http.MethodPut, path, s.userToken, map[string]any{"name": "tablet"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Contains(t, body, "model")
	assert.Contains(t, body, "date")

	w = s.do(http.MethodGet, "/product/?search=pho", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = s.do(http.MethodDelete, path, s.userToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, path, s.userToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No Product matches the given query.", decode(t, w)["detail"])
}

func TestProductHandler_CreateRejected(t *testing.T) {
	s := newServer(t)

	w := s.do(http.MethodPost, "/product/", s.userToken, map[string]any{
		"name": "phone", "model": "X1", "date": "04.03.2024",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t,
		[]any{"Date has wrong format. Use one of these formats instead: YYYY-MM-DD."},
		errorsOf(t, w, "date"))

	w = s.do(http.MethodPost, "/product/", s.userToken, `{"name": 5}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{"Incorrect type."}, errorsOf(t, w, "name"))

	w = s.do(http.MethodPost, "/product/", s.userToken, `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["detail"], "JSON parse error")
}

func TestAdminHandler_ProductSuppliers(t *testing.T) {
	s := newServer(t)
	p := testutil.CreateProduct(t, s.db, "phone")
	f := testutil.CreateLink(t, s.db, "F", enum.LinkStatusFactory, nil, "Russia", p)
	testutil.CreateLink(t, s.db, "E", enum.LinkStatusEntrepreneur, f, "Russia", p)
	path := "/admin/product/" + p.ID.String() + "/suppliers/"

	w := s.do(http.MethodGet, path, s.userToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, path, s.adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, []any{"F", "E"}, body["suppliers"])
	assert.Equal(t, "F, E", body["supplier_list"])
	assert.Equal(t, "phone", body["name"])
}
