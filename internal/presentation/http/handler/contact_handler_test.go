package handler_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
	"github.com/sangkips/tradenet-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactHandler_CRUD(t *testing.T) {
	s := newServer(t)
	f := testutil.CreateLink(t, s.db, "F", enum.LinkStatusFactory, nil, "Russia")

	body := contactBody()
	body["link"] = f.ID.String()
	body["city"] = "Kazan"
	w := s.do(http.MethodPost, "/contact/", s.userToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	assert.Equal(t, f.ID.String(), created["link"])
	path := "/contact/" + created["id"].(string) + "/"

	w = s.do(http.MethodGet, "/contact/?link="+f.ID.String()+"&city=Kazan", s.userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["count"])

	w = s.do(http.MethodPatch, path, s.userToken, map[string]any{"num_house": "7"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "7", decode(t, w)["num_house"])

	w = s.do(http.MethodPut, path, s.userToken, map[string]any{"email": "x@test.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decode(t, w)
	assert.Contains(t, errs, "link")
	assert.NotContains(t, errs, "email")

	w = s.do(http.MethodDelete, path, s.userToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodGet, path, s.userToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestContactHandler_UnknownLink(t *testing.T) {
	s := newServer(t)

	missing := uuid.New()
	body := contactBody()
	body["link"] = missing.String()
	w := s.do(http.MethodPost, "/contact/", s.userToken, body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []any{`Invalid pk "` + missing.String() + `" - object does not exist.`}, errorsOf(t, w, "link"))
}
