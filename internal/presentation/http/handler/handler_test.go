package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tradenet-api/internal/application/service"
	"github.com/sangkips/tradenet-api/internal/config"
	"github.com/sangkips/tradenet-api/internal/domain/entity"
	"github.com/sangkips/tradenet-api/internal/infrastructure/repository"
	"github.com/sangkips/tradenet-api/internal/presentation/http/handler"
	"github.com/sangkips/tradenet-api/internal/presentation/http/routes"
	"github.com/sangkips/tradenet-api/internal/testutil"
	"github.com/sangkips/tradenet-api/pkg/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	t          *testing.T
	db         *gorm.DB
	router     *gin.Engine
	adminToken string
	userToken  string
}

func newServer(t *testing.T) *testServer {
	t.Helper()

	db := testutil.NewDB(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	linkRepo := repository.NewLinkRepository(db)
	productRepo := repository.NewProductRepository(db)
	authService := service.NewAuthService(repository.NewUserRepository(db), jwtManager)
	linkService := service.NewLinkService(linkRepo, productRepo)
	productService := service.NewProductService(productRepo, linkRepo)
	contactService := service.NewContactService(repository.NewContactRepository(db), linkRepo)

	cfg := &config.Config{App: config.AppConfig{Name: "tradenet-test", PageSize: 15}}
	router := routes.Setup(&routes.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Link:    handler.NewLinkHandler(linkService, cfg.App.PageSize),
		Product: handler.NewProductHandler(productService, cfg.App.PageSize),
		Contact: handler.NewContactHandler(contactService, cfg.App.PageSize),
		Admin:   handler.NewAdminHandler(linkService, productService),
	}, &routes.Deps{AuthService: authService, Cfg: cfg})

	token := func(u *entity.User) string {
		tok, err := jwtManager.GenerateAccessToken(u.ID, u.Email, u.IsAdmin())
		require.NoError(t, err)
		return tok
	}

	return &testServer{
		t:          t,
		db:         db,
		router:     router,
		adminToken: token(testutil.CreateUser(t, db, "admin@test.com", true, true)),
		userToken:  token(testutil.CreateUser(t, db, "user@test.com", true, false)),
	}
}

func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func errorsOf(t *testing.T, w *httptest.ResponseRecorder, field string) []any {
	t.Helper()
	body := decode(t, w)
	msgs, ok := body[field].([]any)
	require.True(t, ok, "no errors for %q in %s", field, w.Body.String())
	return msgs
}

func contactBody() map[string]any {
	return map[string]any{
		"email":     "test@test.com",
		"country":   "Russia",
		"city":      "test",
		"street":    "test",
		"num_house": "12",
	}
}
