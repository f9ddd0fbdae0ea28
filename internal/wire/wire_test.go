package wire

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/dto/response"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/internal/usecase/mocks"
	"ecommerce-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testApp struct {
	router   http.Handler
	users    *mocks.MockUserService
	category *mocks.MockCategoryService
	cart     *mocks.MockCartService
	admin    string
	customer string
}

func newTestApp(t *testing.T, db Pinger) *testApp {
	t.Helper()

	tokens := utils.NewTokenManager(utils.JWTConfig{Secret: "secret", ExpiryHours: 1})
	admin, _, err := tokens.Generate(1, entity.UserTypeAdmin)
	require.NoError(t, err)
	customer, _, err := tokens.Generate(2, entity.UserTypeUser)
	require.NoError(t, err)

	a := &testApp{
		users:    new(mocks.MockUserService),
		category: new(mocks.MockCategoryService),
		cart:     new(mocks.MockCartService),
		admin:    "Bearer " + admin,
		customer: "Bearer " + customer,
	}

	service := &usecase.Service{
		Auth:     new(mocks.MockAuthService),
		User:     a.users,
		Category: a.category,
		Product:  new(mocks.MockProductService),
		Cart:     a.cart,
	}

	app, err := Wiring(service, db, tokens, zap.NewNop())
	require.NoError(t, err)
	a.router = app.Router
	return a
}

func (a *testApp) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_AccessControl(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	app.users.On("GetAll", mock.Anything).Return([]response.UserResponse{{ID: 1}}, nil)
	app.category.On("GetAll", mock.Anything).Return([]response.CategoryResponse{{ID: 1, Name: "Books"}}, nil)
	app.cart.On("GetActive", mock.Anything, uint(2)).Return(&response.CartResponse{ID: 3}, nil)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"list users anonymous", http.MethodGet, "/user", "", http.StatusUnauthorized},
		{"list users as customer", http.MethodGet, "/user", app.customer, http.StatusForbidden},
		{"list users as admin", http.MethodGet, "/user", app.admin, http.StatusOK},
		{"list categories is public", http.MethodGet, "/category", "", http.StatusOK},
		{"create category as customer", http.MethodPost, "/category", app.customer, http.StatusForbidden},
		{"cart requires token", http.MethodGet, "/cart", "", http.StatusUnauthorized},
		{"cart for customer", http.MethodGet, "/cart", app.customer, http.StatusOK},
		{"image upload as customer", http.MethodPost, "/product/1/image", app.customer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	app := newTestApp(t, fakePinger{})

	rec := app.do(http.MethodGet, "/health", "", "")
	id := rec.Header().Get(utils.RequestIDHeader)
	require.NotEmpty(t, id)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, id, body.RequestID)
}

func TestRouter_Health(t *testing.T) {
	t.Run("up", func(t *testing.T) {
		rec := newTestApp(t, fakePinger{}).do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database down", func(t *testing.T) {
		rec := newTestApp(t, fakePinger{err: errors.New("refused")}).do(http.MethodGet, "/health", "", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestRouter_Metrics(t *testing.T) {
	app := newTestApp(t, fakePinger{})
	app.category.On("GetAll", mock.Anything).Return([]response.CategoryResponse{{ID: 1}}, nil)

	app.do(http.MethodGet, "/category", "", "")

	rec := app.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/category`)
	assert.NotContains(t, rec.Body.String(), `path="/metrics"`)
}
