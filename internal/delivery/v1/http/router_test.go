package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DRSN-tech/luxe-couture-api/internal/repository/memory"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	log := logger.New(io.Discard, slog.LevelDebug)
	source := usecase.NewCatalogSource(nil, nil, memory.SampleProducts(), log)

	r := chi.NewRouter()
	NewRouter(r, log).Init(UseCases{
		Product:     usecase.NewProductUC(source, log),
		Storefront:  usecase.NewStorefrontUC(nil, nil, log),
		Diagnostics: usecase.NewDiagnosticsUC(nil, false, false, log),
	}, []string{"*"})

	return r
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestListProductsByGenderSorted(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/products?gender=women&sort=price_desc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]ProductResponse](t, rec)
	require.Len(t, products, 2)
	assert.Equal(t, "gucci-bag-velvet", products[0].ID)
	assert.Equal(t, "dior-heel-01", products[1].ID)
}

func TestListProductsSearch(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/products?q=GOLD", "")
	require.Equal(t, http.StatusOK, rec.Code)

	products := decodeBody[[]ProductResponse](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "dior-heel-01", products[0].ID)
}

func TestListProductsNoMatchIsEmptyArray(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/products?category=hats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetProduct(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/products/balenciaga-tee", "")
	require.Equal(t, http.StatusOK, rec.Code)

	product := decodeBody[ProductResponse](t, rec)
	assert.Equal(t, "balenciaga-tee", product.ID)
	assert.Equal(t, "unisex", product.Gender)
}

func TestGetProductNotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/products/unknown", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	res := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "product not found", res.Message)
}

func TestFeaturedAndNewArrivals(t *testing.T) {
	h := newTestRouter(t)

	for _, target := range []string{"/featured", "/new-arrivals"} {
		rec := doRequest(t, h, http.MethodGet, target, "")
		require.Equal(t, http.StatusOK, rec.Code, target)

		products := decodeBody[[]ProductResponse](t, rec)
		assert.NotEmpty(t, products, target)
		for _, p := range products {
			if target == "/featured" {
				assert.True(t, p.Featured, p.ID)
			} else {
				assert.True(t, p.NewArrival, p.ID)
			}
		}
	}
}

func TestCheckout(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name  string
		body  string
		total float64
	}{
		{
			name:  "total rounded to cents",
			body:  `{"items":[{"id":"a","name":"A","price":100,"quantity":2},{"id":"b","name":"B","price":49.995,"quantity":1}]}`,
			total: 249.99,
		},
		{
			name:  "quantity defaults to one",
			body:  `{"items":[{"id":"a","name":"A","price":10.5}]}`,
			total: 10.5,
		},
		{
			name:  "empty cart",
			body:  `{"items":[]}`,
			total: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, "/checkout", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			res := decodeBody[CheckoutResponse](t, rec)
			assert.True(t, res.OK)
			assert.InDelta(t, tt.total, res.Total, 1e-9)
		})
	}
}

func TestRequestValidation(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		body   string
		status int
	}{
		{name: "newsletter invalid email", target: "/newsletter", body: `{"email":"not-an-email"}`, status: http.StatusUnprocessableEntity},
		{name: "newsletter malformed json", target: "/newsletter", body: `{"email":`, status: http.StatusBadRequest},
		{name: "contact missing message", target: "/contact", body: `{"name":"Ann","email":"ann@example.com"}`, status: http.StatusUnprocessableEntity},
		{name: "checkout missing items", target: "/checkout", body: `{}`, status: http.StatusUnprocessableEntity},
		{name: "checkout negative price", target: "/checkout", body: `{"items":[{"id":"a","name":"A","price":-1}]}`, status: http.StatusUnprocessableEntity},
		{name: "checkout zero quantity", target: "/checkout", body: `{"items":[{"id":"a","name":"A","price":1,"quantity":0}]}`, status: http.StatusUnprocessableEntity},
		{name: "checkout price as string", target: "/checkout", body: `{"items":[{"id":"a","name":"A","price":"1"}]}`, status: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodPost, tt.target, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestNewsletterAndContact(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/newsletter", `{"email":"ann@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	newsletter := decodeBody[NewsletterResponse](t, rec)
	assert.True(t, newsletter.OK)
	assert.Equal(t, "ann@example.com", newsletter.Email)

	rec = doRequest(t, h, http.MethodPost, "/contact", `{"name":"Ann","email":"ann@example.com","message":"Hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	contact := decodeBody[ContactResponse](t, rec)
	assert.True(t, contact.OK)
	assert.Equal(t, "Hello", contact.Received.Message)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/checkout", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRootAndDiagnostics(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	root := decodeBody[RootResponse](t, rec)
	assert.Equal(t, "ok", root.Status)
	assert.NotEmpty(t, root.Time)

	rec = doRequest(t, h, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, rec.Code)
	diag := decodeBody[DiagnosticsResponse](t, rec)
	assert.Equal(t, "✅ Running", diag.Backend)
	assert.Equal(t, "Not Connected", diag.ConnectionStatus)
	assert.NotNil(t, diag.Collections)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
