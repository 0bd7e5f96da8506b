package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/markethub/storefront-core/internal/mockapi/memstore"
	"github.com/markethub/storefront-core/internal/pkg/config"
)

func testConfig() config.MockAPIConfig {
	return config.MockAPIConfig{
		Port:       "0",
		JWTSecret:  "test-secret",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	require.NoError(t, Seed(store))
	srv := httptest.NewServer(NewRouter(store, testConfig(), zerolog.Nop()))
	t.Cleanup(srv.Close)
	return srv, store
}

type authPayload struct {
	User struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		IsStaff bool   `json:"is_staff"`
		Role    string `json:"role"`
	} `json:"user"`
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func registerUser(t *testing.T, base, name, email string) authPayload {
	t.Helper()
	var auth authPayload
	resp := doJSON(t, http.MethodPost, base+"/api/auth/register/", "", map[string]string{
		"name": name, "email": email, "password": "password123",
	}, &auth)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return auth
}

func loginAdmin(t *testing.T, base string) authPayload {
	t.Helper()
	var auth authPayload
	resp := doJSON(t, http.MethodPost, base+"/api/auth/login/", "", map[string]string{
		"email": "admin@markethub.dev", "password": "admin12345",
	}, &auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, auth.User.IsStaff)
	require.Equal(t, "admin", auth.User.Role)
	return auth
}

func TestRouter_AuthFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	auth := registerUser(t, srv.URL, "Alice", "alice@example.com")
	require.Equal(t, "customer", auth.User.Role)
	require.NotEmpty(t, auth.Access)
	require.NotEmpty(t, auth.Refresh)

	// Duplicate registration is a 400.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register/", "", map[string]string{
		"name": "Alice2", "email": "alice@example.com", "password": "password123",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong password is a 401.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login/", "", map[string]string{
		"email": "alice@example.com", "password": "wrong-password",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The refresh endpoint trades the refresh token for a new access token.
	var refreshed struct {
		Access string `json:"access"`
	}
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/refresh/", "", map[string]string{
		"refresh": auth.Refresh,
	}, &refreshed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, refreshed.Access)

	// An access token is not accepted as a refresh token.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/refresh/", "", map[string]string{
		"refresh": auth.Access,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ProductCatalog(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := loginAdmin(t, srv.URL)
	customer := registerUser(t, srv.URL, "Bob", "bob@example.com")

	var products []map[string]any
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/products/", "", nil, &products)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, products)

	// Filters.
	var filtered []map[string]any
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/products/?q=espresso&category=kitchen", "", nil, &filtered)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, filtered, 1)

	// Customer writes are forbidden.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/products/", customer.Access, map[string]any{
		"name": "Hack", "price": 1, "stock": 1,
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin create, update, soft delete.
	var created map[string]any
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/products/", admin.Access, map[string]any{
		"name": "Gift Card", "price": 25.0, "stock": 100, "category": "misc",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := created["id"].(string)

	var updated map[string]any
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/products/"+id+"/", admin.Access, map[string]any{
		"name": "Gift Card", "price": 30.0, "stock": 90,
	}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 30.0, updated["price"])

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/products/"+id+"/", admin.Access, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/products/"+id+"/", "", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouter_CartFlow(t *testing.T) {
	srv, store := newTestServer(t)
	customer := registerUser(t, srv.URL, "Carol", "carol@example.com")
	productID := store.Products("", "")[0].ID

	// Anonymous cart access is rejected.
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/cart/", "", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Adds merge by product.
	var line map[string]any
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/cart/", customer.Access, map[string]any{
		"product_id": productID, "quantity": 2,
	}, &line)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/cart/", customer.Access, map[string]any{
		"product_id": productID, "quantity": 3,
	}, &line)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, 5.0, line["quantity"])

	var cart []map[string]any
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cart/", customer.Access, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart, 1)
	itemID := cart[0]["id"].(string)
	require.Equal(t, productID, cart[0]["product"].(map[string]any)["id"])

	// Quantity patch and removal address the server line id.
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/cart/"+itemID+"/", customer.Access, map[string]any{
		"quantity": 1,
	}, &line)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1.0, line["quantity"])

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/cart/"+itemID+"/", customer.Access, nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cart/", customer.Access, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, cart)
}

func TestRouter_OrderFlow(t *testing.T) {
	srv, store := newTestServer(t)
	admin := loginAdmin(t, srv.URL)
	customer := registerUser(t, srv.URL, "Dave", "dave@example.com")

	products := store.Products("", "")
	p := products[0]

	// The server prices the order from the catalog, ignoring client prices.
	var order map[string]any
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/orders/", customer.Access, map[string]any{
		"items": []map[string]any{
			{"product_id": p.ID, "quantity": 2, "price": 0.01},
		},
	}, &order)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "pending", order["status"])
	require.InDelta(t, p.Price*2, order["total"].(float64), 1e-9)

	orderID := order["id"].(string)

	// Customers see only their own orders, without customer fields.
	var mine []map[string]any
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/orders/", customer.Access, nil, &mine)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, mine, 1)
	require.NotContains(t, mine[0], "customer_email")

	// Status changes are staff-only.
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/orders/"+orderID+"/", customer.Access, map[string]any{
		"status": "shipped",
	}, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var patched map[string]any
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/orders/"+orderID+"/", admin.Access, map[string]any{
		"status": "shipped",
	}, &patched)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "shipped", patched["status"])
	require.Equal(t, "dave@example.com", patched["customer_email"])

	// Unknown status values are rejected by validation.
	resp = doJSON(t, http.MethodPatch, srv.URL+"/api/orders/"+orderID+"/", admin.Access, map[string]any{
		"status": "teleported",
	}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Staff listing includes everything.
	var all []map[string]any
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/orders/", admin.Access, nil, &all)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, all, 1)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
}
