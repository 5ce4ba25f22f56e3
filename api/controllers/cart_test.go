package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/angelmondragon/swiftmart-backend/internal/cart"
	"github.com/angelmondragon/swiftmart-backend/internal/catalog"
	"github.com/angelmondragon/swiftmart-backend/internal/identity"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
)

func newCartService(t *testing.T) cartsvc.Service {
	t.Helper()
	svc, err := cartsvc.NewService(cartsvc.NewRepository(snapshot.NewMemoryStore()))
	require.NoError(t, err)
	return svc
}

func asShopper(r *http.Request) *http.Request {
	ctx := identity.WithOwner(r.Context(), identity.Guest("sess-controller-test"))
	return r.WithContext(ctx)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCartAddItemUsesCatalogPrice(t *testing.T) {
	svc := newCartService(t)
	products := catalog.NewService()
	product := products.List()[0]

	body, err := json.Marshal(map[string]any{
		"product_id": product.ID,
		"quantity":   3,
	})
	require.NoError(t, err)

	req := asShopper(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)))
	rec := httptest.NewRecorder()
	CartAddItem(svc, products, nil)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), product.Name)
	assert.Contains(t, rec.Body.String(), `"quantity":3`)
}

func TestCartAddItemRejectsUnknownProduct(t *testing.T) {
	svc := newCartService(t)
	products := catalog.NewService()

	body, err := json.Marshal(map[string]any{
		"product_id": uuid.New(),
		"quantity":   1,
	})
	require.NoError(t, err)

	req := asShopper(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)))
	rec := httptest.NewRecorder()
	CartAddItem(svc, products, nil)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartAddItemRejectsUnknownFields(t *testing.T) {
	svc := newCartService(t)
	products := catalog.NewService()

	body := []byte(`{"product_id":"` + products.List()[0].ID.String() + `","quantity":1,"unit_price":"0.01"}`)
	req := asShopper(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)))
	rec := httptest.NewRecorder()
	CartAddItem(svc, products, nil)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartSetQuantityRemovesAtZero(t *testing.T) {
	svc := newCartService(t)
	products := catalog.NewService()
	product := products.List()[0]

	body, err := json.Marshal(map[string]any{"product_id": product.ID, "quantity": 2})
	require.NoError(t, err)
	req := asShopper(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(body)))
	rec := httptest.NewRecorder()
	CartAddItem(svc, products, nil)(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	url := fmt.Sprintf("/api/v1/cart/items/%s", product.ID)
	req = asShopper(httptest.NewRequest(http.MethodPut, url, bytes.NewReader([]byte(`{"quantity":0}`))))
	req = withURLParam(req, "productID", product.ID.String())
	rec = httptest.NewRecorder()
	CartSetQuantity(svc, nil)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), product.ID.String())
}

func TestCartRequiresIdentity(t *testing.T) {
	svc := newCartService(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart/", nil)
	rec := httptest.NewRecorder()
	CartGet(svc, nil)(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
