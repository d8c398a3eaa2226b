package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kiraana/auth"
	"kiraana/cart"
	"kiraana/db/dbtest"
	"kiraana/items"
	"kiraana/models"
	"kiraana/orders"
	"kiraana/profile"
	"kiraana/reviews"
	"kiraana/sellers"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentSender struct{}

func (silentSender) Send(_, _ string) {}

func newTestRouter(store *dbtest.Fake) *httprouter.Router {
	router := httprouter.New()
	AddAuthRoutes(router, auth.NewHandler(store, silentSender{}))
	AddSellerRoutes(router, sellers.NewHandler(store))
	AddProfileRoutes(router, profile.NewHandler(store))
	AddItemRoutes(router, items.NewHandler(store))
	AddOrderRoutes(router, orders.NewHandler(store))
	AddReviewRoutes(router, reviews.NewHandler(store))
	AddCartRoutes(router, cart.NewHandler(store))
	return router
}

// Every public path resolves to its handler with the expected verb.
func TestRouteTable(t *testing.T) {
	store := dbtest.New()
	store.Buyers["asha@example.com"] = models.Buyer{Email: "asha@example.com", Password: "pw"}
	router := newTestRouter(store)

	cases := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodPost, "/signin", `{"email":"asha@example.com","password":"pw"}`, http.StatusOK},
		{http.MethodPost, "/signup", `{"fname":"B","email":"b@example.com","password":"pw","phone":"9876543210"}`, http.StatusCreated},
		{http.MethodPost, "/seller-registration", `{"sellerName":"R","email":"r@example.com","password":"pw","phone":"9876543210","shopName":"RT"}`, http.StatusCreated},
		{http.MethodPost, "/forgot-password", `{"email":"nobody@example.com","password":"x","key":"k"}`, http.StatusNotFound},
		{http.MethodGet, "/pending-sellers", "", http.StatusOK},
		{http.MethodPost, "/approve-seller", `{"id":"ffffffffffffffffffffffff"}`, http.StatusNotFound},
		{http.MethodGet, "/seller-profile/r@example.com", "", http.StatusOK},
		{http.MethodGet, "/buyer-profile/asha@example.com", "", http.StatusOK},
		{http.MethodPost, "/profiles", `{"itemName":"I","category":"c","sellingPrice":1,"shopName":"RT","sellerName":"R"}`, http.StatusCreated},
		{http.MethodGet, "/user-items?shopName=RT", "", http.StatusOK},
		{http.MethodGet, "/orders?shopName=RT&sellerName=R", "", http.StatusOK},
		{http.MethodGet, "/reviews?shopName=RT&sellerEmail=r@example.com", "", http.StatusOK},
		{http.MethodGet, "/items", "", http.StatusOK},
		{http.MethodGet, "/items/refurbished", "", http.StatusOK},
		{http.MethodPost, "/cart", `{"itemName":"I","sellerName":"R","quantity":1,"shopName":"RT"}`, http.StatusCreated},
	}

	for _, tc := range cases {
		var req *http.Request
		if tc.body != "" {
			req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		} else {
			req = httptest.NewRequest(tc.method, tc.path, nil)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tc.want, rec.Code, "%s %s", tc.method, tc.path)
	}

	require.Len(t, store.Items, 1)
	require.Len(t, store.Cart, 1)
}
