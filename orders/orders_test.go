package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kiraana/db/dbtest"
	"kiraana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersFilteredByShopAndSeller(t *testing.T) {
	store := dbtest.New()
	store.Orders = []models.Order{
		{ShopName: "Ravi Traders", SellerName: "Ravi", ItemName: "Sneaker"},
		{ShopName: "Ravi Traders", SellerName: "Other", ItemName: "Kettle"},
		{ShopName: "Asha Stores", SellerName: "Ravi", ItemName: "Lamp"},
	}
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/orders?shopName=Ravi+Traders&sellerName=Ravi", nil)
	rec := httptest.NewRecorder()
	h.ByShop(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Sneaker", got[0].ItemName)
}

func TestOrdersStoreFailure(t *testing.T) {
	store := dbtest.New()
	store.Err = assert.AnError
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	h.ByShop(rec, req, nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
