package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kiraana/db/dbtest"
	"kiraana/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, handle httprouter.Handle, email string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handle(rec, req, httprouter.Params{{Key: "email", Value: email}})
	return rec
}

func TestSellerProfile(t *testing.T) {
	store := dbtest.New()
	store.Sellers["ravi@example.com"] = models.Seller{
		Email:             "ravi@example.com",
		ShopName:          "Ravi Traders",
		ApplicationStatus: models.StatusGranted,
	}
	h := NewHandler(store)

	rec := get(t, h.Seller, "ravi@example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	var seller models.Seller
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &seller))
	assert.Equal(t, "Ravi Traders", seller.ShopName)

	assert.Equal(t, http.StatusNotFound, get(t, h.Seller, "missing@example.com").Code)
}

func TestBuyerProfile(t *testing.T) {
	store := dbtest.New()
	store.Buyers["asha@example.com"] = models.Buyer{Email: "asha@example.com", FName: "Asha"}
	h := NewHandler(store)

	rec := get(t, h.Buyer, "asha@example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	var buyer models.Buyer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buyer))
	assert.Equal(t, "Asha", buyer.FName)

	assert.Equal(t, http.StatusNotFound, get(t, h.Buyer, "missing@example.com").Code)
}

func TestProfileStoreFailure(t *testing.T) {
	store := dbtest.New()
	store.Err = assert.AnError
	h := NewHandler(store)

	assert.Equal(t, http.StatusInternalServerError, get(t, h.Seller, "ravi@example.com").Code)
	assert.Equal(t, http.StatusInternalServerError, get(t, h.Buyer, "asha@example.com").Code)
}
