package cart

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"kiraana/db/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEntry(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/cart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Add(rec, req, nil)
	return rec
}

func TestAddAccumulatesQuantityIntoOneEntry(t *testing.T) {
	store := dbtest.New()
	h := NewHandler(store)

	first := `{"itemName":"Sneaker","sellerName":"Ravi","cost":100,"quantity":2,"imageUrl":"http://x/s.png","shopName":"Ravi Traders"}`
	second := `{"itemName":"Sneaker","sellerName":"Ravi","cost":100,"quantity":3,"imageUrl":"http://x/s.png","shopName":"Ravi Traders"}`

	// Both branches answer 201, insert and increment alike.
	require.Equal(t, http.StatusCreated, addEntry(t, h, first).Code)
	require.Equal(t, http.StatusCreated, addEntry(t, h, second).Code)

	require.Len(t, store.Cart, 1)
	assert.Equal(t, 5, store.Cart[0].Quantity)
	assert.Equal(t, "Ravi Traders", store.Cart[0].ShopName)
}

func TestAddKeepsPairsSeparate(t *testing.T) {
	store := dbtest.New()
	h := NewHandler(store)

	addEntry(t, h, `{"itemName":"Sneaker","sellerName":"Ravi","quantity":1,"shopName":"Ravi Traders"}`)
	addEntry(t, h, `{"itemName":"Sneaker","sellerName":"Asha","quantity":1,"shopName":"Asha Stores"}`)
	addEntry(t, h, `{"itemName":"Kettle","sellerName":"Ravi","quantity":1,"shopName":"Ravi Traders"}`)

	assert.Len(t, store.Cart, 3)
}

// The store-side increment is atomic, so concurrent adds of the same
// pair keep the full total and never split into duplicate entries.
func TestConcurrentAddsLoseNothing(t *testing.T) {
	store := dbtest.New()
	h := NewHandler(store)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := fmt.Sprintf(`{"itemName":"Sneaker","sellerName":"Ravi","quantity":%d,"shopName":"Ravi Traders"}`, 2)
			addEntry(t, h, body)
		}()
	}
	wg.Wait()

	require.Len(t, store.Cart, 1)
	assert.Equal(t, workers*2, store.Cart[0].Quantity)
}

func TestAddMalformedBody(t *testing.T) {
	h := NewHandler(dbtest.New())
	rec := addEntry(t, h, `{"itemName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddStoreFailure(t *testing.T) {
	store := dbtest.New()
	store.Err = assert.AnError
	h := NewHandler(store)

	rec := addEntry(t, h, `{"itemName":"Sneaker","sellerName":"Ravi","quantity":1,"shopName":"Ravi Traders"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
