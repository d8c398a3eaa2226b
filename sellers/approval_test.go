package sellers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kiraana/db/dbtest"
	"kiraana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedSeller(store *dbtest.Fake, email, status string) models.Seller {
	s := models.Seller{
		ID:                primitive.NewObjectID(),
		Email:             email,
		ApplicationStatus: status,
	}
	store.Sellers[email] = s
	return s
}

func TestPendingListsOnlyPendingSellers(t *testing.T) {
	store := dbtest.New()
	seedSeller(store, "a@example.com", models.StatusPending)
	seedSeller(store, "b@example.com", models.StatusGranted)
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/pending-sellers", nil)
	rec := httptest.NewRecorder()
	h.Pending(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var pending []models.Seller
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "a@example.com", pending[0].Email)
}

func approve(t *testing.T, h *Handler, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/approve-seller", strings.NewReader(`{"id":"`+id+`"}`))
	rec := httptest.NewRecorder()
	h.Approve(rec, req, nil)
	return rec
}

func TestApprovePendingSeller(t *testing.T) {
	store := dbtest.New()
	s := seedSeller(store, "a@example.com", models.StatusPending)
	h := NewHandler(store)

	rec := approve(t, h, s.ID.Hex())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusGranted, store.Sellers["a@example.com"].ApplicationStatus)
}

// An unknown id and a seller who is already granted produce the same
// 404: the update modifies nothing in either case, and the API does
// not distinguish the causes.
func TestApproveNotFoundAndReapproveAreEquivalent(t *testing.T) {
	store := dbtest.New()
	s := seedSeller(store, "a@example.com", models.StatusPending)
	h := NewHandler(store)

	unknown := approve(t, h, primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, unknown.Code)

	require.Equal(t, http.StatusOK, approve(t, h, s.ID.Hex()).Code)
	reapprove := approve(t, h, s.ID.Hex())
	assert.Equal(t, http.StatusNotFound, reapprove.Code)
	assert.Equal(t, unknown.Body.String(), reapprove.Body.String())
}

func TestApproveStoreFailure(t *testing.T) {
	store := dbtest.New()
	store.Err = assert.AnError
	h := NewHandler(store)

	rec := approve(t, h, primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
