package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"kiraana/db"
	"kiraana/models"
	"kiraana/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

// Add puts an item in the cart. The store performs one atomic
// increment-or-insert keyed on (itemName, sellerName), so repeat adds
// accumulate quantity into a single entry even under concurrent
// requests. Both branches answer 201.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var entry models.CartEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Println("Add to cart decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.store.AddToCart(ctx, entry); err != nil {
		log.Println("Add to cart error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while adding item to cart.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Item added to cart successfully"})
}
