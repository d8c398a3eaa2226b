package orders

import (
	"context"
	"log"
	"net/http"
	"time"

	"kiraana/db"
	"kiraana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler reads back orders written by the storefront; this service
// never creates or mutates them.
type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) ByShop(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	orders, err := h.store.OrdersByShop(ctx, q.Get("shopName"), q.Get("sellerName"))
	if err != nil {
		log.Println("Orders lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while fetching orders.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}
