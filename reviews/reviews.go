package reviews

import (
	"context"
	"log"
	"net/http"
	"time"

	"kiraana/db"
	"kiraana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler reads back shop reviews; nothing here writes them.
type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) BySeller(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	reviews, err := h.store.ReviewsBySeller(ctx, q.Get("shopName"), q.Get("sellerEmail"))
	if err != nil {
		log.Println("Reviews lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while fetching reviews.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reviews)
}
