package profile

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"kiraana/db"
	"kiraana/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Seller(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	seller, err := h.store.FindSellerByEmail(ctx, ps.ByName("email"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Seller not found.")
			return
		}
		log.Println("Seller profile error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while fetching the seller profile.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, seller)
}

func (h *Handler) Buyer(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	buyer, err := h.store.FindBuyerByEmail(ctx, ps.ByName("email"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Buyer not found.")
			return
		}
		log.Println("Buyer profile error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while fetching the buyer profile.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, buyer)
}
