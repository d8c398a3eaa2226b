package sellers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"kiraana/db"
	"kiraana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler runs the seller approval workflow: applications start
// pending and move one way to granted.
type Handler struct {
	store db.Store
}

func NewHandler(store db.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Pending(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pending, err := h.store.PendingSellers(ctx)
	if err != nil {
		log.Println("Pending sellers error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while fetching pending sellers.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, pending)
}

// Approve sets applicationStatus to granted for one seller id. An id
// that matches nothing and a seller who is already granted both come
// back 404; callers cannot tell the two apart.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.store.ApproveSeller(ctx, input.ID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Seller not found.")
			return
		}
		log.Println("Approve seller error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while approving the seller.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Seller approved successfully."})
}
