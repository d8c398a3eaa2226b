package items

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

// blank reports whether a loosely-typed required value is missing.
// Mirrors a falsiness check: absent, empty string, zero and false all
// count as not provided.
func blank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return x == 0
	case bool:
		return !x
	}
	return false
}

// Create inserts one listing. Exactly five fields are required;
// everything else is stored as sent, whatever its type.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if item.ItemName == "" || item.Category == "" || blank(item.SellingPrice) ||
		item.ShopName == "" || item.SellerName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please provide all required fields.")
		return
	}

	if err := h.store.InsertItem(ctx, &item); err != nil {
		log.Println("Create item error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while adding the item.")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Item added successfully."})
}

// ByShop lists a shop's items, filtered by the ?shopName= query.
func (h *Handler) ByShop(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	shopName := r.URL.Query().Get("shopName")
	items, err := h.store.ItemsByShop(ctx, shopName)
	if err != nil {
		log.Println("Items by shop error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred while fetching user items.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) All(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := h.store.AllItems(ctx)
	if err != nil {
		log.Println("All items error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func (h *Handler) Refurbished(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	items, err := h.store.RefurbishedItems(ctx)
	if err != nil {
		log.Println("Refurbished items error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}
