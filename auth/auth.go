package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"kiraana/db"
	"kiraana/models"
	"kiraana/sms"
	"kiraana/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler serves sign-in, sign-up, seller registration and password
// reset. There are no sessions or tokens; sign-in simply returns the
// stored document, password field included, as the storefront expects.
type Handler struct {
	store db.Store
	sms   sms.Sender
}

func NewHandler(store db.Store, sender sms.Sender) *Handler {
	return &Handler{store: store, sms: sender}
}

// validPhone requires exactly ten digit characters.
func validPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// A buyer account shadows a seller with the same email.
	var stored any
	var password string
	buyer, err := h.store.FindBuyerByEmail(ctx, input.Email)
	switch {
	case err == nil:
		stored, password = buyer, buyer.Password
	case errors.Is(err, db.ErrNotFound):
		seller, serr := h.store.FindSellerByEmail(ctx, input.Email)
		if errors.Is(serr, db.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		if serr != nil {
			log.Println("SignIn seller lookup error:", serr)
			utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during sign-in.")
			return
		}
		stored, password = seller, seller.Password
	default:
		log.Println("SignIn buyer lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during sign-in.")
		return
	}

	if password != input.Password {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid password")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Login successful", "values": stored})
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		FName    string `json:"fname"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
		Key      string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !validPhone(strings.TrimSpace(input.Phone)) {
		utils.RespondWithError(w, http.StatusBadRequest, "Phone number must be exactly 10 digits.")
		return
	}

	buyer := models.Buyer{
		FName:    input.FName,
		Email:    input.Email,
		Password: input.Password,
		Phone:    input.Phone,
		Location: input.Location,
		Key:      input.Key,
		Type:     "buyer",
		Admin:    false,
	}

	if err := h.store.InsertBuyer(ctx, &buyer); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			utils.RespondWithError(w, http.StatusConflict, "User already exists.")
			return
		}
		log.Println("SignUp insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during signup.")
		return
	}

	// The insert is the operation of record; a lost text never turns
	// a successful signup into a failure.
	h.sms.Send("+91"+strings.TrimSpace(input.Phone), "You are successfully registered")

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Signup successful"})
}

func (h *Handler) RegisterSeller(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		SellerName    string `json:"sellerName"`
		Email         string `json:"email"`
		Password      string `json:"password"`
		Phone         string `json:"phone"`
		ShopName      string `json:"shopName"`
		Address       string `json:"address"`
		LicenseNumber string `json:"licenseNumber"`
		Location      string `json:"location"`
		Key           string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if !validPhone(strings.TrimSpace(input.Phone)) {
		utils.RespondWithError(w, http.StatusBadRequest, "Phone number must be exactly 10 digits.")
		return
	}

	seller := models.Seller{
		SellerName:        input.SellerName,
		Email:             input.Email,
		Password:          input.Password,
		Phone:             input.Phone,
		ShopName:          input.ShopName,
		Address:           input.Address,
		LicenseNumber:     input.LicenseNumber,
		Location:          input.Location,
		Key:               input.Key,
		ApplicationStatus: models.StatusPending,
		Type:              "seller",
	}

	if err := h.store.InsertSeller(ctx, &seller); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			utils.RespondWithError(w, http.StatusConflict, "Email already registered")
			return
		}
		log.Println("RegisterSeller insert error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during seller registration.")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Seller registration successful"})
}

// ForgotPassword overwrites the stored password when email and key
// match on either account type. The key acts as a shared reset
// secret, not a one-time code.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Key      string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	_, err := h.store.FindBuyerByEmailKey(ctx, input.Email, input.Key)
	if err == nil {
		if err := h.store.SetBuyerPassword(ctx, input.Email, input.Password); err != nil {
			log.Println("ForgotPassword buyer update error:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during password reset.")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Password reset successful"})
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		log.Println("ForgotPassword buyer lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during password reset.")
		return
	}

	_, err = h.store.FindSellerByEmailKey(ctx, input.Email, input.Key)
	if errors.Is(err, db.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Email does not exist")
		return
	}
	if err != nil {
		log.Println("ForgotPassword seller lookup error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during password reset.")
		return
	}
	if err := h.store.SetSellerPassword(ctx, input.Email, input.Password); err != nil {
		log.Println("ForgotPassword seller update error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "An error occurred during password reset.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Password reset successful"})
}
