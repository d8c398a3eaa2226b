package routes

import (
	"kiraana/auth"
	"kiraana/cart"
	"kiraana/items"
	"kiraana/orders"
	"kiraana/profile"
	"kiraana/reviews"
	"kiraana/sellers"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, h *auth.Handler) {
	router.POST("/signin", h.SignIn)
	router.POST("/signup", h.SignUp)
	router.POST("/seller-registration", h.RegisterSeller)
	router.POST("/forgot-password", h.ForgotPassword)
}

func AddSellerRoutes(router *httprouter.Router, h *sellers.Handler) {
	router.GET("/pending-sellers", h.Pending)
	router.POST("/approve-seller", h.Approve)
}

func AddProfileRoutes(router *httprouter.Router, h *profile.Handler) {
	router.GET("/seller-profile/:email", h.Seller)
	router.GET("/buyer-profile/:email", h.Buyer)
}

func AddItemRoutes(router *httprouter.Router, h *items.Handler) {
	// The storefront posts new listings to /profiles; the path is part
	// of the public contract.
	router.POST("/profiles", h.Create)
	router.GET("/user-items", h.ByShop)
	router.GET("/items", h.All)
	router.GET("/items/refurbished", h.Refurbished)
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handler) {
	router.GET("/orders", h.ByShop)
}

func AddReviewRoutes(router *httprouter.Router, h *reviews.Handler) {
	router.GET("/reviews", h.BySeller)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handler) {
	router.POST("/cart", h.Add)
}
