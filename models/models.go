package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Buyer is a registered customer account. Passwords are stored and
// compared as plain strings; sign-in returns the whole document,
// password included, which callers of this API rely on.
type Buyer struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FName    string             `json:"fname" bson:"fname"`
	Email    string             `json:"email" bson:"email"`
	Password string             `json:"password" bson:"password"`
	Phone    string             `json:"phone" bson:"phone"`
	Location string             `json:"location" bson:"location"`
	Key      string             `json:"key" bson:"key"`
	Type     string             `json:"type" bson:"type"`
	Admin    bool               `json:"admin" bson:"admin"`
}

// Seller application states.
const (
	StatusPending = "pending"
	StatusGranted = "granted"
)

type Seller struct {
	ID                primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	SellerName        string             `json:"sellerName" bson:"sellerName"`
	Email             string             `json:"email" bson:"email"`
	Password          string             `json:"password" bson:"password"`
	Phone             string             `json:"phone" bson:"phone"`
	ShopName          string             `json:"shopName" bson:"shopName"`
	Address           string             `json:"address" bson:"address"`
	LicenseNumber     string             `json:"licenseNumber" bson:"licenseNumber"`
	Location          string             `json:"location" bson:"location"`
	Key               string             `json:"key" bson:"key"`
	ApplicationStatus string             `json:"applicationStatus" bson:"applicationStatus"`
	Type              string             `json:"type" bson:"type"`
}

// Item is a shop listing. Only the five identity fields are typed;
// everything else is stored exactly as the client sent it, numbers,
// strings or otherwise.
type Item struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ImageUrl           any                `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ItemName           string             `json:"itemName" bson:"itemName"`
	Category           string             `json:"category" bson:"category"`
	Refurbished        any                `json:"refurbished,omitempty" bson:"refurbished,omitempty"`
	Condition          any                `json:"condition,omitempty" bson:"condition,omitempty"`
	DiscountPercentage any                `json:"discountPercentage,omitempty" bson:"discountPercentage,omitempty"`
	OriginalPrice      any                `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	SellingPrice       any                `json:"sellingPrice" bson:"sellingPrice"`
	Availability       any                `json:"availability,omitempty" bson:"availability,omitempty"`
	Sizes              any                `json:"sizes,omitempty" bson:"sizes,omitempty"`
	ShopName           string             `json:"shopName" bson:"shopName"`
	SellerName         string             `json:"sellerName" bson:"sellerName"`
}

// Order documents are written by the storefront, never by this
// service; it only reads them back per shop and seller.
type Order struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ShopName   string             `json:"shopName" bson:"shopName"`
	SellerName string             `json:"sellerName" bson:"sellerName"`
	BuyerName  string             `json:"buyerName,omitempty" bson:"buyerName,omitempty"`
	ItemName   string             `json:"itemName,omitempty" bson:"itemName,omitempty"`
	Quantity   any                `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Cost       any                `json:"cost,omitempty" bson:"cost,omitempty"`
	Address    string             `json:"address,omitempty" bson:"address,omitempty"`
	Status     string             `json:"status,omitempty" bson:"status,omitempty"`
}

// Review documents are likewise read-only here.
type Review struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ShopName    string             `json:"shopName" bson:"shopName"`
	SellerEmail string             `json:"sellerEmail" bson:"sellerEmail"`
	BuyerName   string             `json:"buyerName,omitempty" bson:"buyerName,omitempty"`
	Rating      any                `json:"rating,omitempty" bson:"rating,omitempty"`
	Comment     string             `json:"comment,omitempty" bson:"comment,omitempty"`
}

// CartEntry holds one (itemName, sellerName) pair. Repeat adds
// accumulate into Quantity rather than creating a second entry.
type CartEntry struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ItemName   string             `json:"itemName" bson:"itemName"`
	SellerName string             `json:"sellerName" bson:"sellerName"`
	Cost       any                `json:"cost,omitempty" bson:"cost,omitempty"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	ImageUrl   any                `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	ShopName   string             `json:"shopName" bson:"shopName"`
}
