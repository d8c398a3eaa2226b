package db

import (
	"context"
	"errors"

	"kiraana/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document, and
	// by ApproveSeller when the update modifies nothing (an unknown id
	// and an already-granted seller are indistinguishable).
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned on inserts that would reuse an email
	// already present in the same collection.
	ErrDuplicate = errors.New("email already registered")
)

// Store is the persistence port shared by all handlers. It is
// constructed once at startup and injected; handlers never touch a
// global connection handle.
type Store interface {
	FindBuyerByEmail(ctx context.Context, email string) (*models.Buyer, error)
	FindSellerByEmail(ctx context.Context, email string) (*models.Seller, error)
	InsertBuyer(ctx context.Context, buyer *models.Buyer) error
	InsertSeller(ctx context.Context, seller *models.Seller) error

	FindBuyerByEmailKey(ctx context.Context, email, key string) (*models.Buyer, error)
	FindSellerByEmailKey(ctx context.Context, email, key string) (*models.Seller, error)
	SetBuyerPassword(ctx context.Context, email, password string) error
	SetSellerPassword(ctx context.Context, email, password string) error

	PendingSellers(ctx context.Context) ([]models.Seller, error)
	ApproveSeller(ctx context.Context, id string) error

	InsertItem(ctx context.Context, item *models.Item) error
	ItemsByShop(ctx context.Context, shopName string) ([]models.Item, error)
	AllItems(ctx context.Context) ([]models.Item, error)
	RefurbishedItems(ctx context.Context) ([]models.Item, error)

	OrdersByShop(ctx context.Context, shopName, sellerName string) ([]models.Order, error)
	ReviewsBySeller(ctx context.Context, shopName, sellerEmail string) ([]models.Review, error)

	AddToCart(ctx context.Context, entry models.CartEntry) error
}
