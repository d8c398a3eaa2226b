// Package dbtest provides an in-memory db.Store for handler tests.
package dbtest

import (
	"context"
	"sync"

	"kiraana/db"
	"kiraana/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fake keeps everything in maps guarded by one mutex. Setting Err
// makes every operation fail with it, for exercising 500 paths. The
// AddToCart contract matches the Mongo implementation: one entry per
// (itemName, sellerName), quantity incremented under the lock.
type Fake struct {
	mu      sync.Mutex
	Err     error
	Buyers  map[string]models.Buyer  // keyed by email
	Sellers map[string]models.Seller // keyed by email
	Items   []models.Item
	Orders  []models.Order
	Reviews []models.Review
	Cart    []models.CartEntry
}

var _ db.Store = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		Buyers:  map[string]models.Buyer{},
		Sellers: map[string]models.Seller{},
	}
}

func (f *Fake) FindBuyerByEmail(_ context.Context, email string) (*models.Buyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if b, ok := f.Buyers[email]; ok {
		return &b, nil
	}
	return nil, db.ErrNotFound
}

func (f *Fake) FindSellerByEmail(_ context.Context, email string) (*models.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if s, ok := f.Sellers[email]; ok {
		return &s, nil
	}
	return nil, db.ErrNotFound
}

func (f *Fake) InsertBuyer(_ context.Context, buyer *models.Buyer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.Buyers[buyer.Email]; ok {
		return db.ErrDuplicate
	}
	if buyer.ID.IsZero() {
		buyer.ID = primitive.NewObjectID()
	}
	f.Buyers[buyer.Email] = *buyer
	return nil
}

func (f *Fake) InsertSeller(_ context.Context, seller *models.Seller) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.Sellers[seller.Email]; ok {
		return db.ErrDuplicate
	}
	if seller.ID.IsZero() {
		seller.ID = primitive.NewObjectID()
	}
	f.Sellers[seller.Email] = *seller
	return nil
}

func (f *Fake) FindBuyerByEmailKey(_ context.Context, email, key string) (*models.Buyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if b, ok := f.Buyers[email]; ok && b.Key == key {
		return &b, nil
	}
	return nil, db.ErrNotFound
}

func (f *Fake) FindSellerByEmailKey(_ context.Context, email, key string) (*models.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	if s, ok := f.Sellers[email]; ok && s.Key == key {
		return &s, nil
	}
	return nil, db.ErrNotFound
}

func (f *Fake) SetBuyerPassword(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if b, ok := f.Buyers[email]; ok {
		b.Password = password
		f.Buyers[email] = b
	}
	return nil
}

func (f *Fake) SetSellerPassword(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if s, ok := f.Sellers[email]; ok {
		s.Password = password
		f.Sellers[email] = s
	}
	return nil
}

func (f *Fake) PendingSellers(_ context.Context) ([]models.Seller, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	pending := []models.Seller{}
	for _, s := range f.Sellers {
		if s.ApplicationStatus == models.StatusPending {
			pending = append(pending, s)
		}
	}
	return pending, nil
}

func (f *Fake) ApproveSeller(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for email, s := range f.Sellers {
		if s.ID.Hex() == id {
			if s.ApplicationStatus == models.StatusGranted {
				// No-op update, indistinguishable from an unknown id.
				return db.ErrNotFound
			}
			s.ApplicationStatus = models.StatusGranted
			f.Sellers[email] = s
			return nil
		}
	}
	return db.ErrNotFound
}

func (f *Fake) InsertItem(_ context.Context, item *models.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	f.Items = append(f.Items, *item)
	return nil
}

func (f *Fake) ItemsByShop(_ context.Context, shopName string) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	items := []models.Item{}
	for _, it := range f.Items {
		if it.ShopName == shopName {
			items = append(items, it)
		}
	}
	return items, nil
}

func (f *Fake) AllItems(_ context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	return append([]models.Item{}, f.Items...), nil
}

func (f *Fake) RefurbishedItems(_ context.Context) ([]models.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	items := []models.Item{}
	for _, it := range f.Items {
		if b, ok := it.Refurbished.(bool); ok && b {
			items = append(items, it)
		}
	}
	return items, nil
}

func (f *Fake) OrdersByShop(_ context.Context, shopName, sellerName string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	orders := []models.Order{}
	for _, o := range f.Orders {
		if o.ShopName == shopName && o.SellerName == sellerName {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (f *Fake) ReviewsBySeller(_ context.Context, shopName, sellerEmail string) ([]models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	reviews := []models.Review{}
	for _, r := range f.Reviews {
		if r.ShopName == shopName && r.SellerEmail == sellerEmail {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (f *Fake) AddToCart(_ context.Context, entry models.CartEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	for i := range f.Cart {
		if f.Cart[i].ItemName == entry.ItemName && f.Cart[i].SellerName == entry.SellerName {
			f.Cart[i].Quantity += entry.Quantity
			return nil
		}
	}
	entry.ID = primitive.NewObjectID()
	f.Cart = append(f.Cart, entry)
	return nil
}
