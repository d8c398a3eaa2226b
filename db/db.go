package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kiraana/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo implements Store over a single MongoDB database. The driver
// pools connections internally; one Mongo value serves every request.
type Mongo struct {
	client  *mongo.Client
	buyers  *mongo.Collection
	sellers *mongo.Collection
	items   *mongo.Collection
	orders  *mongo.Collection
	reviews *mongo.Collection
	cart    *mongo.Collection
}

// Connect dials the store and pings it before returning, so the
// caller only starts listening once the database is reachable.
func Connect(ctx context.Context, uri, database string) (*Mongo, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	d := client.Database(database)
	return &Mongo{
		client:  client,
		buyers:  d.Collection("buyer"),
		sellers: d.Collection("seller"),
		items:   d.Collection("items"),
		orders:  d.Collection("orders"),
		reviews: d.Collection("reviews"),
		cart:    d.Collection("cart"),
	}, nil
}

// Close releases the underlying client, for shutdown hooks.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) FindBuyerByEmail(ctx context.Context, email string) (*models.Buyer, error) {
	var buyer models.Buyer
	err := m.buyers.FindOne(ctx, bson.M{"email": email}).Decode(&buyer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}
	return &buyer, nil
}

func (m *Mongo) FindSellerByEmail(ctx context.Context, email string) (*models.Seller, error) {
	var seller models.Seller
	err := m.sellers.FindOne(ctx, bson.M{"email": email}).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find seller: %w", err)
	}
	return &seller, nil
}

// InsertBuyer rejects an email already present among buyers. Only the
// buyer collection is consulted; a seller may share the address.
func (m *Mongo) InsertBuyer(ctx context.Context, buyer *models.Buyer) error {
	err := m.buyers.FindOne(ctx, bson.M{"email": buyer.Email}).Err()
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check buyer email: %w", err)
	}
	if _, err := m.buyers.InsertOne(ctx, buyer); err != nil {
		return fmt.Errorf("failed to insert buyer: %w", err)
	}
	return nil
}

func (m *Mongo) InsertSeller(ctx context.Context, seller *models.Seller) error {
	err := m.sellers.FindOne(ctx, bson.M{"email": seller.Email}).Err()
	if err == nil {
		return ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("failed to check seller email: %w", err)
	}
	if _, err := m.sellers.InsertOne(ctx, seller); err != nil {
		return fmt.Errorf("failed to insert seller: %w", err)
	}
	return nil
}

func (m *Mongo) FindBuyerByEmailKey(ctx context.Context, email, key string) (*models.Buyer, error) {
	var buyer models.Buyer
	err := m.buyers.FindOne(ctx, bson.M{"email": email, "key": key}).Decode(&buyer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find buyer: %w", err)
	}
	return &buyer, nil
}

func (m *Mongo) FindSellerByEmailKey(ctx context.Context, email, key string) (*models.Seller, error) {
	var seller models.Seller
	err := m.sellers.FindOne(ctx, bson.M{"email": email, "key": key}).Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find seller: %w", err)
	}
	return &seller, nil
}

func (m *Mongo) SetBuyerPassword(ctx context.Context, email, password string) error {
	_, err := m.buyers.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"password": password}})
	if err != nil {
		return fmt.Errorf("failed to update buyer password: %w", err)
	}
	return nil
}

func (m *Mongo) SetSellerPassword(ctx context.Context, email, password string) error {
	_, err := m.sellers.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$set": bson.M{"password": password}})
	if err != nil {
		return fmt.Errorf("failed to update seller password: %w", err)
	}
	return nil
}

func (m *Mongo) PendingSellers(ctx context.Context) ([]models.Seller, error) {
	cursor, err := m.sellers.Find(ctx, bson.M{"applicationStatus": models.StatusPending})
	if err != nil {
		return nil, fmt.Errorf("failed to list pending sellers: %w", err)
	}
	defer cursor.Close(ctx)

	sellers := []models.Seller{}
	if err := cursor.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("failed to decode pending sellers: %w", err)
	}
	return sellers, nil
}

// ApproveSeller moves one seller to granted. ModifiedCount stays zero
// both for an unknown id and for a seller already granted, so either
// case reports ErrNotFound.
func (m *Mongo) ApproveSeller(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := m.sellers.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$set": bson.M{"applicationStatus": models.StatusGranted}})
	if err != nil {
		return fmt.Errorf("failed to approve seller: %w", err)
	}
	if res.ModifiedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) InsertItem(ctx context.Context, item *models.Item) error {
	if _, err := m.items.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (m *Mongo) ItemsByShop(ctx context.Context, shopName string) ([]models.Item, error) {
	return m.findItems(ctx, bson.M{"shopName": shopName})
}

func (m *Mongo) AllItems(ctx context.Context) ([]models.Item, error) {
	return m.findItems(ctx, bson.M{})
}

// RefurbishedItems matches only a boolean true; string or absent
// refurbished values are excluded.
func (m *Mongo) RefurbishedItems(ctx context.Context) ([]models.Item, error) {
	return m.findItems(ctx, bson.M{"refurbished": true})
}

func (m *Mongo) findItems(ctx context.Context, filter bson.M) ([]models.Item, error) {
	cursor, err := m.items.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func (m *Mongo) OrdersByShop(ctx context.Context, shopName, sellerName string) ([]models.Order, error) {
	cursor, err := m.orders.Find(ctx, bson.M{"shopName": shopName, "sellerName": sellerName})
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (m *Mongo) ReviewsBySeller(ctx context.Context, shopName, sellerEmail string) ([]models.Review, error) {
	cursor, err := m.reviews.Find(ctx, bson.M{"shopName": shopName, "sellerEmail": sellerEmail})
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

// AddToCart is a single atomic upsert: the quantity increments when
// the (itemName, sellerName) pair exists, and the remaining fields
// are written only on first insert, so concurrent adds of the same
// pair never lose quantity or create duplicate entries.
func (m *Mongo) AddToCart(ctx context.Context, entry models.CartEntry) error {
	filter := bson.M{"itemName": entry.ItemName, "sellerName": entry.SellerName}
	update := bson.M{
		"$inc": bson.M{"quantity": entry.Quantity},
		"$setOnInsert": bson.M{
			"cost":     entry.Cost,
			"imageUrl": entry.ImageUrl,
			"shopName": entry.ShopName,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.cart.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}
	return nil
}
