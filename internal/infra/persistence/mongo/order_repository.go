package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domcart "example.com/storefront/internal/domain/cart"
	domorder "example.com/storefront/internal/domain/order"
)

type orderDoc struct {
	ID         string         `bson:"_id"`
	UserID     string         `bson:"user_id"`
	Items      []orderItemDoc `bson:"items"`
	TotalPrice float64        `bson:"total_price"`
	CreatedAt  time.Time      `bson:"created_at"`
}

type orderItemDoc struct {
	ID       int64   `bson:"id"`
	Title    string  `bson:"title"`
	Price    float64 `bson:"price"`
	Image    string  `bson:"image"`
	Quantity int64   `bson:"quantity"`
}

func (d orderDoc) order() *domorder.Order {
	items := make([]domcart.LineItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domcart.LineItem{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}
	return &domorder.Order{
		ID:         d.ID,
		UserID:     d.UserID,
		Items:      items,
		TotalPrice: d.TotalPrice,
		CreatedAt:  d.CreatedAt,
	}
}

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection("orders")}
}

// Insert writes the order document. The creation timestamp is assigned here,
// on the store side, not by the caller.
func (r *OrderRepository) Insert(ctx context.Context, o *domorder.Order) error {
	o.CreatedAt = time.Now().UTC()

	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderItemDoc{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: it.Quantity,
		})
	}

	doc := orderDoc{
		ID:         o.ID,
		UserID:     o.UserID,
		Items:      items,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domorder.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]*domorder.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.order())
	}
	return orders, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	var doc orderDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domorder.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return doc.order(), nil
}
