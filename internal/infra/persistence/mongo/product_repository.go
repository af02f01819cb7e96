package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domcatalog "example.com/storefront/internal/domain/catalog"
)

const seedMarkerID = "products_seeded"

type productDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ProductID   int64              `bson:"id"`
	Title       string             `bson:"title"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Image       string             `bson:"image"`
	Rating      ratingDoc          `bson:"rating"`
}

type ratingDoc struct {
	Rate  float64 `bson:"rate"`
	Count int64   `bson:"count"`
}

func (d productDoc) product() domcatalog.Product {
	return domcatalog.Product{
		DocID:       d.ID.Hex(),
		ID:          d.ProductID,
		Title:       d.Title,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		Image:       d.Image,
		Rating:      domcatalog.Rating{Rate: d.Rating.Rate, Count: d.Rating.Count},
	}
}

func newProductDoc(p domcatalog.Product) productDoc {
	return productDoc{
		ProductID:   p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      ratingDoc{Rate: p.Rating.Rate, Count: p.Rating.Count},
	}
}

type ProductRepository struct {
	collection *mongo.Collection
	meta       *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("products"),
		meta:       db.Collection("meta"),
	}
}

func (r *ProductRepository) List(ctx context.Context) ([]domcatalog.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []productDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	products := make([]domcatalog.Product, 0, len(docs))
	for _, d := range docs {
		products = append(products, d.product())
	}
	return products, nil
}

func (r *ProductRepository) GetByDocID(ctx context.Context, docID string) (*domcatalog.Product, error) {
	oid, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return nil, domcatalog.ErrProductNotFound
	}

	var doc productDoc
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domcatalog.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	p := doc.product()
	return &p, nil
}

func (r *ProductRepository) Insert(ctx context.Context, p domcatalog.Product) (string, error) {
	res, err := r.collection.InsertOne(ctx, newProductDoc(p))
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *ProductRepository) Update(ctx context.Context, docID string, p domcatalog.Product) error {
	oid, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return domcatalog.ErrProductNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       p.Title,
		"price":       p.Price,
		"description": p.Description,
		"category":    p.Category,
		"image":       p.Image,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domcatalog.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, docID string) error {
	oid, err := primitive.ObjectIDFromHex(docID)
	if err != nil {
		return domcatalog.ErrProductNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domcatalog.ErrProductNotFound
	}
	return nil
}

// ClaimSeedMarker inserts the fixed-id marker document. The unique _id makes
// the claim atomic: exactly one caller wins, every later caller gets a
// duplicate-key error mapped to ErrAlreadySeeded.
func (r *ProductRepository) ClaimSeedMarker(ctx context.Context) error {
	_, err := r.meta.InsertOne(ctx, bson.M{
		"_id":       seedMarkerID,
		"seeded_at": time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return domcatalog.ErrAlreadySeeded
	}
	if err != nil {
		return fmt.Errorf("failed to claim seed marker: %w", err)
	}
	return nil
}
