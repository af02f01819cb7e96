package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domuser "example.com/storefront/internal/domain/user"
)

type userDoc struct {
	UID          string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	DisplayName  string    `bson:"display_name"`
	Address      string    `bson:"address"`
	PhoneNumber  string    `bson:"phone_number"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d userDoc) user() *domuser.User {
	return &domuser.User{
		UID:          d.UID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		DisplayName:  d.DisplayName,
		Address:      d.Address,
		PhoneNumber:  d.PhoneNumber,
		CreatedAt:    d.CreatedAt,
	}
}

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

func (r *UserRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*domuser.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domuser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return doc.user(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domuser.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return doc.user(), nil
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) error {
	doc := userDoc{
		UID:          u.UID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		DisplayName:  u.DisplayName,
		Address:      u.Address,
		PhoneNumber:  u.PhoneNumber,
		CreatedAt:    u.CreatedAt,
	}

	_, err := r.collection.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return domuser.ErrEmailAlreadyUsed
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, uid string, displayName, address, phoneNumber string) error {
	update := bson.M{"$set": bson.M{
		"display_name": displayName,
		"address":      address,
		"phone_number": phoneNumber,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": uid}, update)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domuser.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, uid string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domuser.ErrUserNotFound
	}
	return nil
}
