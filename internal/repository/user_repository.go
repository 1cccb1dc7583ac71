package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-service/internal/models"
)

// UserRepository provides access to the "admin_users" collection.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a UserRepository on the given database.
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("admin_users")}
}

// GetByUsername returns the admin user with the given username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find admin user")
	}
	return &user, nil
}

// CreateUser inserts a new admin user.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.AdminUser) error {
	_, err := r.col.InsertOne(ctx, user)
	return errors.Wrap(err, "insert admin user")
}

// CountUsers returns the number of admin users.
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{})
	return n, errors.Wrap(err, "count admin users")
}
