package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-service/internal/models"
	"portfolio-service/internal/resolve"
)

// MediaRepository provides access to the "media" collection of image
// metadata records.
type MediaRepository struct {
	col *mongo.Collection
}

// NewMediaRepository creates a MediaRepository on the given database.
func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{col: db.Collection("media")}
}

// CreateMedia inserts a metadata record and fills in its assigned id.
func (r *MediaRepository) CreateMedia(ctx context.Context, media *models.MediaObject) error {
	res, err := r.col.InsertOne(ctx, media)
	if err != nil {
		return errors.Wrap(err, "insert media record")
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		media.ID = id
	}
	return nil
}

// GetMedia resolves a media identifier; media records resolve by canonical
// id only.
func (r *MediaRepository) GetMedia(ctx context.Context, identifier string) (*models.MediaObject, error) {
	for _, key := range resolve.IDOnly(identifier) {
		var media models.MediaObject
		err := r.col.FindOne(ctx, key.Filter()).Decode(&media)
		if err == nil {
			return &media, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(err, "find media record")
		}
	}
	return nil, ErrNotFound
}
