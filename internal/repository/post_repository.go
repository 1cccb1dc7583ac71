package repository

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-service/internal/models"
	"portfolio-service/internal/query"
	"portfolio-service/internal/resolve"
)

// PostRepository provides access to the "blog" collection.
type PostRepository struct {
	col *mongo.Collection
}

// NewPostRepository creates a PostRepository on the given database.
func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("blog")}
}

// CreatePost inserts a new post and fills in its assigned id.
func (r *PostRepository) CreatePost(ctx context.Context, post *models.BlogPost) error {
	res, err := r.col.InsertOne(ctx, post)
	if err != nil {
		return errors.Wrap(err, "insert post")
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = id
	}
	return nil
}

// ListPosts returns posts matching params, most recently published first.
func (r *PostRepository) ListPosts(ctx context.Context, params query.ListParams) ([]models.BlogPost, error) {
	cur, err := r.col.Find(ctx, params.Filter(), params.Options("publishedAt"))
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	posts := make([]models.BlogPost, 0)
	if err := cur.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	return posts, nil
}

// GetPost resolves an external identifier to a single post: the slug
// interpretation is tried first, then the canonical id. First hit wins.
func (r *PostRepository) GetPost(ctx context.Context, identifier string) (*models.BlogPost, error) {
	for _, key := range resolve.SlugOrID(identifier) {
		var post models.BlogPost
		err := r.col.FindOne(ctx, key.Filter()).Decode(&post)
		if err == nil {
			return &post, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(err, "find post")
		}
	}
	return nil, ErrNotFound
}

// UpdatePost applies patch to the post named by identifier, using the same
// slug-before-id resolution as GetPost. The mutation itself is a single
// store operation scoped by the first key whose filter matches.
func (r *PostRepository) UpdatePost(ctx context.Context, identifier string, patch bson.M) error {
	for _, key := range resolve.SlugOrID(identifier) {
		res, err := r.col.UpdateOne(ctx, key.Filter(), bson.M{"$set": patch})
		if err != nil {
			return errors.Wrap(err, "update post")
		}
		if res.MatchedCount > 0 {
			return nil
		}
	}
	return ErrNotFound
}

// DeletePost removes the post named by identifier.
func (r *PostRepository) DeletePost(ctx context.Context, identifier string) error {
	for _, key := range resolve.SlugOrID(identifier) {
		res, err := r.col.DeleteOne(ctx, key.Filter())
		if err != nil {
			return errors.Wrap(err, "delete post")
		}
		if res.DeletedCount > 0 {
			return nil
		}
	}
	return ErrNotFound
}
