package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"portfolio-service/internal/models"
	"portfolio-service/internal/query"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/search"
	"portfolio-service/internal/slug"
)

type PostService struct {
	repo *repository.PostRepository
}

func NewPostService(repo *repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// ListPosts fetches the full store result for params and narrows it in
// memory with q, preserving the publish-date order.
func (s *PostService) ListPosts(ctx context.Context, params query.ListParams, q search.Query) ([]models.BlogPost, error) {
	posts, err := s.repo.ListPosts(ctx, params)
	if err != nil {
		return nil, err
	}
	return search.Narrow(posts, q, models.BlogPost.SearchDocument), nil
}

func (s *PostService) GetPost(ctx context.Context, identifier string) (*models.BlogPost, error) {
	return s.repo.GetPost(ctx, identifier)
}

// CreatePost stamps the server-assigned timestamps, derives a slug from
// the title when none was supplied, defaults publishedAt to now, and
// inserts. Slug uniqueness is not enforced; duplicates are tolerated and
// resolve to the first match in store order.
func (s *PostService) CreatePost(ctx context.Context, post *models.BlogPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.PublishedAt.IsZero() {
		post.PublishedAt = now
	}
	if post.Slug == "" {
		post.Slug = slug.Make(post.Title)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return s.repo.CreatePost(ctx, post)
}

// UpdatePost applies a partial patch and refreshes updatedAt. The id and
// creation timestamp are immutable.
func (s *PostService) UpdatePost(ctx context.Context, identifier string, patch bson.M) error {
	delete(patch, "_id")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now().UTC()
	return s.repo.UpdatePost(ctx, identifier, patch)
}

func (s *PostService) DeletePost(ctx context.Context, identifier string) error {
	return s.repo.DeletePost(ctx, identifier)
}
