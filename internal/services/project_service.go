package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"portfolio-service/internal/models"
	"portfolio-service/internal/query"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/search"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ListProjects fetches the full store result for params and narrows it in
// memory with q. Narrowing never reorders, so the store's newest-first
// order carries through to the response.
func (s *ProjectService) ListProjects(ctx context.Context, params query.ListParams, q search.Query) ([]models.Project, error) {
	projects, err := s.repo.ListProjects(ctx, params)
	if err != nil {
		return nil, err
	}
	return search.Narrow(projects, q, models.Project.SearchDocument), nil
}

func (s *ProjectService) GetProject(ctx context.Context, identifier string) (*models.Project, error) {
	return s.repo.GetProject(ctx, identifier)
}

// CreateProject stamps the server-assigned timestamps and inserts.
func (s *ProjectService) CreateProject(ctx context.Context, project *models.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return s.repo.CreateProject(ctx, project)
}

// UpdateProject applies a partial patch and refreshes updatedAt. The id and
// creation timestamp are immutable.
func (s *ProjectService) UpdateProject(ctx context.Context, identifier string, patch bson.M) error {
	delete(patch, "_id")
	delete(patch, "createdAt")
	patch["updatedAt"] = time.Now().UTC()
	return s.repo.UpdateProject(ctx, identifier, patch)
}

func (s *ProjectService) DeleteProject(ctx context.Context, identifier string) error {
	return s.repo.DeleteProject(ctx, identifier)
}
