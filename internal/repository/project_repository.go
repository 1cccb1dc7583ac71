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

// ProjectRepository provides access to the "projects" collection.
type ProjectRepository struct {
	col *mongo.Collection
}

// NewProjectRepository creates a ProjectRepository on the given database.
func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection("projects")}
}

// CreateProject inserts a new project and fills in its assigned id.
func (r *ProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	res, err := r.col.InsertOne(ctx, project)
	if err != nil {
		return errors.Wrap(err, "insert project")
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		project.ID = id
	}
	return nil
}

// ListProjects returns projects matching params, newest first.
func (r *ProjectRepository) ListProjects(ctx context.Context, params query.ListParams) ([]models.Project, error) {
	cur, err := r.col.Find(ctx, params.Filter(), params.Options("createdAt"))
	if err != nil {
		return nil, errors.Wrap(err, "find projects")
	}
	projects := make([]models.Project, 0)
	if err := cur.All(ctx, &projects); err != nil {
		return nil, errors.Wrap(err, "decode projects")
	}
	return projects, nil
}

// GetProject resolves an external identifier to a single project. Projects
// resolve by canonical id only, so anything that is not a valid id is
// ErrNotFound.
func (r *ProjectRepository) GetProject(ctx context.Context, identifier string) (*models.Project, error) {
	for _, key := range resolve.IDOnly(identifier) {
		var project models.Project
		err := r.col.FindOne(ctx, key.Filter()).Decode(&project)
		if err == nil {
			return &project, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.Wrap(err, "find project")
		}
	}
	return nil, ErrNotFound
}

// UpdateProject applies patch to the project named by identifier. The
// mutation is a single store operation scoped by the first resolving key.
func (r *ProjectRepository) UpdateProject(ctx context.Context, identifier string, patch bson.M) error {
	for _, key := range resolve.IDOnly(identifier) {
		res, err := r.col.UpdateOne(ctx, key.Filter(), bson.M{"$set": patch})
		if err != nil {
			return errors.Wrap(err, "update project")
		}
		if res.MatchedCount > 0 {
			return nil
		}
	}
	return ErrNotFound
}

// DeleteProject removes the project named by identifier.
func (r *ProjectRepository) DeleteProject(ctx context.Context, identifier string) error {
	for _, key := range resolve.IDOnly(identifier) {
		res, err := r.col.DeleteOne(ctx, key.Filter())
		if err != nil {
			return errors.Wrap(err, "delete project")
		}
		if res.DeletedCount > 0 {
			return nil
		}
	}
	return ErrNotFound
}
