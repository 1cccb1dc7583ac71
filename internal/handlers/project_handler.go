package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio-service/internal/models"
	"portfolio-service/internal/query"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/search"
	"portfolio-service/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects returns all projects matching the optional filters
// @Summary List projects
// @Description List portfolio projects, newest first, optionally restricted to featured ones, capped, or narrowed by free-text search and category
// @Tags projects
// @Accept json
// @Produce json
// @Param featured query string false "Pass the literal \"true\" to only return featured projects"
// @Param limit query string false "Maximum number of projects to return"
// @Param q query string false "Free-text search over title, description and technologies"
// @Param category query string false "Exact category filter"
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	params := query.ListParams{
		Featured: c.Query("featured"),
		Limit:    c.Query("limit"),
	}
	q := search.Query{
		Term:     c.Query("q"),
		Category: c.Query("category"),
	}

	projects, err := h.projectService.ListProjects(c.Context(), params, q)
	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to list projects",
			"details": err.Error(),
		})
	}
	return c.JSON(projects)
}

// GetProject returns a project by its canonical id
// @Summary Get a project
// @Description Get a single project by its canonical id
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} models.Project "Project found"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	identifier := c.Params("id")

	project, err := h.projectService.GetProject(c.Context(), identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Project not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error fetching project: ID=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to fetch project",
			"details": err.Error(),
		})
	}
	return c.JSON(project)
}

// CreateProject creates a new project
// @Summary Create a project
// @Description Create a new portfolio project; createdAt and updatedAt are server-assigned
// @Tags projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Project successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid project data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		log.Printf("Error parsing project data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	if err := h.projectService.CreateProject(c.Context(), &project); err != nil {
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to create project",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject partially updates a project
// @Summary Update a project
// @Description Apply a partial patch to a project; updatedAt is refreshed by the server
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param patch body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Update acknowledged"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid patch data"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	identifier := c.Params("id")

	patch := bson.M{}
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing project patch: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	err := h.projectService.UpdateProject(c.Context(), identifier, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Project not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error updating project: ID=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update project",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeleteProject deletes a project
// @Summary Delete a project
// @Description Delete a project by its canonical id
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} map[string]interface{} "Project deleted successfully"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	identifier := c.Params("id")

	err := h.projectService.DeleteProject(c.Context(), identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Project not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error deleting project: ID=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to delete project",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Project deleted successfully",
		"id":      identifier,
	})
}
