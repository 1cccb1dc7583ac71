package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"portfolio-service/internal/models"
	"portfolio-service/internal/query"
	"portfolio-service/internal/search"
	"portfolio-service/internal/services"
)

// AdminHandler serves the content-management dashboard data.
type AdminHandler struct {
	projectService *services.ProjectService
	postService    *services.PostService
}

func NewAdminHandler(projectService *services.ProjectService, postService *services.PostService) *AdminHandler {
	return &AdminHandler{
		projectService: projectService,
		postService:    postService,
	}
}

type dashboardSummary struct {
	ProjectCount   int               `json:"projectCount"`
	PostCount      int               `json:"postCount"`
	FeaturedCount  int               `json:"featuredCount"`
	RecentProjects []models.Project  `json:"recentProjects"`
	RecentPosts    []models.BlogPost `json:"recentPosts"`
}

// Summary returns the dashboard overview
// @Summary Dashboard summary
// @Description Counts and the most recent projects and posts; both collections are fetched concurrently and joined
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} dashboardSummary "Dashboard data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /admin/summary [get]
func (h *AdminHandler) Summary(c *fiber.Ctx) error {
	var (
		projects []models.Project
		posts    []models.BlogPost
	)

	// Independent reads; join before responding.
	g, ctx := errgroup.WithContext(c.Context())
	g.Go(func() error {
		var err error
		projects, err = h.projectService.ListProjects(ctx, query.ListParams{}, search.Query{})
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = h.postService.ListPosts(ctx, query.ListParams{}, search.Query{})
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("Error building dashboard summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to build dashboard summary",
			"details": err.Error(),
		})
	}

	featured := 0
	for _, p := range projects {
		if p.Featured {
			featured++
		}
	}

	summary := dashboardSummary{
		ProjectCount:   len(projects),
		PostCount:      len(posts),
		FeaturedCount:  featured,
		RecentProjects: capSlice(projects, 5),
		RecentPosts:    capSlice(posts, 5),
	}
	return c.JSON(summary)
}

func capSlice[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
