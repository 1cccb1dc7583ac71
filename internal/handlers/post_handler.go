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

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// ListPosts returns all blog posts matching the optional filters
// @Summary List blog posts
// @Description List blog posts, most recently published first, optionally restricted to featured ones, capped, or narrowed by free-text search and tag
// @Tags blog
// @Accept json
// @Produce json
// @Param featured query string false "Pass the literal \"true\" to only return featured posts"
// @Param limit query string false "Maximum number of posts to return"
// @Param q query string false "Free-text search over title, excerpt and tags"
// @Param tag query string false "Exact tag filter"
// @Success 200 {array} models.BlogPost "List of posts"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /blog [get]
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	params := query.ListParams{
		Featured: c.Query("featured"),
		Limit:    c.Query("limit"),
	}
	q := search.Query{
		Term: c.Query("q"),
		Tag:  c.Query("tag"),
	}

	posts, err := h.postService.ListPosts(c.Context(), params, q)
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to list blog posts",
			"details": err.Error(),
		})
	}
	return c.JSON(posts)
}

// GetPost returns a post by slug or canonical id
// @Summary Get a blog post
// @Description Get a single post; the identifier is tried as a slug first, then as a canonical id
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug or canonical id"
// @Success 200 {object} models.BlogPost "Post found"
// @Failure 404 {object} map[string]interface{} "Post not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /blog/{slug} [get]
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	identifier := c.Params("slug")

	post, err := h.postService.GetPost(c.Context(), identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Blog post not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error fetching post: identifier=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to fetch blog post",
			"details": err.Error(),
		})
	}
	return c.JSON(post)
}

// CreatePost creates a new blog post
// @Summary Create a blog post
// @Description Create a new post; timestamps are server-assigned, publishedAt defaults to now, and a missing slug is derived from the title
// @Tags blog
// @Accept json
// @Produce json
// @Param post body models.BlogPost true "Post data"
// @Success 201 {object} models.BlogPost "Post successfully created"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid post data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /blog [post]
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		log.Printf("Error parsing post data: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	if err := h.postService.CreatePost(c.Context(), &post); err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to create blog post",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost partially updates a blog post
// @Summary Update a blog post
// @Description Apply a partial patch to the post named by slug or id; updatedAt is refreshed by the server
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug or canonical id"
// @Param patch body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{} "Update acknowledged"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid patch data"
// @Failure 404 {object} map[string]interface{} "Post not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /blog/{slug} [patch]
func (h *PostHandler) UpdatePost(c *fiber.Ctx) error {
	identifier := c.Params("slug")

	patch := bson.M{}
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing post patch: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	err := h.postService.UpdatePost(c.Context(), identifier, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Blog post not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error updating post: identifier=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to update blog post",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// DeletePost deletes a blog post
// @Summary Delete a blog post
// @Description Delete the post named by slug or canonical id
// @Tags blog
// @Accept json
// @Produce json
// @Param slug path string true "Post slug or canonical id"
// @Success 200 {object} map[string]interface{} "Post deleted successfully"
// @Failure 404 {object} map[string]interface{} "Post not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security AdminSession
// @Router /blog/{slug} [delete]
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	identifier := c.Params("slug")

	err := h.postService.DeletePost(c.Context(), identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   true,
			"message": "Blog post not found",
			"id":      identifier,
		})
	}
	if err != nil {
		log.Printf("Error deleting post: identifier=%s, Error=%v", identifier, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Failed to delete blog post",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Blog post deleted successfully",
		"id":      identifier,
	})
}
