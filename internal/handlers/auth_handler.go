package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"portfolio-service/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies admin credentials and issues a session token
// @Summary Admin login
// @Description Verify admin credentials against the credential store and issue an opaque session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} map[string]interface{} "Session token"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid request format",
			"details": err.Error(),
		})
	}

	token, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Invalid credentials",
		})
	}
	if err != nil {
		log.Printf("Error during login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   true,
			"message": "Login failed",
			"details": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"token": token})
}

// Logout revokes the current session token
// @Summary Admin logout
// @Description Revoke the session token presented in the Authorization header
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Logout acknowledged"
// @Security AdminSession
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.authService.Logout(bearerToken(c))
	return c.JSON(fiber.Map{"success": true})
}

// RequireSession guards admin routes: requests without a live session token
// in the Authorization header are rejected.
func (h *AuthHandler) RequireSession(c *fiber.Ctx) error {
	if !h.authService.Validate(bearerToken(c)) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   true,
			"message": "Authentication required",
		})
	}
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	return strings.TrimPrefix(header, "Bearer ")
}
