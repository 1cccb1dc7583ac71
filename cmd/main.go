package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio-service/internal/config"
	"portfolio-service/internal/handlers"
	"portfolio-service/internal/metrics"
	"portfolio-service/internal/repository"
	"portfolio-service/internal/services"
	"portfolio-service/internal/storage"

	_ "portfolio-service/docs"
)

// @title Portfolio Content API
// @version 1.0
// @description CRUD service for portfolio projects, blog posts and media
// @BasePath /api
// @securityDefinitions.apikey AdminSession
// @in header
// @name Authorization
func main() {
	cfg := InitConfig()
	db := ConnectDatabase(cfg)
	minioClient := InitMinIOClient(cfg)

	projectRepo := repository.NewProjectRepository(db)
	postRepo := repository.NewPostRepository(db)
	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)

	projectService := services.NewProjectService(projectRepo)
	postService := services.NewPostService(postRepo)
	authService := services.NewAuthService(userRepo, cfg.SessionTTL)
	mediaService := services.NewMediaService(mediaRepo, minioClient, cfg.MinioBucket)

	if err := authService.SeedAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Admin seeding failed: %v", err)
	}

	app := fiber.New()
	app.Use(metrics.NewMetrics().Middleware())

	// Register Prometheus metrics endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	projectHandler := handlers.NewProjectHandler(projectService)
	postHandler := handlers.NewPostHandler(postService)
	authHandler := handlers.NewAuthHandler(authService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	adminHandler := handlers.NewAdminHandler(projectService, postService)

	api := app.Group("/api")

	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	api.Get("/projects", projectHandler.ListProjects)
	api.Get("/projects/:id", projectHandler.GetProject)
	api.Post("/projects", authHandler.RequireSession, projectHandler.CreateProject)
	api.Patch("/projects/:id", authHandler.RequireSession, projectHandler.UpdateProject)
	api.Delete("/projects/:id", authHandler.RequireSession, projectHandler.DeleteProject)

	api.Get("/blog", postHandler.ListPosts)
	api.Get("/blog/:slug", postHandler.GetPost)
	api.Post("/blog", authHandler.RequireSession, postHandler.CreatePost)
	api.Patch("/blog/:slug", authHandler.RequireSession, postHandler.UpdatePost)
	api.Delete("/blog/:slug", authHandler.RequireSession, postHandler.DeletePost)

	api.Post("/media", authHandler.RequireSession, mediaHandler.UploadMedia)
	api.Get("/media/:id/download", mediaHandler.DownloadMedia)

	api.Get("/admin/summary", authHandler.RequireSession, adminHandler.Summary)

	api.Get("/swagger/*", swagger.HandlerDefault)

	// Add Health check endpoint
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	routes := app.GetRoutes()
	log.Println("Registered routes:")
	for _, r := range routes {
		log.Printf("  %s %s\n", r.Method, r.Path)
	}

	// Start the Fiber server
	port := cfg.AppPort
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Printf("Server listening on port %s", port)
	log.Fatal(app.Listen(":" + port))
}

func InitConfig() *config.Config {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}

func ConnectDatabase(cfg *config.Config) *mongo.Database {
	db, err := storage.NewMongoDatabase(cfg)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	return db
}

func InitMinIOClient(cfg *config.Config) *minio.Client {
	minioClient, err := storage.NewMinioClient(cfg)
	if err != nil {
		log.Fatalf("MinIO client initialization failed: %v", err)
	}
	return minioClient
}
