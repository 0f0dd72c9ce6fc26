package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/careerboard/careerboard-api/internal/config"
	"github.com/careerboard/careerboard-api/internal/db"
	"github.com/careerboard/careerboard-api/internal/handlers"
	"github.com/careerboard/careerboard-api/internal/middleware"
	"github.com/careerboard/careerboard-api/internal/models"
	"github.com/careerboard/careerboard-api/internal/services/mailer"
	"github.com/careerboard/careerboard-api/internal/services/storage"
	"github.com/careerboard/careerboard-api/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}); err != nil {
		log.Fatal(err)
	}

	rdb := db.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	limiter := middleware.NewRedisLimiter(rdb)

	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	resumes := storage.NewDiskStore(cfg.UploadDir, cfg.AppBaseURL)

	authH := &handlers.AuthHandler{
		DB:                gdb,
		Mailer:            mail,
		Signer:            token.NewSigner(cfg.JWTSecret),
		JWTSecret:         cfg.JWTSecret,
		AccessExpiresMin:  cfg.JWTExpiresMin,
		RefreshExpiresMin: cfg.JWTRefreshExpiresMin,
		VerifyTokenTTL:    time.Duration(cfg.VerifyTokenTTLMin) * time.Minute,
		BaseURL:           cfg.AppBaseURL,
	}
	jobH := handlers.NewJobHandler(gdb)
	appH := handlers.NewApplicationHandler(gdb, resumes, mail)

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "http://127.0.0.1:3000, http://localhost:3000",
		AllowMethods:  "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Content-Length",
	}))

	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// public
	authLimit := middleware.RateLimit(limiter, "auth", 20, time.Minute)
	api.Post("/auth/signup", authLimit, authH.Signup)
	api.Get("/auth/verify-email", authLimit, authH.VerifyEmail)
	api.Post("/auth/login", authLimit, authH.Login)

	// protected (JWT)
	protected := api.Group("/", middleware.JWTProtected(cfg.JWTSecret))

	jobs := protected.Group("/jobs")
	jobs.Post("/create", middleware.RequireRoles("company"), jobH.Create)
	jobs.Get("/browse", jobH.Browse)
	jobs.Get("/my-jobs", middleware.RequireRoles("company"), jobH.MyJobs)
	jobs.Get("/jobs/:id", jobH.Detail)
	jobs.Get("/:job_id/applications", middleware.RequireRoles("company"), appH.JobApplications)
	jobs.Get("/:id", middleware.RequireRoles("company"), jobH.GetOne)
	jobs.Patch("/:id", middleware.RequireRoles("company"), jobH.Update)
	jobs.Delete("/:id", middleware.RequireRoles("company"), jobH.Delete)

	protected.Post("/apply", middleware.RequireRoles("applicant"), appH.Apply)
	protected.Get("/my-applications", middleware.RequireRoles("applicant"), appH.Track)
	protected.Patch("/applications/:id/status", middleware.RequireRoles("company"), appH.UpdateStatus)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
