package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devsocial/social-api/internal/api/handler"
	"github.com/devsocial/social-api/internal/api/middleware"
	"github.com/devsocial/social-api/internal/core/service"
	"github.com/devsocial/social-api/internal/core/token"
	"github.com/devsocial/social-api/internal/infrastructure/config"
	"github.com/devsocial/social-api/internal/infrastructure/crypto"
	mongodb "github.com/devsocial/social-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devsocial/social-api/internal/infrastructure/db/redis"
	"github.com/devsocial/social-api/internal/infrastructure/github"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("social"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	verifier := crypto.NewBcryptVerifier()
	repoCache := redisdb.NewRepoCache(rdb, cfg.Github.CacheTTL)
	githubClient := github.NewClient(cfg.Github.Token, repoCache, log)

	authService := service.NewAuthService(userRepo, verifier, codec, log)
	profileService := service.NewProfileService(profileRepo, userRepo, postRepo, githubClient, log)
	postService := service.NewPostService(postRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)
	guard := middleware.Auth(codec)

	// --- Auth ---
	e.POST("/api/users", authHandler.Register)
	e.POST("/api/auth", authHandler.Login)
	e.GET("/api/auth", authHandler.Current, guard)

	// --- Profiles ---
	profile := e.Group("/api/profile")
	profile.GET("", profileHandler.All)
	profile.GET("/user/:user_id", profileHandler.ByUserID)
	profile.GET("/github/:username", profileHandler.GithubRepos)
	profile.GET("/me", profileHandler.Me, guard)
	profile.POST("", profileHandler.Upsert, guard)
	profile.DELETE("", profileHandler.DeleteAccount, guard)
	profile.PUT("/experience", profileHandler.AddExperience, guard)
	profile.DELETE("/experience/:exp_id", profileHandler.RemoveExperience, guard)
	profile.PUT("/education", profileHandler.AddEducation, guard)
	profile.DELETE("/education/:edu_id", profileHandler.RemoveEducation, guard)

	// --- Posts (all protected) ---
	posts := e.Group("/api/posts", guard)
	posts.POST("", postHandler.Create)
	posts.GET("", postHandler.List)
	posts.GET("/:id", postHandler.Get)
	posts.DELETE("/:id", postHandler.Delete)
	posts.PUT("/like/:id", postHandler.Like)
	posts.PUT("/unlike/:id", postHandler.Unlike)
	posts.POST("/comment/:id", postHandler.AddComment)
	posts.DELETE("/comment/:id/:comment_id", postHandler.DeleteComment)

	// --- Probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
