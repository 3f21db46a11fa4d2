// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/bootstrap"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/config"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/featureflags"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/geoip"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/middleware"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/models"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/repository/memory"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/service"
	"github.com/tierischgutbetreut/tigube-v2-sub000/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Repositories bundles every repository the server depends on, so the same
// wiring serves both the database-backed and the in-memory offline mode.
type Repositories struct {
	Users       repository.UserRepository
	Pets        repository.PetRepository
	Caretakers  repository.CaretakerRepository
	Preferences repository.PreferencesRepository
	Connections repository.ConnectionRepository
	Moderation  repository.ModerationRepository
	PLZ         repository.PLZRepository
}

// NewMemoryRepositories returns a repository set backed by one shared
// in-memory store. Used in offline mode and handler tests.
func NewMemoryRepositories() Repositories {
	store := memory.NewStore()
	return Repositories{
		Users:       memory.NewUserRepository(store),
		Pets:        memory.NewPetRepository(store),
		Caretakers:  memory.NewCaretakerRepository(store),
		Preferences: memory.NewPreferencesRepository(store),
		Connections: memory.NewConnectionRepository(store),
		Moderation:  memory.NewModerationRepository(store),
		PLZ:         memory.NewPLZRepository(store),
	}
}

// NewGormRepositories returns the database-backed repository set.
func NewGormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:       repository.NewUserRepository(db),
		Pets:        repository.NewPetRepository(db),
		Caretakers:  repository.NewCaretakerRepository(db),
		Preferences: repository.NewPreferencesRepository(db),
		Connections: repository.NewConnectionRepository(db),
		Moderation:  repository.NewModerationRepository(db),
		PLZ:         repository.NewPLZRepository(db),
	}
}

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	repos          Repositories
	store          storage.Storage
	featureFlags   *featureflags.Manager

	userService        *service.UserService
	petService         *service.PetService
	preferencesService *service.PreferencesService
	searchService      *service.SearchService
	connectionService  *service.ConnectionService
	adminService       *service.AdminService
	plzService         *service.PLZService
}

// NewServer creates a server with all dependencies. In offline mode the
// database and Redis are skipped and the in-memory store backs everything.
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.OfflineMode {
		log.Println("Offline mode: using in-memory store, no database or Redis")
		return NewServerWithDeps(cfg, nil, nil, NewMemoryRepositories())
	}

	db, redisClient, err := bootstrap.InitRuntime(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db, redisClient, NewGormRepositories(db))
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// Used by tests and by bootstrap layers that establish DB/Redis themselves.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, repos Repositories) (*Server, error) {
	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	server := &Server{
		config: cfg,
		db:     db,
		redis:  redisClient,
		repos:  repos,
		store:  store,

		featureFlags: featureflags.NewManager(cfg.FeatureFlags),
	}
	// Prometheus collectors register globally, so tests that build multiple
	// servers must not register them twice.
	if cfg.Env != "test" {
		server.promMiddleware = middleware.InitMetrics("tigube-api")
	}

	resolver := geoip.NewResolver(cfg.GeoIPURL)
	server.userService = service.NewUserService(repos.Users, repos.Caretakers)
	server.petService = service.NewPetService(repos.Pets, repos.Users)
	server.preferencesService = service.NewPreferencesService(repos.Preferences, repos.Users)
	server.searchService = service.NewSearchService(repos.Caretakers)
	server.connectionService = service.NewConnectionService(
		repos.Connections, repos.Users, repos.Caretakers, repos.Preferences, repos.Pets)
	server.adminService = service.NewAdminService(
		db, repos.Users, repos.Caretakers, repos.Connections, repos.Moderation, resolver)
	server.plzService = service.NewPLZService(repos.PLZ)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Photo serving for the storage backend's default public URLs.
	app.Get("/uploads/*", s.ServePhoto)

	// Public routes
	api.Post("/users", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.RegisterUser)
	api.Get("/plz/:plz", s.LookupPLZ)

	caretakers := api.Group("/caretakers")
	caretakers.Get("/search", middleware.RateLimit(
		s.redis, 30, time.Minute, "search"), s.SearchCaretakers)
	caretakers.Get("/:id", s.GetCaretakerProfile)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Delete("/me", s.DeleteMyAccount)

	pets := protected.Group("/pets")
	pets.Get("/", s.GetMyPets)
	pets.Post("/", s.AddPet)
	pets.Put("/:id", s.UpdatePet)
	pets.Delete("/:id", s.DeletePet)

	prefs := protected.Group("/preferences")
	prefs.Get("/", s.GetPreferences)
	prefs.Put("/services", s.SaveServices)
	prefs.Put("/vet", s.SaveVetInfo)
	prefs.Put("/emergency", s.SaveEmergencyContact)
	prefs.Put("/instructions", s.SaveCareInstructions)
	prefs.Patch("/share-settings", s.UpdateShareSettings)

	protected.Get("/caretakers/me/profile", s.GetMyCaretakerProfile)
	protected.Put("/caretakers/me/profile", s.SaveMyCaretakerProfile)

	connections := protected.Group("/connections")
	connections.Get("/favorites", s.GetFavoriteCaretakers)
	connections.Get("/caretakers", s.GetSavedCaretakers)
	connections.Get("/status/:caretakerId", s.GetConnectionStatus)
	connections.Post("/favorites/:caretakerId/toggle", s.ToggleFavorite)
	connections.Post("/caretakers/:caretakerId", s.SaveCaretaker)
	connections.Delete("/caretakers/:caretakerId", s.RemoveCaretaker)

	protected.Get("/clients", s.GetMyClients)

	protected.Post("/uploads", s.UploadPhoto)
	protected.Post("/reports", s.SubmitReport)
	protected.Get("/feature-flags", s.GetFeatureFlags)

	// Admin routes
	admin := protected.Group("/admin", s.AdminRequired())
	admin.Get("/stats", s.GetDashboardStats)
	admin.Get("/users", s.AdminListUsers)
	admin.Get("/users/:id", s.AdminGetUser)
	admin.Delete("/users/:id", s.AdminDeleteUser)
	admin.Post("/users/:id/notes", s.AdminAddNote)
	admin.Post("/caretakers/:id/verify", s.AdminVerifyCaretaker)
	admin.Get("/reports", s.AdminListReports)
	admin.Post("/reports/:id/resolve", s.AdminResolveReport)
	admin.Get("/audit", s.AdminListAuditLog)
	admin.Post("/plz", s.AdminAddPLZ)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests. Offline mode reports the
// database and Redis as offline but stays ready.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	switch {
	case s.db == nil:
		dbStatus = "offline"
	default:
		sqlDB, err := s.db.DB()
		if err != nil {
			dbStatus = "unhealthy"
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbStatus = "unhealthy"
		}
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "offline"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. The JWT carries the
// user ID in the subject claim; identity itself lives with the external auth
// provider.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		sub, ok := claims["sub"].(string)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}
		userID, err := strconv.ParseUint(sub, 10, 32)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid user ID in token"))
		}

		c.Locals("userID", uint(userID))
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, uint(userID))
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that userID is available in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)

		admin, err := s.isAdminByUserID(c.UserContext(), userID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}
		return c.Next()
	}
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Tigube API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				log.Printf("error closing sql DB: %v", cerr)
			}
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
