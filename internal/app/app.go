package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"aitech_backend/internal/config"
	"aitech_backend/internal/handlers"
	"aitech_backend/internal/logger"
	"aitech_backend/internal/middleware"
	"aitech_backend/internal/models"
	"aitech_backend/internal/repositories"
	"aitech_backend/internal/routes"
	"aitech_backend/internal/services"
	"aitech_backend/internal/services/payment"
	"aitech_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := autoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		// Без админа система неуправляема - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database pool", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает зависимости и возвращает готовый *gin.Engine.
// Вынесено из Run, чтобы тесты могли поднять тот же роутер над httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Репозитории
	userRepo := repositories.NewUserRepository(gormDB)
	workInfoRepo := repositories.NewWorkInfoRepository(gormDB)
	contentRepo := repositories.NewContentRepository(gormDB)

	// Сервисы
	userService := services.NewUserService(userRepo, cfg.JWT.Secret)
	workInfoService := services.NewWorkInfoService(workInfoRepo)
	contentService := services.NewContentService(contentRepo)
	stripeService := payment.NewStripeService(cfg.Stripe.SecretKey, cfg.Stripe.BaseURL)
	paymentService := services.NewPaymentService(stripeService)

	// Хэндлеры
	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		UserHandler:     handlers.NewUserHandler(base, userService),
		WorkInfoHandler: handlers.NewWorkInfoHandler(base, workInfoService),
		ContentHandler:  handlers.NewContentHandler(base, contentService),
		PaymentHandler:  handlers.NewPaymentHandler(base, paymentService),
	}

	guard := middleware.NewGuard(cfg.JWT.Secret, userRepo)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, guard)

	return ginRouter
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WorkInfo{},
		&models.Service{},
		&models.Blog{},
		&models.Review{},
	)
}

// seedFirstAdmin создает первого админа из конфига, если его еще нет.
// Роли назначает только админ, поэтому без этого шага свежая база
// не имеет ни одной точки входа в управление.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var adminUser models.User
	result := db.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
		PasswordHash: string(hashedPassword),
	}

	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
