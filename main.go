package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sweet-shop/constants"
	"sweet-shop/controllers"
	"sweet-shop/infra"
	"sweet-shop/middlewares"
	"sweet-shop/repositories"
	"sweet-shop/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB) *gin.Engine {
	sweetRepository := repositories.NewSweetRepository(db)
	sweetService := services.NewSweetService(sweetRepository)
	sweetController := controllers.NewSweetController(sweetService)

	inventoryService := services.NewInventoryService(sweetRepository)
	inventoryController := controllers.NewInventoryController(inventoryService)

	authRepository := repositories.NewAuthRepository(db)
	tokenRepository := repositories.NewTokenRepository(db)
	authService := services.NewAuthService(authRepository, tokenRepository)
	authController := controllers.NewAuthController(authService)

	r := gin.Default()

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{frontendOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "sweet-shop-api"})
	})

	authRouter := api.Group("/auth")
	authRouter.POST("/register", authController.Register)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	sweetRouter := api.Group("/sweets")
	sweetRouterWithAuth := api.Group("/sweets", middlewares.AuthMiddleware(authService))
	sweetRouterWithAdminAuth := api.Group("/sweets",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin))

	sweetRouter.GET("", sweetController.FindAll)
	sweetRouter.GET("/search", sweetController.Search)
	sweetRouterWithAdminAuth.POST("", sweetController.Create)
	sweetRouterWithAdminAuth.PUT("/:id", sweetController.Update)
	sweetRouterWithAdminAuth.DELETE("/:id", sweetController.Delete)
	sweetRouterWithAuth.POST("/:id/purchase", inventoryController.Purchase)
	sweetRouterWithAdminAuth.POST("/:id/restock", inventoryController.Restock)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()
	db := infra.SetupDB()

	// The in-memory store always needs a schema; Postgres migrates on demand.
	if os.Getenv("AUTO_MIGRATE") == "true" || os.Getenv("DB_NAME") == "" {
		if err := infra.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	return db
}

func main() {
	db := initDB()
	r := setupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
