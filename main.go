package main

import (
	"context"
	"gin-listme/controllers"
	"gin-listme/infra"
	"gin-listme/middlewares"
	"gin-listme/models"
	"gin-listme/repositories"
	"gin-listme/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, cfg *infra.Config) *gin.Engine {
	authRepository := repositories.NewAuthRepository(db)
	tokenService := services.NewTokenService(cfg.SecretKey)
	authService := services.NewAuthService(authRepository, tokenService)
	userController := controllers.NewUserController(authService)

	listRepository := repositories.NewListRepository(db, repositories.NewOwnershipChecker())
	listService := services.NewListService(listRepository)
	listController := controllers.NewListController(listService)
	itemController := controllers.NewItemController(listService)

	r := gin.Default()
	r.Use(cors.Default())

	userRouter := r.Group("/user")
	userRouterWithAuth := r.Group("/user", middlewares.AuthMiddleware(authService))
	listRouterWithAuth := r.Group("/list", middlewares.AuthMiddleware(authService))
	itemRouterWithAuth := r.Group("/item", middlewares.AuthMiddleware(authService))

	userRouter.POST("", userController.Register)
	userRouter.POST("/authenticate", userController.Authenticate)
	userRouterWithAuth.GET("", userController.Profile)
	userRouterWithAuth.DELETE("", userController.Delete)

	listRouterWithAuth.POST("", listController.Create)
	listRouterWithAuth.GET("", listController.FindAll)
	listRouterWithAuth.GET("/details", listController.FindAllDetailed)
	listRouterWithAuth.GET("/:id", listController.FindOne)
	listRouterWithAuth.PATCH("/:id", listController.Update)
	listRouterWithAuth.DELETE("/:id", listController.Delete)

	itemRouterWithAuth.POST("", itemController.Create)
	itemRouterWithAuth.PATCH("/:id", itemController.Update)
	itemRouterWithAuth.DELETE("/:id", itemController.Delete)

	return r
}

func main() {
	infra.Initialize()

	// SECRET_KEY未設定の場合はここで起動失敗する（デフォルト値への黙ったフォールバックはしない）
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db := infra.SetupDB(cfg)
	if cfg.AutoMigrate {
		if err := db.AutoMigrate(&models.User{}, &models.Credential{}, &models.List{}, &models.Item{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	r := setupRouter(db, cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
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
