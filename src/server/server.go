package server

import (
	"fmt"
	"net/http"
	"time"

	app "github.com/Dahreau/buy-01/src/app"
	cfg "github.com/Dahreau/buy-01/src/configuration"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

func RunServer(config *cfg.Properties) {
	// Create Gin router
	router := gin.Default()
	//
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "Access-Control-Allow-Origin", "access-control-allow-headers", "Origin", "User-Agent", "Referrer", "Host", "Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	pprof.Register(router)
	//
	authClient := app.NewAuthClient(config.Auth.Host, config.Auth.ReadTimeout)
	productClient := app.NewProductClient(config.Products.Host, config.Products.ReadTimeout)
	mediaClient := app.NewMediaClient(config.Media.Host, config.Media.ReadTimeout)
	// Instantiate the gateway handler and wire in the backend clients
	handler := NewHandler(config, authClient, productClient, mediaClient)

	// Register Routes
	router.GET("/health", handler.GetHealth)
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)
	router.GET("/logout", handler.Logout)
	router.GET("/session", handler.Session)
	router.GET("/products", handler.GetProducts)
	router.GET("/products/:id", handler.GetProduct)
	router.POST("/products", handler.PostProduct)
	router.PUT("/products/:id", handler.PutProduct)
	router.DELETE("/products/:id", handler.DeleteProduct)
	router.GET("/my/products", handler.GetMyProducts)
	router.POST("/media", handler.PostMedia)
	router.GET("/media/:productId", handler.GetMediaList)

	router.NoRoute(func(ctx *gin.Context) { ctx.JSON(http.StatusNotFound, gin.H{}) })
	// Start the server
	router.Run(fmt.Sprintf(":%s", config.Server.Port))
}
