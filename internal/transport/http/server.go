package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "hbnb/internal/app"
	"hbnb/internal/bootstrap"
	"hbnb/internal/transport/http/handler"
	"hbnb/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	facade := appsvc.NewFacade(
		app.Repos.Users,
		app.Repos.Places,
		app.Repos.Reviews,
		app.Repos.Amenities,
		app.Repos.Links,
	)
	authService := appsvc.NewAuthService(
		facade,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(facade)
	placeHandler := handler.NewPlaceHandler(facade)
	reviewHandler := handler.NewReviewHandler(facade)
	amenityHandler := handler.NewAmenityHandler(facade)

	authJWT := middleware.AuthJWT(app.Config.Auth.JWTSecret)
	adminOnly := middleware.RequireAdmin()

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authJWT, authHandler.Me)

	users := v1.Group("/users")
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.GET("/:id/places", userHandler.Places)
	users.POST("", authJWT, adminOnly, userHandler.Create)
	users.PUT("/:id", authJWT, userHandler.Update)
	users.DELETE("/:id", authJWT, adminOnly, userHandler.Delete)

	places := v1.Group("/places")
	places.GET("", placeHandler.List)
	places.GET("/:id", placeHandler.Get)
	places.GET("/:id/reviews", placeHandler.Reviews)
	places.GET("/:id/amenities", placeHandler.Amenities)
	places.POST("", authJWT, placeHandler.Create)
	places.PUT("/:id", authJWT, placeHandler.Update)
	places.DELETE("/:id", authJWT, placeHandler.Delete)
	places.POST("/:id/amenities/:amenity_id", authJWT, placeHandler.AddAmenity)
	places.DELETE("/:id/amenities/:amenity_id", authJWT, placeHandler.RemoveAmenity)

	reviews := v1.Group("/reviews")
	reviews.GET("", reviewHandler.List)
	reviews.GET("/:id", reviewHandler.Get)
	reviews.POST("", authJWT, reviewHandler.Create)
	reviews.PUT("/:id", authJWT, reviewHandler.Update)
	reviews.DELETE("/:id", authJWT, reviewHandler.Delete)

	amenities := v1.Group("/amenities")
	amenities.GET("", amenityHandler.List)
	amenities.GET("/:id", amenityHandler.Get)
	amenities.GET("/:id/places", amenityHandler.Places)
	amenities.POST("", authJWT, adminOnly, amenityHandler.Create)
	amenities.PUT("/:id", authJWT, adminOnly, amenityHandler.Update)
	amenities.DELETE("/:id", authJWT, adminOnly, amenityHandler.Delete)

	return router
}
