package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"velora/handlers"
	"velora/middleware"
)

// RegisterBookingRoutes sets up the endpoints for the reservation core.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.FirebaseAuthMiddleware())
		bookingGroup.POST("", hb.CreateReservation)
		bookingGroup.GET("/mine", hb.ListMyReservations)
		bookingGroup.GET("/schedule", hb.ListSchedule)
		bookingGroup.GET("/:id", hb.GetReservation)
		bookingGroup.PUT("/:id/confirm", hb.ConfirmReservation)
		bookingGroup.PUT("/:id/decline", hb.DeclineReservation)
		bookingGroup.DELETE("/:id", hb.CancelReservation)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
}
