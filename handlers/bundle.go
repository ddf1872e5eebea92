package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velora/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Booking endpoints.
	CreateReservation  gin.HandlerFunc
	GetReservation     gin.HandlerFunc
	ListMyReservations gin.HandlerFunc
	ListSchedule       gin.HandlerFunc
	ConfirmReservation gin.HandlerFunc
	DeclineReservation gin.HandlerFunc
	CancelReservation  gin.HandlerFunc
}

// HealthHandler reports the latest external-service health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
}
