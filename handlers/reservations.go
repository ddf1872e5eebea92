package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"velora/middleware"
	"velora/services/booking"
	"velora/utils"
)

// GetReservation handles GET /api/bookings/:id. Only the master or the
// client of a reservation can read it.
func (h *BookingHandler) GetReservation(c *gin.Context) {
	res, err := h.Svc.GetReservation(c.Request.Context(), c.Param("id"), middleware.CallerUID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListMyReservations handles GET /api/bookings/mine — the caller's own
// bookings as a client.
func (h *BookingHandler) ListMyReservations(c *gin.Context) {
	out, err := h.Svc.ListForClient(c.Request.Context(), middleware.CallerUID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "reservations": out})
}

// ListSchedule handles GET /api/bookings/schedule — the caller's bookings
// as a master, optionally windowed by from/to (RFC 3339).
func (h *BookingHandler) ListSchedule(c *gin.Context) {
	var from, to time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, booking.CodeBadRequest, "invalid from timestamp")
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, booking.CodeBadRequest, "invalid to timestamp")
			return
		}
		to = parsed
	}

	out, err := h.Svc.ListForMaster(c.Request.Context(), middleware.CallerUID(c), from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "reservations": out})
}

// ConfirmReservation handles PUT /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmReservation(c *gin.Context) {
	res, err := h.Svc.ConfirmReservation(c.Request.Context(), c.Param("id"), middleware.CallerUID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": res.ID, "status": res.Status})
}

// DeclineReservation handles PUT /api/bookings/:id/decline.
func (h *BookingHandler) DeclineReservation(c *gin.Context) {
	res, err := h.Svc.DeclineReservation(c.Request.Context(), c.Param("id"), middleware.CallerUID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": res.ID, "status": res.Status})
}

// CancelReservation handles DELETE /api/bookings/:id — client-side cancel.
func (h *BookingHandler) CancelReservation(c *gin.Context) {
	res, err := h.Svc.CancelReservation(c.Request.Context(), c.Param("id"), middleware.CallerUID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": res.ID, "status": res.Status})
}
