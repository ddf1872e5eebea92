package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"velora/middleware"
	"velora/models"
	"velora/services/booking"
	"velora/utils"
)

// BookingHandler exposes the reservation endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// createReservationRequest accepts both wire shapes clients have sent
// historically: duration-based (startAtISO + durationMin) and explicit
// interval (start + end). Both reduce to the same draft.
type createReservationRequest struct {
	ListingID string `json:"listingId" binding:"required"`
	MasterUID string `json:"masterUid"`

	// Duration-based shape.
	StartAtISO  string `json:"startAtISO"`
	DurationMin int    `json:"durationMin"`
	Note        string `json:"note"`

	// Interval-based shape.
	Start       string  `json:"start"`
	End         string  `json:"end"`
	ServiceKey  string  `json:"serviceKey"`
	ServiceName string  `json:"serviceName"`
	Notes       string  `json:"notes"`
	Phone       string  `json:"phone"`
	Price       float64 `json:"price"`
}

const maxDurationMin = 8 * 60

func (req *createReservationRequest) toDraft(clientUID string) (models.ReservationDraft, error) {
	draft := models.ReservationDraft{
		ListingID:   req.ListingID,
		MasterUID:   req.MasterUID,
		ClientUID:   clientUID,
		ServiceKey:  req.ServiceKey,
		ServiceName: req.ServiceName,
		Phone:       req.Phone,
		Price:       req.Price,
	}
	draft.Note = req.Note
	if draft.Note == "" {
		draft.Note = req.Notes
	}

	switch {
	case req.StartAtISO != "":
		start, err := time.Parse(time.RFC3339, req.StartAtISO)
		if err != nil {
			return draft, fmt.Errorf("invalid startAtISO timestamp")
		}
		if req.DurationMin <= 0 || req.DurationMin > maxDurationMin {
			return draft, fmt.Errorf("durationMin must be between 1 and %d", maxDurationMin)
		}
		draft.Start = start
		draft.End = start.Add(time.Duration(req.DurationMin) * time.Minute)
	case req.Start != "" && req.End != "":
		start, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			return draft, fmt.Errorf("invalid start timestamp")
		}
		end, err := time.Parse(time.RFC3339, req.End)
		if err != nil {
			return draft, fmt.Errorf("invalid end timestamp")
		}
		draft.Start = start
		draft.End = end
	default:
		return draft, fmt.Errorf("either startAtISO with durationMin or start and end are required")
	}

	return draft, nil
}

// CreateReservation handles POST /api/bookings.
func (h *BookingHandler) CreateReservation(c *gin.Context) {
	clientUID := middleware.CallerUID(c)
	if clientUID == "" {
		utils.JSONError(c, http.StatusUnauthorized, booking.CodeUnauthorized, "missing caller identity")
		return
	}

	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.CodeBadRequest, err.Error())
		return
	}

	draft, err := req.toDraft(clientUID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.CodeBadRequest, err.Error())
		return
	}

	res, err := h.Svc.CreateReservation(c.Request.Context(), draft)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": res.ID})
}

// respondError maps booking error codes onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	code := booking.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case booking.CodeUnauthorized:
		status = http.StatusUnauthorized
	case booking.CodeBadRequest:
		status = http.StatusBadRequest
	case booking.CodeNotFound:
		status = http.StatusNotFound
	case booking.CodeMasterMismatch, booking.CodeSlotUnavailable:
		status = http.StatusConflict
	case booking.CodeBookingDisabled, booking.CodeOffDay:
		status = http.StatusForbidden
	case booking.CodeInternal:
		h.Logger.Error("booking request failed", zap.Error(err))
	}
	utils.JSONError(c, status, code, "")
}
