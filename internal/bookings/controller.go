package bookings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ballroomly/internal/ballrooms"
	"ballroomly/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service   Service
	ballrooms ballrooms.Service
}

func NewController(service Service, ballroomService ballrooms.Service) *Controller {
	return &Controller{
		service:   service,
		ballrooms: ballroomService,
	}
}

// GetBookings handles GET /booking
func (ctrl *Controller) GetBookings(c *gin.Context) {
	list, err := ctrl.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch bookings", nil)
		return
	}

	response.Success(c, http.StatusOK, "Bookings fetched successfully", list)
}

// GetBooking handles GET /booking/:id
func (ctrl *Controller) GetBooking(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to fetch booking", nil)
		return
	}

	response.Success(c, http.StatusOK, "Booking fetched successfully", booking)
}

// CreateBooking handles POST /booking. The target ballroom must exist and
// its capacity must cover the requested guest count before anything is
// persisted.
func (ctrl *Controller) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking data", response.ValidationDetails(err))
		return
	}

	ballroom, err := ctrl.ballrooms.GetBallroom(c.Request.Context(), req.BallroomID)
	if err != nil {
		if errors.Is(err, ballrooms.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Ballroom not found", nil)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to create booking", nil)
		return
	}

	if req.GuestCount > ballroom.Capacity {
		response.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Guest count exceeds ballroom capacity of %d", ballroom.Capacity), nil)
		return
	}

	booking, err := ctrl.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create booking", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Booking created successfully", booking)
}

// UpdateBookingStatus handles PUT /booking/:id/status. The body may be a
// JSON object with a status field, a bare JSON string, or plain text.
func (ctrl *Controller) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseBookingID(c)
	if !ok {
		return
	}

	rawStatus, ok := readStatusBody(c)
	if !ok {
		response.Error(c, http.StatusBadRequest, "Invalid status payload", nil)
		return
	}

	booking, err := ctrl.service.UpdateBookingStatus(c.Request.Context(), id, rawStatus)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "Booking not found", nil)
		case errors.Is(err, ErrUnknownStatus):
			response.Error(c, http.StatusBadRequest, "Invalid booking status", nil)
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusBadRequest, "Invalid booking status transition", nil)
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update booking status", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Booking status updated successfully", booking)
}

func readStatusBody(c *gin.Context) (string, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", false
	}

	var req UpdateStatusRequest
	if err := json.Unmarshal(body, &req); err == nil && req.Status != "" {
		return req.Status, true
	}

	var raw string
	if err := json.Unmarshal(body, &raw); err == nil && raw != "" {
		return raw, true
	}

	if s := strings.TrimSpace(string(body)); s != "" {
		return s, true
	}

	return "", false
}

func parseBookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid booking ID", nil)
		return 0, false
	}
	return uint(id), true
}
