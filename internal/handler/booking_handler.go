package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/internal/service"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/response"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
	log            *logger.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		log:            defaultLogger(log),
	}
}

// List handles GET /bookings - lists bookings by event, customer or venue
func (h *BookingHandler) List(c *gin.Context) {
	var filter dto.BookingListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, h.log, err, "list bookings")
		return
	}

	bookingResponses := make([]*dto.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = toBookingResponse(booking)
	}

	filter.SetDefaults()
	c.JSON(http.StatusOK, response.Paginated(bookingResponses, dto.Page(filter.Limit, filter.Offset), filter.Limit, int64(total)))
}

// GetByID handles GET /bookings/:id
func (h *BookingHandler) GetByID(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "get booking")
		return
	}

	c.JSON(http.StatusOK, response.Success(toBookingResponse(booking)))
}

// Create handles POST /bookings. The caller's identity, if any, is recorded as creator.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	booking, err := h.bookingService.CreateBooking(actorContext(c), &req)
	if err != nil {
		respondError(c, h.log, err, "create booking")
		return
	}

	c.JSON(http.StatusCreated, response.Success(toBookingResponse(booking)))
}

// Update handles PUT /bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	booking, err := h.bookingService.UpdateBooking(actorContext(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err, "update booking")
		return
	}

	c.JSON(http.StatusOK, response.Success(toBookingResponse(booking)))
}

// Delete handles DELETE /bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	if err := h.bookingService.DeleteBooking(actorContext(c), c.Param("id")); err != nil {
		respondError(c, h.log, err, "delete booking")
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Booking deleted"}))
}
