package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/internal/service"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/response"
)

// VenueHandler handles venue-related HTTP requests
type VenueHandler struct {
	venueService service.VenueService
	log          *logger.Logger
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(venueService service.VenueService, log *logger.Logger) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
		log:          defaultLogger(log),
	}
}

// List handles GET /venues - lists venues with filters
func (h *VenueHandler) List(c *gin.Context) {
	var filter dto.VenueListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	venues, total, err := h.venueService.ListVenues(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, h.log, err, "list venues")
		return
	}

	venueResponses := make([]*dto.VenueResponse, len(venues))
	for i, venue := range venues {
		venueResponses[i] = toVenueResponse(venue)
	}

	filter.SetDefaults()
	c.JSON(http.StatusOK, response.Paginated(venueResponses, dto.Page(filter.Limit, filter.Offset), filter.Limit, int64(total)))
}

// GetByID handles GET /venues/:id
func (h *VenueHandler) GetByID(c *gin.Context) {
	venue, err := h.venueService.GetVenue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "get venue")
		return
	}

	c.JSON(http.StatusOK, response.Success(toVenueResponse(venue)))
}

// Create handles POST /venues
func (h *VenueHandler) Create(c *gin.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	venue, err := h.venueService.CreateVenue(actorContext(c), &req)
	if err != nil {
		respondError(c, h.log, err, "create venue")
		return
	}

	c.JSON(http.StatusCreated, response.Success(toVenueResponse(venue)))
}

// Update handles PUT /venues/:id
func (h *VenueHandler) Update(c *gin.Context) {
	var req dto.UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	venue, err := h.venueService.UpdateVenue(actorContext(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err, "update venue")
		return
	}

	c.JSON(http.StatusOK, response.Success(toVenueResponse(venue)))
}

// Delete handles DELETE /venues/:id. Deleting a missing venue still succeeds.
func (h *VenueHandler) Delete(c *gin.Context) {
	if err := h.venueService.DeleteVenue(actorContext(c), c.Param("id")); err != nil {
		respondError(c, h.log, err, "delete venue")
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Venue deleted"}))
}
