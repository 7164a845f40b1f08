package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/internal/service"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
	log             *logger.Logger
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService service.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		log:             defaultLogger(log),
	}
}

// List handles GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	var filter dto.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid query parameters"))
		return
	}

	customers, total, err := h.customerService.ListCustomers(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, h.log, err, "list customers")
		return
	}

	customerResponses := make([]*dto.CustomerResponse, len(customers))
	for i, customer := range customers {
		customerResponses[i] = toCustomerResponse(customer)
	}

	filter.SetDefaults()
	c.JSON(http.StatusOK, response.Paginated(customerResponses, dto.Page(filter.Limit, filter.Offset), filter.Limit, int64(total)))
}

// GetByID handles GET /customers/:id
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.customerService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "get customer")
		return
	}

	c.JSON(http.StatusOK, response.Success(toCustomerResponse(customer)))
}

// Create handles POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}

	customer, err := h.customerService.CreateCustomer(actorContext(c), &req)
	if err != nil {
		respondError(c, h.log, err, "create customer")
		return
	}

	c.JSON(http.StatusCreated, response.Success(toCustomerResponse(customer)))
}

// Update handles PUT /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Invalid request body"))
		return
	}
	if valid, msg := req.Validate(); !valid {
		c.JSON(http.StatusBadRequest, response.BadRequest(msg))
		return
	}

	customer, err := h.customerService.UpdateCustomer(actorContext(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err, "update customer")
		return
	}

	c.JSON(http.StatusOK, response.Success(toCustomerResponse(customer)))
}

// Delete handles DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(actorContext(c), c.Param("id")); err != nil {
		respondError(c, h.log, err, "delete customer")
		return
	}

	c.JSON(http.StatusOK, response.Success(map[string]string{"message": "Customer deleted"}))
}
