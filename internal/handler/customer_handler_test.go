package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockCustomerService is a testify mock of CustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, filter *dto.CustomerListFilter) ([]*domain.Customer, int, error) {
	args := m.Called(ctx, filter)
	customers, _ := args.Get(0).([]*domain.Customer)
	return customers, args.Int(1), args.Error(2)
}

func (m *MockCustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, id, req)
	customer, _ := args.Get(0).(*domain.Customer)
	return customer, args.Error(1)
}

func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setupCustomerRouter(svc *MockCustomerService, log *logger.Logger) *gin.Engine {
	h := NewCustomerHandler(svc, log)
	r := gin.New()
	r.GET("/customers", h.List)
	r.GET("/customers/:id", h.GetByID)
	r.POST("/customers", h.Create)
	r.PUT("/customers/:id", h.Update)
	r.DELETE("/customers/:id", h.Delete)
	return r
}

func TestCustomerHandler_Create_DuplicateEmail(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("CreateCustomer", mock.Anything, mock.Anything).Return(nil, &domain.ValidationError{
		Errors: []domain.FieldError{{Field: domain.FieldEmail, Message: domain.MsgDuplicateEmail}},
		Err:    domain.ErrDuplicateEmail,
	})

	w := doJSON(setupCustomerRouter(svc, nil), http.MethodPost, "/customers", map[string]interface{}{
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, response.ErrCodeConflict, resp.Error.Code)
	assert.Equal(t, []response.FieldError{{Field: "Email", Message: domain.MsgDuplicateEmail}}, resp.Error.Fields)
}

func TestCustomerHandler_Update(t *testing.T) {
	phone := "+27 21 555 0100"
	svc := new(MockCustomerService)
	svc.On("UpdateCustomer", mock.Anything, "customer-1", mock.MatchedBy(func(req *dto.UpdateCustomerRequest) bool {
		return req.Email == "ada@example.com" && req.Version != nil && *req.Version == 2
	})).Return(&domain.Customer{ID: "customer-1", FullName: "Ada", Email: "ada@example.com", Phone: &phone, Version: 3}, nil)

	w := doJSON(setupCustomerRouter(svc, nil), http.MethodPut, "/customers/customer-1", map[string]interface{}{
		"full_name": "Ada",
		"email":     "ada@example.com",
		"phone":     phone,
		"version":   2,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, float64(3), data["version"])
	assert.Equal(t, phone, data["phone"])
	svc.AssertExpectations(t)
}

func TestCustomerHandler_Get_UnexpectedErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	log := logger.FromZap(zap.New(core))

	svc := new(MockCustomerService)
	svc.On("GetCustomer", mock.Anything, "customer-1").Return(nil, errors.New("pool closed"))

	w := doJSON(setupCustomerRouter(svc, log), http.MethodGet, "/customers/customer-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to get customer", decode(t, w).Error.Message)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "get customer", entry.ContextMap()["action"])
	assert.Equal(t, "pool closed", entry.ContextMap()["error"])
}

func TestCustomerHandler_Delete_Missing(t *testing.T) {
	svc := new(MockCustomerService)
	svc.On("DeleteCustomer", mock.Anything, "never-existed").Return(nil)

	w := doJSON(setupCustomerRouter(svc, nil), http.MethodDelete, "/customers/never-existed", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Customer deleted", decode(t, w).Data.(map[string]interface{})["message"])
}
