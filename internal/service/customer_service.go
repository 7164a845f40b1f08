package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sabrinafayremeyer/EventEase/internal/audit"
	"github.com/sabrinafayremeyer/EventEase/internal/domain"
	"github.com/sabrinafayremeyer/EventEase/internal/dto"
	"github.com/sabrinafayremeyer/EventEase/internal/repository"
	"github.com/sabrinafayremeyer/EventEase/internal/validation"
	"github.com/sabrinafayremeyer/EventEase/pkg/database"
	"github.com/sabrinafayremeyer/EventEase/pkg/logger"
	"github.com/sabrinafayremeyer/EventEase/pkg/telemetry"
	"go.uber.org/zap"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	tx           database.TxRunner
	stamper      *audit.Stamper
	log          *logger.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo repository.CustomerRepository, tx database.TxRunner, stamper *audit.Stamper, log *logger.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		tx:           tx,
		stamper:      defaultStamper(stamper),
		log:          defaultLogger(log).Named("customer_service"),
	}
}

func (s *customerService) ListCustomers(ctx context.Context, filter *dto.CustomerListFilter) (customers []*domain.Customer, total int, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.customer.list")
	defer func() { endSpan(span, err) }()

	if filter == nil {
		filter = &dto.CustomerListFilter{}
	}
	filter.SetDefaults()

	customers, total, err = s.customerRepo.List(ctx, &repository.CustomerFilter{Search: strings.TrimSpace(filter.Search)}, filter.Limit, filter.Offset)
	logFailure(s.log, "failed to list customers", err)
	return customers, total, err
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (customer *domain.Customer, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.customer.get", telemetry.WithRecord(domain.ResourceCustomer, id))
	defer func() { endSpan(span, err) }()

	customer, err = s.customerRepo.GetByID(ctx, id)
	if err != nil {
		logFailure(s.log, "failed to get customer", err, zap.String("customer_id", id))
		return nil, err
	}
	if customer == nil {
		return nil, &domain.NotFoundError{Resource: domain.ResourceCustomer, ID: id}
	}
	return customer, nil
}

// CreateCustomer creates a customer with a unique email
func (s *customerService) CreateCustomer(ctx context.Context, req *dto.CreateCustomerRequest) (customer *domain.Customer, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.customer.create")
	defer func() { endSpan(span, err) }()

	customer = &domain.Customer{
		ID:       uuid.New().String(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.TrimSpace(req.Email),
		Phone:    trimPtr(req.Phone),
	}
	if err := validation.ValidateCustomer(customer); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkEmail(ctx, customer); err != nil {
			return err
		}
		s.stamper.Created(customer)
		return s.customerRepo.Create(ctx, customer)
	})
	if err != nil {
		logFailure(s.log, "failed to create customer", err, zap.String("customer_id", customer.ID))
		return nil, err
	}

	s.log.Debug("customer created", zap.String("customer_id", customer.ID))
	return customer, nil
}

// UpdateCustomer overwrites a customer
func (s *customerService) UpdateCustomer(ctx context.Context, id string, req *dto.UpdateCustomerRequest) (customer *domain.Customer, err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.customer.update", telemetry.WithRecord(domain.ResourceCustomer, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		existing, err := s.customerRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return &domain.NotFoundError{Resource: domain.ResourceCustomer, ID: id}
		}
		if err := checkVersion(domain.ResourceCustomer, id, req.Version, existing.Version); err != nil {
			return err
		}

		existing.FullName = strings.TrimSpace(req.FullName)
		existing.Email = strings.TrimSpace(req.Email)
		existing.Phone = trimPtr(req.Phone)
		if err := validation.ValidateCustomer(existing); err != nil {
			return err
		}
		if err := s.checkEmail(ctx, existing); err != nil {
			return err
		}

		s.stamper.Modified(existing)
		if err := s.customerRepo.Update(ctx, existing); err != nil {
			return resolveStale(ctx, err, domain.ResourceCustomer, id, s.customerRepo.GetByID)
		}
		customer = existing
		return nil
	})
	if err != nil {
		logFailure(s.log, "failed to update customer", err, zap.String("customer_id", id))
		return nil, err
	}

	s.log.Debug("customer updated", zap.String("customer_id", id), zap.Int("version", customer.Version))
	return customer, nil
}

// DeleteCustomer deletes a customer. Existing bookings block the delete.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "service.customer.delete", telemetry.WithRecord(domain.ResourceCustomer, id))
	defer func() { endSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.customerRepo.Delete(ctx, id)
	})
	if err != nil {
		logFailure(s.log, "failed to delete customer", err, zap.String("customer_id", id))
		return err
	}

	s.log.Debug("customer deleted", zap.String("customer_id", id))
	return nil
}

func (s *customerService) checkEmail(ctx context.Context, customer *domain.Customer) error {
	taken, err := s.customerRepo.EmailExists(ctx, customer.Email, customer.ID)
	if err != nil {
		return err
	}
	if taken {
		return &domain.ValidationError{
			Errors: []domain.FieldError{{Field: domain.FieldEmail, Message: domain.MsgDuplicateEmail}},
			Err:    domain.ErrDuplicateEmail,
		}
	}
	return nil
}
