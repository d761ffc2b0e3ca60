package services

import (
	"errors"
	"fmt"
	"time"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

// --- Custom Service Errors for Customer ---
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerValidation = errors.New("customer data validation error")
)

// --- Customer DTOs ---
type CreateCustomerRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Type          string `json:"type" validate:"omitempty,oneof=Retailer Reseller"`
	PipelineStage string `json:"pipelineStage" validate:"omitempty,oneof=new contacted closed"`
	AssignedTo    string `json:"assignedTo"`
	Address       string `json:"address"`
	GSTNumber     string `json:"gstNumber"`
}

type UpdateCustomerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Type          *string `json:"type" validate:"omitempty,oneof=Retailer Reseller"`
	PipelineStage *string `json:"pipelineStage" validate:"omitempty,oneof=new contacted closed"`
	AssignedTo    *string `json:"assignedTo"`
	Address       *string `json:"address"`
	GSTNumber     *string `json:"gstNumber"`
}

// --- CustomerService Interface ---
type CustomerService interface {
	GetAll() ([]models.Customer, error)
	GetByID(id int) (*models.Customer, error)
	Create(req CreateCustomerRequest) (*models.Customer, error)
	Update(id int, req UpdateCustomerRequest) (*models.Customer, error)
	Delete(id int) (*models.Customer, error)
	GetByPipelineStage(stage string) ([]models.Customer, error)
	UpdatePipelineStage(id int, stage string) (*models.Customer, error)
}

// --- customerService Implementation ---
type customerService struct {
	customers *repositories.Collection[models.Customer, *models.Customer]
	now       func() time.Time
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(customers *repositories.Collection[models.Customer, *models.Customer]) CustomerService {
	return &customerService{customers: customers, now: time.Now}
}

func (s *customerService) GetAll() ([]models.Customer, error) {
	return s.customers.List(), nil
}

func (s *customerService) GetByID(id int) (*models.Customer, error) {
	customer, err := s.customers.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) Create(req CreateCustomerRequest) (*models.Customer, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCustomerValidation, err)
	}

	stage := req.PipelineStage
	if stage == "" {
		stage = models.StageNew
	}
	customer := s.customers.Create(models.Customer{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Type:          req.Type,
		PipelineStage: stage,
		AssignedTo:    req.AssignedTo,
		Address:       req.Address,
		GSTNumber:     req.GSTNumber,
	})
	return &customer, nil
}

func (s *customerService) Update(id int, req UpdateCustomerRequest) (*models.Customer, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCustomerValidation, err)
	}

	customer, err := s.customers.Update(id, func(c *models.Customer) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Type != nil {
			c.Type = *req.Type
		}
		if req.PipelineStage != nil {
			c.PipelineStage = *req.PipelineStage
		}
		if req.AssignedTo != nil {
			c.AssignedTo = *req.AssignedTo
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.GSTNumber != nil {
			c.GSTNumber = *req.GSTNumber
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) Delete(id int) (*models.Customer, error) {
	customer, err := s.customers.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) GetByPipelineStage(stage string) ([]models.Customer, error) {
	return s.customers.Find(func(c models.Customer) bool {
		return c.PipelineStage == stage
	}), nil
}

// UpdatePipelineStage sets the stage and refreshes lastContact. Transitions
// are not ordered; moving a closed lead back to new is allowed.
func (s *customerService) UpdatePipelineStage(id int, stage string) (*models.Customer, error) {
	customer, err := s.customers.Update(id, func(c *models.Customer) {
		now := s.now()
		c.PipelineStage = stage
		c.LastContact = &now
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
		}
		return nil, err
	}
	return &customer, nil
}
