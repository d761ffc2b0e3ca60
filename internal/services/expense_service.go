package services

import (
	"errors"
	"fmt"
	"time"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

// --- Custom Service Errors for Expense ---
var (
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrExpenseValidation = errors.New("expense data validation error")
)

// --- Expense DTOs ---
type CreateExpenseRequest struct {
	Category    string    `json:"category" validate:"required"`
	Amount      float64   `json:"amount" validate:"gt=0"`
	Description string    `json:"description"`
	Vendor      string    `json:"vendor"`
	Date        time.Time `json:"date"`
}

type UpdateExpenseRequest struct {
	Category    *string    `json:"category" validate:"omitempty,min=1"`
	Amount      *float64   `json:"amount" validate:"omitempty,gt=0"`
	Description *string    `json:"description"`
	Vendor      *string    `json:"vendor"`
	Date        *time.Time `json:"date"`
}

// --- ExpenseService Interface ---
type ExpenseService interface {
	GetAll() ([]models.Expense, error)
	GetByID(id int) (*models.Expense, error)
	Create(req CreateExpenseRequest) (*models.Expense, error)
	Update(id int, req UpdateExpenseRequest) (*models.Expense, error)
	Delete(id int) (*models.Expense, error)
	GetByCategory(category string) ([]models.Expense, error)
	GetMonthlyExpenses(year int, month time.Month) ([]models.Expense, error)
}

// --- expenseService Implementation ---
type expenseService struct {
	expenses *repositories.Collection[models.Expense, *models.Expense]
	now      func() time.Time
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(expenses *repositories.Collection[models.Expense, *models.Expense]) ExpenseService {
	return &expenseService{expenses: expenses, now: time.Now}
}

func (s *expenseService) GetAll() ([]models.Expense, error) {
	return s.expenses.List(), nil
}

func (s *expenseService) GetByID(id int) (*models.Expense, error) {
	expense, err := s.expenses.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrExpenseNotFound, id)
		}
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) Create(req CreateExpenseRequest) (*models.Expense, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpenseValidation, err)
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	expense := s.expenses.Create(models.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Vendor:      req.Vendor,
		Date:        models.NewFlexTime(date),
	})
	return &expense, nil
}

func (s *expenseService) Update(id int, req UpdateExpenseRequest) (*models.Expense, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpenseValidation, err)
	}

	expense, err := s.expenses.Update(id, func(e *models.Expense) {
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Amount != nil {
			e.Amount = *req.Amount
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Vendor != nil {
			e.Vendor = *req.Vendor
		}
		if req.Date != nil {
			e.Date = models.NewFlexTime(*req.Date)
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrExpenseNotFound, id)
		}
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) Delete(id int) (*models.Expense, error) {
	expense, err := s.expenses.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrExpenseNotFound, id)
		}
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) GetByCategory(category string) ([]models.Expense, error) {
	return s.expenses.Find(func(e models.Expense) bool {
		return e.Category == category
	}), nil
}

func (s *expenseService) GetMonthlyExpenses(year int, month time.Month) ([]models.Expense, error) {
	return s.expenses.Find(func(e models.Expense) bool {
		if e.Date.IsZero() {
			return false
		}
		return e.Date.Year() == year && e.Date.Month() == month
	}), nil
}
