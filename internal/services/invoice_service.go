package services

import (
	"errors"
	"fmt"
	"time"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

// Payment terms applied to every invoice at creation.
const invoiceDueTerm = 30 * 24 * time.Hour

// --- Custom Service Errors for Invoice ---
var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvoiceValidation = errors.New("invoice data validation error")
)

// --- Invoice DTOs ---
type CreateInvoiceRequest struct {
	CustomerID    int                `json:"customerId" validate:"required"`
	CustomerName  string             `json:"customerName"`
	OrderID       *int               `json:"orderId"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
	Subtotal      float64            `json:"subtotal" validate:"gte=0"`
	TaxAmount     float64            `json:"taxAmount" validate:"gte=0"`
	TotalAmount   float64            `json:"totalAmount" validate:"gte=0"`
	PaymentStatus string             `json:"paymentStatus" validate:"omitempty,oneof=pending partial paid"`
	Notes         string             `json:"notes"`
}

type UpdateInvoiceRequest struct {
	CustomerID    *int               `json:"customerId"`
	CustomerName  *string            `json:"customerName"`
	OrderID       *int               `json:"orderId"`
	Items         []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	Subtotal      *float64           `json:"subtotal" validate:"omitempty,gte=0"`
	TaxAmount     *float64           `json:"taxAmount" validate:"omitempty,gte=0"`
	TotalAmount   *float64           `json:"totalAmount" validate:"omitempty,gte=0"`
	PaymentStatus *string            `json:"paymentStatus" validate:"omitempty,oneof=pending partial paid"`
	Notes         *string            `json:"notes"`
}

// --- InvoiceService Interface ---
type InvoiceService interface {
	GetAll() ([]models.Invoice, error)
	GetByID(id int) (*models.Invoice, error)
	Create(req CreateInvoiceRequest) (*models.Invoice, error)
	Update(id int, req UpdateInvoiceRequest) (*models.Invoice, error)
	Delete(id int) (*models.Invoice, error)
	UpdatePaymentStatus(id int, status string) (*models.Invoice, error)
	GetByPaymentStatus(status string) ([]models.Invoice, error)
	GetByCustomerID(customerID int) ([]models.Invoice, error)
	GetByOrderID(orderID int) ([]models.Invoice, error)
}

// --- invoiceService Implementation ---
type invoiceService struct {
	invoices *repositories.Collection[models.Invoice, *models.Invoice]
	now      func() time.Time
}

// NewInvoiceService creates a new instance of InvoiceService.
func NewInvoiceService(invoices *repositories.Collection[models.Invoice, *models.Invoice]) InvoiceService {
	return &invoiceService{invoices: invoices, now: time.Now}
}

func (s *invoiceService) GetAll() ([]models.Invoice, error) {
	return s.invoices.List(), nil
}

func (s *invoiceService) GetByID(id int) (*models.Invoice, error) {
	invoice, err := s.invoices.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrInvoiceNotFound, id)
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *invoiceService) Create(req CreateInvoiceRequest) (*models.Invoice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvoiceValidation, err)
	}

	now := s.now()
	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}

	invoice := s.invoices.CreateWith(models.Invoice{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		OrderID:       req.OrderID,
		Items:         itemsFromRequests(req.Items),
		Subtotal:      req.Subtotal,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   req.TotalAmount,
		PaymentStatus: status,
		InvoiceDate:   models.NewFlexTime(now),
		DueDate:       models.NewFlexTime(now.Add(invoiceDueTerm)),
		Notes:         req.Notes,
	}, func(inv *models.Invoice) {
		inv.InvoiceNumber = invoiceNumber(now.Year(), inv.ID)
	})
	return &invoice, nil
}

func (s *invoiceService) Update(id int, req UpdateInvoiceRequest) (*models.Invoice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvoiceValidation, err)
	}

	invoice, err := s.invoices.Update(id, func(inv *models.Invoice) {
		if req.CustomerID != nil {
			inv.CustomerID = *req.CustomerID
		}
		if req.CustomerName != nil {
			inv.CustomerName = *req.CustomerName
		}
		if req.OrderID != nil {
			inv.OrderID = req.OrderID
		}
		if req.Items != nil {
			inv.Items = itemsFromRequests(req.Items)
		}
		if req.Subtotal != nil {
			inv.Subtotal = *req.Subtotal
		}
		if req.TaxAmount != nil {
			inv.TaxAmount = *req.TaxAmount
		}
		if req.TotalAmount != nil {
			inv.TotalAmount = *req.TotalAmount
		}
		if req.PaymentStatus != nil {
			inv.PaymentStatus = *req.PaymentStatus
		}
		if req.Notes != nil {
			inv.Notes = *req.Notes
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrInvoiceNotFound, id)
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *invoiceService) Delete(id int) (*models.Invoice, error) {
	invoice, err := s.invoices.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrInvoiceNotFound, id)
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *invoiceService) UpdatePaymentStatus(id int, status string) (*models.Invoice, error) {
	if status != models.PaymentPending && status != models.PaymentPartial && status != models.PaymentPaid {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidPaymentStatus, status)
	}
	invoice, err := s.invoices.Update(id, func(inv *models.Invoice) {
		inv.PaymentStatus = status
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrInvoiceNotFound, id)
		}
		return nil, err
	}
	return &invoice, nil
}

func (s *invoiceService) GetByPaymentStatus(status string) ([]models.Invoice, error) {
	return s.invoices.Find(func(inv models.Invoice) bool {
		return inv.PaymentStatus == status
	}), nil
}

func (s *invoiceService) GetByCustomerID(customerID int) ([]models.Invoice, error) {
	return s.invoices.Find(func(inv models.Invoice) bool {
		return inv.CustomerID == customerID
	}), nil
}

func (s *invoiceService) GetByOrderID(orderID int) ([]models.Invoice, error) {
	return s.invoices.Find(func(inv models.Invoice) bool {
		return inv.OrderID != nil && *inv.OrderID == orderID
	}), nil
}
