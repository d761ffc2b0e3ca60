package services

import (
	"errors"
	"fmt"
	"time"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

// --- Custom Service Errors for SalesOrder ---
var (
	ErrSalesOrderNotFound   = errors.New("sales order not found")
	ErrSalesOrderValidation = errors.New("sales order data validation error")
	ErrInvalidPaymentStatus = errors.New("payment status must be pending, partial or paid")
)

// --- SalesOrder DTOs ---
type OrderItemRequest struct {
	ProductID   int     `json:"productId" validate:"required"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	Total       float64 `json:"total" validate:"gte=0"`
}

type CreateSalesOrderRequest struct {
	CustomerID    int                `json:"customerId" validate:"required"`
	CustomerName  string             `json:"customerName"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
	TotalAmount   float64            `json:"totalAmount" validate:"gte=0"`
	PaymentStatus string             `json:"paymentStatus" validate:"omitempty,oneof=pending partial paid"`
	OrderDate     time.Time          `json:"orderDate"`
	Notes         string             `json:"notes"`
}

type UpdateSalesOrderRequest struct {
	CustomerID    *int               `json:"customerId"`
	CustomerName  *string            `json:"customerName"`
	Items         []OrderItemRequest `json:"items" validate:"omitempty,dive"`
	TotalAmount   *float64           `json:"totalAmount" validate:"omitempty,gte=0"`
	PaymentStatus *string            `json:"paymentStatus" validate:"omitempty,oneof=pending partial paid"`
	OrderDate     *time.Time         `json:"orderDate"`
	Notes         *string            `json:"notes"`
}

// --- SalesOrderService Interface ---
type SalesOrderService interface {
	GetAll() ([]models.SalesOrder, error)
	GetByID(id int) (*models.SalesOrder, error)
	Create(req CreateSalesOrderRequest) (*models.SalesOrder, error)
	Update(id int, req UpdateSalesOrderRequest) (*models.SalesOrder, error)
	Delete(id int) (*models.SalesOrder, error)
	UpdatePaymentStatus(id int, status string) (*models.SalesOrder, error)
	GetByPaymentStatus(status string) ([]models.SalesOrder, error)
	GetMonthlySales(year int, month time.Month) ([]models.SalesOrder, error)
}

// --- salesOrderService Implementation ---
type salesOrderService struct {
	orders *repositories.Collection[models.SalesOrder, *models.SalesOrder]
	now    func() time.Time
}

// NewSalesOrderService creates a new instance of SalesOrderService.
func NewSalesOrderService(orders *repositories.Collection[models.SalesOrder, *models.SalesOrder]) SalesOrderService {
	return &salesOrderService{orders: orders, now: time.Now}
}

// invoiceNumber builds the INV-<year>-<id zero-padded to 4 digits> reference
// assigned to orders and invoices at creation.
func invoiceNumber(year, id int) string {
	return fmt.Sprintf("INV-%d-%04d", year, id)
}

func itemsFromRequests(reqs []OrderItemRequest) []models.OrderItem {
	if reqs == nil {
		return nil
	}
	items := make([]models.OrderItem, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, models.OrderItem{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			Total:       r.Total,
		})
	}
	return items
}

func (s *salesOrderService) GetAll() ([]models.SalesOrder, error) {
	return s.orders.List(), nil
}

func (s *salesOrderService) GetByID(id int) (*models.SalesOrder, error) {
	order, err := s.orders.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSalesOrderNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

// Create stores a new order. CustomerName and item snapshots are taken as
// given and never re-synced against the customer or product stores.
// TotalAmount is the caller's figure; the store does not recompute it.
func (s *salesOrderService) Create(req CreateSalesOrderRequest) (*models.SalesOrder, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSalesOrderValidation, err)
	}

	now := s.now()
	status := req.PaymentStatus
	if status == "" {
		status = models.PaymentPending
	}
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	// The invoice number embeds the assigned id, so it is stamped once the
	// collection has allocated one.
	order := s.orders.CreateWith(models.SalesOrder{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		Items:         itemsFromRequests(req.Items),
		TotalAmount:   req.TotalAmount,
		PaymentStatus: status,
		OrderDate:     models.NewFlexTime(orderDate),
		Notes:         req.Notes,
	}, func(o *models.SalesOrder) {
		o.InvoiceNumber = invoiceNumber(now.Year(), o.ID)
	})
	return &order, nil
}

func (s *salesOrderService) Update(id int, req UpdateSalesOrderRequest) (*models.SalesOrder, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSalesOrderValidation, err)
	}

	order, err := s.orders.Update(id, func(o *models.SalesOrder) {
		if req.CustomerID != nil {
			o.CustomerID = *req.CustomerID
		}
		if req.CustomerName != nil {
			o.CustomerName = *req.CustomerName
		}
		if req.Items != nil {
			o.Items = itemsFromRequests(req.Items)
		}
		if req.TotalAmount != nil {
			o.TotalAmount = *req.TotalAmount
		}
		if req.PaymentStatus != nil {
			o.PaymentStatus = *req.PaymentStatus
		}
		if req.OrderDate != nil {
			o.OrderDate = models.NewFlexTime(*req.OrderDate)
		}
		if req.Notes != nil {
			o.Notes = *req.Notes
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSalesOrderNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

func (s *salesOrderService) Delete(id int) (*models.SalesOrder, error) {
	order, err := s.orders.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSalesOrderNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

// UpdatePaymentStatus sets the status directly; no ordering between pending,
// partial and paid is enforced.
func (s *salesOrderService) UpdatePaymentStatus(id int, status string) (*models.SalesOrder, error) {
	if status != models.PaymentPending && status != models.PaymentPartial && status != models.PaymentPaid {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidPaymentStatus, status)
	}
	order, err := s.orders.Update(id, func(o *models.SalesOrder) {
		o.PaymentStatus = status
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrSalesOrderNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

func (s *salesOrderService) GetByPaymentStatus(status string) ([]models.SalesOrder, error) {
	return s.orders.Find(func(o models.SalesOrder) bool {
		return o.PaymentStatus == status
	}), nil
}

func (s *salesOrderService) GetMonthlySales(year int, month time.Month) ([]models.SalesOrder, error) {
	return s.orders.Find(func(o models.SalesOrder) bool {
		if o.OrderDate.IsZero() {
			return false
		}
		return o.OrderDate.Year() == year && o.OrderDate.Month() == month
	}), nil
}
