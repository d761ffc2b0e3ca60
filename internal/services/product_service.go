package services

import (
	"errors"
	"fmt"
	"time"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

// --- Custom Service Errors for Product ---
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrProductValidation     = errors.New("product data validation error")
	ErrInvalidStockQuantity  = errors.New("stock adjustment quantity must be a positive integer")
	ErrInvalidStockDirection = errors.New("stock adjustment direction must be 'in' or 'out'")
)

// --- Product DTOs ---
type CreateProductRequest struct {
	Name            string    `json:"name" validate:"required"`
	Type            string    `json:"type"`
	Category        string    `json:"category"`
	CurrentStock    int       `json:"currentStock" validate:"gte=0"`
	MinStock        int       `json:"minStock" validate:"gte=0"`
	Unit            string    `json:"unit"`
	IsWhiteLabelled bool      `json:"isWhiteLabelled"`
	BatchDate       time.Time `json:"batchDate"`
	ExpiryDate      time.Time `json:"expiryDate"`
	CostPrice       float64   `json:"costPrice" validate:"gte=0"`
	SellingPrice    float64   `json:"sellingPrice" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name            *string    `json:"name" validate:"omitempty,min=1"`
	Type            *string    `json:"type"`
	Category        *string    `json:"category"`
	CurrentStock    *int       `json:"currentStock" validate:"omitempty,gte=0"`
	MinStock        *int       `json:"minStock" validate:"omitempty,gte=0"`
	Unit            *string    `json:"unit"`
	IsWhiteLabelled *bool      `json:"isWhiteLabelled"`
	BatchDate       *time.Time `json:"batchDate"`
	ExpiryDate      *time.Time `json:"expiryDate"`
	CostPrice       *float64   `json:"costPrice" validate:"omitempty,gte=0"`
	SellingPrice    *float64   `json:"sellingPrice" validate:"omitempty,gte=0"`
}

// --- ProductService Interface ---
type ProductService interface {
	GetAll() ([]models.Product, error)
	GetByID(id int) (*models.Product, error)
	Create(req CreateProductRequest) (*models.Product, error)
	Update(id int, req UpdateProductRequest) (*models.Product, error)
	Delete(id int) (*models.Product, error)
	GetLowStock() ([]models.Product, error)
	AdjustStock(id, quantity int, direction string) (*models.Product, error)
}

// --- productService Implementation ---
type productService struct {
	products *repositories.Collection[models.Product, *models.Product]
}

// NewProductService creates a new instance of ProductService.
func NewProductService(products *repositories.Collection[models.Product, *models.Product]) ProductService {
	return &productService{products: products}
}

func (s *productService) GetAll() ([]models.Product, error) {
	return s.products.List(), nil
}

func (s *productService) GetByID(id int) (*models.Product, error) {
	product, err := s.products.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *productService) Create(req CreateProductRequest) (*models.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductValidation, err)
	}

	product := s.products.Create(models.Product{
		Name:            req.Name,
		Type:            req.Type,
		Category:        req.Category,
		CurrentStock:    req.CurrentStock,
		MinStock:        req.MinStock,
		Unit:            req.Unit,
		IsWhiteLabelled: req.IsWhiteLabelled,
		BatchDate:       models.NewFlexTime(req.BatchDate),
		ExpiryDate:      models.NewFlexTime(req.ExpiryDate),
		CostPrice:       req.CostPrice,
		SellingPrice:    req.SellingPrice,
	})
	return &product, nil
}

func (s *productService) Update(id int, req UpdateProductRequest) (*models.Product, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProductValidation, err)
	}

	product, err := s.products.Update(id, func(p *models.Product) {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Type != nil {
			p.Type = *req.Type
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.CurrentStock != nil {
			p.CurrentStock = *req.CurrentStock
		}
		if req.MinStock != nil {
			p.MinStock = *req.MinStock
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.IsWhiteLabelled != nil {
			p.IsWhiteLabelled = *req.IsWhiteLabelled
		}
		if req.BatchDate != nil {
			p.BatchDate = models.NewFlexTime(*req.BatchDate)
		}
		if req.ExpiryDate != nil {
			p.ExpiryDate = models.NewFlexTime(*req.ExpiryDate)
		}
		if req.CostPrice != nil {
			p.CostPrice = *req.CostPrice
		}
		if req.SellingPrice != nil {
			p.SellingPrice = *req.SellingPrice
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *productService) Delete(id int) (*models.Product, error) {
	product, err := s.products.Delete(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *productService) GetLowStock() ([]models.Product, error) {
	return s.products.Find(models.Product.IsLowStock), nil
}

// AdjustStock applies a stock movement. 'in' adds the quantity; 'out'
// subtracts it, clamping at zero rather than erroring when the quantity
// exceeds the stock on hand.
func (s *productService) AdjustStock(id, quantity int, direction string) (*models.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStockQuantity, quantity)
	}
	if direction != models.StockIn && direction != models.StockOut {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidStockDirection, direction)
	}

	product, err := s.products.Update(id, func(p *models.Product) {
		if direction == models.StockIn {
			p.CurrentStock += quantity
		} else {
			p.CurrentStock = max(0, p.CurrentStock-quantity)
		}
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProductNotFound, id)
		}
		return nil, err
	}
	return &product, nil
}
