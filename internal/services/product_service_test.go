package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

func newProductService() ProductService {
	return NewProductService(repositories.NewCollection[models.Product]())
}

func TestProductCreateAssignsFirstID(t *testing.T) {
	svc := newProductService()

	product, err := svc.Create(CreateProductRequest{Name: "X", CurrentStock: 0, MinStock: 5})
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID)
	assert.Equal(t, 0, product.CurrentStock)
}

func TestProductStockInThenClampedOut(t *testing.T) {
	svc := newProductService()
	created, err := svc.Create(CreateProductRequest{Name: "X", CurrentStock: 0, MinStock: 5})
	require.NoError(t, err)

	after, err := svc.AdjustStock(created.ID, 10, models.StockIn)
	require.NoError(t, err)
	assert.Equal(t, 10, after.CurrentStock)

	after, err = svc.AdjustStock(created.ID, 15, models.StockOut)
	require.NoError(t, err)
	assert.Equal(t, 0, after.CurrentStock, "stock-out clamps at zero instead of going negative")
}

func TestProductStockOutSequenceNeverNegative(t *testing.T) {
	svc := newProductService()
	created, err := svc.Create(CreateProductRequest{Name: "X", CurrentStock: 7})
	require.NoError(t, err)

	for _, qty := range []int{3, 3, 3} {
		_, err = svc.AdjustStock(created.ID, qty, models.StockOut)
		require.NoError(t, err)
	}

	final, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, final.CurrentStock)
}

func TestProductAdjustStockRejectsBadInput(t *testing.T) {
	svc := newProductService()
	created, err := svc.Create(CreateProductRequest{Name: "X", CurrentStock: 5})
	require.NoError(t, err)

	_, err = svc.AdjustStock(created.ID, 0, models.StockIn)
	assert.ErrorIs(t, err, ErrInvalidStockQuantity)

	_, err = svc.AdjustStock(created.ID, -4, models.StockOut)
	assert.ErrorIs(t, err, ErrInvalidStockQuantity)

	_, err = svc.AdjustStock(created.ID, 3, "sideways")
	assert.ErrorIs(t, err, ErrInvalidStockDirection)

	_, err = svc.AdjustStock(999, 3, models.StockIn)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductCreateValidation(t *testing.T) {
	svc := newProductService()

	_, err := svc.Create(CreateProductRequest{})
	assert.ErrorIs(t, err, ErrProductValidation)

	_, err = svc.Create(CreateProductRequest{Name: "X", CostPrice: -1})
	assert.ErrorIs(t, err, ErrProductValidation, "negative prices must be rejected at the service boundary")

	_, err = svc.Create(CreateProductRequest{Name: "X", CurrentStock: -2})
	assert.ErrorIs(t, err, ErrProductValidation)
}

func TestProductUpdatePartialFields(t *testing.T) {
	svc := newProductService()
	created, err := svc.Create(CreateProductRequest{Name: "X", Unit: "bottle", SellingPrice: 99})
	require.NoError(t, err)

	newPrice := 120.0
	updated, err := svc.Update(created.ID, UpdateProductRequest{SellingPrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 120.0, updated.SellingPrice)
	assert.Equal(t, "X", updated.Name, "fields not in the request stay untouched")
	assert.Equal(t, "bottle", updated.Unit)
	assert.NotNil(t, updated.UpdatedAt)
}

func TestProductDeleteThenGetNotFound(t *testing.T) {
	svc := newProductService()
	created, err := svc.Create(CreateProductRequest{Name: "X"})
	require.NoError(t, err)

	deleted, err := svc.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductGetLowStock(t *testing.T) {
	svc := newProductService()
	_, err := svc.Create(CreateProductRequest{Name: "ok", CurrentStock: 60, MinStock: 10})
	require.NoError(t, err)
	low, err := svc.Create(CreateProductRequest{Name: "low", CurrentStock: 5, MinStock: 10})
	require.NoError(t, err)
	boundary, err := svc.Create(CreateProductRequest{Name: "boundary", CurrentStock: 10, MinStock: 10})
	require.NoError(t, err)

	got, err := svc.GetLowStock()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, low.ID, got[0].ID)
	assert.Equal(t, boundary.ID, got[1].ID, "stock equal to the threshold counts as low")
}
