package repositories

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishooom_backend/internal/models"
)

func newProductCollection() *Collection[models.Product, *models.Product] {
	return NewCollection[models.Product]()
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	col := newProductCollection()

	first := col.Create(models.Product{Name: "Dishwash Gel"})
	second := col.Create(models.Product{Name: "Detergent"})

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Nil(t, first.UpdatedAt)
}

func TestCreateNeverReusesIDsAfterDelete(t *testing.T) {
	col := newProductCollection()
	col.Create(models.Product{Name: "A"})
	col.Create(models.Product{Name: "B"})
	third := col.Create(models.Product{Name: "C"})

	_, err := col.Delete(third.ID)
	require.NoError(t, err)

	fourth := col.Create(models.Product{Name: "D"})
	assert.Equal(t, 4, fourth.ID, "deleting the highest id must not free it for reuse")
}

func TestSeedKeepsIDsVerbatim(t *testing.T) {
	col := newProductCollection()
	err := col.Seed([]models.Product{
		{Entity: models.Entity{ID: 3}, Name: "Seeded three"},
		{Entity: models.Entity{ID: 7}, Name: "Seeded seven"},
	})
	require.NoError(t, err)

	got, err := col.Get(7)
	require.NoError(t, err)
	assert.Equal(t, "Seeded seven", got.Name)

	created := col.Create(models.Product{Name: "After seed"})
	assert.Equal(t, 8, created.ID)
}

func TestSeedRejectsDuplicateIDs(t *testing.T) {
	col := newProductCollection()
	err := col.Seed([]models.Product{
		{Entity: models.Entity{ID: 1}},
		{Entity: models.Entity{ID: 1}},
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestUpdateCannotChangeID(t *testing.T) {
	col := newProductCollection()
	created := col.Create(models.Product{Name: "Original"})

	updated, err := col.Update(created.ID, func(p *models.Product) {
		p.ID = 99
		p.Name = "Renamed"
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.Name)
	require.NotNil(t, updated.UpdatedAt)

	_, err = col.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGetReturnsNotFound(t *testing.T) {
	col := newProductCollection()
	created := col.Create(models.Product{Name: "Doomed"})

	deleted, err := col.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.Name)

	_, err = col.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = col.Delete(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	col := newProductCollection()
	col.Create(models.Product{Name: "first"})
	col.Create(models.Product{Name: "second"})
	col.Create(models.Product{Name: "third"})

	_, err := col.Delete(2)
	require.NoError(t, err)
	col.Create(models.Product{Name: "fourth"})

	var names []string
	for _, p := range col.List() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"first", "third", "fourth"}, names)
}

func TestListReturnsCopies(t *testing.T) {
	col := newProductCollection()
	col.Create(models.Product{Name: "Original", CurrentStock: 5})

	listed := col.List()
	listed[0].Name = "Mutated"
	listed[0].CurrentStock = 999

	got, err := col.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Name)
	assert.Equal(t, 5, got.CurrentStock)
}

func TestCreateWithDerivedField(t *testing.T) {
	col := NewCollection[models.SalesOrder]()
	order := col.CreateWith(models.SalesOrder{CustomerName: "Sharma"}, func(o *models.SalesOrder) {
		o.InvoiceNumber = "INV-2024-0001"
	})

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, "INV-2024-0001", order.InvoiceNumber)
	assert.Nil(t, order.UpdatedAt)

	stored, err := col.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0001", stored.InvoiceNumber)
}

func TestConcurrentCreatesKeepIDsUnique(t *testing.T) {
	col := newProductCollection()

	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				col.Create(models.Product{Name: "p"})
			}
		}()
	}
	wg.Wait()

	records := col.List()
	require.Len(t, records, workers*perWorker)
	seen := make(map[int]bool, len(records))
	for _, p := range records {
		assert.False(t, seen[p.ID], "id %d assigned twice", p.ID)
		seen[p.ID] = true
	}
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	col := newProductCollection()
	created := col.Create(models.Product{Name: "Stamped"})
	before := time.Now()

	updated, err := col.Update(created.ID, func(p *models.Product) { p.MinStock = 10 })
	require.NoError(t, err)
	require.NotNil(t, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(before.Add(-time.Second)))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}
