package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishooom_backend/internal/repositories"
)

func TestLoadDefaults(t *testing.T) {
	stores := repositories.NewStores()
	require.NoError(t, LoadDefaults(stores))

	assert.Equal(t, 5, stores.Products.Len())
	assert.Equal(t, 4, stores.Customers.Len())
	assert.Equal(t, 3, stores.SalesOrders.Len())
	assert.Equal(t, 2, stores.Invoices.Len())
	assert.Equal(t, 4, stores.Expenses.Len())

	// Seed ids are taken verbatim, not reallocated.
	product, err := stores.Products.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "Glass Cleaner Spray 500ml", product.Name)
}

func TestLoadDefaultsMigratesLegacyOrderDate(t *testing.T) {
	stores := repositories.NewStores()
	require.NoError(t, LoadDefaults(stores))

	// Order 3 in the default seed carries the legacy "date" key instead of
	// "orderDate".
	order, err := stores.SalesOrders.Get(3)
	require.NoError(t, err)
	require.False(t, order.OrderDate.IsZero())
	assert.Equal(t, 2024, order.OrderDate.Year())
	assert.Equal(t, 10, order.OrderDate.Day())
}

func TestLoadDirMissingFilesLeaveStoresEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, ProductsFile, `[
		{"Id": 1, "name": "Only product", "currentStock": 3, "minStock": 5}
	]`)

	stores := repositories.NewStores()
	require.NoError(t, LoadDir(stores, dir))

	assert.Equal(t, 1, stores.Products.Len())
	assert.Equal(t, 0, stores.Customers.Len())
	assert.Equal(t, 0, stores.SalesOrders.Len())
}

func TestLoadDirToleratesUnparseableDates(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, ExpensesFile, `[
		{"Id": 1, "category": "Transport", "amount": 100, "date": "not a date"},
		{"Id": 2, "category": "Transport", "amount": 200, "date": "2024-06-01"}
	]`)

	stores := repositories.NewStores()
	require.NoError(t, LoadDir(stores, dir))
	require.Equal(t, 2, stores.Expenses.Len())

	bad, err := stores.Expenses.Get(1)
	require.NoError(t, err)
	assert.True(t, bad.Date.IsZero(), "unparseable dates load as zero, not as errors")

	good, err := stores.Expenses.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 2024, good.Date.Year())
}

func TestLoadDirDuplicateIDFails(t *testing.T) {
	dir := t.TempDir()
	writeSeedFile(t, dir, CustomersFile, `[
		{"Id": 1, "name": "One"},
		{"Id": 1, "name": "Other"}
	]`)

	stores := repositories.NewStores()
	err := LoadDir(stores, dir)
	assert.ErrorIs(t, err, repositories.ErrDuplicateID)
}

func writeSeedFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
