package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

func newExpenseService() ExpenseService {
	return NewExpenseService(repositories.NewCollection[models.Expense]())
}

func TestExpenseCreateDefaultsDate(t *testing.T) {
	svc := newExpenseService()
	before := time.Now()

	expense, err := svc.Create(CreateExpenseRequest{Category: models.ExpenseTransport, Amount: 500})
	require.NoError(t, err)
	assert.WithinDuration(t, before, expense.Date.Time, time.Minute)

	given := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)
	expense, err = svc.Create(CreateExpenseRequest{Category: models.ExpenseTransport, Amount: 500, Date: given})
	require.NoError(t, err)
	assert.Equal(t, given, expense.Date.Time)
}

func TestExpenseValidation(t *testing.T) {
	svc := newExpenseService()

	_, err := svc.Create(CreateExpenseRequest{Amount: 100})
	assert.ErrorIs(t, err, ErrExpenseValidation)

	_, err = svc.Create(CreateExpenseRequest{Category: models.ExpenseRent, Amount: 0})
	assert.ErrorIs(t, err, ErrExpenseValidation, "expense amounts must be positive")

	_, err = svc.Create(CreateExpenseRequest{Category: models.ExpenseRent, Amount: -20})
	assert.ErrorIs(t, err, ErrExpenseValidation)
}

func TestExpenseGetByCategory(t *testing.T) {
	svc := newExpenseService()
	_, err := svc.Create(CreateExpenseRequest{Category: models.ExpensePackaging, Amount: 100})
	require.NoError(t, err)
	transport, err := svc.Create(CreateExpenseRequest{Category: models.ExpenseTransport, Amount: 200})
	require.NoError(t, err)

	got, err := svc.GetByCategory(models.ExpenseTransport)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, transport.ID, got[0].ID)
}

func TestExpenseGetMonthlyExpenses(t *testing.T) {
	svc := newExpenseService()
	may := time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, time.June, 6, 0, 0, 0, 0, time.UTC)

	inMonth, err := svc.Create(CreateExpenseRequest{Category: models.ExpenseRent, Amount: 100, Date: may})
	require.NoError(t, err)
	_, err = svc.Create(CreateExpenseRequest{Category: models.ExpenseRent, Amount: 200, Date: june})
	require.NoError(t, err)

	got, err := svc.GetMonthlyExpenses(2024, time.May)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inMonth.ID, got[0].ID)
}

func TestExpenseUpdateAndDelete(t *testing.T) {
	svc := newExpenseService()
	expense, err := svc.Create(CreateExpenseRequest{Category: models.ExpenseUtilities, Amount: 5300, Description: "Electricity"})
	require.NoError(t, err)

	vendor := "MSEB"
	updated, err := svc.Update(expense.ID, UpdateExpenseRequest{Vendor: &vendor})
	require.NoError(t, err)
	assert.Equal(t, "MSEB", updated.Vendor)
	assert.Equal(t, "Electricity", updated.Description)

	_, err = svc.Delete(expense.ID)
	require.NoError(t, err)
	_, err = svc.GetByID(expense.ID)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}
