package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dishooom_backend/internal/models"
	"dishooom_backend/internal/repositories"
)

func newCustomerService() CustomerService {
	return NewCustomerService(repositories.NewCollection[models.Customer]())
}

func TestCustomerCreateDefaultsPipelineStage(t *testing.T) {
	svc := newCustomerService()

	customer, err := svc.Create(CreateCustomerRequest{Name: "Patel Mart"})
	require.NoError(t, err)
	assert.Equal(t, models.StageNew, customer.PipelineStage)
	assert.Nil(t, customer.LastContact)

	explicit, err := svc.Create(CreateCustomerRequest{Name: "Shine", PipelineStage: models.StageContacted})
	require.NoError(t, err)
	assert.Equal(t, models.StageContacted, explicit.PipelineStage)
}

func TestCustomerUpdatePipelineStageRefreshesLastContact(t *testing.T) {
	svc := newCustomerService()
	customer, err := svc.Create(CreateCustomerRequest{Name: "Patel Mart"})
	require.NoError(t, err)

	callTime := time.Now()
	updated, err := svc.UpdatePipelineStage(customer.ID, models.StageClosed)
	require.NoError(t, err)

	assert.Equal(t, models.StageClosed, updated.PipelineStage)
	require.NotNil(t, updated.LastContact)
	assert.False(t, updated.LastContact.Before(callTime.Add(-time.Second)))
}

func TestCustomerPipelineTransitionsAreUnordered(t *testing.T) {
	svc := newCustomerService()
	customer, err := svc.Create(CreateCustomerRequest{Name: "Back and forth", PipelineStage: models.StageClosed})
	require.NoError(t, err)

	// Moving a closed lead back to new is allowed; the pipeline has no
	// enforced ordering.
	updated, err := svc.UpdatePipelineStage(customer.ID, models.StageNew)
	require.NoError(t, err)
	assert.Equal(t, models.StageNew, updated.PipelineStage)
}

func TestCustomerGetByPipelineStage(t *testing.T) {
	svc := newCustomerService()
	_, err := svc.Create(CreateCustomerRequest{Name: "A", PipelineStage: models.StageNew})
	require.NoError(t, err)
	contacted, err := svc.Create(CreateCustomerRequest{Name: "B", PipelineStage: models.StageContacted})
	require.NoError(t, err)

	got, err := svc.GetByPipelineStage(models.StageContacted)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, contacted.ID, got[0].ID)
}

func TestCustomerValidation(t *testing.T) {
	svc := newCustomerService()

	_, err := svc.Create(CreateCustomerRequest{})
	assert.ErrorIs(t, err, ErrCustomerValidation)

	_, err = svc.Create(CreateCustomerRequest{Name: "X", Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrCustomerValidation)

	_, err = svc.Create(CreateCustomerRequest{Name: "X", Type: "Wholesaler"})
	assert.ErrorIs(t, err, ErrCustomerValidation)
}

func TestCustomerNotFound(t *testing.T) {
	svc := newCustomerService()

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.Delete(42)
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.UpdatePipelineStage(42, models.StageClosed)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
