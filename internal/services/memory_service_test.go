package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spontrip/internal/models/db_models"
	"spontrip/internal/models/request_models"
	"spontrip/internal/repositories"
	"spontrip/internal/store"
	"spontrip/pkg/utils"
)

func newMemoryFixture(t *testing.T) MemoryServiceInterface {
	t.Helper()
	s := store.New()
	s.AddTrip(db_models.Trip{ID: "t1", UserID: "A", Name: "Beach Weekend"})

	return NewMemoryService(
		repositories.NewMemoryMemoryRepository(s),
		repositories.NewMemoryTripRepository(s),
	)
}

func TestMemoryService_CreateNilImagesBecomesEmptySlice(t *testing.T) {
	svc := newMemoryFixture(t)

	memory, err := svc.Create(context.Background(), "A", request_models.CreateMemoryRequest{
		Name:   "Sunset",
		TripID: "t1",
		Date:   "2025-06-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, memory.ID)
	assert.Equal(t, "A", memory.UserID)
	require.NotNil(t, memory.Images)
	assert.Empty(t, memory.Images)
}

func TestMemoryService_CreateUnknownTrip(t *testing.T) {
	svc := newMemoryFixture(t)

	_, err := svc.Create(context.Background(), "A", request_models.CreateMemoryRequest{
		Name:   "Orphan",
		TripID: "missing",
		Date:   "2025-06-15",
	})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestMemoryService_ListByUserFiltersAndOrders(t *testing.T) {
	svc := newMemoryFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "A", request_models.CreateMemoryRequest{Name: "First", TripID: "t1", Date: "2025-06-15"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "B", request_models.CreateMemoryRequest{Name: "Theirs", TripID: "t1", Date: "2025-06-16"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "A", request_models.CreateMemoryRequest{Name: "Second", TripID: "t1", Date: "2025-06-17"})
	require.NoError(t, err)

	memories, err := svc.ListByUser(ctx, "A")
	require.NoError(t, err)
	require.Len(t, memories, 2)
	assert.Equal(t, first.ID, memories[0].ID)
	assert.Equal(t, second.ID, memories[1].ID)
}
