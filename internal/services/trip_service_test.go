package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spontrip/internal/models/db_models"
	"spontrip/internal/models/request_models"
	"spontrip/internal/repositories"
	"spontrip/internal/store"
	"spontrip/pkg/utils"
)

func newTripFixture(t *testing.T) (TripServiceInterface, repositories.TripRepository) {
	t.Helper()
	s := store.New()
	s.AddUser(db_models.User{ID: "A", Name: "Owner", Email: "owner@example.com"})
	s.AddUser(db_models.User{ID: "B", Name: "Other", Email: "other@example.com"})

	tripRepo := repositories.NewMemoryTripRepository(s)
	userRepo := repositories.NewMemoryUserRepository(s)
	svc := NewTripService(tripRepo, userRepo, NewPlanService(nil), NewMoodService())
	return svc, tripRepo
}

func createTrip(t *testing.T, svc TripServiceInterface, userID string, name string) *db_models.Trip {
	t.Helper()
	trip, err := svc.Create(context.Background(), userID, request_models.CreateTripRequest{
		Name:     name,
		Location: "Miami",
		Duration: "2 days",
		Mood:     "relaxing",
		People:   2,
		Date:     "2025-06-15",
	})
	require.NoError(t, err)
	return trip
}

func TestTripService_CreateAssignsIDAndCreatedAt(t *testing.T) {
	svc, _ := newTripFixture(t)

	before := time.Now().UTC()
	trip := createTrip(t, svc, "A", "Beach Weekend")

	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, "A", trip.UserID)
	assert.False(t, trip.CreatedAt.Before(before.Add(-time.Second)))
}

func TestTripService_CreateGeneratesPlanWhenAbsent(t *testing.T) {
	svc, _ := newTripFixture(t)

	trip := createTrip(t, svc, "A", "Beach Weekend")
	require.NotNil(t, trip.Plan)
	assert.Contains(t, *trip.Plan, "Miami")
	assert.Contains(t, *trip.Plan, "Relaxing")
}

func TestTripService_CreateKeepsSuppliedPlan(t *testing.T) {
	svc, _ := newTripFixture(t)
	plan := "Day 1: do nothing"

	trip, err := svc.Create(context.Background(), "A", request_models.CreateTripRequest{
		Name:     "Lazy Trip",
		Location: "Miami",
		Duration: "1 day",
		Mood:     "relaxing",
		People:   1,
		Date:     "2025-07-01",
		Plan:     &plan,
	})
	require.NoError(t, err)
	require.NotNil(t, trip.Plan)
	assert.Equal(t, plan, *trip.Plan)
}

func TestTripService_CreateRejectsUnknownMood(t *testing.T) {
	svc, _ := newTripFixture(t)

	_, err := svc.Create(context.Background(), "A", request_models.CreateTripRequest{
		Name:     "Odd Trip",
		Location: "Miami",
		Duration: "1 day",
		Mood:     "melancholic",
		People:   1,
		Date:     "2025-07-01",
	})
	assert.ErrorIs(t, err, utils.ErrUnknownMood)
}

func TestTripService_ListByUserFiltersExactly(t *testing.T) {
	svc, _ := newTripFixture(t)

	first := createTrip(t, svc, "A", "First")
	createTrip(t, svc, "B", "Second")
	third := createTrip(t, svc, "A", "Third")

	trips, err := svc.ListByUser(context.Background(), "A")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, first.ID, trips[0].ID)
	assert.Equal(t, third.ID, trips[1].ID)
}

func TestTripService_UpdatePreservesImmutableFields(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Original")

	name := "Renamed"
	updated, err := svc.Update(context.Background(), "A", trip.ID, request_models.UpdateTripRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, trip.ID, updated.ID)
	assert.Equal(t, trip.UserID, updated.UserID)
	assert.True(t, trip.CreatedAt.Equal(updated.CreatedAt))
	assert.Equal(t, trip.Location, updated.Location)
}

func TestTripService_UpdateByNonOwnerForbidden(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Private")

	name := "Hijacked"
	_, err := svc.Update(context.Background(), "B", trip.ID, request_models.UpdateTripRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestTripService_UpdateMissingTrip(t *testing.T) {
	svc, _ := newTripFixture(t)

	name := "Ghost"
	_, err := svc.Update(context.Background(), "A", "missing-id", request_models.UpdateTripRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestTripService_DeleteTrueExactlyOnce(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Short Lived")

	removed, err := svc.Delete(context.Background(), "A", trip.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Delete(context.Background(), "A", trip.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestTripService_DeleteByNonOwnerForbidden(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Private")

	_, err := svc.Delete(context.Background(), "B", trip.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)
}

func TestTripService_AddComment(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Chatty Trip")

	updated, err := svc.AddComment(context.Background(), "A", trip.ID, "Can't wait!")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)
	assert.Equal(t, "Can't wait!", updated.Comments[0].Text)
	assert.Equal(t, "Owner", updated.Comments[0].UserName)
	assert.NotEmpty(t, updated.Comments[0].ID)
}

func TestTripService_AddCommentRequiresAccess(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Private Trip")

	_, err := svc.AddComment(context.Background(), "B", trip.ID, "Let me in")
	assert.ErrorIs(t, err, utils.ErrForbidden)

	// collaborators may comment
	_, err = svc.AddCollaborator(context.Background(), "A", trip.ID, "B")
	require.NoError(t, err)

	updated, err := svc.AddComment(context.Background(), "B", trip.ID, "Thanks for the invite")
	require.NoError(t, err)
	assert.Len(t, updated.Comments, 1)
}

func TestTripService_AddCollaboratorIdempotent(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Group Trip")

	updated, err := svc.AddCollaborator(context.Background(), "A", trip.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, updated.Collaborators)

	updated, err = svc.AddCollaborator(context.Background(), "A", trip.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, updated.Collaborators)
}

func TestTripService_AddCollaboratorUnknownUser(t *testing.T) {
	svc, _ := newTripFixture(t)
	trip := createTrip(t, svc, "A", "Group Trip")

	_, err := svc.AddCollaborator(context.Background(), "A", trip.ID, "ghost")
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
