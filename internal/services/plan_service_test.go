package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateProvider_Deterministic(t *testing.T) {
	svc := NewPlanService(nil)
	ctx := context.Background()

	first, err := svc.GeneratePlan(ctx, "Miami", "2 days", "relaxing", 2)
	require.NoError(t, err)
	second, err := svc.GeneratePlan(ctx, "Miami", "2 days", "relaxing", 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTemplateProvider_MentionsInputs(t *testing.T) {
	svc := NewPlanService(nil)

	plan, err := svc.GeneratePlan(context.Background(), "Miami", "2 days", "relaxing", 2)
	require.NoError(t, err)

	assert.Contains(t, plan, "Miami")
	assert.Contains(t, plan, "Relaxing")
	assert.Contains(t, plan, "2 people")
	assert.Contains(t, plan, "relaxing")
}

type failingProvider struct{}

func (failingProvider) Generate(context.Context, string, string, string, int) (string, error) {
	return "", errors.New("provider unavailable")
}

func TestPlanService_FallsBackToTemplate(t *testing.T) {
	svc := NewPlanService(failingProvider{})

	plan, err := svc.GeneratePlan(context.Background(), "Lisbon", "1 day", "foodie", 4)
	require.NoError(t, err)
	assert.Contains(t, plan, "Foodie Trip to Lisbon")
}

func TestPlanService_Directions(t *testing.T) {
	svc := NewPlanService(nil)

	url := svc.Directions("New York, NY", "Miami Beach")
	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&origin=New+York%2C+NY&destination=Miami+Beach",
		url)
}
