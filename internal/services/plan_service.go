package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"unicode"
)

// PlanProvider turns trip parameters into an itinerary text.
type PlanProvider interface {
	Generate(ctx context.Context, location string, duration string, mood string, people int) (string, error)
}

// PlanServiceInterface generates trip itineraries and map links. Provider
// failures degrade to the deterministic template, never to an error the
// caller has to handle specially.
type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, location string, duration string, mood string, people int) (string, error)
	Directions(origin string, destination string) string
}

type PlanService struct {
	provider PlanProvider
}

func NewPlanService(provider PlanProvider) PlanServiceInterface {
	if provider == nil {
		provider = TemplateProvider{}
	}
	return &PlanService{provider: provider}
}

func (s *PlanService) GeneratePlan(ctx context.Context, location string, duration string, mood string, people int) (string, error) {
	plan, err := s.provider.Generate(ctx, location, duration, mood, people)
	if err != nil {
		log.Printf("Plan provider error, falling back to template: %v", err)
		return TemplateProvider{}.Generate(ctx, location, duration, mood, people)
	}
	return plan, nil
}

// Directions returns a shareable maps link between two places.
func (s *PlanService) Directions(origin string, destination string) string {
	return fmt.Sprintf(
		"https://www.google.com/maps/dir/?api=1&origin=%s&destination=%s",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
	)
}

// TemplateProvider is the default generator: a pure function of its four
// inputs, so identical arguments always yield byte-identical output.
type TemplateProvider struct{}

func (TemplateProvider) Generate(_ context.Context, location string, duration string, mood string, people int) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s Trip to %s\n\n", capitalize(mood), location)
	b.WriteString("### Day 1\n")
	b.WriteString("- Morning: Visit local attractions\n")
	b.WriteString("- Afternoon: Enjoy local cuisine at recommended restaurants\n")
	b.WriteString("- Evening: Relax at your accommodation\n\n")
	b.WriteString("### Day 2\n")
	fmt.Fprintf(&b, "- Morning: Outdoor activities suited to your %s preferences\n", mood)
	b.WriteString("- Afternoon: Shopping for souvenirs\n")
	b.WriteString("- Evening: Experience local nightlife\n\n")
	fmt.Fprintf(&b, "This plan is designed for %d people and optimized for a %s experience over %s.\n", people, mood, duration)

	return b.String(), nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
