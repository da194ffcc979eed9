package services

import "spontrip/internal/models/response_models"

// MoodServiceInterface exposes the closed catalogs the trip wizard offers:
// trip moods and duration presets.
type MoodServiceInterface interface {
	Moods() []response_models.MoodResponse
	Durations() []response_models.MoodResponse
	IsValidMood(value string) bool
}

var moodCatalog = []response_models.MoodResponse{
	{Value: "adventurous", Label: "Adventurous"},
	{Value: "relaxing", Label: "Relaxing"},
	{Value: "romantic", Label: "Romantic"},
	{Value: "foodie", Label: "Foodie"},
	{Value: "cultural", Label: "Cultural"},
	{Value: "party", Label: "Party"},
	{Value: "nature", Label: "Nature"},
}

var durationCatalog = []response_models.MoodResponse{
	{Value: "few hours", Label: "Few Hours"},
	{Value: "1 day", Label: "1 Day"},
	{Value: "2 days", Label: "2 Days"},
}

type MoodService struct{}

func NewMoodService() MoodServiceInterface {
	return &MoodService{}
}

func (s *MoodService) Moods() []response_models.MoodResponse {
	return append([]response_models.MoodResponse(nil), moodCatalog...)
}

func (s *MoodService) Durations() []response_models.MoodResponse {
	return append([]response_models.MoodResponse(nil), durationCatalog...)
}

func (s *MoodService) IsValidMood(value string) bool {
	for _, m := range moodCatalog {
		if m.Value == value {
			return true
		}
	}
	return false
}
