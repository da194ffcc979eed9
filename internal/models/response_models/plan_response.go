package response_models

type PlanResponse struct {
	Plan string `json:"plan"`
}

type DirectionsResponse struct {
	URL string `json:"url"`
}

type MoodResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}
