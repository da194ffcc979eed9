package request_models

type CreateMemoryRequest struct {
	Name   string   `json:"name" binding:"required"`
	TripID string   `json:"tripId" binding:"required"`
	Date   string   `json:"date" binding:"required"`
	Images []string `json:"images"`
}
