package db_models

// Memory is a photo collection attached to a trip. Images may be empty;
// slice order is display order.
type Memory struct {
	ID     string   `json:"id" gorm:"primaryKey"`
	Name   string   `json:"name"`
	TripID string   `json:"tripId" gorm:"index"`
	UserID string   `json:"userId" gorm:"index"`
	Date   string   `json:"date"`
	Images []string `json:"images" gorm:"serializer:json"`
}
