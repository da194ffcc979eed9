package db_models

// Friend is a one-directional edge from the session's user to another
// user's public summary. Adding a friend never mutates the target user.
type Friend struct {
	ID             string  `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}
