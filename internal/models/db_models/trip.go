package db_models

import "time"

// Trip belongs to exactly one User via UserID. CreatedAt is set at creation
// and is not user-editable afterwards. Plan is nil when no itinerary has
// been generated yet, which is distinct from an empty plan.
type Trip struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Duration      string    `json:"duration"`
	Mood          string    `json:"mood"`
	People        int       `json:"people"`
	Date          string    `json:"date"`
	Plan          *string   `json:"plan,omitempty"`
	UserID        string    `json:"userId" gorm:"index"`
	Collaborators []string  `json:"collaborators,omitempty" gorm:"serializer:json"`
	Comments      []Comment `json:"comments,omitempty" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Comment is an entry on a trip's discussion thread.
type Comment struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// TripPatch carries the mutable fields of a Trip. ID, UserID and CreatedAt
// are immutable and deliberately absent.
type TripPatch struct {
	Name          *string
	Location      *string
	Duration      *string
	Mood          *string
	People        *int
	Date          *string
	Plan          *string
	Collaborators []string
	Comments      []Comment
}

// Apply shallow-merges the patch onto t.
func (p TripPatch) Apply(t *Trip) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Mood != nil {
		t.Mood = *p.Mood
	}
	if p.People != nil {
		t.People = *p.People
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Plan != nil {
		t.Plan = p.Plan
	}
	if p.Collaborators != nil {
		t.Collaborators = p.Collaborators
	}
	if p.Comments != nil {
		t.Comments = p.Comments
	}
}
