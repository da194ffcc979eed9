package db_models

// User is an account on the platform. The id is an opaque string assigned
// once at creation and never reassigned. Email is a display/search field;
// the store does not enforce uniqueness.
type User struct {
	ID             string  `json:"id" gorm:"primaryKey"`
	Name           string  `json:"name"`
	Email          string  `json:"email" gorm:"index"`
	Age            int     `json:"age"`
	Location       string  `json:"location"`
	PasswordHash   string  `json:"-"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// UserPatch carries the mutable fields of a User. Nil means "leave as is",
// so a merge can distinguish absent fields from explicit empty values.
// ID is not patchable.
type UserPatch struct {
	Name           *string
	Email          *string
	Age            *int
	Location       *string
	PasswordHash   *string
	ProfilePicture *string
}

// Apply shallow-merges the patch onto u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.PasswordHash != nil {
		u.PasswordHash = *p.PasswordHash
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = p.ProfilePicture
	}
}
