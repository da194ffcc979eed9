package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=80"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
	Age            int     `json:"age" binding:"required,gte=13"`
	Location       string  `json:"location" binding:"required"`
	ProfilePicture *string `json:"profilePicture"`
}

// UpdateUserRequest patches the current user. Pointer fields distinguish
// "not sent" from explicit empty values.
type UpdateUserRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=2,max=80"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Password       *string `json:"password" binding:"omitempty,min=6"`
	Age            *int    `json:"age" binding:"omitempty,gte=13"`
	Location       *string `json:"location"`
	ProfilePicture *string `json:"profilePicture"`
}
