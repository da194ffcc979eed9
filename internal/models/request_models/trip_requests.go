package request_models

type CreateTripRequest struct {
	Name     string  `json:"name" binding:"required"`
	Location string  `json:"location" binding:"required"`
	Duration string  `json:"duration" binding:"required"`
	Mood     string  `json:"mood" binding:"required"`
	People   int     `json:"people" binding:"required,gte=1"`
	Date     string  `json:"date" binding:"required"`
	Plan     *string `json:"plan"`
}

type UpdateTripRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Duration *string `json:"duration"`
	Mood     *string `json:"mood"`
	People   *int    `json:"people" binding:"omitempty,gte=1"`
	Date     *string `json:"date"`
	Plan     *string `json:"plan"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type AddCollaboratorRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type GeneratePlanRequest struct {
	Location string `json:"location" binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Mood     string `json:"mood" binding:"required"`
	People   int    `json:"people" binding:"required,gte=1"`
}
