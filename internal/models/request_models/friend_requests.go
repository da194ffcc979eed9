package request_models

type AddFriendRequest struct {
	UserID string `json:"userId" binding:"required"`
}
