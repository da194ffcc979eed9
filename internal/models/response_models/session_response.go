package response_models

import "spontrip/internal/models/db_models"

type SessionResponse struct {
	Token string          `json:"token"`
	User  *db_models.User `json:"user"`
}
