package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spontrip/internal/models/request_models"
	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type FriendController struct {
	friendService services.FriendServiceInterface
}

func NewFriendController(friendService services.FriendServiceInterface) *FriendController {
	return &FriendController{
		friendService: friendService,
	}
}

func (f *FriendController) List(c *gin.Context) {
	friends, err := f.friendService.ListFriends(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friends, "")
}

// Search matches users by name (case-insensitive) or email substring,
// excluding the requester and existing friends.
func (f *FriendController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing query parameter q")
		return
	}

	users, err := f.friendService.Search(c.Request.Context(), c.GetString("user_id"), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "")
}

func (f *FriendController) Add(c *gin.Context) {
	var req request_models.AddFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	friend, err := f.friendService.AddFriend(c.Request.Context(), c.GetString("user_id"), req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, friend, "Friend added")
}
