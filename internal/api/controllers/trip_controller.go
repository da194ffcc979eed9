package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spontrip/internal/models/request_models"
	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// ListMine returns the authenticated user's trips in creation order.
func (t *TripController) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")

	trips, err := t.tripService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "")
}

func (t *TripController) Get(c *gin.Context) {
	trip, err := t.tripService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "")
}

// Create godoc
// @Summary Create a trip
// @Description Create a trip; an itinerary is generated when none is supplied
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips [post]
func (t *TripController) Create(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip created")
}

func (t *TripController) Update(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Trip updated")
}

func (t *TripController) Delete(c *gin.Context) {
	removed, err := t.tripService.Delete(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"deleted": removed}, "")
}

func (t *TripController) AddComment(c *gin.Context) {
	var req request_models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddComment(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Comment added")
}

func (t *TripController) AddCollaborator(c *gin.Context) {
	var req request_models.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.AddCollaborator(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trip, "Collaborator added")
}
