package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spontrip/internal/models/request_models"
	"spontrip/internal/models/response_models"
	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// Generate godoc
// @Summary Generate a trip itinerary
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Plan parameters"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/generate [post]
func (p *PlanController) Generate(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	plan, err := p.planService.GeneratePlan(c.Request.Context(), req.Location, req.Duration, req.Mood, req.People)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.PlanResponse{Plan: plan}, "")
}

func (p *PlanController) Directions(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing origin or destination")
		return
	}

	url := p.planService.Directions(origin, destination)
	utils.RespondSuccess(c, response_models.DirectionsResponse{URL: url}, "")
}
