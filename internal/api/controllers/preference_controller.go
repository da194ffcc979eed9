package controllers

import (
	"github.com/gin-gonic/gin"

	"spontrip/internal/models/response_models"
	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
	}
}

func (p *PreferenceController) GetTheme(c *gin.Context) {
	theme := p.preferenceService.Theme(c.Request.Context())
	utils.RespondSuccess(c, response_models.ThemeResponse{Theme: theme}, "")
}

func (p *PreferenceController) ToggleTheme(c *gin.Context) {
	theme, err := p.preferenceService.Toggle(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.ThemeResponse{Theme: theme}, "Theme updated")
}
