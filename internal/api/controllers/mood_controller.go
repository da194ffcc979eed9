package controllers

import (
	"github.com/gin-gonic/gin"

	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type MoodController struct {
	moodService services.MoodServiceInterface
}

func NewMoodController(moodService services.MoodServiceInterface) *MoodController {
	return &MoodController{
		moodService: moodService,
	}
}

func (m *MoodController) ListMoods(c *gin.Context) {
	utils.RespondSuccess(c, m.moodService.Moods(), "")
}

func (m *MoodController) ListDurations(c *gin.Context) {
	utils.RespondSuccess(c, m.moodService.Durations(), "")
}
