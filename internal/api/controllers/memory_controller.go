package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spontrip/internal/models/request_models"
	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type MemoryController struct {
	memoryService services.MemoryServiceInterface
}

func NewMemoryController(memoryService services.MemoryServiceInterface) *MemoryController {
	return &MemoryController{
		memoryService: memoryService,
	}
}

func (m *MemoryController) ListMine(c *gin.Context) {
	memories, err := m.memoryService.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, memories, "")
}

func (m *MemoryController) Create(c *gin.Context) {
	var req request_models.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	memory, err := m.memoryService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, memory, "Memory created")
}
