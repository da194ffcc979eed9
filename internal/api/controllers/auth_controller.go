package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spontrip/internal/models/request_models"
	"spontrip/internal/models/response_models"
	"spontrip/internal/services"
	"spontrip/pkg/utils"
)

type AuthController struct {
	sessionService services.SessionServiceInterface
}

func NewAuthController(sessionService services.SessionServiceInterface) *AuthController {
	return &AuthController{
		sessionService: sessionService,
	}
}

// Signup godoc
// @Summary Create an account
// @Description Register a new user and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /auth/signup [post]
func (a *AuthController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, ok := a.sessionService.Signup(c.Request.Context(), req)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, "Signup failed")
		return
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SessionResponse{Token: token, User: user}, "Account created successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate a user and return a token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, ok := a.sessionService.Login(c.Request.Context(), req.Email, req.Password)
	if !ok {
		utils.HandleServiceError(c, utils.ErrInvalidCredentials)
		return
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SessionResponse{Token: token, User: user}, "Login successful")
}

// Logout godoc
// @Summary Logout
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	a.sessionService.Logout(c.Request.Context())
	utils.RespondSuccess(c, nil, "Logged out")
}

// Session returns the restored current user, or 401 when anonymous.
func (a *AuthController) Session(c *gin.Context) {
	user, ok := a.sessionService.Current()
	if !ok {
		utils.HandleServiceError(c, utils.ErrNotAuthenticated)
		return
	}
	utils.RespondSuccess(c, user, "")
}

// UpdateMe patches the current user's profile.
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req request_models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, ok := a.sessionService.UpdateUser(c.Request.Context(), req)
	if !ok {
		utils.RespondError(c, http.StatusInternalServerError, "Profile update failed")
		return
	}
	utils.RespondSuccess(c, user, "Profile updated")
}
