package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spontrip/internal/repositories"
	"spontrip/internal/services"
	"spontrip/internal/store"
	"spontrip/pkg/kvstore"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New()
	store.Seed(s)
	sessionService := services.NewSessionService(
		repositories.NewMemoryUserRepository(s),
		kvstore.NewMemoryStore(),
	)
	controller := NewAuthController(sessionService)

	router := gin.New()
	router.POST("/auth/signup", controller.Signup)
	router.POST("/auth/login", controller.Login)
	router.POST("/auth/logout", controller.Logout)
	router.GET("/auth/session", controller.Session)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	} `json:"data"`
}

func TestAuthController_LoginDemoAccount(t *testing.T) {
	router := newAuthRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "demo@example.com", resp.Data.User.Email)
	assert.NotContains(t, recorder.Body.String(), "password_hash")
}

func TestAuthController_LoginBadCredentials(t *testing.T) {
	router := newAuthRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestAuthController_LoginMalformedBody(t *testing.T) {
	router := newAuthRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{"email": "demo@example.com"})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAuthController_SignupAndSession(t *testing.T) {
	router := newAuthRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/auth/signup", gin.H{
		"name":     "New Traveler",
		"email":    "new@example.com",
		"password": "secret-pass",
		"age":      27,
		"location": "Berlin",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.NotEmpty(t, resp.Data.User.ID)

	recorder = doJSON(t, router, http.MethodGet, "/auth/session", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthController_LogoutClearsSession(t *testing.T) {
	router := newAuthRouter(t)

	recorder := doJSON(t, router, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@example.com",
		"password": "password",
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
