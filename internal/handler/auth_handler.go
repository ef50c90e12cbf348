package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inquirykit/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	assessments *service.AssessmentService
}

func NewAuthHandler(authService *service.AuthService, assessments *service.AssessmentService) *AuthHandler {
	return &AuthHandler{authService: authService, assessments: assessments}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	u, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrEmailExists) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    u.ID,
		"email": u.Email,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout handles POST /logout. Tokens are stateless; signing out just
// drops the user's current-assessment pointer.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetInt("user_id")
	h.assessments.ClearCurrent(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
