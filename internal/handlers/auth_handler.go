package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Prathamahuja/employee-leave-management/internal/middleware"
	"github.com/Prathamahuja/employee-leave-management/internal/models"
	"github.com/Prathamahuja/employee-leave-management/internal/services"
)

// AuthHandler exposes signup, login, logout and session inspection.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupInput defines the expected signup body. A "role" key sent by the
// client is deliberately not bound; every signup is an employee.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput defines the expected login body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup. It registers the account but does
// not log the user in.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	userID, err := h.authService.Signup(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully", "userId": userID})
}

// Login handles POST /api/auth/login. On success it stores the user's id,
// role and name in a fresh session.
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	user, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		}
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserID, user.ID)
	session.Set(middleware.SessionRole, user.Role)
	session.Set(middleware.SessionName, user.Name)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user.Public()})
}

// Logout handles POST /api/auth/logout. Destroying a session that does not
// exist is a no-op success.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me handles GET /api/auth/me and reports the current session state.
func (h *AuthHandler) Me(c *gin.Context) {
	session := sessions.Default(c)
	userID, ok := session.Get(middleware.SessionUserID).(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false})
		return
	}

	name, _ := session.Get(middleware.SessionName).(string)
	role, _ := session.Get(middleware.SessionRole).(string)
	c.JSON(http.StatusOK, gin.H{
		"isAuthenticated": true,
		"user":            models.PublicUser{ID: userID, Name: name, Role: role},
	})
}
