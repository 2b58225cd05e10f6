package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/middleware"
	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

type AuthController struct {
	auth *services.AuthService
}

type credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerInput struct {
	credentials
	Role string `json:"role" binding:"omitempty,userrole"`
}

// userResponse is the public shape of a user, without the password hash.
type userResponse struct {
	ID        uint            `json:"id"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
	LastLogin *time.Time      `json:"lastLogin,omitempty"`
	Profile   *models.Profile `json:"profile,omitempty"`
}

func toUserResponse(u models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		Profile:   u.Profile,
	}
}

func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	token, err := ac.auth.Register(c.Request.Context(), input.Email, input.Password, input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	token, err := ac.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the account behind the bearer token.
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.auth.LoadUserByEmail(c.Request.Context(), middleware.CurrentEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}
