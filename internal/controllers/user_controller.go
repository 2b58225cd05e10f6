package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teranga_match/internal/models"
	"teranga_match/internal/services"
)

// UserController serves the admin user management endpoints.
type UserController struct {
	users *services.UserService
}

type createUserInput struct {
	credentials
	Role string `json:"role" binding:"required,userrole"`
}

type roleInput struct {
	Role string `json:"role" binding:"required,userrole"`
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.users.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	c.JSON(http.StatusOK, out)
}

func (uc *UserController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	user, err := uc.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

func (uc *UserController) Create(c *gin.Context) {
	var input createUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	role, _ := models.ParseUserRole(input.Role)
	user, err := uc.users.Create(c.Request.Context(), input.Email, input.Password, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(*user))
}

func (uc *UserController) UpdateRole(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input roleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	role, _ := models.ParseUserRole(input.Role)
	user, err := uc.users.UpdateRole(c.Request.Context(), id, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*user))
}

func (uc *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := uc.users.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
