package controllers

import (
	"fmt"
	"gin-listme/constants"
	"gin-listme/dto"
	"gin-listme/models"
	"gin-listme/services"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type IUserController interface {
	Register(ctx *gin.Context)
	Authenticate(ctx *gin.Context)
	Profile(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IAuthService
}

func NewUserController(service services.IAuthService) IUserController {
	return &UserController{service: service}
}

func (c *UserController) Register(ctx *gin.Context) {
	var input dto.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidInput})
		return
	}

	user, err := c.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if err.Error() == constants.ErrEmailExists || strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE constraint") {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": fmt.Sprintf("User with email %s already exists", input.Email),
			})
			return
		}
		log.Printf("Register error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to register"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

func (c *UserController) Authenticate(ctx *gin.Context) {
	var input dto.AuthenticateInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidInput})
		return
	}

	user, token, err := c.service.Authenticate(input.Email, input.Password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidCredentials})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		"token":   token,
	})
}

func (c *UserController) Profile(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	currentUser := user.(*models.User)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.UserResponse{ID: currentUser.ID, Name: currentUser.Name, Email: currentUser.Email},
	})
}

func (c *UserController) Delete(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	currentUser := user.(*models.User)
	if err := c.service.DeleteAccount(currentUser.Email); err != nil {
		log.Printf("Delete account error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Unable to delete user"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully deleted user"})
}
