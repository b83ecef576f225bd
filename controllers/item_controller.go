package controllers

import (
	"gin-listme/constants"
	"gin-listme/dto"
	"gin-listme/models"
	"gin-listme/services"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type IItemController interface {
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ItemController struct {
	service services.IListService
}

func NewItemController(service services.IListService) IItemController {
	return &ItemController{service: service}
}

func (c *ItemController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidInput})
		return
	}

	newItem, err := c.service.CreateItem(user.(*models.User), input)
	if err != nil {
		if err.Error() == constants.ErrListNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrListNotFound})
			return
		}
		log.Printf("Create item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add item"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"item": dto.ItemResponse{
			ID:       newItem.ID,
			ListID:   newItem.ListID,
			Title:    newItem.Title,
			Complete: newItem.Complete,
		},
	})
}

func (c *ItemController) Update(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidInput})
		return
	}

	updatedItem, err := c.service.UpdateItem(user.(*models.User), uint(itemID), input)
	if err != nil {
		if err.Error() == constants.ErrItemNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrItemNotFound})
			return
		}
		log.Printf("Update item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update item"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully updated item",
		"item": dto.ItemResponse{
			ID:       updatedItem.ID,
			ListID:   updatedItem.ListID,
			Title:    updatedItem.Title,
			Complete: updatedItem.Complete,
		},
	})
}

func (c *ItemController) Delete(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidID})
		return
	}

	if err := c.service.DeleteItem(user.(*models.User), uint(itemID)); err != nil {
		if err.Error() == constants.ErrItemNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrItemNotFound})
			return
		}
		log.Printf("Delete item error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete item"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully deleted item"})
}
