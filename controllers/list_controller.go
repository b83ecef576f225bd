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

type IListController interface {
	Create(ctx *gin.Context)
	FindAll(ctx *gin.Context)
	FindAllDetailed(ctx *gin.Context)
	FindOne(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type ListController struct {
	service services.IListService
}

func NewListController(service services.IListService) IListController {
	return &ListController{service: service}
}

func toListDetail(list models.List) dto.ListDetailResponse {
	items := make([]dto.ItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, dto.ItemResponse{
			ID:       item.ID,
			ListID:   item.ListID,
			Title:    item.Title,
			Complete: item.Complete,
		})
	}
	return dto.ListDetailResponse{ID: list.ID, Title: list.Title, Items: items}
}

func (c *ListController) Create(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var input dto.CreateListInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrMissingTitle})
		return
	}

	newList, err := c.service.Create(user.(*models.User), input)
	if err != nil {
		log.Printf("Create list error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create list"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"list":    dto.ListResponse{ID: newList.ID, Title: newList.Title},
	})
}

func (c *ListController) FindAll(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	lists, err := c.service.FindAll(user.(*models.User))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.ListResponse, 0, len(*lists))
	for _, list := range *lists {
		responses = append(responses, dto.ListResponse{ID: list.ID, Title: list.Title})
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "lists": responses})
}

func (c *ListController) FindAllDetailed(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	lists, err := c.service.FindAllDetailed(user.(*models.User))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": constants.ErrUnexpected})
		return
	}

	responses := make([]dto.ListDetailResponse, 0, len(*lists))
	for _, list := range *lists {
		responses = append(responses, toListDetail(list))
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "lists": responses})
}

func (c *ListController) FindOne(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	listID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidID})
		return
	}

	list, err := c.service.FindOne(user.(*models.User), uint(listID))
	if err != nil {
		if err.Error() == constants.ErrListNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrListNotFound})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error getting list"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "list": toListDetail(*list)})
}

func (c *ListController) Update(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	listID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidID})
		return
	}

	var input dto.UpdateListInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrMissingTitle})
		return
	}

	updatedList, err := c.service.Update(user.(*models.User), uint(listID), input)
	if err != nil {
		if err.Error() == constants.ErrListNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrListNotFound})
			return
		}
		log.Printf("Update list error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update list"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"list":    dto.ListResponse{ID: updatedList.ID, Title: updatedList.Title},
	})
}

func (c *ListController) Delete(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	listID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrInvalidID})
		return
	}

	if err := c.service.Delete(user.(*models.User), uint(listID)); err != nil {
		if err.Error() == constants.ErrListNotFound {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": constants.ErrListNotFound})
			return
		}
		log.Printf("Delete list error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete list"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Successfully deleted list"})
}
