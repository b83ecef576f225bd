package services

import (
	"errors"
	"gin-listme/constants"
	"gin-listme/dto"
	"gin-listme/models"
	"gin-listme/repositories"
)

type IListService interface {
	Create(user *models.User, input dto.CreateListInput) (*models.List, error)
	FindAll(user *models.User) (*[]models.List, error)
	FindAllDetailed(user *models.User) (*[]models.List, error)
	FindOne(user *models.User, listID uint) (*models.List, error)
	Update(user *models.User, listID uint, input dto.UpdateListInput) (*models.List, error)
	Delete(user *models.User, listID uint) error
	CreateItem(user *models.User, input dto.CreateItemInput) (*models.Item, error)
	UpdateItem(user *models.User, itemID uint, input dto.UpdateItemInput) (*models.Item, error)
	DeleteItem(user *models.User, itemID uint) error
}

type ListService struct {
	repository repositories.IListRepository
}

func NewListService(repository repositories.IListRepository) IListService {
	return &ListService{repository: repository}
}

func (s *ListService) Create(user *models.User, input dto.CreateListInput) (*models.List, error) {
	if input.Title == "" {
		return nil, errors.New(constants.ErrMissingTitle)
	}
	return s.repository.CreateList(user.Email, input.Title)
}

func (s *ListService) FindAll(user *models.User) (*[]models.List, error) {
	return s.repository.FindAll(user.Email)
}

func (s *ListService) FindAllDetailed(user *models.User) (*[]models.List, error) {
	return s.repository.FindAllDetailed(user.Email)
}

func (s *ListService) FindOne(user *models.User, listID uint) (*models.List, error) {
	return s.repository.FindOne(user.Email, listID)
}

func (s *ListService) Update(user *models.User, listID uint, input dto.UpdateListInput) (*models.List, error) {
	if input.Title == "" {
		return nil, errors.New(constants.ErrMissingTitle)
	}
	return s.repository.UpdateList(user.Email, listID, input.Title)
}

func (s *ListService) Delete(user *models.User, listID uint) error {
	return s.repository.DeleteList(user.Email, listID)
}

func (s *ListService) CreateItem(user *models.User, input dto.CreateItemInput) (*models.Item, error) {
	if input.Title == "" {
		return nil, errors.New(constants.ErrMissingTitle)
	}
	return s.repository.CreateItem(user.Email, input.ListID, input.Title, input.Complete)
}

func (s *ListService) UpdateItem(user *models.User, itemID uint, input dto.UpdateItemInput) (*models.Item, error) {
	if input.Title == "" {
		return nil, errors.New(constants.ErrMissingTitle)
	}
	return s.repository.UpdateItem(user.Email, itemID, input.Title, input.Complete)
}

func (s *ListService) DeleteItem(user *models.User, itemID uint) error {
	return s.repository.DeleteItem(user.Email, itemID)
}
