package repositories

import (
	"errors"
	"gin-listme/constants"
	"gin-listme/models"

	"gorm.io/gorm"
)

type IAuthRepository interface {
	CreateAccount(user models.User, credential models.Credential) (*models.User, error)
	FindCredential(email string) (*models.Credential, error)
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	DeleteAccount(email string) error
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

// CreateAccount 認証情報とプロフィールを1トランザクションで作成する
func (r *AuthRepository) CreateAccount(user models.User, credential models.Credential) (*models.User, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&credential).Error; err != nil {
			return err
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) FindCredential(email string) (*models.Credential, error) {
	var credential models.Credential
	result := r.db.First(&credential, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, result.Error
	}
	return &credential, nil
}

func (r *AuthRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		return nil, result.Error
	}
	return &user, nil
}

// DeleteAccount 所有リストのアイテム→リスト→認証情報→プロフィールの順で
// 1トランザクションで削除する。途中で失敗した場合は全てロールバックされる
func (r *AuthRepository) DeleteAccount(email string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listIDs []uint
		if err := tx.Model(&models.List{}).Where("owner_email = ?", email).Pluck("id", &listIDs).Error; err != nil {
			return err
		}
		if len(listIDs) > 0 {
			if err := tx.Where("list_id IN ?", listIDs).Delete(&models.Item{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", listIDs).Delete(&models.List{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("email = ?", email).Delete(&models.Credential{}).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ?", email).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return nil
	})
}
