package services

import (
	"errors"
	"gin-listme/constants"
	"gin-listme/models"
	"gin-listme/repositories"

	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(name string, email string, password string) (*models.User, error)
	Authenticate(email string, password string) (*models.User, string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	DeleteAccount(email string) error
}

type AuthService struct {
	repository repositories.IAuthRepository
	tokens     ITokenService
}

func NewAuthService(repository repositories.IAuthRepository, tokens ITokenService) IAuthService {
	return &AuthService{
		repository: repository,
		tokens:     tokens,
	}
}

// Register 重複チェックを通過した場合のみ認証情報とプロフィールを作成する
// 既存メールの場合は一切書き込まない
func (s *AuthService) Register(name string, email string, password string) (*models.User, error) {
	_, err := s.repository.FindCredential(email)
	if err == nil {
		return nil, errors.New(constants.ErrEmailExists)
	}
	if err.Error() != constants.ErrUserNotFound {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:  name,
		Email: email,
	}
	credential := models.Credential{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	return s.repository.CreateAccount(user, credential)
}

// Authenticate 失敗理由（メール不明・パスワード不一致）は呼び出し側から区別できない
func (s *AuthService) Authenticate(email string, password string) (*models.User, string, error) {
	credential, err := s.repository.FindCredential(email)
	if err != nil {
		return nil, "", errors.New(constants.ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		return nil, "", errors.New(constants.ErrInvalidCredentials)
	}

	user, err := s.repository.FindUserByEmail(email)
	if err != nil {
		return nil, "", errors.New(constants.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUserFromToken クレームをそのまま信用せず、idで現在のユーザーレコードを引き直す
// 既に削除されたユーザーのトークンはここで弾かれる
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	return s.repository.FindUserByID(claims.UserID)
}

func (s *AuthService) DeleteAccount(email string) error {
	return s.repository.DeleteAccount(email)
}
