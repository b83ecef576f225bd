package services

import (
	"fmt"
	"gin-listme/models"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims 検証済みトークンから取り出す本人情報
type TokenClaims struct {
	UserID uint
	Name   string
	Email  string
}

type ITokenService interface {
	Issue(user *models.User) (string, error)
	Verify(tokenString string) (*TokenClaims, error)
}

// TokenService 署名付きの時限トークンを発行・検証する
// ステートレスで失効リストは持たない: 無効化は有効期限切れのみ
type TokenService struct {
	secretKey []byte
	now       func() time.Time
}

func NewTokenService(secretKey string) ITokenService {
	return &TokenService{
		secretKey: []byte(secretKey),
		now:       time.Now,
	}
}

func (s *TokenService) Issue(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   s.now().Add(time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (s *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	exp, ok := claims["exp"].(float64)
	if !ok || float64(s.now().Unix()) > exp {
		return nil, jwt.ErrTokenExpired
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	name, ok := claims["name"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &TokenClaims{
		UserID: uint(sub),
		Name:   name,
		Email:  email,
	}, nil
}
