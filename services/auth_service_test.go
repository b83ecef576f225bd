package services

import (
	"gin-listme/constants"
	"gin-listme/models"
	"gin-listme/repositories"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (IAuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// インメモリDBはコネクションごとに独立するため1本に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Credential{}, &models.List{}, &models.Item{}))

	repository := repositories.NewAuthRepository(db)
	return NewAuthService(repository, NewTokenService("test-secret")), db
}

func TestAuthService_Register(t *testing.T) {
	service, db := setupAuthTest(t)

	user, err := service.Register("A", "a@x.com", "password")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "a@x.com", user.Email)

	var credential models.Credential
	require.NoError(t, db.First(&credential, "email = ?", "a@x.com").Error)
	// 平文パスワードは保存されない
	assert.NotEqual(t, "password", credential.PasswordHash)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	service, db := setupAuthTest(t)

	_, err := service.Register("A", "a@x.com", "password")
	require.NoError(t, err)

	_, err = service.Register("B", "a@x.com", "other-password")
	require.Error(t, err)
	assert.Equal(t, constants.ErrEmailExists, err.Error())

	// 重複登録は一切書き込まない
	var userCount, credentialCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Credential{}).Count(&credentialCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), credentialCount)
}

func TestAuthService_Authenticate(t *testing.T) {
	service, _ := setupAuthTest(t)

	_, err := service.Register("A", "a@x.com", "password")
	require.NoError(t, err)

	user, token, err := service.Authenticate("a@x.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, token)

	_, _, err = service.Authenticate("a@x.com", "wrong-password")
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidCredentials, err.Error())

	// 未登録メールもパスワード不一致と同じエラーになる
	_, _, err = service.Authenticate("nobody@x.com", "password")
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidCredentials, err.Error())
}

func TestAuthService_GetUserFromToken(t *testing.T) {
	service, _ := setupAuthTest(t)

	registered, err := service.Register("A", "a@x.com", "password")
	require.NoError(t, err)

	_, token, err := service.Authenticate("a@x.com", "password")
	require.NoError(t, err)

	user, err := service.GetUserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = service.GetUserFromToken("tampered" + token)
	assert.Error(t, err)
}

func TestAuthService_GetUserFromTokenAfterAccountDeleted(t *testing.T) {
	service, _ := setupAuthTest(t)

	_, err := service.Register("A", "a@x.com", "password")
	require.NoError(t, err)

	_, token, err := service.Authenticate("a@x.com", "password")
	require.NoError(t, err)

	require.NoError(t, service.DeleteAccount("a@x.com"))

	// 有効期限内のトークンでも、ユーザーが消えていれば解決に失敗する
	_, err = service.GetUserFromToken(token)
	require.Error(t, err)
	assert.Equal(t, constants.ErrUserNotFound, err.Error())
}
