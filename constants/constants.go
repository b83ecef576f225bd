package constants

// エラーメッセージ
const (
	ErrEmailExists        = "User already exists"
	ErrInvalidCredentials = "Invalid credentials"
	ErrUserNotFound       = "User not found"
	ErrListNotFound       = "List not found"
	ErrItemNotFound       = "Item not found"
	ErrMissingTitle       = "Missing title"
	ErrUnexpected         = "Unexpected error"
	ErrInvalidID          = "Invalid id"
	ErrInvalidInput       = "Invalid input"
)
