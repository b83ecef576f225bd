package models

import "time"

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name  string `gorm:"not null"`
	Email string `gorm:"not null;unique"`
}

// Credential はemailでUserと1対1に対応する認証情報
// 登録トランザクションで同時に作成され、アカウント削除トランザクションで同時に削除される
// ハッシュはこのレコードの外に出さない
type Credential struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Email        string `gorm:"not null;unique"`
	PasswordHash string `gorm:"not null"`
}
