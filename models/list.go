package models

import "time"

type List struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title      string `gorm:"not null"`
	OwnerEmail string `gorm:"not null;index"`
	Items      []Item `gorm:"foreignKey:ListID"`
}

// OwnedBy repositories.Ownedを満たす
func (l List) OwnedBy() string {
	return l.OwnerEmail
}

type Item struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ListID   uint   `gorm:"not null;index"`
	Title    string `gorm:"not null"`
	Complete bool   `gorm:"not null"`
}
