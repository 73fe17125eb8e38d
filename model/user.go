package model

import (
	"strings"
	"time"
)

type User struct {
	ID uint64 `gorm:"primaryKey"`

	UserName string `gorm:"column:user_name;type:varchar(50);not null;unique"`

	FirstName string `gorm:"column:first_name;type:varchar(80);not null;default:''"`
	LastName  string `gorm:"column:last_name;type:varchar(80);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (User) TableName() string {
	return "user_db"
}

// FullName returns the display name used in API responses.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
