package model

import (
	"time"
)

const (
	RoleUser      = "user"
	RoleCounselor = "counselor"
)

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `gorm:"not null;uniqueIndex" json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Password  string    `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "user"
}
