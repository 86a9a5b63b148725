package model

import (
	"time"
)

// Role identifiers carried in token claims.
const (
	RoleStudent = 1
	RoleTeacher = 2
	RoleAdmin   = 3
)

type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Email          string    `json:"email" gorm:"not null;uniqueIndex"`
	Name           string    `json:"name" gorm:"not null"`
	PasswordDigest string    `json:"-" gorm:"not null"`
	RoleID         int       `json:"role_id" gorm:"not null;default:1"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
