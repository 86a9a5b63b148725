package model

import (
	"time"
)

// Catalog rows. Full catalog administration lives outside this core; these
// models exist so attempts can join out to display titles and so foreign
// keys have somewhere to point.

type Subject struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `json:"title" gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Test struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SubjectID uint      `json:"subject_id" gorm:"not null;index"`
	Subject   Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Title     string    `json:"title" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	TestID    uint      `json:"test_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
