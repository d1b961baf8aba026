// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a blog post in the Quill application.
// UserID is assigned at creation and never reassigned. Deletes are
// permanent; there is no soft-delete column on purpose.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
