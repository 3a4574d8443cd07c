package model

import "time"

// User is the owner account. The service runs single-owner; the row is
// created by the bootstrap step at startup, never lazily inside a request.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name      string    `gorm:"size:255" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
