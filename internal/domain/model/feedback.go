package model

import "time"

// Feedback is a client message left through a share link. Rows are keyed by
// the share code and removed by the database cascade when the link is
// revoked; they are immutable after creation.
type Feedback struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	ShareCode  string    `gorm:"size:8;not null;index" json:"shareCode"`
	ClientName *string   `gorm:"size:255" json:"clientName"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Feedback) TableName() string {
	return "feedbacks"
}
