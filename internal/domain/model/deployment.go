package model

import "time"

// Deployment records a release of an app to an environment.
type Deployment struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	AppID       string    `gorm:"type:uuid;not null;index" json:"appId"`
	Environment string    `gorm:"size:50;not null" json:"environment"`
	Version     string    `gorm:"size:100" json:"version"`
	Notes       *string   `gorm:"type:text" json:"notes"`
	DeployedAt  time.Time `gorm:"not null;index" json:"deployedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Deployment) TableName() string {
	return "deployments"
}
