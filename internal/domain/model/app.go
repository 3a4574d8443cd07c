package model

import (
	"database/sql/driver"
	"time"
)

// AppStatus tracks where an app is in its lifecycle.
type AppStatus string

const (
	AppStatusIdea      AppStatus = "IDEA"
	AppStatusPlanning  AppStatus = "PLANNING"
	AppStatusBuilding  AppStatus = "BUILDING"
	AppStatusTesting   AppStatus = "TESTING"
	AppStatusDeploying AppStatus = "DEPLOYING"
	AppStatusLive      AppStatus = "LIVE"
	AppStatusPaused    AppStatus = "PAUSED"
	AppStatusArchived  AppStatus = "ARCHIVED"
)

// AppStatuses lists every valid status, in lifecycle order.
var AppStatuses = []AppStatus{
	AppStatusIdea,
	AppStatusPlanning,
	AppStatusBuilding,
	AppStatusTesting,
	AppStatusDeploying,
	AppStatusLive,
	AppStatusPaused,
	AppStatusArchived,
}

// Valid reports whether the status is one of the known values.
func (s AppStatus) Valid() bool {
	for _, known := range AppStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Scan implements sql.Scanner.
func (s *AppStatus) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*s = AppStatus(v)
	case []byte:
		*s = AppStatus(v)
	}
	return nil
}

// Value implements driver.Valuer.
func (s AppStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// App is a tracked software project owned by a single user.
type App struct {
	ID             string       `gorm:"primaryKey;type:uuid" json:"id"`
	Name           string       `gorm:"size:255;not null" json:"name"`
	Slug           string       `gorm:"uniqueIndex;size:64;not null" json:"slug"`
	Description    *string      `gorm:"type:text" json:"description"`
	ProposedDomain *string      `gorm:"size:255" json:"proposedDomain"`
	GithubURL      *string      `gorm:"size:255" json:"githubUrl"`
	Status         AppStatus    `gorm:"size:20;not null;default:'PLANNING'" json:"status"`
	Client         *string      `gorm:"size:255" json:"client,omitempty"`
	Platform       *string      `gorm:"size:255" json:"platform,omitempty"`
	OwnerID        string       `gorm:"type:uuid;not null;index" json:"ownerId"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
	Updates        []Update     `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"updates,omitempty"`
	Deployments    []Deployment `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"deployments,omitempty"`
	ShareLinks     []ShareLink  `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"shareLinks,omitempty"`
}

// TableName specifies the table name for GORM.
func (App) TableName() string {
	return "apps"
}
