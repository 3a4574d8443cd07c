package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// UpdatePeriod is the reporting window an update covers.
type UpdatePeriod string

const (
	PeriodDay   UpdatePeriod = "DAY"
	PeriodWeek  UpdatePeriod = "WEEK"
	PeriodMonth UpdatePeriod = "MONTH"
)

// StringList stores a list of strings as a JSONB column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported string list column type %T", src)
	}
	return json.Unmarshal(data, l)
}

// Update is a periodic progress report on an app.
type Update struct {
	ID        string       `gorm:"primaryKey;type:uuid" json:"id"`
	AppID     string       `gorm:"type:uuid;not null;index" json:"appId"`
	Progress  int          `gorm:"not null;default:0" json:"progress"`
	Summary   string       `gorm:"type:text;not null" json:"summary"`
	Blockers  *string      `gorm:"type:text" json:"blockers"`
	Tags      StringList   `gorm:"type:jsonb" json:"tags"`
	Period    UpdatePeriod `gorm:"size:10;not null;default:'WEEK'" json:"period"`
	Date      time.Time    `gorm:"not null;index" json:"date"`
	CreatedAt time.Time    `json:"createdAt"`
}

// TableName specifies the table name for GORM.
func (Update) TableName() string {
	return "updates"
}
