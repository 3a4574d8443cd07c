package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Permissions is the closed capability set carried by a share link. Exactly
// three independent flags exist; unknown fields are rejected when reading
// from storage so a malformed row can never widen a capability.
type Permissions struct {
	View        bool `json:"view"`
	Comment     bool `json:"comment"`
	CreateTasks bool `json:"create_tasks"`
}

// Permission names a single flag required by a gated operation.
type Permission string

const (
	PermissionView        Permission = "view"
	PermissionComment     Permission = "comment"
	PermissionCreateTasks Permission = "create_tasks"
)

// Has reports whether the given flag is set.
func (p Permissions) Has(perm Permission) bool {
	switch perm {
	case PermissionView:
		return p.View
	case PermissionComment:
		return p.Comment
	case PermissionCreateTasks:
		return p.CreateTasks
	default:
		return false
	}
}

// Value implements driver.Valuer so Permissions persists as JSONB.
func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner. The decode is strict: any unknown field in
// the stored document is an error, not a silently dropped key.
func (p *Permissions) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported permissions column type %T", src)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var decoded Permissions
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("invalid permissions document: %w", err)
	}
	*p = decoded
	return nil
}

// DefaultPermissions is applied when a creation request carries neither a
// preset nor explicit flags.
func DefaultPermissions() Permissions {
	return Permissions{View: true}
}

// Named permission presets offered as creation shortcuts.
const (
	PresetViewOnly   = "view_only"
	PresetCanComment = "can_comment"
	PresetFullAccess = "full_access"
)

// PresetPermissions returns the permission set for a named preset.
func PresetPermissions(preset string) (Permissions, bool) {
	switch preset {
	case PresetViewOnly:
		return Permissions{View: true}, true
	case PresetCanComment:
		return Permissions{View: true, Comment: true}, true
	case PresetFullAccess:
		return Permissions{View: true, Comment: true, CreateTasks: true}, true
	default:
		return Permissions{}, false
	}
}

// ResolvePermissions applies the documented precedence for link creation:
// explicit custom flags win over a preset, a preset wins over the default.
func ResolvePermissions(preset string, custom *Permissions) (Permissions, error) {
	if custom != nil {
		return *custom, nil
	}
	if preset != "" {
		perms, ok := PresetPermissions(preset)
		if !ok {
			return Permissions{}, fmt.Errorf("unknown permission preset %q", preset)
		}
		return perms, nil
	}
	return DefaultPermissions(), nil
}

// ShareLink grants scoped, revocable access to one app. The code is the
// client-facing capability; it is unique and immutable once created.
type ShareLink struct {
	ID             string      `gorm:"primaryKey;type:uuid" json:"id"`
	Code           string      `gorm:"uniqueIndex;size:8;not null" json:"code"`
	AppID          string      `gorm:"type:uuid;not null;index" json:"appId"`
	App            *App        `gorm:"foreignKey:AppID;constraint:OnDelete:CASCADE" json:"app,omitempty"`
	Permissions    Permissions `gorm:"type:jsonb;not null" json:"permissions"`
	IsActive       bool        `gorm:"not null;default:true" json:"isActive"`
	ExpiresAt      *time.Time  `json:"expiresAt"`
	CreatedAt      time.Time   `json:"createdAt"`
	LastAccessedAt *time.Time  `json:"lastAccessedAt"`
	AccessCount    int64       `gorm:"not null;default:0" json:"accessCount"`
}

// TableName specifies the table name for GORM.
func (ShareLink) TableName() string {
	return "share_links"
}
