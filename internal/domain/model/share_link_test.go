package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetPermissions(t *testing.T) {
	tests := []struct {
		preset string
		want   Permissions
		ok     bool
	}{
		{PresetViewOnly, Permissions{View: true}, true},
		{PresetCanComment, Permissions{View: true, Comment: true}, true},
		{PresetFullAccess, Permissions{View: true, Comment: true, CreateTasks: true}, true},
		{"admin", Permissions{}, false},
		{"", Permissions{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			got, ok := PresetPermissions(tt.preset)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePermissions_Precedence(t *testing.T) {
	custom := &Permissions{View: false, CreateTasks: true}

	got, err := ResolvePermissions(PresetFullAccess, custom)
	require.NoError(t, err)
	assert.Equal(t, *custom, got, "explicit flags beat the preset")

	got, err = ResolvePermissions(PresetCanComment, nil)
	require.NoError(t, err)
	assert.Equal(t, Permissions{View: true, Comment: true}, got)

	got, err = ResolvePermissions("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultPermissions(), got)

	_, err = ResolvePermissions("superuser", nil)
	assert.Error(t, err)
}

func TestPermissions_Has(t *testing.T) {
	p := Permissions{View: true, CreateTasks: true}

	assert.True(t, p.Has(PermissionView))
	assert.False(t, p.Has(PermissionComment))
	assert.True(t, p.Has(PermissionCreateTasks))
	assert.False(t, p.Has(Permission("admin")))
}

func TestPermissions_ScanStrict(t *testing.T) {
	var p Permissions
	require.NoError(t, p.Scan([]byte(`{"view":true,"comment":false,"create_tasks":true}`)))
	assert.Equal(t, Permissions{View: true, CreateTasks: true}, p)

	// A stored document with an extra flag must not widen silently.
	err := p.Scan([]byte(`{"view":true,"admin":true}`))
	assert.Error(t, err)

	err = p.Scan(42)
	assert.Error(t, err)
}

func TestPermissions_ValueScanRoundTrip(t *testing.T) {
	original := Permissions{View: true, Comment: true}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded Permissions
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestTaskStatusStateMachine(t *testing.T) {
	assert.True(t, TaskStatusPending.CanTransitionTo(TaskStatusInProgress))
	assert.True(t, TaskStatusPending.CanTransitionTo(TaskStatusRejected))

	assert.False(t, TaskStatusPending.CanTransitionTo(TaskStatusCompleted))
	assert.False(t, TaskStatusInProgress.CanTransitionTo(TaskStatusCompleted))
	assert.False(t, TaskStatusInProgress.CanTransitionTo(TaskStatusRejected))
	assert.False(t, TaskStatusCompleted.CanTransitionTo(TaskStatusInProgress))
	assert.False(t, TaskStatusRejected.CanTransitionTo(TaskStatusPending))

	assert.True(t, TaskStatusCompleted.Terminal())
	assert.True(t, TaskStatusRejected.Terminal())
	assert.False(t, TaskStatusPending.Terminal())
	assert.False(t, TaskStatusInProgress.Terminal())
}
