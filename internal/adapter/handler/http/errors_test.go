package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainerrors "github.com/buildloghq/buildlog-backend/internal/domain/errors"
)

func TestRespondError_StatusContract(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"malformed code", domainerrors.ErrMalformedCode, http.StatusBadRequest, "MALFORMED_CODE"},
		{"link not found", domainerrors.ErrLinkNotFound, http.StatusNotFound, "NOT_FOUND_OR_EXPIRED"},
		{"permission denied", domainerrors.ErrPermissionDenied, http.StatusForbidden, "PERMISSION_DENIED"},
		{"forbidden", domainerrors.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"app not found", domainerrors.ErrAppNotFound, http.StatusNotFound, "APP_NOT_FOUND"},
		{"task not found", domainerrors.ErrTaskNotFound, http.StatusNotFound, "TASK_NOT_FOUND"},
		{"already completed", domainerrors.ErrTaskAlreadyCompleted, http.StatusConflict, "ALREADY_COMPLETED"},
		{"invalid transition", domainerrors.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION"},
		{"slug taken", domainerrors.ErrSlugTaken, http.StatusConflict, "SLUG_TAKEN"},
		{"bad credentials", domainerrors.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"unknown error", errors.New("pg down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, respondError(c, zap.NewNop(), tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body["code"])
		})
	}
}

func TestRespondError_WrappedSentinelStillMaps(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	wrapped := errors.Join(errors.New("context"), domainerrors.ErrInvalidTransition)
	require.NoError(t, respondError(c, zap.NewNop(), wrapped))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRespondError_InternalDetailNotLeaked(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, respondError(c, zap.NewNop(), errors.New("dial tcp 10.0.0.5:5432: connection refused")))
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
