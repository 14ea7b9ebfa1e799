package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ademirsantosjr/todo-minimal-api/internal/middleware"
)

func TestValidateCompletedAt(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 45, 0, time.UTC)
	createdAt := now.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		completedAt time.Time
		wantErr     error
	}{
		{"well in the past", now.Add(-time.Hour), nil},
		{"equal to creation date", createdAt, nil},
		{"just before creation date", createdAt.Add(-time.Second), errCompletedBeforeCreation},
		{"day before creation date", createdAt.Add(-24 * time.Hour), errCompletedBeforeCreation},
		{"exactly now", now, nil},
		{"now truncated to the minute", now.Truncate(time.Minute), nil},
		{"two minutes ahead", now.Add(2 * time.Minute), errCompletedInFuture},
		{"far future", now.Add(48 * time.Hour), errCompletedInFuture},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCompletedAt(tt.completedAt, createdAt, now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestToUTC(t *testing.T) {
	assert.Nil(t, toUTC(nil))

	loc := time.FixedZone("UTC-3", -3*60*60)
	local := time.Date(2026, 8, 29, 9, 30, 0, 0, loc)
	got := toUTC(&local)
	require.NotNil(t, got)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))
}

func TestCallerID(t *testing.T) {
	newCtx := func(v any) echo.Context {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if v != nil {
			c.Set(middleware.CtxUserID, v)
		}
		return c
	}

	t.Run("valid uuid", func(t *testing.T) {
		got, err := callerID(newCtx("a3b8c7d6-1e2f-4a5b-8c9d-0e1f2a3b4c5d"))
		require.NoError(t, err)
		assert.Equal(t, "a3b8c7d6-1e2f-4a5b-8c9d-0e1f2a3b4c5d", got)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := callerID(newCtx(nil))
		assert.Error(t, err)
	})
	t.Run("not a uuid", func(t *testing.T) {
		_, err := callerID(newCtx("12345"))
		assert.Error(t, err)
	})
	t.Run("wrong type", func(t *testing.T) {
		_, err := callerID(newCtx(42))
		assert.Error(t, err)
	})
}
