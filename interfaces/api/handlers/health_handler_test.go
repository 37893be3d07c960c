package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Madhavladani/adeptjs64/pkg/scheduler"
)

func TestHealthHandler(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]HealthCheck
		wantStatus int
		wantState  string
	}{
		{"all up", map[string]HealthCheck{"database": ok, "redis": ok}, http.StatusOK, "ok"},
		{"redis down", map[string]HealthCheck{"database": ok, "redis": down}, http.StatusServiceUnavailable, "degraded"},
		{"no checks", nil, http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler(tt.checks, nil).Check)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out struct {
				Status       string            `json:"status"`
				Dependencies map[string]string `json:"dependencies"`
			}
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tt.wantState, out.Status)
			assert.Len(t, out.Dependencies, len(tt.checks))
		})
	}
}

func TestHealthHandler_ListsScheduledJobs(t *testing.T) {
	next := time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC)
	jobs := func() []scheduler.JobInfo {
		return []scheduler.JobInfo{{ID: "menu-reconcile", CronExpr: "*/30 * * * *", NextRun: next}}
	}

	app := fiber.New()
	app.Get("/health", NewHealthHandler(nil, jobs).Check)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Jobs []scheduler.JobInfo `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Jobs, 1)
	assert.Equal(t, "menu-reconcile", out.Jobs[0].ID)
	assert.Equal(t, "*/30 * * * *", out.Jobs[0].CronExpr)
	assert.True(t, next.Equal(out.Jobs[0].NextRun))
	assert.Nil(t, out.Jobs[0].LastRun)
}
