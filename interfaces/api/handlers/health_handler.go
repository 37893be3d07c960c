package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Madhavladani/adeptjs64/pkg/scheduler"
)

// HealthCheck ping dependency หนึ่งตัว
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
	jobs   func() []scheduler.JobInfo
}

// jobs เป็น nil ได้
func NewHealthHandler(checks map[string]HealthCheck, jobs func() []scheduler.JobInfo) *HealthHandler {
	return &HealthHandler{checks: checks, jobs: jobs}
}

// Check ตอบ 503 ถ้ามี dependency ตัวใดล่ม
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()

	status := "ok"
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = err.Error()
			status = "degraded"
			continue
		}
		deps[name] = "ok"
	}

	jobs := []scheduler.JobInfo{}
	if h.jobs != nil {
		jobs = append(jobs, h.jobs()...)
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(fiber.Map{
		"status":       status,
		"dependencies": deps,
		"jobs":         jobs,
		"time":         time.Now().UTC(),
	})
}
