package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventScheduler_AddAndListJobs(t *testing.T) {
	s := NewEventScheduler()

	require.NoError(t, s.AddJob("menu-reconcile", "*/30 * * * *", func() {}))
	require.NoError(t, s.AddJob("cache-warm", "0 * * * *", func() {}))

	err := s.AddJob("menu-reconcile", "*/5 * * * *", func() {})
	assert.Error(t, err, "duplicate id")

	err = s.AddJob("broken", "not a cron", func() {})
	assert.Error(t, err)

	jobs := s.ListJobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, "cache-warm", jobs[0].ID)
	assert.Equal(t, "menu-reconcile", jobs[1].ID)
	assert.Equal(t, "*/30 * * * *", jobs[1].CronExpr)
	assert.Nil(t, jobs[1].LastRun)
}

func TestEventScheduler_StartStop(t *testing.T) {
	s := NewEventScheduler()
	assert.False(t, s.IsRunning())

	s.Start()
	assert.True(t, s.IsRunning())

	s.Stop()
	assert.False(t, s.IsRunning())
}
