package scheduler

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Madhavladani/adeptjs64/pkg/logger"
)

// EventScheduler รัน background job ตาม cron expression
type EventScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	ListJobs() []JobInfo
	IsRunning() bool
}

// JobInfo แสดงใน /health
type JobInfo struct {
	ID       string     `json:"id"`
	CronExpr string     `json:"cron"`
	LastRun  *time.Time `json:"last_run,omitempty"`
	NextRun  time.Time  `json:"next_run"`
}

type jobEntry struct {
	cronExpr string
	job      *gocron.Job
	lastRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*jobEntry
	mu        sync.RWMutex
	running   bool
}

// NewEventScheduler คืน scheduler ที่รัน job แบบ singleton (ไม่ทับกันถ้ารอบก่อนยังไม่จบ)
func NewEventScheduler() EventScheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	return &GocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*jobEntry),
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Scheduler started", "jobs", len(s.jobs))
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.scheduler.Stop()
	s.running = false
	logger.Info("Scheduler stopped")
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %s already exists", id)
	}

	job, err := s.scheduler.Cron(cronExpr).Do(func() {
		started := time.Now()

		s.mu.Lock()
		if entry, ok := s.jobs[id]; ok {
			entry.lastRun = &started
		}
		s.mu.Unlock()

		task()
		logger.Debug("Scheduled job finished", "job_id", id, "duration_ms", time.Since(started).Milliseconds())
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", cronExpr, err)
	}

	s.jobs[id] = &jobEntry{cronExpr: cronExpr, job: job}
	logger.Info("Scheduled job added", "job_id", id, "cron", cronExpr, "next_run", job.NextRun().Format(time.RFC3339))
	return nil
}

func (s *GocronScheduler) ListJobs() []JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]JobInfo, 0, len(s.jobs))
	for id, entry := range s.jobs {
		info := JobInfo{ID: id, CronExpr: entry.cronExpr, NextRun: entry.job.NextRun()}
		if entry.lastRun != nil {
			last := *entry.lastRun
			info.LastRun = &last
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
