package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"evalhub/internal/domain/campaign"
	"evalhub/internal/domain/reminder"
	"evalhub/internal/platform/config"
	"evalhub/internal/platform/metrics"
)

const JobReminderSweep = "reminder_sweep"

// Service runs background work on a single queue worker. The only scheduled
// job is the reminder sweep: evaluators with open assignments on campaigns
// ending soon get a webhook nudge.
type Service struct {
	DB        *pgxpool.Pool
	Cfg       config.Config
	Campaigns *campaign.Service
	Reminders reminder.Transport
	Metrics   *metrics.Collector
	queue     chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, campaigns *campaign.Service, reminders reminder.Transport, collector *metrics.Collector) *Service {
	return &Service{
		DB:        db,
		Cfg:       cfg,
		Campaigns: campaigns,
		Reminders: reminders,
		Metrics:   collector,
		queue:     make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.ReminderSweepInterval > 0 {
		go s.scheduleReminderSweep(ctx, s.Cfg.ReminderSweepInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1,$2)
    RETURNING id
  `, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details_json = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return details, err
}

func (s *Service) scheduleReminderSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Enqueue(JobReminderSweep, s.sweepReminders)
		}
	}
}

func (s *Service) sweepReminders(ctx context.Context) (any, error) {
	evaluators, err := s.Campaigns.LaggingEvaluators(ctx, s.Cfg.ReminderSweepDays)
	if err != nil {
		return nil, err
	}
	if len(evaluators) == 0 {
		return map[string]any{"participants": 0}, nil
	}

	state := s.Reminders.Notify(ctx, evaluators)
	if s.Metrics != nil {
		s.Metrics.RecordReminder(state == reminder.SendSuccess)
	}
	return map[string]any{
		"participants": len(evaluators),
		"sendState":    state,
	}, nil
}
