package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/calebmartins/exportq/internal/audit"
)

// HistorySink mirrors scheduler lifecycle events into the export_job table.
// It satisfies audit.Sink, so persistence failures are logged and swallowed;
// the scheduler never stalls on the database.
type HistorySink struct {
	repo    ExportJobRepository
	timeout time.Duration
	log     *slog.Logger
}

func NewHistorySink(repo ExportJobRepository, log *slog.Logger) *HistorySink {
	if log == nil {
		log = slog.Default()
	}
	return &HistorySink{repo: repo, timeout: 5 * time.Second, log: log}
}

func (s *HistorySink) Record(ctx context.Context, ev audit.Event) {
	// The event's context may already be cancelled (shutdown, job timeout);
	// the write still has to land.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	var err error
	switch ev.Type {
	case audit.EventJobSubmitted:
		_, err = s.repo.Start(ctx, ev.JobID, ev.Priority, ev.Payload)
	case audit.EventJobStarted:
		err = s.repo.MarkStarted(ctx, ev.JobID)
	case audit.EventJobRetried:
		err = s.repo.RecordRetry(ctx, ev.JobID, ev.RetryCount, ev.Detail)
	case audit.EventJobCompleted:
		err = s.repo.FinishSuccess(ctx, ev.JobID, ev.Result, ev.RetryCount)
	case audit.EventJobFailed:
		err = s.repo.FinishFailure(ctx, ev.JobID, ev.Detail, ev.RetryCount)
	case audit.EventJobCancelled:
		err = s.repo.MarkCancelled(ctx, ev.JobID)
	default:
		// queue-level events have no history row
		return
	}
	if err != nil {
		s.log.Warn("history sink write failed", "event", string(ev.Type), "job_id", ev.JobID, "err", err)
	}
}
