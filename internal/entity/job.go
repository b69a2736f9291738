package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/calebmartins/exportq/constants"
)

// ExportJob represents one unit of export work tracked by the scheduler.
// Payload is opaque to the scheduler and handed to the export engine untouched.
type ExportJob struct {
	ID          uuid.UUID           `json:"id"`
	Payload     json.RawMessage     `json:"payload"`
	Priority    int                 `json:"priority"`
	Status      constants.JobStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	StartedAt   *time.Time          `json:"started_at,omitempty"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	RetryCount  int                 `json:"retry_count"`
	// LastError keeps the most recent failure even after a successful retry,
	// for diagnostics.
	LastError *string         `json:"last_error,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
}

// WorkerState is a read-only snapshot of one worker pool slot.
type WorkerState struct {
	ID               int                    `json:"id"`
	Status           constants.WorkerStatus `json:"status"`
	CurrentJob       *uuid.UUID             `json:"current_job,omitempty"`
	JobsProcessed    int                    `json:"jobs_processed"`
	LastActivityTime time.Time              `json:"last_activity_time"`
}

// QueueStatus aggregates the live state of the scheduler for status queries.
type QueueStatus struct {
	TotalJobs      int `json:"total_jobs"`
	QueuedJobs     int `json:"queued_jobs"`
	ProcessingJobs int `json:"processing_jobs"`
	CompletedJobs  int `json:"completed_jobs"`
	FailedJobs     int `json:"failed_jobs"`
	CancelledJobs  int `json:"cancelled_jobs"`

	// Averages are zero until at least one job has started/completed.
	AverageWaitTime       time.Duration `json:"average_wait_time"`
	AverageProcessingTime time.Duration `json:"average_processing_time"`
	EstimatedTimeLeft     time.Duration `json:"estimated_time_remaining"`

	Paused bool `json:"paused"`
}
