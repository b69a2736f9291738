package constants

// JobStatus is the canonical status for an export job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued     JobStatus = "QUEUED"     // waiting in the priority queue (or for a retry delay)
	JobStatusProcessing JobStatus = "PROCESSING" // assigned to a worker, export call in flight
	JobStatusComplete   JobStatus = "COMPLETE"   // terminal success
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure (retries exhausted or not retryable)
	JobStatusCancelled  JobStatus = "CANCELLED"  // terminal, cancelled by the caller
)

// Terminal reports whether s is a final state.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusComplete, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// JobStatuses holds the allowed values for the status field in ExportJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusProcessing),
	string(JobStatusComplete),
	string(JobStatusFailed),
	string(JobStatusCancelled),
}

// WorkerStatus is the status of a worker pool slot.
type WorkerStatus string

const (
	WorkerStatusIdle WorkerStatus = "IDLE"
	WorkerStatusBusy WorkerStatus = "BUSY"
)
