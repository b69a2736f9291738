package scheduler

import (
	"strings"
	"time"
)

// retryCoordinator decides, on engine failure, whether a job is requeued
// after a delay or terminally failed.
type retryCoordinator struct {
	policy RetryPolicy
}

// retryable classifies an error by checking whether its text contains any of
// the configured retryable codes.
func (rc *retryCoordinator) retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, code := range rc.policy.RetryableErrorCodes {
		if code != "" && strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

// shouldRetry reports whether a job with the given consumed retry count gets
// another attempt for this error.
func (rc *retryCoordinator) shouldRetry(err error, retryCount int) bool {
	return retryCount < rc.policy.MaxRetries && rc.retryable(err)
}

// delay computes the wait before requeueing the retryCount-th retry
// (1-based): baseDelay * 2^(retryCount-1) with exponential backoff, flat
// baseDelay otherwise.
func (rc *retryCoordinator) delay(retryCount int) time.Duration {
	if !rc.policy.ExponentialBackoff {
		return rc.policy.BaseDelay
	}
	if retryCount < 1 {
		retryCount = 1
	}
	return rc.policy.BaseDelay * time.Duration(1<<(retryCount-1))
}
