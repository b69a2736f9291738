package scheduler

import (
	"time"

	"github.com/calebmartins/exportq/internal/common"
)

const (
	defaultMaxConcurrent  = 3
	defaultPriorityLevels = 3
	defaultMaxQueueSize   = 100

	// How long the dispatch loop waits before re-checking a vetoed resource
	// probe instead of busy-polling.
	resourceRecheckDelay = 5 * time.Second
)

// Config is the process-wide scheduler configuration, fixed at construction.
type Config struct {
	MaxConcurrent  int
	PriorityLevels int
	Retry          RetryPolicy
	Limits         ResourceLimits
}

// RetryPolicy controls requeue-vs-fail decisions on engine errors.
type RetryPolicy struct {
	MaxRetries         int
	BaseDelay          time.Duration
	ExponentialBackoff bool
	// RetryableErrorCodes are matched as substrings of the error text.
	RetryableErrorCodes []string
}

// ResourceLimits holds admission-control and queue ceilings.
type ResourceLimits struct {
	MaxMemoryMB  int
	MaxQueueSize int
	// MaxProcessingTime, when positive, races each engine call against a
	// deadline on its context.
	MaxProcessingTime  time.Duration
	PauseOnLimitBreach bool
}

func (c Config) withDefaults() Config {
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = defaultMaxConcurrent
	}
	if c.PriorityLevels <= 0 {
		c.PriorityLevels = defaultPriorityLevels
	}
	if c.Limits.MaxQueueSize <= 0 {
		c.Limits.MaxQueueSize = defaultMaxQueueSize
	}
	if c.Retry.MaxRetries < 0 {
		c.Retry.MaxRetries = 0
	}
	if c.Retry.BaseDelay <= 0 {
		c.Retry.BaseDelay = time.Second
	}
	return c
}

// ConfigFromCommon maps the env-driven app config onto a scheduler Config.
func ConfigFromCommon(sc common.SchedulerConfig) Config {
	return Config{
		MaxConcurrent:  sc.MaxConcurrent,
		PriorityLevels: sc.PriorityLevels,
		Retry: RetryPolicy{
			MaxRetries:          sc.Retry.MaxRetries,
			BaseDelay:           sc.Retry.BaseDelay,
			ExponentialBackoff:  sc.Retry.ExponentialBackoff,
			RetryableErrorCodes: sc.Retry.RetryableErrorCodes,
		},
		Limits: ResourceLimits{
			MaxMemoryMB:        sc.Limits.MaxMemoryMB,
			MaxQueueSize:       sc.Limits.MaxQueueSize,
			MaxProcessingTime:  sc.Limits.MaxProcessingTime,
			PauseOnLimitBreach: sc.Limits.PauseOnLimitBreach,
		},
	}
}
