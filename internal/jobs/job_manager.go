package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stateEvictionJob      *StateEvictionJob
	labelStatusRefreshJob *LabelStatusRefreshJob
}

// NewJobManager creates a job manager for the given jobs.
func NewJobManager(
	stateEvictionJob *StateEvictionJob,
	labelStatusRefreshJob *LabelStatusRefreshJob,
) *JobManager {
	return &JobManager{
		stateEvictionJob:      stateEvictionJob,
		labelStatusRefreshJob: labelStatusRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stateEvictionJob.Start(); err != nil {
		return fmt.Errorf("failed to start state eviction job: %w", err)
	}

	if err := jm.labelStatusRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stateEvictionJob.Stop()
		return fmt.Errorf("failed to start label status refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.labelStatusRefreshJob.Stop()
	jm.stateEvictionJob.Stop()
}
