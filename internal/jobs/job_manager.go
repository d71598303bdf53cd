package jobs

import (
	"fmt"
	"log/slog"

	"tripmanager/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingApprovalsJob *PendingApprovalsJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	countPendingOrdersHandler queries.CountPendingOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingApprovalsJob: NewPendingApprovalsJob(countPendingOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingApprovalsJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending approvals job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingApprovalsJob.Stop()
}
