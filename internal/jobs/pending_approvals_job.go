package jobs

import (
	"context"
	"log/slog"

	"tripmanager/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingApprovalsJob reminds managers about orders waiting for a decision.
// Runs hourly and logs the number of orders still in the requested status.
type PendingApprovalsJob struct {
	handler queries.CountPendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingApprovalsJob creates a new job for pending approval reminders.
// Uses CountPendingOrdersQueryHandler to count requested orders every hour.
func NewPendingApprovalsJob(handler queries.CountPendingOrdersQueryHandler, logger *slog.Logger) *PendingApprovalsJob {
	return &PendingApprovalsJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_approvals_job"),
	}
}

// Start begins the pending approvals job to run at the top of every hour.
func (j *PendingApprovalsJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewCountPendingOrdersQuery()

		count, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending approvals job failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.InfoContext(ctx, "Orders awaiting manager approval", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending approvals job started (running hourly)")
	return nil
}

// Stop stops the pending approvals job.
func (j *PendingApprovalsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending approvals job stopped")
}
