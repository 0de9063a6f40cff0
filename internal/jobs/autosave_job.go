package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AutosaveJob periodically writes the order registry and print queue to disk.
type AutosaveJob struct {
	handler  *commands.SaveStateCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAutosaveJob creates a job that runs handler on schedule. An empty
// schedule disables the job.
func NewAutosaveJob(handler *commands.SaveStateCommandHandler, schedule string, logger *slog.Logger) *AutosaveJob {
	return &AutosaveJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "autosave_job"),
	}
}

// Run saves once.
func (j *AutosaveJob) Run(ctx context.Context) (ports.SaveSummary, error) {
	summary, err := j.handler.Handle(ctx, commands.NewSaveStateCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Autosave failed", "error", err)
		return ports.SaveSummary{}, err
	}

	j.logger.DebugContext(ctx, "State saved",
		"snapshot", summary.SnapshotID,
		"orders", summary.Orders,
		"queued", summary.Queued)
	return summary, nil
}

func (j *AutosaveJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Autosave job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Autosave job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running save to finish.
func (j *AutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Autosave job stopped")
}
