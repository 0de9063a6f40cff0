package jobs

import (
	"fmt"
	"log/slog"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/settings"
)

// Schedules holds the cron expressions of the background jobs. Six-field
// expressions (with seconds) and descriptors such as "@every 1m" are accepted.
// An empty expression disables the job.
type Schedules struct {
	Autosave     string
	ConfigReload string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	autosaveJob     *AutosaveJob
	configReloadJob *ConfigReloadJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	saveStateHandler *commands.SaveStateCommandHandler,
	configPath string,
	config *settings.Store,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		autosaveJob:     NewAutosaveJob(saveStateHandler, schedules.Autosave, logger),
		configReloadJob: NewConfigReloadJob(configPath, config, schedules.ConfigReload, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.configReloadJob.Start(); err != nil {
		return fmt.Errorf("failed to start config reload job: %w", err)
	}

	if err := jm.autosaveJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.configReloadJob.Stop()
		return fmt.Errorf("failed to start autosave job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.autosaveJob.Stop()
	jm.configReloadJob.Stop()
}
