package jobs

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"printshop/internal/adapters/out/configfile"
	"printshop/internal/core/domain/model/settings"

	"github.com/robfig/cron/v3"
)

// ConfigReloadJob re-reads system_config.txt and swaps the active
// configuration when the file content changed. Orders already priced keep
// their price; later price queries use the new values.
type ConfigReloadJob struct {
	path     string
	config   *settings.Store
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewConfigReloadJob(path string, config *settings.Store, schedule string, logger *slog.Logger) *ConfigReloadJob {
	return &ConfigReloadJob{
		path:     path,
		config:   config,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "config_reload_job"),
	}
}

// Run reloads once and reports whether the active configuration changed.
// A missing or invalid file leaves the current configuration in place.
func (j *ConfigReloadJob) Run(ctx context.Context) (bool, error) {
	cfg, err := configfile.Load(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		j.logger.DebugContext(ctx, "Config file absent, keeping current configuration", "path", j.path)
		return false, nil
	}
	if err != nil {
		j.logger.WarnContext(ctx, "Config file rejected, keeping current configuration",
			"path", j.path, "error", err)
		return false, err
	}

	if cfg.Equal(j.config.Current()) {
		return false, nil
	}
	if err = j.config.Replace(cfg); err != nil {
		return false, err
	}

	j.logger.InfoContext(ctx, "Configuration reloaded",
		"path", j.path,
		"currency", cfg.Currency,
		"tax_rate", cfg.TaxRate.String(),
		"allow_rush_orders", cfg.AllowRushOrders)
	return true, nil
}

func (j *ConfigReloadJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Config reload job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Config reload job started", "schedule", j.schedule)
	return nil
}

func (j *ConfigReloadJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Config reload job stopped")
}
