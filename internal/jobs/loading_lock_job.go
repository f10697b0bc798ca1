package jobs

import (
	"context"
	"time"

	"shipment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	DefaultLoadingLockSchedule = "0 * * * * *"

	loadingLockTimeout = 30 * time.Second
)

// ShippedRecordsLocker is satisfied by commands.LockShippedRecordsCommandHandler.
type ShippedRecordsLocker interface {
	Handle(ctx context.Context, cmd commands.LockShippedRecordsCommand) (int64, error)
}

// LoadingLockJob locks loading records whose order already left the origin
// port. Transitions made through the engine lock in the same transaction;
// the sweep covers orders moved by other writers of the store.
type LoadingLockJob struct {
	handler  ShippedRecordsLocker
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewLoadingLockJob creates the sweep. An empty schedule means every minute.
func NewLoadingLockJob(handler ShippedRecordsLocker, schedule string, logger *zap.Logger) *LoadingLockJob {
	if schedule == "" {
		schedule = DefaultLoadingLockSchedule
	}
	return &LoadingLockJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   logger.With(zap.String("component", "loading_lock_job")),
	}
}

// Start registers the sweep and starts the scheduler.
func (j *LoadingLockJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("loading lock job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop stops the scheduler and waits for a running sweep.
func (j *LoadingLockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("loading lock job stopped")
}

func (j *LoadingLockJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), loadingLockTimeout)
	defer cancel()

	if _, err := j.RunOnce(ctx); err != nil {
		j.logger.Error("loading lock job failed", zap.Error(err))
	}
}

// RunOnce performs a single sweep and returns the number of records locked.
func (j *LoadingLockJob) RunOnce(ctx context.Context) (int64, error) {
	locked, err := j.handler.Handle(ctx, commands.NewLockShippedRecordsCommand())
	if err != nil {
		return 0, err
	}
	if locked > 0 {
		j.logger.Info("loading records locked", zap.Int64("count", locked))
	}
	return locked, nil
}
