package jobs

import (
	"fmt"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	loadingLockJob *LoadingLockJob
}

// NewJobManager creates the job manager with every scheduled job.
func NewJobManager(
	lockShippedRecordsHandler ShippedRecordsLocker,
	loadingLockSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		loadingLockJob: NewLoadingLockJob(lockShippedRecordsHandler, loadingLockSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.loadingLockJob.Start(); err != nil {
		return fmt.Errorf("failed to start loading lock job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.loadingLockJob.Stop()
}
