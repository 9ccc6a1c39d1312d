package character

import (
	"context"

	"github.com/osse101/RoleplayBot_Go/internal/logger"
)

// FlushJob saves dirty characters from the worker pool.
type FlushJob struct {
	Service Service
}

// Process implements worker.Job.
func (j FlushJob) Process(ctx context.Context) error {
	if err := j.Service.Flush(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgFlushFailed, "error", err)
		return err
	}
	return nil
}
