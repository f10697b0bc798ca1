package commands

import (
	"context"
)

// LockShippedRecordsCommandHandler runs the lock sweep in one transaction.
type LockShippedRecordsCommandHandler struct {
	uowFactory LoadingRecordUoWFactory
}

func NewLockShippedRecordsCommandHandler(uowFactory LoadingRecordUoWFactory) LockShippedRecordsCommandHandler {
	return LockShippedRecordsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many records were locked.
func (h *LockShippedRecordsCommandHandler) Handle(ctx context.Context, cmd LockShippedRecordsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	locked, err := uow.LoadingRecordRepository().LockAllShipped(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return locked, nil
}
