package services

import (
	stderrors "errors"
	"time"

	"github.com/qassab/loyalty-core/internal/app/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// maxStorageAttempts bounds the internal retry of a whole transaction on
// transient storage failures. Validation failures, insufficient balance and
// duplicate keys are never retried here.
const maxStorageAttempts = 3

const storageRetryBackoff = 50 * time.Millisecond

// isRetryableStorageError classifies an error from a storage round trip.
// Anything the core produced itself (AppError) carries intent and must
// surface unchanged; gorm sentinel errors describe data conditions, not
// infrastructure failures.
func isRetryableStorageError(err error) bool {
	if err == nil {
		return false
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == errors.CodeStorage
	}

	if stderrors.Is(err, gorm.ErrRecordNotFound) || stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return false
	}

	return true
}

// withStorageRetry runs fn, retrying the whole closure on transient storage
// failures. fn must be safe to re-run from the top: callers wrap a complete
// transaction, never a partial sub-step.
func withStorageRetry(fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxStorageAttempts; attempt++ {
		err = fn()
		if err == nil || !isRetryableStorageError(err) {
			return err
		}
		if attempt < maxStorageAttempts {
			logrus.Warnf("transient storage failure (attempt %d/%d): %v", attempt, maxStorageAttempts, err)
			time.Sleep(storageRetryBackoff)
		}
	}
	return err
}
