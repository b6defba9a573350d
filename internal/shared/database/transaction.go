package database

import (
	"context"
	"errors"

	sharedError "github.com/uknowme/member-server/internal/shared/error"
	"github.com/uknowme/member-server/internal/shared/logger"

	"gorm.io/gorm"
)

var ErrNilTransactionFunc = errors.New("database: transaction function is nil")

// WithTransaction runs fn in one transaction bound to ctx. Returning an
// error from fn rolls back; the error is returned unchanged so domain
// errors keep their kind.
//
// Usage:
//
//	err := WithTransaction(ctx, db, func(tx *gorm.DB) error {
//	    if err := repo.Create(ctx, tx, member); err != nil {
//	        return err // rollback
//	    }
//	    return nil // commit
//	})
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	if fn == nil {
		return ErrNilTransactionFunc
	}

	if ctx == nil {
		ctx = context.Background()
	}

	err := db.WithContext(ctx).Transaction(fn)
	if err != nil && sharedError.KindOf(err) == sharedError.KindUnknown {
		// domain rejections are logged by the services; only unexpected failures here
		logger.FromContext(ctx).Debug("transaction rolled back", "error", err)
	}
	return err
}
