package repository

import (
	"context"

	"urban/internal/domain/model"
)

type MpesaTransactionRepository interface {
	Create(ctx context.Context, tx model.MpesaTransaction) (int64, error)
	FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (model.MpesaTransaction, error)
	// UpdateResult records the callback outcome for the prompt.
	UpdateResult(ctx context.Context, id int64, status model.MpesaTransactionStatus, resultCode int, resultDesc string, receipt string) error
}
