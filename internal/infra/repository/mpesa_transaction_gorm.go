package repository

import (
	"context"
	"errors"
	"time"

	"urban/internal/domain/model"
	repo "urban/internal/repository"

	"gorm.io/gorm"
)

type MpesaTransactionGormRepository struct {
	db *gorm.DB
}

func NewMpesaTransactionGormRepository(db *gorm.DB) *MpesaTransactionGormRepository {
	return &MpesaTransactionGormRepository{db: db}
}

func (r *MpesaTransactionGormRepository) Create(ctx context.Context, tx model.MpesaTransaction) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return 0, err
	}
	return tx.ID, nil
}

func (r *MpesaTransactionGormRepository) FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (model.MpesaTransaction, error) {
	var tx model.MpesaTransaction

	err := r.db.WithContext(ctx).
		Where("checkout_request_id = ?", checkoutRequestID).
		First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.MpesaTransaction{}, repo.ErrNotFound
	}
	if err != nil {
		return model.MpesaTransaction{}, err
	}
	return tx, nil
}

func (r *MpesaTransactionGormRepository) UpdateResult(ctx context.Context, id int64, status model.MpesaTransactionStatus, resultCode int, resultDesc string, receipt string) error {
	res := r.db.WithContext(ctx).
		Model(&model.MpesaTransaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"result_code":   resultCode,
			"result_desc":   resultDesc,
			"mpesa_receipt": receipt,
			"updated_at":    time.Now(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
