package repo

import (
	"context"
	"log/slog"

	"github.com/talx-hub/rez-booking/internal/model/merchant"
)

type MerchantRepository struct {
	*DB
}

func NewMerchantRepository(db *DB) *MerchantRepository {
	return &MerchantRepository{db}
}

func (r *MerchantRepository) List(ctx context.Context) ([]merchant.Merchant, error) {
	listLogic := func(_ context.Context, tx *Tx) ([]merchant.Merchant, error) {
		return tx.Merchants(), nil
	}
	return WithReadTX(ctx, r.DB, listLogic)
}

func (r *MerchantRepository) FindByID(ctx context.Context, id int64,
) (merchant.Merchant, error) {
	findLogic := func(_ context.Context, tx *Tx) (merchant.Merchant, error) {
		return tx.Merchant(id)
	}

	m, err := WithReadTX(ctx, r.DB, findLogic)
	if err != nil {
		r.log.LogAttrs(ctx,
			slog.LevelDebug,
			"merchant lookup failed",
			slog.Int64("merchant_id", id),
		)
		return merchant.Merchant{}, err //nolint: wrapcheck // error from wrapped function
	}
	return m, nil
}
