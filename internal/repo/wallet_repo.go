package repo

import (
	"context"

	"github.com/talx-hub/rez-booking/internal/model/wallet"
)

type WalletRepository struct {
	*DB
}

func NewWalletRepository(db *DB) *WalletRepository {
	return &WalletRepository{db}
}

// FindByUserID returns the user's wallet or an empty one. The empty wallet is not stored.
func (r *WalletRepository) FindByUserID(ctx context.Context, userID int64) (wallet.Wallet, error) {
	findLogic := func(_ context.Context, tx *Tx) (wallet.Wallet, error) {
		if w, ok := tx.Wallet(userID); ok {
			return w, nil
		}
		return wallet.Empty(userID), nil
	}
	return WithReadTX(ctx, r.DB, findLogic)
}

func (r *WalletRepository) Apply(ctx context.Context, userID int64, t wallet.Transaction,
) (wallet.Wallet, error) {
	applyLogic := func(_ context.Context, tx *Tx) (wallet.Wallet, error) {
		return tx.ApplyToWallet(userID, t)
	}
	return WithTX(ctx, r.DB, applyLogic)
}
