package wallets

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
)

type Repository interface {
	FindByUserID(ctx context.Context, userID int64) (wallet.Wallet, error)
	Apply(ctx context.Context, userID int64, t wallet.Transaction) (wallet.Wallet, error)
}

type Recorder interface {
	WalletCredited(amount model.Coins)
}

const OpeningDescription = "Welcome bonus"

type Service struct {
	repo     Repository
	recorder Recorder
	log      *slog.Logger
	now      func() time.Time
	newTxID  func() (string, error)
}

type nopRecorder struct{}

func (nopRecorder) WalletCredited(model.Coins) {}

func New(r Repository, recorder Recorder, log *slog.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		repo:     r,
		recorder: recorder,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newTxID:  wallet.NewTransactionID,
	}
}

func (s *Service) Get(ctx context.Context, userID int64) (wallet.Wallet, error) {
	w, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("failed to find wallet of user %d: %w", userID, err)
	}
	return w, nil
}

// Credit adds amount to the user's wallet. The sign of amount is not checked.
func (s *Service) Credit(ctx context.Context, userID int64, amount model.Coins, description string,
) (wallet.Wallet, error) {
	w, err := s.apply(ctx, userID, amount, description)
	if err != nil {
		return wallet.Wallet{}, err
	}

	s.recorder.WalletCredited(amount)
	s.log.LogAttrs(ctx,
		slog.LevelInfo,
		"wallet credited",
		slog.Int64("user_id", userID),
		slog.String("amount", amount.String()),
		slog.String("balance", w.Balance.String()),
	)
	return w, nil
}

// SeedOpeningBalance records the opening credit of a wallet at process start.
func (s *Service) SeedOpeningBalance(ctx context.Context, userID int64, amount model.Coins) error {
	if amount.IsZero() {
		return nil
	}
	if _, err := s.apply(ctx, userID, amount, OpeningDescription); err != nil {
		return fmt.Errorf("failed to seed wallet: %w", err)
	}
	return nil
}

func (s *Service) apply(ctx context.Context, userID int64, amount model.Coins, description string,
) (wallet.Wallet, error) {
	txID, err := s.newTxID()
	if err != nil {
		return wallet.Wallet{}, err //nolint: wrapcheck // already wrapped
	}

	w, err := s.repo.Apply(ctx, userID, wallet.Transaction{
		ID:          txID,
		Type:        wallet.TypeCredit,
		Amount:      amount,
		Description: description,
		Date:        s.now(),
	})
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("failed to credit wallet of user %d: %w", userID, err)
	}
	return w, nil
}
