package bookings

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/repo"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
)

const demoUserID = 1

type recorderStub struct {
	merchants []string
	coins     []model.Coins
}

func (r *recorderStub) BookingCreated(merchantName string, cashback model.Coins) {
	r.merchants = append(r.merchants, merchantName)
	r.coins = append(r.coins, cashback)
}

type fixture struct {
	svc      *Service
	wallets  *repo.WalletRepository
	recorder *recorderStub
	now      time.Time
}

func newFixture(t *testing.T, strict bool) fixture {
	t.Helper()

	db := repo.New(merchant.Catalog(), slog.Default())
	rec := &recorderStub{}
	svc := New(repo.NewBookingRepository(db), rec, slog.Default(),
		Settings{DemoUserID: demoUserID, StrictOptions: strict})

	now := time.Date(2025, 6, 21, 11, 58, 45, 0, time.UTC)
	svc.now = func() time.Time { return now }
	return fixture{
		svc:      svc,
		wallets:  repo.NewWalletRepository(db),
		recorder: rec,
		now:      now,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_Book_fitZone(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	b, err := f.svc.Book(ctx, Request{
		MerchantID: 2,
		Service:    "anything at all",
		TimeSlot:   "25:99 XM",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, int64(2), b.MerchantID)
	assert.Equal(t, "FitZone Gym", b.MerchantName)
	assert.Equal(t, int64(demoUserID), b.UserID)
	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Equal(t, "200", b.CashbackEarned.String())
	assert.Equal(t, f.now, b.BookingDate)
	assert.Equal(t, "000000018", b.ConfirmationCode)

	w, err := f.wallets.FindByUserID(ctx, demoUserID)
	require.NoError(t, err)
	assert.True(t, model.NewCoins(200).Equal(w.Balance))
	require.Len(t, w.Transactions, 1)
	last := w.Transactions[0]
	assert.Equal(t, wallet.TypeCashback, last.Type)
	assert.True(t, b.CashbackEarned.Equal(last.Amount))
	assert.Equal(t, "Cashback from FitZone Gym", last.Description)
	assert.Equal(t, f.now, last.Date)
	assert.NotEmpty(t, last.ID)

	assert.Equal(t, []string{"FitZone Gym"}, f.recorder.merchants)
}

func TestService_Book_sequentialIDs(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	var prev int64
	for i := range 10 {
		b, err := f.svc.Book(ctx, Request{MerchantID: int64(i%6) + 1})
		require.NoError(t, err)
		assert.Equal(t, prev+1, b.ID)
		prev = b.ID
	}
}

func TestService_Book_explicitUser(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	b, err := f.svc.Book(ctx, Request{MerchantID: 4, UserID: ptr[int64](9)})
	require.NoError(t, err)
	assert.Equal(t, int64(9), b.UserID)

	w, err := f.wallets.FindByUserID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "180", w.Balance.String())

	demo, err := f.wallets.FindByUserID(ctx, demoUserID)
	require.NoError(t, err)
	assert.Empty(t, demo.Transactions)
}

func TestService_Book_unknownMerchant(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.Book(context.Background(), Request{MerchantID: 7})
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)
	assert.Empty(t, f.recorder.merchants)
}

func TestService_Book_strict(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			"offered options",
			Request{MerchantID: 2, Service: "Group Classes", TimeSlot: "6:00 AM"},
			nil,
		},
		{
			"unknown service",
			Request{MerchantID: 2, Service: "Hair Coloring", TimeSlot: "6:00 AM"},
			serviceerrs.ErrInvalidOption,
		},
		{
			"unknown time slot",
			Request{MerchantID: 2, Service: "Group Classes", TimeSlot: "11:00 PM"},
			serviceerrs.ErrInvalidOption,
		},
		{
			"empty service",
			Request{MerchantID: 2, TimeSlot: "6:00 AM"},
			serviceerrs.ErrInvalidOption,
		},
		{
			"unknown merchant",
			Request{MerchantID: 100, Service: "Group Classes", TimeSlot: "6:00 AM"},
			serviceerrs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, true)
			_, err := f.svc.Book(context.Background(), tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			w, err := f.wallets.FindByUserID(context.Background(), demoUserID)
			require.NoError(t, err)
			assert.Empty(t, w.Transactions)
		})
	}
}

func TestService_Book_idGeneratorFailure(t *testing.T) {
	f := newFixture(t, false)
	genErr := errors.New("entropy exhausted")
	f.svc.newTxID = func() (string, error) { return "", genErr }

	_, err := f.svc.Book(context.Background(), Request{MerchantID: 1})
	require.ErrorIs(t, err, genErr)

	f.svc.newTxID = wallet.NewTransactionID
	b, err := f.svc.Book(context.Background(), Request{MerchantID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
}

func TestService_FindByID(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	created, err := f.svc.Book(ctx, Request{MerchantID: 3, Service: "Lunch Buffet", TimeSlot: "1:30 PM"})
	require.NoError(t, err)

	got, err := f.svc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = f.svc.FindByID(ctx, created.ID+1)
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)
}
