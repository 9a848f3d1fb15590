package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
)

const testUserID = 1

func newTestDB(t *testing.T) *DB {
	t.Helper()
	return New(merchant.Catalog(), slog.Default())
}

func testDraft(userID int64) BookingDraft {
	return func(m merchant.Merchant, id int64) (booking.Booking, wallet.Transaction, error) {
		cashback := model.CashbackFor(m.Cashback)
		b := booking.Booking{
			ID:             id,
			MerchantID:     m.ID,
			MerchantName:   m.Name,
			UserID:         userID,
			CashbackEarned: cashback,
			Status:         booking.StatusConfirmed,
		}
		return b, wallet.Transaction{
			ID:     fmt.Sprintf("tx-%d", id),
			Type:   wallet.TypeCashback,
			Amount: cashback,
		}, nil
	}
}

func TestNew_skipsDuplicateMerchants(t *testing.T) {
	catalog := []merchant.Merchant{
		{ID: 1, Name: "first"},
		{ID: 1, Name: "second"},
		{ID: 2, Name: "third"},
	}
	r := NewMerchantRepository(New(catalog, slog.Default()))

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "third", list[1].Name)
}

func TestMerchantRepository(t *testing.T) {
	r := NewMerchantRepository(newTestDB(t))
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 6)

	for _, want := range list {
		got, err := r.FindByID(ctx, want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = r.FindByID(ctx, 42)
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)

	list[0].Services[0] = "mutated"
	again, err := r.FindByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.Services[0])
}

func TestBookingRepository_Create(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingRepository(db)
	wallets := NewWalletRepository(db)
	ctx := context.Background()

	b, err := bookings.Create(ctx, 2, testDraft(testUserID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, "FitZone Gym", b.MerchantName)
	assert.True(t, model.NewCoins(200).Equal(b.CashbackEarned))

	stored, err := bookings.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b, stored)

	w, err := wallets.FindByUserID(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, w.Transactions, 1)
	assert.True(t, b.CashbackEarned.Equal(w.Balance))
	assert.Equal(t, wallet.TypeCashback, w.Transactions[0].Type)

	b2, err := bookings.Create(ctx, 1, testDraft(testUserID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), b2.ID)
}

func TestBookingRepository_Create_unknownMerchant(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingRepository(db)
	ctx := context.Background()

	draftCalled := false
	_, err := bookings.Create(ctx, 99,
		func(merchant.Merchant, int64) (booking.Booking, wallet.Transaction, error) {
			draftCalled = true
			return booking.Booking{}, wallet.Transaction{}, nil
		})
	require.ErrorIs(t, err, serviceerrs.ErrNotFound)
	assert.False(t, draftCalled)

	_, err = bookings.FindByID(ctx, 1)
	assert.ErrorIs(t, err, serviceerrs.ErrNotFound)
}

func TestBookingRepository_Create_rollback(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingRepository(db)
	wallets := NewWalletRepository(db)
	ctx := context.Background()

	draftErr := errors.New("draft failed")
	_, err := bookings.Create(ctx, 2,
		func(merchant.Merchant, int64) (booking.Booking, wallet.Transaction, error) {
			return booking.Booking{}, wallet.Transaction{}, draftErr
		})
	require.ErrorIs(t, err, draftErr)

	_, err = bookings.Create(ctx, 2,
		func(m merchant.Merchant, id int64) (booking.Booking, wallet.Transaction, error) {
			return booking.Booking{ID: id + 10, MerchantID: m.ID}, wallet.Transaction{}, nil
		})
	require.Error(t, err)

	_, err = bookings.Create(ctx, 2,
		func(m merchant.Merchant, id int64) (booking.Booking, wallet.Transaction, error) {
			b := booking.Booking{ID: id, MerchantID: m.ID, CashbackEarned: model.NewCoins(200)}
			return b, wallet.Transaction{ID: "short", Amount: model.NewCoins(20)}, nil
		})
	require.ErrorContains(t, err, "does not match credited amount")

	b, err := bookings.Create(ctx, 2, testDraft(testUserID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID, "rolled back TXs must release their booking ids")

	w, err := wallets.FindByUserID(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, w.Transactions, 1)
}

func TestWithTX_rollbackRestoresWallet(t *testing.T) {
	db := newTestDB(t)
	wallets := NewWalletRepository(db)
	ctx := context.Background()

	_, err := wallets.Apply(ctx, testUserID,
		wallet.Transaction{ID: "open", Type: wallet.TypeCredit, Amount: model.NewCoins(250)})
	require.NoError(t, err)

	failErr := errors.New("fail after write")
	_, err = WithTX(ctx, db, func(_ context.Context, tx *Tx) (struct{}, error) {
		if _, err := tx.ApplyToWallet(testUserID,
			wallet.Transaction{ID: "x", Amount: model.NewCoins(1000)}); err != nil {
			return struct{}{}, err
		}
		if _, err := tx.ApplyToWallet(77,
			wallet.Transaction{ID: "y", Amount: model.NewCoins(5)}); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, failErr
	})
	require.ErrorIs(t, err, failErr)

	w, err := wallets.FindByUserID(ctx, testUserID)
	require.NoError(t, err)
	assert.True(t, model.NewCoins(250).Equal(w.Balance))
	assert.Len(t, w.Transactions, 1)

	_, err = WithReadTX(ctx, db, func(_ context.Context, tx *Tx) (struct{}, error) {
		_, ok := tx.Wallet(77)
		assert.False(t, ok)
		return struct{}{}, nil
	})
	require.NoError(t, err)
}

func TestWithTX_panicRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_, _ = WithTX(ctx, db, func(_ context.Context, tx *Tx) (int64, error) {
			if _, err := tx.NextBookingID(); err != nil {
				return 0, err
			}
			panic("boom")
		})
	})

	id, err := WithTX(ctx, db, func(_ context.Context, tx *Tx) (int64, error) {
		return tx.NextBookingID()
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestWithReadTX_rejectsWrites(t *testing.T) {
	db := newTestDB(t)
	_, err := WithReadTX(context.Background(), db, func(_ context.Context, tx *Tx) (int64, error) {
		return tx.NextBookingID()
	})
	require.ErrorIs(t, err, errReadOnlyTX)
}

func TestWithTX_canceledContext(t *testing.T) {
	db := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := WithTX(ctx, db, func(context.Context, *Tx) (struct{}, error) {
		called = true
		return struct{}{}, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)

	_, err = NewWalletRepository(db).FindByUserID(ctx, testUserID)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWalletRepository_FindByUserID_default(t *testing.T) {
	db := newTestDB(t)
	wallets := NewWalletRepository(db)
	ctx := context.Background()

	w, err := wallets.FindByUserID(ctx, 404)
	require.NoError(t, err)
	assert.Equal(t, int64(404), w.UserID)
	assert.True(t, w.Balance.IsZero())
	assert.Empty(t, w.Transactions)

	_, err = WithReadTX(ctx, db, func(_ context.Context, tx *Tx) (struct{}, error) {
		_, ok := tx.Wallet(404)
		assert.False(t, ok, "reading a wallet must not create it")
		return struct{}{}, nil
	})
	require.NoError(t, err)
}

func TestBookingRepository_concurrentCreate(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingRepository(db)
	wallets := NewWalletRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	const workers = 16
	const perWorker = 25

	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)
	for i := range workers {
		wg.Add(1)
		go func(merchantID int64) {
			defer wg.Done()
			for range perWorker {
				b, err := bookings.Create(ctx, merchantID, testDraft(testUserID))
				if !assert.NoError(t, err) {
					return
				}
				ids <- b.ID
			}
		}(int64(i%6) + 1)
	}
	wg.Wait()
	close(ids)

	got := make([]int64, 0, workers*perWorker)
	for id := range ids {
		got = append(got, id)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	require.Len(t, got, workers*perWorker)
	for i, id := range got {
		assert.Equal(t, int64(i+1), id)
	}

	w, err := wallets.FindByUserID(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, w.Transactions, workers*perWorker)
	sum := model.Coins{}
	for _, tr := range w.Transactions {
		sum = sum.Add(tr.Amount)
	}
	assert.True(t, sum.Equal(w.Balance))
}
