package repo

import (
	"context"
	"fmt"

	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
)

// BookingDraft turns the resolved merchant and the allocated booking id into
// the booking record and the cashback transaction credited for it.
type BookingDraft func(m merchant.Merchant, id int64) (booking.Booking, wallet.Transaction, error)

type BookingRepository struct {
	*DB
}

func NewBookingRepository(db *DB) *BookingRepository {
	return &BookingRepository{db}
}

// Create stores the booking and credits its cashback in a single TX,
// so a booking never exists without its wallet transaction.
func (r *BookingRepository) Create(ctx context.Context, merchantID int64, draft BookingDraft,
) (booking.Booking, error) {
	createLogic := func(_ context.Context, tx *Tx) (booking.Booking, error) {
		m, err := tx.Merchant(merchantID)
		if err != nil {
			return booking.Booking{}, err
		}

		id, err := tx.NextBookingID()
		if err != nil {
			return booking.Booking{}, err
		}

		b, cashback, err := draft(m, id)
		if err != nil {
			return booking.Booking{}, err
		}
		if b.ID != id || b.MerchantID != m.ID {
			return booking.Booking{},
				fmt.Errorf("draft changed booking identity: id %d, merchant %d", b.ID, b.MerchantID)
		}
		if !b.CashbackEarned.Equal(cashback.Amount) {
			return booking.Booking{},
				fmt.Errorf("cashback %s does not match credited amount %s",
					b.CashbackEarned, cashback.Amount)
		}

		if err = tx.InsertBooking(b); err != nil {
			return booking.Booking{}, fmt.Errorf("failed to insert booking: %w", err)
		}
		if _, err = tx.ApplyToWallet(b.UserID, cashback); err != nil {
			return booking.Booking{}, fmt.Errorf("failed to credit cashback: %w", err)
		}
		return b, nil
	}

	return WithTX(ctx, r.DB, createLogic)
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (booking.Booking, error) {
	findLogic := func(_ context.Context, tx *Tx) (booking.Booking, error) {
		return tx.Booking(id)
	}
	return WithReadTX(ctx, r.DB, findLogic)
}
