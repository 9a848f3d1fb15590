package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
)

var errReadOnlyTX = errors.New("write attempted in a read-only TX")

type tables struct {
	merchantIndex map[int64]int
	wallets       map[int64]*wallet.Wallet
	merchants     []merchant.Merchant
	bookings      []booking.Booking
	lastBookingID int64
}

// DB is the process-wide in-memory store. It is seeded at start and lost on exit.
type DB struct {
	mu   *sync.RWMutex
	data *tables
	log  *slog.Logger
}

func New(catalog []merchant.Merchant, log *slog.Logger) *DB {
	data := &tables{
		merchants:     make([]merchant.Merchant, 0, len(catalog)),
		merchantIndex: make(map[int64]int, len(catalog)),
		bookings:      make([]booking.Booking, 0),
		wallets:       make(map[int64]*wallet.Wallet),
	}
	for _, m := range catalog {
		if _, dup := data.merchantIndex[m.ID]; dup {
			log.LogAttrs(context.Background(),
				slog.LevelWarn,
				"duplicate merchant id in catalog, skipping",
				slog.Int64("merchant_id", m.ID),
			)
			continue
		}
		data.merchantIndex[m.ID] = len(data.merchants)
		data.merchants = append(data.merchants, m.Clone())
	}

	return &DB{
		mu:   &sync.RWMutex{},
		data: data,
		log:  log,
	}
}

// Tx exposes the tables while the store lock is held.
// Writes are undone if the TX logic fails.
type Tx struct {
	data     *tables
	undo     []func()
	writable bool
}

func WithTX[T any](ctx context.Context, db *DB, f func(context.Context, *Tx) (T, error),
) (res T, err error) {
	var zero T
	if err = ctx.Err(); err != nil {
		return zero, fmt.Errorf("failed to begin TX: %w", err)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	tx := &Tx{data: db.data, writable: true}
	defer func() {
		if p := recover(); p != nil {
			tx.rollback()
			panic(p)
		}
		if err != nil {
			tx.rollback()
			db.log.LogAttrs(ctx,
				slog.LevelDebug,
				"TX rolled back",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()

	res, err = f(ctx, tx)
	if err != nil {
		return zero, err //nolint: wrapcheck // error from wrapped function
	}
	return res, nil
}

func WithReadTX[T any](ctx context.Context, db *DB, f func(context.Context, *Tx) (T, error),
) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("failed to begin read TX: %w", err)
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	res, err := f(ctx, &Tx{data: db.data})
	if err != nil {
		return zero, err //nolint: wrapcheck // error from wrapped function
	}
	return res, nil
}

func (tx *Tx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

func (tx *Tx) Merchants() []merchant.Merchant {
	out := make([]merchant.Merchant, 0, len(tx.data.merchants))
	for _, m := range tx.data.merchants {
		out = append(out, m.Clone())
	}
	return out
}

func (tx *Tx) Merchant(id int64) (merchant.Merchant, error) {
	i, ok := tx.data.merchantIndex[id]
	if !ok {
		return merchant.Merchant{},
			fmt.Errorf("merchant %d: %w", id, serviceerrs.ErrNotFound)
	}
	return tx.data.merchants[i].Clone(), nil
}

// NextBookingID allocates the next sequential booking id.
func (tx *Tx) NextBookingID() (int64, error) {
	if !tx.writable {
		return 0, errReadOnlyTX
	}
	prev := tx.data.lastBookingID
	tx.data.lastBookingID++
	tx.undo = append(tx.undo, func() { tx.data.lastBookingID = prev })
	return tx.data.lastBookingID, nil
}

func (tx *Tx) InsertBooking(b booking.Booking) error {
	if !tx.writable {
		return errReadOnlyTX
	}
	n := len(tx.data.bookings)
	tx.data.bookings = append(tx.data.bookings, b)
	tx.undo = append(tx.undo, func() { tx.data.bookings = tx.data.bookings[:n] })
	return nil
}

func (tx *Tx) Booking(id int64) (booking.Booking, error) {
	// ids start at 1 and rolled back TXs release theirs, so booking id lives at id-1
	if i := id - 1; i >= 0 && i < int64(len(tx.data.bookings)) && tx.data.bookings[i].ID == id {
		return tx.data.bookings[i], nil
	}
	return booking.Booking{},
		fmt.Errorf("booking %d: %w", id, serviceerrs.ErrNotFound)
}

func (tx *Tx) Wallet(userID int64) (wallet.Wallet, bool) {
	w, ok := tx.data.wallets[userID]
	if !ok {
		return wallet.Wallet{}, false
	}
	return w.Clone(), true
}

// ApplyToWallet appends t to the user's wallet, creating the wallet on first use.
func (tx *Tx) ApplyToWallet(userID int64, t wallet.Transaction) (wallet.Wallet, error) {
	if !tx.writable {
		return wallet.Wallet{}, errReadOnlyTX
	}

	w, ok := tx.data.wallets[userID]
	if !ok {
		created := wallet.Empty(userID)
		w = &created
		tx.data.wallets[userID] = w
		tx.undo = append(tx.undo, func() { delete(tx.data.wallets, userID) })
	} else {
		n, balance := len(w.Transactions), w.Balance
		tx.undo = append(tx.undo, func() {
			w.Transactions = w.Transactions[:n]
			w.Balance = balance
		})
	}

	w.Apply(t)
	return w.Clone(), nil
}
