package bookings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/repo"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
)

type Repository interface {
	Create(ctx context.Context, merchantID int64, draft repo.BookingDraft) (booking.Booking, error)
	FindByID(ctx context.Context, id int64) (booking.Booking, error)
}

type Recorder interface {
	BookingCreated(merchantName string, cashback model.Coins)
}

type Settings struct {
	DemoUserID int64
	// StrictOptions rejects services and time slots the merchant does not offer.
	StrictOptions bool
}

type Request struct {
	UserID     *int64
	TimeSlot   string `validate:"required"`
	Service    string `validate:"required"`
	MerchantID int64
}

type Service struct {
	repo     Repository
	recorder Recorder
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
	newTxID  func() (string, error)
	settings Settings
}

type nopRecorder struct{}

func (nopRecorder) BookingCreated(string, model.Coins) {}

func New(r Repository, recorder Recorder, log *slog.Logger, settings Settings) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		repo:     r,
		recorder: recorder,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		newTxID:  wallet.NewTransactionID,
		settings: settings,
	}
}

// Book confirms a booking and credits its cashback to the user's wallet.
func (s *Service) Book(ctx context.Context, req Request) (booking.Booking, error) {
	if s.settings.StrictOptions {
		if err := s.validate.Struct(req); err != nil {
			return booking.Booking{},
				fmt.Errorf("%w: %w", serviceerrs.ErrInvalidOption, err)
		}
	}

	userID := s.settings.DemoUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	draft := func(m merchant.Merchant, id int64) (booking.Booking, wallet.Transaction, error) {
		if s.settings.StrictOptions {
			if err := checkOptions(&m, req); err != nil {
				return booking.Booking{}, wallet.Transaction{}, err
			}
		}

		code, err := booking.ConfirmationCode(id)
		if err != nil {
			return booking.Booking{}, wallet.Transaction{}, err
		}
		txID, err := s.newTxID()
		if err != nil {
			return booking.Booking{}, wallet.Transaction{}, err
		}

		now := s.now()
		cashback := model.CashbackFor(m.Cashback)
		b := booking.Booking{
			ID:               id,
			MerchantID:       m.ID,
			MerchantName:     m.Name,
			TimeSlot:         req.TimeSlot,
			Service:          req.Service,
			UserID:           userID,
			CashbackEarned:   cashback,
			BookingDate:      now,
			Status:           booking.StatusConfirmed,
			ConfirmationCode: code,
		}
		t := wallet.Transaction{
			ID:          txID,
			Type:        wallet.TypeCashback,
			Amount:      cashback,
			Description: "Cashback from " + m.Name,
			Date:        now,
		}
		return b, t, nil
	}

	b, err := s.repo.Create(ctx, req.MerchantID, draft)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to book merchant %d: %w", req.MerchantID, err)
	}

	s.recorder.BookingCreated(b.MerchantName, b.CashbackEarned)
	s.log.LogAttrs(ctx,
		slog.LevelInfo,
		"booking confirmed",
		slog.Int64("booking_id", b.ID),
		slog.Int64("merchant_id", b.MerchantID),
		slog.Int64("user_id", b.UserID),
		slog.String("cashback", b.CashbackEarned.String()),
	)
	return b, nil
}

func (s *Service) FindByID(ctx context.Context, id int64) (booking.Booking, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return booking.Booking{}, fmt.Errorf("failed to find booking: %w", err)
	}
	return b, nil
}

func checkOptions(m *merchant.Merchant, req Request) error {
	var serviceErr, slotErr error
	if !m.OffersService(req.Service) {
		serviceErr = fmt.Errorf("%w: service %q", serviceerrs.ErrInvalidOption, req.Service)
	}
	if !m.HasTimeSlot(req.TimeSlot) {
		slotErr = fmt.Errorf("%w: time slot %q", serviceerrs.ErrInvalidOption, req.TimeSlot)
	}
	return errors.Join(serviceErr, slotErr)
}
