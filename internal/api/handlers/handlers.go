package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/rez-booking/internal/api/dto"
	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/service/bookings"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
	"github.com/talx-hub/rez-booking/internal/utils/logger"
)

const (
	msgMerchantNotFound = "Merchant not found"
	msgBookingNotFound  = "Booking not found"
	msgBadRequestBody   = "Invalid request body"
	msgBadUserID        = "Invalid user id"
	msgInternal         = "Internal server error"
)

type MerchantRepository interface {
	List(ctx context.Context) ([]merchant.Merchant, error)
	FindByID(ctx context.Context, id int64) (merchant.Merchant, error)
}

type BookingService interface {
	Book(ctx context.Context, req bookings.Request) (booking.Booking, error)
	FindByID(ctx context.Context, id int64) (booking.Booking, error)
}

type WalletService interface {
	Get(ctx context.Context, userID int64) (wallet.Wallet, error)
	Credit(ctx context.Context, userID int64, amount model.Coins, description string,
	) (wallet.Wallet, error)
}

type MerchantHandler struct {
	logger *slog.Logger
	repo   MerchantRepository
}

func NewMerchantHandler(repo MerchantRepository, log *slog.Logger) *MerchantHandler {
	return &MerchantHandler{
		logger: log,
		repo:   repo,
	}
}

func (h *MerchantHandler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.repo.List(r.Context())
	if err != nil {
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to list merchants",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, merchants)
}

func (h *MerchantHandler) GetMerchant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, h.logger, http.StatusNotFound, msgMerchantNotFound)
		return
	}

	m, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			writeError(w, r, h.logger, http.StatusNotFound, msgMerchantNotFound)
			return
		}
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to find merchant",
			slog.Int64("merchant_id", id),
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, m)
}

type BookingHandler struct {
	logger  *slog.Logger
	service BookingService
}

func NewBookingHandler(service BookingService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{
		logger:  log,
		service: service,
	}
}

func (h *BookingHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelDebug,
			"failed to decode booking request",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusBadRequest, msgBadRequestBody)
		return
	}

	merchantID, ok := req.ParsedMerchantID()
	if !ok {
		writeError(w, r, h.logger, http.StatusNotFound, msgMerchantNotFound)
		return
	}

	b, err := h.service.Book(r.Context(), bookings.Request{
		MerchantID: merchantID,
		TimeSlot:   req.TimeSlot,
		Service:    req.Service,
		UserID:     req.UserID,
	})
	if err != nil {
		switch {
		case errors.Is(err, serviceerrs.ErrNotFound):
			writeError(w, r, h.logger, http.StatusNotFound, msgMerchantNotFound)
		case errors.Is(err, serviceerrs.ErrInvalidOption):
			writeError(w, r, h.logger, http.StatusUnprocessableEntity, err.Error())
		default:
			requestLogger(r, h.logger).LogAttrs(r.Context(),
				slog.LevelError,
				"failed to create booking",
				slog.Int64("merchant_id", merchantID),
				slog.Any(model.KeyLoggerError, err),
			)
			writeError(w, r, h.logger, http.StatusInternalServerError, msgInternal)
		}
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, b)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, r, h.logger, http.StatusNotFound, msgBookingNotFound)
		return
	}

	b, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			writeError(w, r, h.logger, http.StatusNotFound, msgBookingNotFound)
			return
		}
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to find booking",
			slog.Int64("booking_id", id),
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, b)
}

type WalletHandler struct {
	logger  *slog.Logger
	service WalletService
}

func NewWalletHandler(service WalletService, log *slog.Logger) *WalletHandler {
	return &WalletHandler{
		logger:  log,
		service: service,
	}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeError(w, r, h.logger, http.StatusBadRequest, msgBadUserID)
		return
	}

	wlt, err := h.service.Get(r.Context(), userID)
	if err != nil {
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to get wallet",
			slog.Int64("user_id", userID),
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, wlt)
}

func (h *WalletHandler) CreditWallet(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeError(w, r, h.logger, http.StatusBadRequest, msgBadUserID)
		return
	}

	var req dto.CreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelDebug,
			"failed to decode credit request",
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusBadRequest, msgBadRequestBody)
		return
	}

	wlt, err := h.service.Credit(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		requestLogger(r, h.logger).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to credit wallet",
			slog.Int64("user_id", userID),
			slog.Any(model.KeyLoggerError, err),
		)
		writeError(w, r, h.logger, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, wlt)
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func requestLogger(r *http.Request, fallback *slog.Logger) *slog.Logger {
	return logger.FromContextOr(r.Context(), fallback)
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, code int, msg string) {
	writeJSON(w, r, log, code, dto.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		requestLogger(r, log).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set(model.HeaderContentType, model.ContentTypeJSON)
	w.WriteHeader(code)
	if _, err := w.Write(buf.Bytes()); err != nil {
		requestLogger(r, log).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to write response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

// Handler groups every API handler behind one value for the router.
type Handler struct {
	*MerchantHandler
	*BookingHandler
	*WalletHandler
	*HealthHandler
}
