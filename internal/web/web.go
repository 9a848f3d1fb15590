package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
	"github.com/talx-hub/rez-booking/internal/utils/auth"
	"github.com/talx-hub/rez-booking/internal/utils/logger"
)

const categoryAll = "All"

const (
	msgBookingFailed = "Booking failed. Please try again."
	msgUnavailable   = "The booking service is unavailable right now."
	msgBadAmount     = "Enter a positive number of coins."
	msgTopUpFailed   = "Adding coins failed. Please try again."
)

const defaultTopUpDescription = "Top up"

type APIClient interface {
	ListMerchants(ctx context.Context) ([]merchant.Merchant, error)
	GetMerchant(ctx context.Context, id int64) (merchant.Merchant, error)
	Book(ctx context.Context, merchantID, userID int64, service, timeSlot string,
	) (booking.Booking, error)
	GetBooking(ctx context.Context, id int64) (booking.Booking, error)
	GetWallet(ctx context.Context, userID int64) (wallet.Wallet, error)
	CreditWallet(ctx context.Context, userID int64, amount model.Coins, description string,
	) (wallet.Wallet, error)
}

// Handler renders the ReZ pages. It keeps no state of its own; every page is fetched from
// the booking API.
type Handler struct {
	api        APIClient
	views      *views
	logger     *slog.Logger
	secret     []byte
	demoUserID int64
}

func NewHandler(api APIClient, log *slog.Logger, secret []byte, demoUserID int64,
) (*Handler, error) {
	v, err := parseViews()
	if err != nil {
		return nil, err
	}
	return &Handler{
		api:        api,
		views:      v,
		logger:     log,
		secret:     secret,
		demoUserID: demoUserID,
	}, nil
}

func (h *Handler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	merchants, err := h.api.ListMerchants(r.Context())
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to fetch merchants",
			slog.Any(model.KeyLoggerError, err),
		)
		merchants = nil
	}

	selected := r.URL.Query().Get("category")
	if selected == "" {
		selected = categoryAll
	}

	page := listPage{
		Nav:        navHome,
		Selected:   selected,
		Categories: append([]string{categoryAll}, merchant.Categories(merchants)...),
		Merchants:  filterByCategory(merchants, selected),
	}
	h.render(w, r, http.StatusOK, pageList, page)
}

func filterByCategory(merchants []merchant.Merchant, category string) []merchant.Merchant {
	if category == categoryAll {
		return merchants
	}
	return slices.DeleteFunc(slices.Clone(merchants), func(m merchant.Merchant) bool {
		return m.Category != category
	})
}

func (h *Handler) MerchantDetails(w http.ResponseWriter, r *http.Request) {
	m, code, ok := h.merchant(r)
	if !ok {
		h.render(w, r, code, pageDetail, detailPage{Nav: navHome})
		return
	}

	page := newDetailPage(m)
	if len(m.Services) > 0 {
		page.Service = m.Services[0]
	}
	h.render(w, r, http.StatusOK, pageDetail, page)
}

// Book submits the detail form. An incomplete form is rendered again and never reaches the API,
// a confirmed booking is remembered in a signed cookie for the confirmation page.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	m, code, ok := h.merchant(r)
	if !ok {
		h.render(w, r, code, pageDetail, detailPage{Nav: navHome})
		return
	}

	page := newDetailPage(m)
	page.Service = r.PostFormValue("service")
	page.TimeSlot = r.PostFormValue("timeSlot")
	if page.Service == "" || page.TimeSlot == "" {
		page.Incomplete = true
		h.render(w, r, http.StatusUnprocessableEntity, pageDetail, page)
		return
	}

	b, err := h.api.Book(r.Context(), m.ID, h.demoUserID, page.Service, page.TimeSlot)
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to create booking",
			slog.Int64("merchant_id", m.ID),
			slog.Any(model.KeyLoggerError, err),
		)
		page.Error = msgBookingFailed
		code := http.StatusBadGateway
		if errors.Is(err, serviceerrs.ErrInvalidOption) {
			code = http.StatusUnprocessableEntity
		}
		h.render(w, r, code, pageDetail, page)
		return
	}

	cookie, err := auth.ConfirmationCookie(b.ID, h.secret)
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to issue confirmation cookie",
			slog.Int64("booking_id", b.ID),
			slog.Any(model.KeyLoggerError, err),
		)
		http.Redirect(w, r, "/bookings/"+strconv.FormatInt(b.ID, 10), http.StatusSeeOther)
		return
	}
	http.SetCookie(w, &cookie)
	http.Redirect(w, r, "/confirmation", http.StatusSeeOther)
}

// Confirmation shows the booking named by the confirmation cookie.
func (h *Handler) Confirmation(w http.ResponseWriter, r *http.Request) {
	id, ok := r.Context().Value(model.KeyContextBookingID).(int64)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.showBooking(w, r, id)
}

func (h *Handler) BookingDetails(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.showBooking(w, r, id)
}

func (h *Handler) showBooking(w http.ResponseWriter, r *http.Request, id int64) {
	b, err := h.api.GetBooking(r.Context(), id)
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelWarn,
			"failed to fetch booking",
			slog.Int64("booking_id", id),
			slog.Any(model.KeyLoggerError, err),
		)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if !booking.ValidConfirmationCode(b.ConfirmationCode) {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelWarn,
			"booking has a malformed confirmation code",
			slog.Int64("booking_id", b.ID),
			slog.String("code", b.ConfirmationCode),
		)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	page := confirmationPage{Nav: navHome, Booking: b}
	m, err := h.api.GetMerchant(r.Context(), b.MerchantID)
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelWarn,
			"failed to fetch merchant of booking",
			slog.Int64("booking_id", b.ID),
			slog.Int64("merchant_id", b.MerchantID),
			slog.Any(model.KeyLoggerError, err),
		)
	} else {
		page.Merchant = m
	}
	h.render(w, r, http.StatusOK, pageConfirmation, page)
}

func (h *Handler) Wallet(w http.ResponseWriter, r *http.Request) {
	h.showWallet(w, r, http.StatusOK, "")
}

// TopUp credits the demo wallet from the wallet page form.
func (h *Handler) TopUp(w http.ResponseWriter, r *http.Request) {
	amount, err := parseAmount(r.PostFormValue("amount"))
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelDebug,
			"top up rejected",
			slog.Any(model.KeyLoggerError, err),
		)
		h.showWallet(w, r, http.StatusUnprocessableEntity, msgBadAmount)
		return
	}

	description := strings.TrimSpace(r.PostFormValue("description"))
	if description == "" {
		description = defaultTopUpDescription
	}

	if _, err = h.api.CreditWallet(r.Context(), h.demoUserID, amount, description); err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to credit wallet",
			slog.Int64("user_id", h.demoUserID),
			slog.Any(model.KeyLoggerError, err),
		)
		h.showWallet(w, r, http.StatusBadGateway, msgTopUpFailed)
		return
	}
	http.Redirect(w, r, "/wallet", http.StatusSeeOther)
}

func parseAmount(value string) (model.Coins, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return model.Coins{}, fmt.Errorf("amount %q is not a number: %w", value, err)
	}
	amount, err := model.CoinsFromFloat(f)
	if err != nil {
		return model.Coins{}, err
	}
	if f <= 0 {
		return model.Coins{}, fmt.Errorf("amount %q must be positive", value)
	}
	return amount, nil
}

func (h *Handler) showWallet(w http.ResponseWriter, r *http.Request, code int, errMsg string) {
	wlt, err := h.api.GetWallet(r.Context(), h.demoUserID)
	if err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to fetch wallet",
			slog.Int64("user_id", h.demoUserID),
			slog.Any(model.KeyLoggerError, err),
		)
		wlt = wallet.Empty(h.demoUserID)
	}

	h.render(w, r, code, pageWallet, walletPage{
		Nav:          navWallet,
		Error:        errMsg,
		Wallet:       wlt,
		Transactions: wlt.NewestFirst(),
	})
}

func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// merchant fetches the merchant named in the path. On failure it returns the status the
// empty detail view is rendered with.
func (h *Handler) merchant(r *http.Request) (merchant.Merchant, int, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return merchant.Merchant{}, http.StatusNotFound, false
	}

	m, err := h.api.GetMerchant(r.Context(), id)
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			return merchant.Merchant{}, http.StatusNotFound, false
		}
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to fetch merchant",
			slog.Int64("merchant_id", id),
			slog.Any(model.KeyLoggerError, err),
		)
		return merchant.Merchant{}, http.StatusBadGateway, false
	}
	return m, http.StatusOK, true
}

func newDetailPage(m merchant.Merchant) detailPage {
	return detailPage{
		Nav:      navHome,
		Merchant: m,
		Cashback: model.CashbackFor(m.Cashback),
		Found:    true,
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, code int, name string, data any) {
	if err := h.views.render(w, code, name, data); err != nil {
		h.log(r).LogAttrs(r.Context(),
			slog.LevelError,
			"failed to render view",
			slog.String("view", name),
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, msgUnavailable, http.StatusInternalServerError)
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOr(r.Context(), h.logger)
}
