package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/talx-hub/rez-booking/internal/api/dto"
	"github.com/talx-hub/rez-booking/internal/model"
	"github.com/talx-hub/rez-booking/internal/model/booking"
	"github.com/talx-hub/rez-booking/internal/model/merchant"
	"github.com/talx-hub/rez-booking/internal/model/wallet"
	"github.com/talx-hub/rez-booking/internal/serviceerrs"
	"github.com/talx-hub/rez-booking/internal/utils/logger"
	"github.com/talx-hub/rez-booking/internal/utils/semaphore"
)

// HTTPClient talks to the booking API. It never retries.
type HTTPClient struct {
	client   http.Client
	baseURL  *url.URL
	inFlight *semaphore.Semaphore
	timeout  time.Duration
}

// New builds a client for baseURL. At most maxInFlight requests are sent concurrently.
func New(baseURL string, timeout time.Duration, maxInFlight uint64) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse API base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("API base URL must be absolute http(s), got %q", baseURL)
	}
	if timeout <= 0 {
		timeout = model.DefaultTimeout
	}
	if maxInFlight == 0 {
		maxInFlight = model.DefaultMaxInFlight
	}
	return &HTTPClient{
		client:   http.Client{},
		baseURL:  u,
		inFlight: semaphore.New(maxInFlight),
		timeout:  timeout,
	}, nil
}

func (c *HTTPClient) ListMerchants(ctx context.Context) ([]merchant.Merchant, error) {
	return do[[]merchant.Merchant](ctx, c, http.MethodGet, nil, "merchants")
}

func (c *HTTPClient) GetMerchant(ctx context.Context, id int64) (merchant.Merchant, error) {
	return do[merchant.Merchant](ctx, c, http.MethodGet, nil,
		"merchants", strconv.FormatInt(id, 10))
}

func (c *HTTPClient) Book(ctx context.Context, merchantID, userID int64, service, timeSlot string,
) (booking.Booking, error) {
	req := dto.BookingRequest{
		UserID:     &userID,
		MerchantID: json.RawMessage(strconv.FormatInt(merchantID, 10)),
		TimeSlot:   timeSlot,
		Service:    service,
	}
	return do[booking.Booking](ctx, c, http.MethodPost, req, "book")
}

func (c *HTTPClient) GetBooking(ctx context.Context, id int64) (booking.Booking, error) {
	return do[booking.Booking](ctx, c, http.MethodGet, nil,
		"bookings", strconv.FormatInt(id, 10))
}

func (c *HTTPClient) GetWallet(ctx context.Context, userID int64) (wallet.Wallet, error) {
	return do[wallet.Wallet](ctx, c, http.MethodGet, nil,
		"wallet", strconv.FormatInt(userID, 10))
}

func (c *HTTPClient) CreditWallet(ctx context.Context,
	userID int64, amount model.Coins, description string,
) (wallet.Wallet, error) {
	req := dto.CreditRequest{
		Amount:      amount,
		Description: description,
	}
	return do[wallet.Wallet](ctx, c, http.MethodPost, req,
		"wallet", strconv.FormatInt(userID, 10), "add")
}

func do[T any](ctx context.Context, c *HTTPClient, method string, payload any, elem ...string,
) (T, error) {
	var zero T
	endpoint := c.baseURL.JoinPath(elem...)

	var body io.Reader = http.NoBody
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return zero, fmt.Errorf("failed to encode the request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	tCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.inFlight.Acquire(tCtx); err != nil {
		return zero, fmt.Errorf("too many requests in flight: %w", err)
	}
	defer c.inFlight.Release()

	request, err := http.NewRequestWithContext(tCtx, method, endpoint.String(), body)
	if err != nil {
		return zero, fmt.Errorf("failed to create the request: %w", err)
	}
	if payload != nil {
		request.Header.Set(model.HeaderContentType, model.ContentTypeJSON)
	}

	resp, err := c.client.Do(request)
	if err != nil {
		return zero, fmt.Errorf("failed to send request to %s: %w", endpoint.Path, err)
	}
	respBody, err := io.ReadAll(resp.Body)
	defer func() {
		if err = resp.Body.Close(); err != nil {
			log := logger.FromContext(ctx)
			log.LogAttrs(
				ctx,
				slog.LevelError,
				"failed to close the response body",
				slog.Any(model.KeyLoggerError, err),
			)
		}
	}()
	if err != nil {
		return zero, fmt.Errorf("failed to read the body: %w", err)
	}

	data, err := handleResponse[T](resp, respBody)
	if err != nil {
		return zero, fmt.Errorf("%s %s failed: %w", method, endpoint.Path, err)
	}
	return data, nil
}

func handleResponse[T any](resp *http.Response, body []byte) (T, error) {
	var data T
	switch resp.StatusCode {
	case http.StatusOK:
		ct := resp.Header.Get(model.HeaderContentType)
		if !strings.HasPrefix(ct, model.ContentTypeJSON) {
			return data, fmt.Errorf("unexpected content type %s", ct)
		}
		if err := json.Unmarshal(body, &data); err != nil {
			return data, fmt.Errorf("response decoding error: %w", err)
		}
		return data, nil
	case http.StatusNotFound:
		return data, fmt.Errorf("%s: %w", errorMessage(body), serviceerrs.ErrNotFound)
	case http.StatusUnprocessableEntity:
		return data, fmt.Errorf("%s: %w", errorMessage(body), serviceerrs.ErrInvalidOption)
	}

	return data, &serviceerrs.APIError{
		StatusCode: resp.StatusCode,
		Message:    errorMessage(body),
	}
}

// errorMessage extracts the message of a {"error": ...} body, or the raw body otherwise.
func errorMessage(body []byte) string {
	var e dto.ErrorResponse
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(body))
}
