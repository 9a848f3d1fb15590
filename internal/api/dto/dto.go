package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/talx-hub/rez-booking/internal/model"
)

type BookingRequest struct {
	UserID     *int64          `json:"userId,omitempty"`
	MerchantID json.RawMessage `json:"merchantId"`
	TimeSlot   string          `json:"timeSlot"`
	Service    string          `json:"service"`
}

// ParsedMerchantID resolves merchantId the way a lenient form field would be read:
// numbers are truncated to an integer and strings yield their leading integer digits.
// It reports false for anything else, which can never match a merchant.
func (r *BookingRequest) ParsedMerchantID() (int64, bool) {
	if len(r.MerchantID) == 0 {
		return 0, false
	}

	var raw any
	if err := json.Unmarshal(r.MerchantID, &raw); err != nil {
		return 0, false
	}

	switch id := raw.(type) {
	case float64:
		if math.IsNaN(id) || math.Abs(id) >= math.MaxInt64 {
			return 0, false
		}
		return int64(id), true
	case string:
		return leadingInt(id)
	default:
		return 0, false
	}
}

func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	id, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

type CreditRequest struct {
	Description string      `json:"description"`
	Amount      model.Coins `json:"amount"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
