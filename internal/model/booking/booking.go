package booking

import (
	"fmt"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"

	"github.com/talx-hub/rez-booking/internal/model"
)

type Status string

const StatusConfirmed Status = "confirmed"

type Booking struct {
	BookingDate      time.Time   `json:"bookingDate"`
	MerchantName     string      `json:"merchantName"`
	TimeSlot         string      `json:"timeSlot"`
	Service          string      `json:"service"`
	Status           Status      `json:"status"`
	ConfirmationCode string      `json:"confirmationCode"`
	CashbackEarned   model.Coins `json:"cashbackEarned"`
	ID               int64       `json:"id"`
	MerchantID       int64       `json:"merchantId"`
	UserID           int64       `json:"userId"`
}

const codeDigits = 8

// ConfirmationCode is the zero-padded booking id followed by a Luhn check digit.
func ConfirmationCode(id int64) (string, error) {
	if id <= 0 {
		return "", fmt.Errorf("booking id must be positive, got %d", id)
	}
	_, code, err := goluhn.Calculate(fmt.Sprintf("%0*d", codeDigits, id))
	if err != nil {
		return "", fmt.Errorf("failed to calculate check digit: %w", err)
	}
	return code, nil
}

func ValidConfirmationCode(code string) bool {
	return len(code) > codeDigits && goluhn.Validate(code) == nil
}
