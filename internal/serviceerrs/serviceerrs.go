package serviceerrs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidOption = errors.New("option is not offered by the merchant")
	ErrTokenExpired  = errors.New("token expired")
)

// APIError is a non-2xx answer from the booking API that has no domain meaning.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("api responded with status %d: %s", e.StatusCode, e.Message)
}
