package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talx-hub/rez-booking/internal/serviceerrs"
)

const (
	CookieName  = "rez-confirmation"
	TokenExpire = 15 * time.Minute
)

// Claims carry the booking a confirmation page is allowed to show.
type Claims struct {
	jwt.RegisteredClaims
	BookingID int64
}

func buildJWTString(bookingID int64, secret []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(TokenExpire)),
			},
			BookingID: bookingID,
		},
	)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("JWT signing: %w", err)
	}
	return tokenString, nil
}

// ConfirmationCookie issues the short-lived cookie that remembers a fresh booking.
func ConfirmationCookie(bookingID int64, secret []byte) (http.Cookie, error) {
	return confirmationCookieAt(bookingID, secret, time.Now())
}

func confirmationCookieAt(bookingID int64, secret []byte, now time.Time,
) (http.Cookie, error) {
	jwtString, err := buildJWTString(bookingID, secret, now)
	if err != nil {
		return http.Cookie{}, fmt.Errorf("failed to issue confirmation: %w", err)
	}
	return http.Cookie{
		Name:     CookieName,
		Value:    jwtString,
		Path:     "/",
		MaxAge:   int(TokenExpire.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ExpiredCookie clears the confirmation cookie in the browser.
func ExpiredCookie() http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func CheckToken(tokenString string, secret []byte) (Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, serviceerrs.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("failed to parse token %w", err)
	}
	if claims.BookingID <= 0 {
		return Claims{}, fmt.Errorf("token carries no booking: %w", serviceerrs.ErrNotFound)
	}

	return *claims, nil
}
