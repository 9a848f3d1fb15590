package model

import "time"

const DefaultTimeout = 3 * time.Second
const DefaultShutdownTimeout = 5 * time.Second

// DefaultMaxInFlight caps concurrent requests from the web client to the API.
const DefaultMaxInFlight = 16

const HeaderContentType = "Content-Type"
const ContentTypeJSON = "application/json"

const KeyLoggerError = "error"

// CashbackMultiplier is the number of coins credited per 1% of merchant cashback.
const CashbackMultiplier = 10

// CoinToINR is the rupee value of a single coin.
const CoinToINR = 0.1

type ContextKey string

const (
	KeyContextLogger    ContextKey = "logger"
	KeyContextBookingID ContextKey = "booking_id"
)
