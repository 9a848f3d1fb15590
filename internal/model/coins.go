package model

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// Coins is an amount of ReZ Coins. It is encoded as a bare JSON number.
type Coins struct {
	value decimal.Decimal
}

func NewCoins(n int64) Coins {
	return Coins{value: decimal.NewFromInt(n)}
}

func CoinsFromFloat(amount float64) (Coins, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Coins{}, errors.New("coin amount must be a finite number")
	}
	return Coins{value: decimal.NewFromFloat(amount)}, nil
}

// CashbackFor returns the coins earned for a booking at the given cashback percentage.
func CashbackFor(percent float64) Coins {
	return Coins{
		value: decimal.NewFromFloat(percent).
			Mul(decimal.NewFromInt(CashbackMultiplier)).
			Round(0),
	}
}

func (c Coins) Add(other Coins) Coins {
	return Coins{value: c.value.Add(other.value)}
}

func (c Coins) Equal(other Coins) bool {
	return c.value.Equal(other.value)
}

func (c Coins) IsZero() bool {
	return c.value.IsZero()
}

func (c Coins) ToINR() float64 {
	f, _ := c.value.Mul(decimal.NewFromFloat(CoinToINR)).Float64()
	return f
}

func (c Coins) ToFloat64() float64 {
	f, _ := c.value.Float64()
	return f
}

func (c Coins) String() string {
	return c.value.String()
}

func (c Coins) MarshalJSON() ([]byte, error) {
	return []byte(c.value.String()), nil
}

func (c *Coins) UnmarshalJSON(b []byte) error {
	if err := c.value.UnmarshalJSON(b); err != nil {
		return errors.New("coin amount must be a number")
	}
	return nil
}
