package wallet

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/talx-hub/rez-booking/internal/model"
)

type TransactionType string

const (
	TypeCashback TransactionType = "cashback"
	TypeCredit   TransactionType = "credit"
)

type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Amount      model.Coins     `json:"amount"`
}

type Wallet struct {
	Transactions []Transaction `json:"transactions"`
	Balance      model.Coins   `json:"balance"`
	UserID       int64         `json:"userId"`
}

// Empty is the zero-balance wallet reported for users that have none yet.
func Empty(userID int64) Wallet {
	return Wallet{
		UserID:       userID,
		Transactions: []Transaction{},
	}
}

// Apply appends t and moves the balance by its amount.
func (w *Wallet) Apply(t Transaction) {
	w.Transactions = append(w.Transactions, t)
	w.Balance = w.Balance.Add(t.Amount)
}

func (w Wallet) Clone() Wallet {
	w.Transactions = slices.Clone(w.Transactions)
	if w.Transactions == nil {
		w.Transactions = []Transaction{}
	}
	return w
}

// NewestFirst returns the transactions sorted by descending date.
func (w Wallet) NewestFirst() []Transaction {
	sorted := slices.Clone(w.Transactions)
	slices.SortStableFunc(sorted, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return sorted
}

// NewTransactionID returns a time-ordered UUIDv7 string.
func NewTransactionID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}
	return id.String(), nil
}
