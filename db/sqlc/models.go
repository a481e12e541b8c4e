package db

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyARS Currency = "ARS"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyARS:
		return true
	}
	return false
}

type Issuer string

const (
	IssuerVisa       Issuer = "VISA"
	IssuerMastercard Issuer = "MASTERCARD"
)

type TransactionType string

const (
	TransactionTypeCashIn  TransactionType = "CASH_IN"
	TransactionTypeCashOut TransactionType = "CASH_OUT"
	TransactionTypeSus     TransactionType = "SUS"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeCashIn, TransactionTypeCashOut, TransactionTypeSus:
		return true
	}
	return false
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"hashed_password"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Card struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Issuer     Issuer          `json:"issuer"`
	Name       string          `json:"name"`
	ExpDate    string          `json:"exp_date"`
	LastDigits int32           `json:"last_digits"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   Currency        `json:"currency"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type Transaction struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Type      TransactionType `json:"type"`
	Recipient sql.NullString  `json:"recipient"`
	CardID    int64           `json:"card_id"`
	CreatedAt time.Time       `json:"created_at"`
}
