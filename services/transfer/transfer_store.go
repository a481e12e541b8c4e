package transfer

import (
	"context"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

type DebitCardParams struct {
	CardID    int64
	UserID    int64
	Currency  db.Currency
	Amount    decimal.Decimal
	Title     string
	Recipient string
}

type DebitCardResult struct {
	Card        db.Card
	Transaction db.Transaction
}

// TransferStore is the ledger's view of the durable store. DebitCard performs
// the balance check, the balance write and the entry append as one atomic
// unit: a concurrent reader sees either both effects or neither.
//
// Implementations return ErrCardNotFound when the card is missing, owned by a
// different user or held in a different currency, and ErrInsufficientFunds
// when the balance cannot cover the amount. Either failure leaves all state
// untouched.
type TransferStore interface {
	DebitCard(ctx context.Context, arg DebitCardParams) (DebitCardResult, error)
}
