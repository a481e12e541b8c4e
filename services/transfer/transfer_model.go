package transfer

import (
	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/shopspring/decimal"
)

type TransferParams struct {
	UserID    int64
	CardID    int64
	Amount    decimal.Decimal
	Currency  db.Currency
	Recipient recipient.Recipient
}

type TransferResult struct {
	TransactionID int64           `json:"transactionId"`
	NewBalance    decimal.Decimal `json:"newBalance"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      db.Currency     `json:"currency"`
}

// Account-number transfers post with a generic title; alias transfers carry
// the alias itself. Either way the entry records the recipient identifier.
func entryTitle(r recipient.Recipient) string {
	if r.Type == recipient.AccountTypeAccount {
		return "Transferencia"
	}
	return r.Identifier
}
