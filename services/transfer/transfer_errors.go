package transfer

import "fmt"

var (
	// ErrCardNotFound covers a missing card, a card owned by someone else and
	// a currency mismatch alike, so callers cannot probe which card ids exist.
	ErrCardNotFound      = fmt.Errorf("card not found or does not belong to user")
	ErrInsufficientFunds = fmt.Errorf("insufficient balance")
	ErrInvalidAmount     = fmt.Errorf("amount must be greater than zero")
)
