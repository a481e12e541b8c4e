// Package flow models the send-money user flow as a four-state machine:
// AwaitingRecipient -> AwaitingAmount -> AwaitingConfirmation -> Completed.
// Each state carries only the data valid at that point, and transitions are
// functions from (state, input) to the next state, so an embedding client
// cannot reach a confirmation step without a resolved recipient.
package flow

import (
	"context"
	"fmt"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/PaisanX/PaisanX-Backend/services/transfer"
	"github.com/shopspring/decimal"
)

var (
	ErrNoCardSelected = fmt.Errorf("select a card to send from")
	ErrAmountRequired = fmt.Errorf("enter an amount greater than zero")
	ErrExceedsBalance = fmt.Errorf("amount exceeds the selected card's balance")
	ErrWrongCurrency  = fmt.Errorf("selected card does not match the chosen currency")
)

// Resolver is the recipient lookup consumed at step one.
type Resolver interface {
	Resolve(ctx context.Context, identifier string) (*recipient.Recipient, error)
}

// Ledger is the transfer executor invoked at confirmation.
type Ledger interface {
	Transfer(ctx context.Context, params transfer.TransferParams) (*transfer.TransferResult, error)
}

// State is the closed set of flow states.
type State interface {
	isState()
}

type AwaitingRecipient struct{}

type AwaitingAmount struct {
	Recipient recipient.Recipient
}

type AwaitingConfirmation struct {
	Recipient recipient.Recipient
	Card      db.Card
	Amount    decimal.Decimal
	Currency  db.Currency
}

type Completed struct {
	Result transfer.TransferResult
}

func (AwaitingRecipient) isState()    {}
func (AwaitingAmount) isState()       {}
func (AwaitingConfirmation) isState() {}
func (Completed) isState()            {}

// NewFlow starts a fresh flow instance.
func NewFlow() State {
	return AwaitingRecipient{}
}

// SubmitRecipient resolves the identifier. On failure the flow stays at step
// one and the error is surfaced for re-prompting.
func SubmitRecipient(ctx context.Context, s AwaitingRecipient, resolver Resolver, identifier string) (State, error) {
	match, err := resolver.Resolve(ctx, identifier)
	if err != nil {
		return s, err
	}
	return AwaitingAmount{Recipient: *match}, nil
}

// EligibleCards filters the user's cards down to those holding the selected
// currency; only these are selectable as a funding source.
func EligibleCards(cards []db.Card, currency db.Currency) []db.Card {
	var eligible []db.Card
	for _, c := range cards {
		if c.Currency == currency {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// SubmitAmount validates the captured amount and funding source. The balance
// check here is a pre-check for immediate feedback; the ledger re-checks
// authoritatively under the store's lock.
func SubmitAmount(s AwaitingAmount, card db.Card, amount decimal.Decimal, currency db.Currency) (State, error) {
	if card.ID == 0 {
		return s, ErrNoCardSelected
	}
	if card.Currency != currency {
		return s, ErrWrongCurrency
	}
	if !amount.IsPositive() {
		return s, ErrAmountRequired
	}
	if amount.GreaterThan(card.Balance) {
		return s, ErrExceedsBalance
	}

	return AwaitingConfirmation{
		Recipient: s.Recipient,
		Card:      card,
		Amount:    amount,
		Currency:  currency,
	}, nil
}

// Confirm executes the transfer. On failure the confirmation state is kept
// intact so the user can retry without re-entering prior steps.
func Confirm(ctx context.Context, s AwaitingConfirmation, ledger Ledger, userID int64) (State, error) {
	result, err := ledger.Transfer(ctx, transfer.TransferParams{
		UserID:    userID,
		CardID:    s.Card.ID,
		Amount:    s.Amount,
		Currency:  s.Currency,
		Recipient: s.Recipient,
	})
	if err != nil {
		return s, err
	}
	return Completed{Result: *result}, nil
}

// Back steps the flow one state backwards. Moving back to step one drops the
// resolved recipient, so re-entry requires re-resolving; moving back from
// confirmation keeps the recipient and drops only the amount capture.
func Back(s State) State {
	switch st := s.(type) {
	case AwaitingAmount:
		return AwaitingRecipient{}
	case AwaitingConfirmation:
		return AwaitingAmount{Recipient: st.Recipient}
	default:
		return s
	}
}

// Reset abandons the flow instance, clearing all captured data.
func Reset() State {
	return AwaitingRecipient{}
}
