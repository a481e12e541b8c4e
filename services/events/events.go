package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransferCompleted is emitted after a transfer has committed. Downstream
// consumers (notifications, analytics) react to it off the request path.
type TransferCompleted struct {
	TransactionID int64           `json:"transaction_id"`
	UserID        int64           `json:"user_id"`
	CardID        int64           `json:"card_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Recipient     string          `json:"recipient"`
	CompletedAt   time.Time       `json:"completed_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event TransferCompleted) error
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TransferCompleted) error {
	return nil
}
