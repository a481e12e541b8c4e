package transfer

import (
	"context"
	"time"

	"github.com/PaisanX/PaisanX-Backend/services/events"
	"github.com/PaisanX/PaisanX-Backend/services/limits"
	"github.com/PaisanX/PaisanX-Backend/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

type Service struct {
	store     TransferStore
	publisher events.Publisher
	limits    *limits.Service
	logger    *logging.Logger
}

func NewService(store TransferStore, publisher events.Publisher, limitsService *limits.Service, logger *logging.Logger) *Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &Service{
		store:     store,
		publisher: publisher,
		limits:    limitsService,
		logger:    logger,
	}
}

// Transfer debits the card and appends the ledger entry in one atomic unit.
// Precondition order is fixed: amount, then card existence/ownership/currency,
// then balance sufficiency. Any failure leaves the store untouched.
func (s *Service) Transfer(ctx context.Context, params TransferParams) (*TransferResult, error) {
	if !params.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if err := s.limits.Allow(ctx, params.UserID, params.Amount); err != nil {
		return nil, err
	}

	result, err := s.store.DebitCard(ctx, DebitCardParams{
		CardID:    params.CardID,
		UserID:    params.UserID,
		Currency:  params.Currency,
		Amount:    params.Amount,
		Title:     entryTitle(params.Recipient),
		Recipient: params.Recipient.Identifier,
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"transaction_id": result.Transaction.ID,
		"card_id":        result.Card.ID,
		"amount":         params.Amount.String(),
		"currency":       params.Currency,
	}).Info("transfer completed successfully")

	// Post-commit side effects are best-effort: the transfer already stands.
	if err := s.publisher.Publish(ctx, events.TransferCompleted{
		TransactionID: result.Transaction.ID,
		UserID:        params.UserID,
		CardID:        result.Card.ID,
		Amount:        params.Amount,
		Currency:      string(params.Currency),
		Recipient:     params.Recipient.Identifier,
		CompletedAt:   time.Now(),
	}); err != nil {
		s.logger.Error("failed to publish transfer event: ", err)
	}

	if err := s.limits.Track(ctx, params.UserID, params.Amount, string(params.Currency)); err != nil {
		s.logger.Error("failed to track daily transfer: ", err)
	}

	return &TransferResult{
		TransactionID: result.Transaction.ID,
		NewBalance:    result.Card.Balance,
		Amount:        params.Amount,
		Currency:      params.Currency,
	}, nil
}
