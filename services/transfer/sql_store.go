package transfer

import (
	"context"
	"database/sql"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/lib/pq"
)

// SQLStore executes the debit against postgres. The row lock taken by
// GetCardForUpdate serializes concurrent debits on the same card, so the
// sufficiency check and the write cannot race.
type SQLStore struct {
	store *db.Store
}

func NewSQLStore(store *db.Store) *SQLStore {
	return &SQLStore{store: store}
}

func (s *SQLStore) DebitCard(ctx context.Context, arg DebitCardParams) (DebitCardResult, error) {
	var result DebitCardResult

	err := s.store.ExecTx(ctx, func(q *db.Queries) error {
		card, err := q.GetCardForUpdate(ctx, arg.CardID)
		if err == sql.ErrNoRows {
			return ErrCardNotFound
		} else if err != nil {
			return err
		}

		// Ownership and currency mismatches are indistinguishable from a
		// missing card on purpose.
		if card.UserID != arg.UserID || card.Currency != arg.Currency {
			return ErrCardNotFound
		}

		if card.Balance.LessThan(arg.Amount) {
			return ErrInsufficientFunds
		}

		updatedCard, err := q.UpdateCardBalance(ctx, db.UpdateCardBalanceParams{
			ID:      card.ID,
			Balance: card.Balance.Sub(arg.Amount),
		})
		if err != nil {
			// The balance check constraint backs up the in-transaction check.
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == db.CheckViolation {
				return ErrInsufficientFunds
			}
			return err
		}

		tx, err := q.CreateTransaction(ctx, db.CreateTransactionParams{
			Title:     arg.Title,
			Amount:    arg.Amount,
			Currency:  arg.Currency,
			Type:      db.TransactionTypeCashOut,
			Recipient: sql.NullString{String: arg.Recipient, Valid: arg.Recipient != ""},
			CardID:    card.ID,
		})
		if err != nil {
			return err
		}

		result = DebitCardResult{
			Card:        updatedCard,
			Transaction: tx,
		}
		return nil
	})

	return result, err
}
