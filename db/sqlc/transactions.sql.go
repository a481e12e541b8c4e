package db

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

const createTransaction = `
INSERT INTO transactions (title, amount, currency, type, recipient, card_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, title, amount, currency, type, recipient, card_id, created_at
`

type CreateTransactionParams struct {
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Type      TransactionType `json:"type"`
	Recipient sql.NullString  `json:"recipient"`
	CardID    int64           `json:"card_id"`
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRowContext(ctx, createTransaction,
		arg.Title,
		arg.Amount,
		arg.Currency,
		arg.Type,
		arg.Recipient,
		arg.CardID,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Amount,
		&i.Currency,
		&i.Type,
		&i.Recipient,
		&i.CardID,
		&i.CreatedAt,
	)
	return i, err
}

const listTransactionsByUserID = `
SELECT t.id, t.title, t.amount, t.currency, t.type, t.recipient, t.card_id, t.created_at
FROM transactions t
JOIN cards c ON c.id = t.card_id
WHERE c.user_id = $1
  AND ($2 = '' OR t.title ILIKE '%' || $2 || '%')
  AND ($3 = '' OR t.type::text = $3)
  AND ($4 = '' OR t.currency::text = $4)
  AND ($5 = '' OR c.issuer::text = $5)
ORDER BY t.created_at DESC
LIMIT $6 OFFSET $7
`

type ListTransactionsByUserIDParams struct {
	UserID   int64  `json:"user_id"`
	Search   string `json:"search"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Issuer   string `json:"issuer"`
	Limit    int32  `json:"limit"`
	Offset   int32  `json:"offset"`
}

func (q *Queries) ListTransactionsByUserID(ctx context.Context, arg ListTransactionsByUserIDParams) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, listTransactionsByUserID,
		arg.UserID,
		arg.Search,
		arg.Type,
		arg.Currency,
		arg.Issuer,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transaction
	for rows.Next() {
		var i Transaction
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Amount,
			&i.Currency,
			&i.Type,
			&i.Recipient,
			&i.CardID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listLastTransactionsByUserID = `
SELECT t.id, t.title, t.amount, t.currency, t.type, t.recipient, t.card_id, t.created_at
FROM transactions t
JOIN cards c ON c.id = t.card_id
WHERE c.user_id = $1
ORDER BY t.created_at DESC
LIMIT $2
`

type ListLastTransactionsByUserIDParams struct {
	UserID int64 `json:"user_id"`
	Limit  int32 `json:"limit"`
}

func (q *Queries) ListLastTransactionsByUserID(ctx context.Context, arg ListLastTransactionsByUserIDParams) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, listLastTransactionsByUserID, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Transaction
	for rows.Next() {
		var i Transaction
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Amount,
			&i.Currency,
			&i.Type,
			&i.Recipient,
			&i.CardID,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
