package db

import (
	"context"

	"github.com/shopspring/decimal"
)

const createCard = `
INSERT INTO cards (user_id, issuer, name, exp_date, last_digits, balance, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, issuer, name, exp_date, last_digits, balance, currency, created_at, updated_at
`

type CreateCardParams struct {
	UserID     int64           `json:"user_id"`
	Issuer     Issuer          `json:"issuer"`
	Name       string          `json:"name"`
	ExpDate    string          `json:"exp_date"`
	LastDigits int32           `json:"last_digits"`
	Balance    decimal.Decimal `json:"balance"`
	Currency   Currency        `json:"currency"`
}

func (q *Queries) CreateCard(ctx context.Context, arg CreateCardParams) (Card, error) {
	row := q.db.QueryRowContext(ctx, createCard,
		arg.UserID,
		arg.Issuer,
		arg.Name,
		arg.ExpDate,
		arg.LastDigits,
		arg.Balance,
		arg.Currency,
	)
	var i Card
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Issuer,
		&i.Name,
		&i.ExpDate,
		&i.LastDigits,
		&i.Balance,
		&i.Currency,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCardsByUserID = `
SELECT id, user_id, issuer, name, exp_date, last_digits, balance, currency, created_at, updated_at
FROM cards
WHERE user_id = $1
ORDER BY id
`

func (q *Queries) GetCardsByUserID(ctx context.Context, userID int64) ([]Card, error) {
	rows, err := q.db.QueryContext(ctx, getCardsByUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Card
	for rows.Next() {
		var i Card
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Issuer,
			&i.Name,
			&i.ExpDate,
			&i.LastDigits,
			&i.Balance,
			&i.Currency,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const getUserCard = `
SELECT id, user_id, issuer, name, exp_date, last_digits, balance, currency, created_at, updated_at
FROM cards
WHERE id = $1 AND user_id = $2 AND currency = $3
LIMIT 1
`

type GetUserCardParams struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"user_id"`
	Currency Currency `json:"currency"`
}

func (q *Queries) GetUserCard(ctx context.Context, arg GetUserCardParams) (Card, error) {
	row := q.db.QueryRowContext(ctx, getUserCard, arg.ID, arg.UserID, arg.Currency)
	var i Card
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Issuer,
		&i.Name,
		&i.ExpDate,
		&i.LastDigits,
		&i.Balance,
		&i.Currency,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCardForUpdate = `
SELECT id, user_id, issuer, name, exp_date, last_digits, balance, currency, created_at, updated_at
FROM cards
WHERE id = $1
LIMIT 1
FOR NO KEY UPDATE
`

// GetCardForUpdate takes a row lock on the card so concurrent debits against
// the same card serialize at the store.
func (q *Queries) GetCardForUpdate(ctx context.Context, id int64) (Card, error) {
	row := q.db.QueryRowContext(ctx, getCardForUpdate, id)
	var i Card
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Issuer,
		&i.Name,
		&i.ExpDate,
		&i.LastDigits,
		&i.Balance,
		&i.Currency,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateCardBalance = `
UPDATE cards
SET balance = $2, updated_at = now()
WHERE id = $1
RETURNING id, user_id, issuer, name, exp_date, last_digits, balance, currency, created_at, updated_at
`

type UpdateCardBalanceParams struct {
	ID      int64           `json:"id"`
	Balance decimal.Decimal `json:"balance"`
}

func (q *Queries) UpdateCardBalance(ctx context.Context, arg UpdateCardBalanceParams) (Card, error) {
	row := q.db.QueryRowContext(ctx, updateCardBalance, arg.ID, arg.Balance)
	var i Card
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Issuer,
		&i.Name,
		&i.ExpDate,
		&i.LastDigits,
		&i.Balance,
		&i.Currency,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
