package db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockQueries(t *testing.T) (*Queries, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return New(conn), mock
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "amount", "currency", "type", "recipient", "card_id", "created_at",
	})
}

func TestListTransactionsByUserID(t *testing.T) {
	q, mock := newMockQueries(t)
	now := time.Now()

	// Enum columns are compared as text so empty-string filter sentinels
	// prepare cleanly against postgres.
	t.Run("empty filters", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("t.type::text = $3")).
			WithArgs(int64(1), "", "", "", "", int32(20), int32(0)).
			WillReturnRows(transactionRows().
				AddRow(int64(7), "Transferencia", "150.50", "ARS", "CASH_OUT", "0000003100010075622001", int64(10), now).
				AddRow(int64(6), "maria.lopez", "99.99", "ARS", "CASH_OUT", "maria.lopez", int64(10), now))

		items, err := q.ListTransactionsByUserID(context.Background(), ListTransactionsByUserIDParams{
			UserID: 1,
			Limit:  20,
			Offset: 0,
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Transferencia", items[0].Title)
		assert.Equal(t, "150.5", items[0].Amount.String())
		assert.Equal(t, TransactionTypeCashOut, items[0].Type)
		assert.True(t, items[0].Recipient.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("all filters forwarded", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("c.issuer::text = $5")).
			WithArgs(int64(1), "super", "CASH_OUT", "ARS", "VISA", int32(10), int32(10)).
			WillReturnRows(transactionRows())

		items, err := q.ListTransactionsByUserID(context.Background(), ListTransactionsByUserIDParams{
			UserID:   1,
			Search:   "super",
			Type:     "CASH_OUT",
			Currency: "ARS",
			Issuer:   "VISA",
			Limit:    10,
			Offset:   10,
		})
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListLastTransactionsByUserID(t *testing.T) {
	q, mock := newMockQueries(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY t.created_at DESC LIMIT $2")).
		WithArgs(int64(1), int32(5)).
		WillReturnRows(transactionRows().
			AddRow(int64(3), "Spotify", "10.00", "USD", "SUS", nil, int64(2), time.Now()))

	items, err := q.ListLastTransactionsByUserID(context.Background(), ListLastTransactionsByUserIDParams{
		UserID: 1,
		Limit:  5,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, TransactionTypeSus, items[0].Type)
	assert.False(t, items[0].Recipient.Valid)
	assert.NoError(t, mock.ExpectationsWereMet())
}
