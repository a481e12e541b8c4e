package transfer

import (
	"context"
	"database/sql"
	"sync"
	"time"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
)

// MemoryStore is an in-memory TransferStore with the same atomicity contract
// as SQLStore. A single mutex guards the card and entry state, so the
// check-then-act on a balance cannot interleave between two debits.
type MemoryStore struct {
	mu           sync.Mutex
	cards        map[int64]db.Card
	transactions []db.Transaction
	nextTxID     int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cards:    make(map[int64]db.Card),
		nextTxID: 1,
	}
}

func (m *MemoryStore) PutCard(card db.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards[card.ID] = card
}

func (m *MemoryStore) Card(id int64) (db.Card, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[id]
	return card, ok
}

func (m *MemoryStore) Transactions() []db.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]db.Transaction, len(m.transactions))
	copy(copied, m.transactions)
	return copied
}

func (m *MemoryStore) DebitCard(_ context.Context, arg DebitCardParams) (DebitCardResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	card, ok := m.cards[arg.CardID]
	if !ok || card.UserID != arg.UserID || card.Currency != arg.Currency {
		return DebitCardResult{}, ErrCardNotFound
	}

	if card.Balance.LessThan(arg.Amount) {
		return DebitCardResult{}, ErrInsufficientFunds
	}

	card.Balance = card.Balance.Sub(arg.Amount)
	card.UpdatedAt = time.Now()
	m.cards[card.ID] = card

	tx := db.Transaction{
		ID:        m.nextTxID,
		Title:     arg.Title,
		Amount:    arg.Amount,
		Currency:  arg.Currency,
		Type:      db.TransactionTypeCashOut,
		Recipient: sql.NullString{String: arg.Recipient, Valid: arg.Recipient != ""},
		CardID:    card.ID,
		CreatedAt: time.Now(),
	}
	m.nextTxID++
	m.transactions = append(m.transactions, tx)

	return DebitCardResult{Card: card, Transaction: tx}, nil
}
