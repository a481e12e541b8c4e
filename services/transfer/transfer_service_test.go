package transfer

import (
	"context"
	"sync"
	"testing"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/PaisanX/PaisanX-Backend/services/events"
	"github.com/PaisanX/PaisanX-Backend/services/monitoring/logging"
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = int64(1)
	otherUserID = int64(2)
	testCardID  = int64(10)
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(store TransferStore, publisher events.Publisher) *Service {
	logger := &logging.Logger{Logger: logrus.New()}
	return NewService(store, publisher, nil, logger)
}

func newStoreWithCard(balance string, currency db.Currency) *MemoryStore {
	store := NewMemoryStore()
	store.PutCard(db.Card{
		ID:       testCardID,
		UserID:   testUserID,
		Issuer:   db.IssuerVisa,
		Name:     "VISA Lucas",
		Currency: currency,
		Balance:  dec(balance),
	})
	return store
}

func aliasRecipient(identifier, holder string) recipient.Recipient {
	return recipient.Recipient{Identifier: identifier, Type: recipient.AccountTypeAlias, HolderName: holder}
}

func TestTransferSuccess(t *testing.T) {
	store := newStoreWithCard("500.00", db.CurrencyARS)
	service := newTestService(store, nil)

	result, err := service.Transfer(context.Background(), TransferParams{
		UserID:    testUserID,
		CardID:    testCardID,
		Amount:    dec("150.50"),
		Currency:  db.CurrencyARS,
		Recipient: aliasRecipient("maria.lopez", "María López"),
	})
	require.NoError(t, err)

	assert.True(t, result.NewBalance.Equal(dec("349.50")), "new balance should be 349.50, got %s", result.NewBalance)
	assert.True(t, result.Amount.Equal(dec("150.50")))
	assert.Equal(t, db.CurrencyARS, result.Currency)

	card, ok := store.Card(testCardID)
	require.True(t, ok)
	assert.True(t, card.Balance.Equal(dec("349.50")))

	txs := store.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, result.TransactionID, txs[0].ID)
	assert.Equal(t, db.TransactionTypeCashOut, txs[0].Type)
	assert.Equal(t, "maria.lopez", txs[0].Title)
	assert.Equal(t, "maria.lopez", txs[0].Recipient.String)
	assert.True(t, txs[0].Amount.Equal(dec("150.50")))
}

func TestTransferCBUTitleIsGeneric(t *testing.T) {
	store := newStoreWithCard("500.00", db.CurrencyARS)
	service := newTestService(store, nil)

	_, err := service.Transfer(context.Background(), TransferParams{
		UserID:   testUserID,
		CardID:   testCardID,
		Amount:   dec("100.00"),
		Currency: db.CurrencyARS,
		Recipient: recipient.Recipient{
			Identifier: "0000003100010075622001",
			Type:       recipient.AccountTypeAccount,
			HolderName: "Juan Pérez",
		},
	})
	require.NoError(t, err)

	txs := store.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, "Transferencia", txs[0].Title)
	// The recipient reference is still recorded on the entry.
	assert.Equal(t, "0000003100010075622001", txs[0].Recipient.String)
}

func TestTransferInsufficientFunds(t *testing.T) {
	store := newStoreWithCard("100.00", db.CurrencyARS)
	service := newTestService(store, nil)

	_, err := service.Transfer(context.Background(), TransferParams{
		UserID:    testUserID,
		CardID:    testCardID,
		Amount:    dec("100.01"),
		Currency:  db.CurrencyARS,
		Recipient: aliasRecipient("juan.perez", "Juan Pérez"),
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	// Failure leaves all state untouched.
	card, _ := store.Card(testCardID)
	assert.True(t, card.Balance.Equal(dec("100.00")))
	assert.Empty(t, store.Transactions())
}

func TestTransferNonPositiveAmount(t *testing.T) {
	store := newStoreWithCard("100.00", db.CurrencyARS)
	service := newTestService(store, nil)

	for _, amount := range []string{"0", "-1", "-0.01"} {
		_, err := service.Transfer(context.Background(), TransferParams{
			UserID:    testUserID,
			CardID:    testCardID,
			Amount:    dec(amount),
			Currency:  db.CurrencyARS,
			Recipient: aliasRecipient("juan.perez", "Juan Pérez"),
		})
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %s", amount)
	}

	assert.Empty(t, store.Transactions())
}

func TestTransferCardLookupFailures(t *testing.T) {
	testCases := []struct {
		name     string
		userID   int64
		cardID   int64
		currency db.Currency
	}{
		{name: "unknown card", userID: testUserID, cardID: 999, currency: db.CurrencyARS},
		{name: "card owned by another user", userID: otherUserID, cardID: testCardID, currency: db.CurrencyARS},
		{name: "currency mismatch", userID: testUserID, cardID: testCardID, currency: db.CurrencyUSD},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := newStoreWithCard("1000.00", db.CurrencyARS)
			service := newTestService(store, nil)

			_, err := service.Transfer(context.Background(), TransferParams{
				UserID:    tc.userID,
				CardID:    tc.cardID,
				Amount:    dec("10.00"),
				Currency:  tc.currency,
				Recipient: aliasRecipient("juan.perez", "Juan Pérez"),
			})
			// All three are indistinguishable to the caller.
			assert.ErrorIs(t, err, ErrCardNotFound)
			assert.Empty(t, store.Transactions())
		})
	}
}

func TestConcurrentTransfersNeverOverdraw(t *testing.T) {
	store := newStoreWithCard("100.00", db.CurrencyARS)
	service := newTestService(store, nil)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Transfer(context.Background(), TransferParams{
				UserID:    testUserID,
				CardID:    testCardID,
				Amount:    dec("60.00"),
				Currency:  db.CurrencyARS,
				Recipient: aliasRecipient("juan.perez", "Juan Pérez"),
			})
		}(i)
	}
	wg.Wait()

	var successes, failures int
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientFunds)
			failures++
		}
	}

	assert.Equal(t, 1, successes, "exactly one transfer must succeed")
	assert.Equal(t, 1, failures, "exactly one transfer must fail")

	card, _ := store.Card(testCardID)
	assert.True(t, card.Balance.Equal(dec("40.00")), "final balance should be 40.00, got %s", card.Balance)
	assert.False(t, card.Balance.IsNegative())
	assert.Len(t, store.Transactions(), 1)
}

func TestTransferPublishesEvent(t *testing.T) {
	store := newStoreWithCard("500.00", db.CurrencyUSD)
	publisher := &capturingPublisher{}
	service := newTestService(store, publisher)

	result, err := service.Transfer(context.Background(), TransferParams{
		UserID:    testUserID,
		CardID:    testCardID,
		Amount:    dec("25.00"),
		Currency:  db.CurrencyUSD,
		Recipient: aliasRecipient("test.user", "Usuario Test"),
	})
	require.NoError(t, err)

	require.Len(t, publisher.published, 1)
	event := publisher.published[0]
	assert.Equal(t, result.TransactionID, event.TransactionID)
	assert.Equal(t, testUserID, event.UserID)
	assert.Equal(t, "test.user", event.Recipient)
	assert.True(t, event.Amount.Equal(dec("25.00")))
}

type capturingPublisher struct {
	mu        sync.Mutex
	published []events.TransferCompleted
}

func (p *capturingPublisher) Publish(_ context.Context, event events.TransferCompleted) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, event)
	return nil
}
