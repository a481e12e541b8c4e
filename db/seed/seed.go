// Package seed populates a development database with a known main user plus
// randomized cards and movement history, mirroring the data the mobile client
// is demoed against.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/PaisanX/PaisanX-Backend/services/monitoring/logging"
	"github.com/PaisanX/PaisanX-Backend/utils"
	"github.com/shopspring/decimal"
)

const (
	mainUserEmail    = "soypaisanx@paisanos.io"
	mainUserPassword = "PAISANX2023!$"
)

var currencies = []db.Currency{db.CurrencyUSD, db.CurrencyEUR, db.CurrencyARS}

var issuers = []db.Issuer{db.IssuerVisa, db.IssuerMastercard}

var cashInTitles = []string{
	"Depósito de sueldo",
	"Transferencia recibida",
	"Reembolso",
	"Devolución",
	"Pago de freelance",
}

var cashOutTitles = []string{
	"Compra en Supermercado",
	"Pago de servicio",
	"Pago de restaurante",
	"Pago de internet",
	"Recarga SUBE",
	"Pago de educación",
	"Copago médico",
}

var subscriptionTitles = []string{
	"Adobe",
	"Rappi plus",
	"Spotify",
	"Netflix",
}

var extraUsers = []db.CreateUserParams{
	{Email: "juan.perez@paisanos.io", FirstName: "Juan", LastName: "Pérez"},
	{Email: "maria.lopez@paisanos.io", FirstName: "María", LastName: "López"},
	{Email: "carlos.rodriguez@paisanos.io", FirstName: "Carlos", LastName: "Rodríguez"},
	{Email: "ana.martinez@paisanos.io", FirstName: "Ana", LastName: "Martínez"},
	{Email: "pedro.sanchez@paisanos.io", FirstName: "Pedro", LastName: "Sánchez"},
}

// Run seeds users, cards and transactions. A database that already holds the
// main user is left untouched, so restarts with SEED_DB=true are harmless.
func Run(store *db.Store, logger *logging.Logger) error {
	ctx := context.Background()

	_, err := store.GetUserByEmail(ctx, mainUserEmail)
	if err == nil {
		logger.Info("Seed data already present, skipping")
		return nil
	} else if err != sql.ErrNoRows {
		return fmt.Errorf("check existing seed data: %w", err)
	}

	// Fixed source keeps the generated dataset reproducible across machines.
	r := rand.New(rand.NewSource(42))

	hashed, err := utils.GenerateHashValue(mainUserPassword)
	if err != nil {
		return fmt.Errorf("hash main user password: %w", err)
	}

	users := make([]db.User, 0, len(extraUsers)+1)

	mainUser, err := store.CreateUser(ctx, db.CreateUserParams{
		Email:          mainUserEmail,
		HashedPassword: hashed,
		FirstName:      "Lucas",
		LastName:       "Piputto",
	})
	if err != nil {
		return fmt.Errorf("create main user: %w", err)
	}
	users = append(users, mainUser)

	for _, params := range extraUsers {
		params.HashedPassword = hashed
		user, err := store.CreateUser(ctx, params)
		if err != nil {
			return fmt.Errorf("create user %s: %w", params.Email, err)
		}
		users = append(users, user)
	}

	logger.Info(fmt.Sprintf("Seeded %d users", len(users)))

	var cards []db.Card
	for _, user := range users {
		numCards := 1 + r.Intn(3)
		for i := 0; i < numCards; i++ {
			issuer := issuers[r.Intn(len(issuers))]
			card, err := store.CreateCard(ctx, db.CreateCardParams{
				UserID:     user.ID,
				Issuer:     issuer,
				Name:       fmt.Sprintf("%s %s", issuer, user.FirstName),
				ExpDate:    fmt.Sprintf("20%02d-%02d", 27+r.Intn(4), 1+r.Intn(12)),
				LastDigits: int32(1000 + r.Intn(9000)),
				Balance:    decimal.NewFromInt(int64(r.Intn(50000))).Add(decimal.NewFromInt(int64(r.Intn(100))).Div(decimal.NewFromInt(100))),
				Currency:   currencies[r.Intn(len(currencies))],
			})
			if err != nil {
				return fmt.Errorf("create card for user %d: %w", user.ID, err)
			}
			cards = append(cards, card)
		}
	}

	logger.Info(fmt.Sprintf("Seeded %d cards", len(cards)))

	total := 0
	for _, card := range cards {
		numTransactions := 5 + r.Intn(16)
		for i := 0; i < numTransactions; i++ {
			txType, title := randomMovement(r)
			amount := decimal.NewFromInt(int64(10 + r.Intn(4990))).Add(decimal.NewFromInt(int64(r.Intn(100))).Div(decimal.NewFromInt(100)))

			_, err := store.CreateTransaction(ctx, db.CreateTransactionParams{
				Title:    title,
				Amount:   amount,
				Currency: card.Currency,
				Type:     txType,
				CardID:   card.ID,
			})
			if err != nil {
				return fmt.Errorf("create transaction for card %d: %w", card.ID, err)
			}
			total++
		}
	}

	logger.Info(fmt.Sprintf("Seeded %d transactions", total))

	return nil
}

func randomMovement(r *rand.Rand) (db.TransactionType, string) {
	switch r.Intn(3) {
	case 0:
		return db.TransactionTypeCashIn, cashInTitles[r.Intn(len(cashInTitles))]
	case 1:
		return db.TransactionTypeCashOut, cashOutTitles[r.Intn(len(cashOutTitles))]
	default:
		return db.TransactionTypeSus, subscriptionTitles[r.Intn(len(subscriptionTitles))]
	}
}
