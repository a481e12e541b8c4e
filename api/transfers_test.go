package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	"github.com/PaisanX/PaisanX-Backend/services/monitoring/logging"
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/PaisanX/PaisanX-Backend/services/transfer"
	"github.com/PaisanX/PaisanX-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = int64(1)

func newTestServer(t *testing.T, store transfer.TransferStore) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := &logging.Logger{Logger: logrus.New()}
	config := &utils.Config{
		ServerPort: 8080,
		SigningKey: "test-signing-key",
	}
	TokenController = utils.NewJWTToken(config)

	s := &Server{
		router:           gin.New(),
		config:           config,
		logger:           logger,
		recipientService: recipient.NewService(recipient.NewStaticDirectory(), logger),
		transferService:  transfer.NewService(store, nil, nil, logger),
	}
	Transfers{}.router(s)
	return s
}

func newStoreWithCard(t *testing.T, balance string, currency db.Currency) *transfer.MemoryStore {
	t.Helper()
	amount, err := decimal.NewFromString(balance)
	require.NoError(t, err)

	store := transfer.NewMemoryStore()
	store.PutCard(db.Card{
		ID:       10,
		UserID:   testUserID,
		Issuer:   db.IssuerVisa,
		Name:     "VISA Lucas",
		Currency: currency,
		Balance:  amount,
	})
	return store
}

func bearerToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := TokenController.CreateToken(utils.TokenObject{UserID: userID, Email: "soypaisanx@paisanos.io"})
	require.NoError(t, err)
	return "Bearer " + token
}

func performJSON(s *Server, token, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestSendMoney(t *testing.T) {
	sendBody := func(amount float64, cardID int64, currency string) gin.H {
		return gin.H{
			"recipientIdentifier":  "maria.lopez",
			"recipientAccountType": "alias",
			"amount":               amount,
			"currency":             currency,
			"cardId":               cardID,
		}
	}

	t.Run("success", func(t *testing.T) {
		store := newStoreWithCard(t, "500.00", db.CurrencyARS)
		s := newTestServer(t, store)

		rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", sendBody(150.50, 10, "ARS"))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		e := decodeEnvelope(t, rec)
		var data struct {
			TransactionID int64  `json:"transactionId"`
			NewBalance    string `json:"newBalance"`
			Amount        string `json:"amount"`
			Currency      string `json:"currency"`
			Recipient     struct {
				Identifier string `json:"identifier"`
				Type       string `json:"type"`
			} `json:"recipient"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &data))
		assert.Equal(t, "349.50", data.NewBalance)
		assert.Equal(t, "150.50", data.Amount)
		assert.Equal(t, "ARS", data.Currency)
		assert.Equal(t, "maria.lopez", data.Recipient.Identifier)
		assert.Equal(t, "alias", data.Recipient.Type)
		assert.NotZero(t, data.TransactionID)
	})

	t.Run("card not found", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "500.00", db.CurrencyARS))
		rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", sendBody(10, 999, "ARS"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("currency mismatch maps to not found", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "500.00", db.CurrencyARS))
		rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", sendBody(10, 10, "USD"))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "100.00", db.CurrencyARS))
		rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", sendBody(100.01, 10, "ARS"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		e := decodeEnvelope(t, rec)
		assert.Equal(t, "failed", e.Status)
	})

	t.Run("non-positive amount rejected by binding", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "100.00", db.CurrencyARS))
		for _, amount := range []float64{0, -10} {
			rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", sendBody(amount, 10, "ARS"))
			assert.Equal(t, http.StatusBadRequest, rec.Code, fmt.Sprintf("amount %v", amount))
		}
	})

	t.Run("unsupported currency", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "100.00", db.CurrencyARS))
		rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", sendBody(10, 10, "GBP"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "100.00", db.CurrencyARS))
		rec := performJSON(s, bearerToken(t, testUserID), "/api/v1/transfers/send-money", gin.H{"amount": "not-a-number"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		s := newTestServer(t, newStoreWithCard(t, "100.00", db.CurrencyARS))
		rec := performJSON(s, "", "/api/v1/transfers/send-money", sendBody(10, 10, "ARS"))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestValidateRecipient(t *testing.T) {
	s := newTestServer(t, transfer.NewMemoryStore())
	token := bearerToken(t, testUserID)

	t.Run("alias found", func(t *testing.T) {
		rec := performJSON(s, token, "/api/v1/transfers/validate-recipient", gin.H{"identifier": "juan.perez"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		e := decodeEnvelope(t, rec)
		var data struct {
			Identifier  string `json:"identifier"`
			AccountType string `json:"accountType"`
			HolderName  string `json:"holderName"`
			Validated   bool   `json:"validated"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &data))
		assert.Equal(t, "juan.perez", data.Identifier)
		assert.Equal(t, "alias", data.AccountType)
		assert.Equal(t, "Juan Pérez", data.HolderName)
		assert.True(t, data.Validated)
	})

	t.Run("account number found", func(t *testing.T) {
		rec := performJSON(s, token, "/api/v1/transfers/validate-recipient", gin.H{"identifier": "0000003100010075622001"})
		require.Equal(t, http.StatusOK, rec.Code)

		e := decodeEnvelope(t, rec)
		var data struct {
			AccountType string `json:"accountType"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &data))
		assert.Equal(t, "account", data.AccountType)
	})

	t.Run("invalid format", func(t *testing.T) {
		rec := performJSON(s, token, "/api/v1/transfers/validate-recipient", gin.H{"identifier": "abc"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		rec := performJSON(s, token, "/api/v1/transfers/validate-recipient", gin.H{"identifier": "0000003100010075622099"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing identifier", func(t *testing.T) {
		rec := performJSON(s, token, "/api/v1/transfers/validate-recipient", gin.H{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := performJSON(s, "", "/api/v1/transfers/validate-recipient", gin.H{"identifier": "juan.perez"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
