package models

import (
	"time"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
)

type MovementCollectionResponse []MovementResponse

type MovementResponse struct {
	ID        int64              `json:"id"`
	Title     string             `json:"title"`
	Amount    string             `json:"amount"`
	Currency  db.Currency        `json:"currency"`
	Type      db.TransactionType `json:"type"`
	Recipient string             `json:"recipient,omitempty"`
	CardID    int64              `json:"cardId"`
	CreatedAt time.Time          `json:"createdAt"`
}

type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type PaginatedMovementsResponse struct {
	Movements  MovementCollectionResponse `json:"movements"`
	Pagination Pagination                 `json:"pagination"`
}

func ToMovementResponse(tx *db.Transaction) MovementResponse {
	return MovementResponse{
		ID:        tx.ID,
		Title:     tx.Title,
		Amount:    tx.Amount.StringFixed(2),
		Currency:  tx.Currency,
		Type:      tx.Type,
		Recipient: tx.Recipient.String,
		CardID:    tx.CardID,
		CreatedAt: tx.CreatedAt,
	}
}

func ToMovementCollectionResponse(txs []db.Transaction) MovementCollectionResponse {
	responses := make(MovementCollectionResponse, 0, len(txs))
	for i := range txs {
		responses = append(responses, ToMovementResponse(&txs[i]))
	}
	return responses
}
