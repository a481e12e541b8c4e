package models

import (
	"time"

	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
)

type CardCollectionResponse []CardResponse

type CardResponse struct {
	ID         int64       `json:"id"`
	Issuer     db.Issuer   `json:"issuer"`
	Name       string      `json:"name"`
	ExpDate    string      `json:"expDate"`
	LastDigits int32       `json:"lastDigits"`
	Balance    string      `json:"balance"`
	Currency   db.Currency `json:"currency"`
	CreatedAt  time.Time   `json:"created_at"`
}

func ToCardResponse(card *db.Card) CardResponse {
	return CardResponse{
		ID:         card.ID,
		Issuer:     card.Issuer,
		Name:       card.Name,
		ExpDate:    card.ExpDate,
		LastDigits: card.LastDigits,
		Balance:    card.Balance.StringFixed(2),
		Currency:   card.Currency,
		CreatedAt:  card.CreatedAt,
	}
}

func ToCardCollectionResponse(cards []db.Card) CardCollectionResponse {
	responses := make(CardCollectionResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, ToCardResponse(&cards[i]))
	}
	return responses
}
