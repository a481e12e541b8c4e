package models

import (
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/PaisanX/PaisanX-Backend/services/transfer"
)

type SendMoneyParams struct {
	RecipientIdentifier  string  `json:"recipientIdentifier" binding:"required"`
	RecipientAccountType string  `json:"recipientAccountType" binding:"required,oneof=alias account"`
	Amount               float64 `json:"amount" binding:"required,gt=0"`
	Currency             string  `json:"currency" binding:"required"`
	CardID               int64   `json:"cardId" binding:"required,gt=0"`
}

type TransferRecipientResponse struct {
	Identifier string                `json:"identifier"`
	Type       recipient.AccountType `json:"type"`
}

type SendMoneyResponse struct {
	TransactionID int64                     `json:"transactionId"`
	NewBalance    string                    `json:"newBalance"`
	Amount        string                    `json:"amount"`
	Currency      string                    `json:"currency"`
	Recipient     TransferRecipientResponse `json:"recipient"`
}

func ToSendMoneyResponse(result *transfer.TransferResult, match *recipient.Recipient) SendMoneyResponse {
	return SendMoneyResponse{
		TransactionID: result.TransactionID,
		NewBalance:    result.NewBalance.StringFixed(2),
		Amount:        result.Amount.StringFixed(2),
		Currency:      string(result.Currency),
		Recipient: TransferRecipientResponse{
			Identifier: match.Identifier,
			Type:       match.Type,
		},
	}
}

type ValidateRecipientParams struct {
	Identifier string `json:"identifier" binding:"required"`
}

type ValidateRecipientResponse struct {
	Identifier  string                `json:"identifier"`
	AccountType recipient.AccountType `json:"accountType"`
	HolderName  string                `json:"holderName"`
	Validated   bool                  `json:"validated"`
}

func ToValidateRecipientResponse(match *recipient.Recipient) ValidateRecipientResponse {
	return ValidateRecipientResponse{
		Identifier:  match.Identifier,
		AccountType: match.Type,
		HolderName:  match.HolderName,
		Validated:   true,
	}
}
