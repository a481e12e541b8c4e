package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/PaisanX/PaisanX-Backend/api/apistrings"
	models "github.com/PaisanX/PaisanX-Backend/api/models"
	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	basemodels "github.com/PaisanX/PaisanX-Backend/models"
	"github.com/PaisanX/PaisanX-Backend/services/limits"
	"github.com/PaisanX/PaisanX-Backend/services/recipient"
	"github.com/PaisanX/PaisanX-Backend/services/transfer"
	"github.com/PaisanX/PaisanX-Backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Transfers struct {
	server *Server
}

func (t Transfers) router(server *Server) {
	t.server = server

	serverGroupV1 := server.router.Group("/api/v1/transfers")
	serverGroupV1.POST("send-money", AuthenticatedMiddleware(), t.sendMoney)
	serverGroupV1.POST("validate-recipient", AuthenticatedMiddleware(), t.validateRecipient)
}

func (t *Transfers) sendMoney(ctx *gin.Context) {
	request := new(models.SendMoneyParams)

	if err := ctx.ShouldBindJSON(request); err != nil {
		t.server.logger.Log(logrus.ErrorLevel, err.Error())
		resp := basemodels.NewError(apistrings.InvalidTransferInput)
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				resp.Errors = append(resp.Errors, fmt.Sprintf("invalid value for '%s'", fe.Field()))
			}
		}
		ctx.JSON(http.StatusBadRequest, resp)
		return
	}

	// Fetch user details
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	currency := db.Currency(request.Currency)
	if !currency.Valid() {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.CurrencyNotSupported))
		return
	}

	// Amounts are money: normalize the JSON number to two decimal places
	// before it reaches the ledger.
	amount := decimal.NewFromFloat(request.Amount).Round(2)

	match := recipient.Recipient{
		Identifier: request.RecipientIdentifier,
		Type:       recipient.AccountType(request.RecipientAccountType),
	}

	result, err := t.server.transferService.Transfer(ctx, transfer.TransferParams{
		UserID:    activeUser.UserID,
		CardID:    request.CardID,
		Amount:    amount,
		Currency:  currency,
		Recipient: match,
	})
	if err != nil {
		switch {
		case errors.Is(err, transfer.ErrCardNotFound):
			ctx.JSON(http.StatusNotFound, basemodels.NewError(apistrings.CardNotFound))
		case errors.Is(err, transfer.ErrInsufficientFunds):
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InsufficientBalance))
		case errors.Is(err, transfer.ErrInvalidAmount):
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidTransferInput))
		case errors.Is(err, limits.ErrDailyCapExceeded):
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		default:
			t.server.logger.Error("Transfer error", err)
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		}
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(apistrings.TransferCompleted, models.ToSendMoneyResponse(result, &match)))
}

func (t *Transfers) validateRecipient(ctx *gin.Context) {
	request := new(models.ValidateRecipientParams)

	if err := ctx.ShouldBindJSON(request); err != nil {
		t.server.logger.Log(logrus.ErrorLevel, err.Error())
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidRecipientInput))
		return
	}

	if _, err := utils.GetActiveUser(ctx); err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	match, err := t.server.recipientService.Resolve(ctx, request.Identifier)
	if err != nil {
		switch {
		case errors.Is(err, recipient.ErrInvalidFormat):
			ctx.JSON(http.StatusBadRequest, basemodels.NewError(err.Error()))
		case errors.Is(err, recipient.ErrAliasNotFound), errors.Is(err, recipient.ErrAccountNotFound):
			ctx.JSON(http.StatusNotFound, basemodels.NewError(err.Error()))
		default:
			t.server.logger.Error("Recipient validation error", err)
			ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		}
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess(apistrings.RecipientValidated, models.ToValidateRecipientResponse(match)))
}
