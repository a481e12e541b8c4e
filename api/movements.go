package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/PaisanX/PaisanX-Backend/api/apistrings"
	models "github.com/PaisanX/PaisanX-Backend/api/models"
	db "github.com/PaisanX/PaisanX-Backend/db/sqlc"
	basemodels "github.com/PaisanX/PaisanX-Backend/models"
	"github.com/PaisanX/PaisanX-Backend/utils"
	"github.com/gin-gonic/gin"
)

const lastMovementsLimit = 5

type Movements struct {
	server *Server
}

func (m Movements) router(server *Server) {
	m.server = server

	serverGroupV1 := server.router.Group("/api/v1/movements")
	serverGroupV1.GET("", AuthenticatedMiddleware(), m.getMovements)
	serverGroupV1.GET("last", AuthenticatedMiddleware(), m.getLastMovements)
}

func (m *Movements) getMovements(ctx *gin.Context) {
	// Fetch user details
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	movementType := ctx.Query("type")
	if movementType != "" && !db.TransactionType(movementType).Valid() {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidMovementFilter))
		return
	}

	currency := ctx.Query("currency")
	if currency != "" && !db.Currency(currency).Valid() {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidMovementFilter))
		return
	}

	issuer := ctx.Query("issuer")
	if issuer != "" && issuer != string(db.IssuerVisa) && issuer != string(db.IssuerMastercard) {
		ctx.JSON(http.StatusBadRequest, basemodels.NewError(apistrings.InvalidMovementFilter))
		return
	}

	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	params := db.ListTransactionsByUserIDParams{
		UserID:   activeUser.UserID,
		Search:   strings.TrimSpace(ctx.Query("search")),
		Type:     movementType,
		Currency: currency,
		Issuer:   issuer,
		Limit:    int32(limit),
		Offset:   int32((page - 1) * limit),
	}

	movements, err := m.server.store.ListTransactionsByUserID(ctx, params)
	if err != nil {
		m.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Movements Fetched Successfully", models.PaginatedMovementsResponse{
		Movements: models.ToMovementCollectionResponse(movements),
		Pagination: models.Pagination{
			Page:    page,
			Limit:   limit,
			HasMore: len(movements) == limit,
		},
	}))
}

func (m *Movements) getLastMovements(ctx *gin.Context) {
	// Fetch user details
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	movements, err := m.server.store.ListLastTransactionsByUserID(ctx, db.ListLastTransactionsByUserIDParams{
		UserID: activeUser.UserID,
		Limit:  lastMovementsLimit,
	})
	if err != nil {
		m.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("Last Movements Fetched Successfully", models.ToMovementCollectionResponse(movements)))
}
