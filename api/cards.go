package api

import (
	"net/http"

	"github.com/PaisanX/PaisanX-Backend/api/apistrings"
	models "github.com/PaisanX/PaisanX-Backend/api/models"
	basemodels "github.com/PaisanX/PaisanX-Backend/models"
	"github.com/PaisanX/PaisanX-Backend/utils"
	"github.com/gin-gonic/gin"
)

type Cards struct {
	server *Server
}

func (c Cards) router(server *Server) {
	c.server = server

	serverGroupV1 := server.router.Group("/api/v1/cards")
	serverGroupV1.GET("", AuthenticatedMiddleware(), c.getUserCards)
}

func (c *Cards) getUserCards(ctx *gin.Context) {
	// Fetch user details
	activeUser, err := utils.GetActiveUser(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, basemodels.NewError(apistrings.UserNotFound))
		return
	}

	cards, err := c.server.store.GetCardsByUserID(ctx, activeUser.UserID)
	if err != nil {
		c.server.logger.Error("DB Error", err)
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	ctx.JSON(http.StatusOK, basemodels.NewSuccess("User Cards Fetched Successfully", models.ToCardCollectionResponse(cards)))
}
