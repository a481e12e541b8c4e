package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// GetActiveUser returns the token subject that the auth middleware stored on
// the request context. A missing or foreign value means the route was wired
// without the middleware.
func GetActiveUser(ctx *gin.Context) (TokenObject, error) {
	value, exists := ctx.Get("user")
	if !exists {
		return TokenObject{}, fmt.Errorf("no authenticated user on this request")
	}

	user, ok := value.(TokenObject)
	if !ok {
		return TokenObject{}, fmt.Errorf("unexpected user value on this request")
	}

	return user, nil
}
