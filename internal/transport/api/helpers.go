package api

import (
	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/tradesphere/internal/transport/api/middlewares"
)

// getUserIDFromContext возвращает id текущего юзера, положенный в контекст AuthRequired middleware.
// На роутах без авторизации вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	return c.GetInt64(middlewares.CurrentUserIDKey)
}
