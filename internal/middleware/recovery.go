package middleware

import (
	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses instead of killing the process.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
