package middleware

import (
	"github.com/gin-gonic/gin"

	"smart-task-intake/internal/model"
	"smart-task-intake/pkg/response"
)

const scopeKey = "caller_scope"

// Headers the edge (gateway/auth layer) resolves before traffic reaches us.
// Session handling itself is out of scope for this service.
const (
	HeaderUserID         = "X-User-ID"
	HeaderAccountPurpose = "X-Account-Purpose"
)

// ExtractScope pulls the caller identity from the edge headers into a
// model.Scope and rejects anonymous requests.
func (m Middleware) ExtractScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		purpose := model.AccountPurpose(c.GetHeader(HeaderAccountPurpose))
		if purpose == "" {
			purpose = model.PurposeCustom
		}

		c.Set(scopeKey, model.Scope{UserID: userID, AccountPurpose: purpose})
		c.Next()
	}
}

// ScopeFromContext returns the caller scope stored by ExtractScope.
func ScopeFromContext(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
