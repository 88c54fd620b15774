package handler

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into the JSON error envelope. The stack is
// logged with method and path; it is echoed to the client only outside
// production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		stack := string(debug.Stack())
		log.Printf("panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)

		resp := newErrorResponse(http.StatusInternalServerError, c.Request.URL.Path, "Internal Server Error")
		if !production {
			resp.Stack = stack
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}
