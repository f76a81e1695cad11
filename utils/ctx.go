package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the account id the auth middleware stored on the
// request, or 0 when the request is unauthenticated.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("userId"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
