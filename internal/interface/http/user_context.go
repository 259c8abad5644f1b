package http

import "github.com/gin-gonic/gin"

const userIDKey = "user_id"

func setUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

func getUserID(c *gin.Context) (string, bool) {
	value, ok := c.Get(userIDKey)
	if !ok {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok && userID != ""
}
