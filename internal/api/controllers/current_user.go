package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pressmatch/pkg/utils"
)

// currentUserID reads the authenticated user id set by the JWT
// middleware. Responds 401 and returns false when it is missing or
// malformed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		return uuid.Nil, false
	}
	return userID, true
}
