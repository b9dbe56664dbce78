package httpserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	identitysvc "storefront/internal/service/identity"
)

type createSessionRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// createSessionHandler bridges an externally authenticated user into a
// bearer session. The frontend backend calls it after the identity
// provider has verified the user.
func createSessionHandler(logger *log.Logger, identities *identitysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, logger, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
			return
		}
		token, err := identities.Issue(c.Request.Context(), req.UserID, req.Email)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"token": token})
	}
}

func deleteSessionHandler(logger *log.Logger, identities *identitysvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if err := identities.Revoke(c.Request.Context(), token); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "revoked"})
	}
}
