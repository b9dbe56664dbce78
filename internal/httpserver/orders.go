package httpserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	ordersvc "storefront/internal/service/order"
)

func placeOrderHandler(logger *log.Logger, orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := identityFrom(c)
		redirectURL, err := orders.Place(c.Request.Context(), identity.UserID, identity.Email)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"redirectUrl": redirectURL})
	}
}

func listOwnOrdersHandler(logger *log.Logger, orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListOwn(c.Request.Context(), identityFrom(c).UserID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func listAllOrdersHandler(logger *log.Logger, orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// confirmPaymentHandler is the checkout return URL. The session id
// decides the outcome; the caller carries no authority, so the response
// never leaks whether the session existed.
func confirmPaymentHandler(logger *log.Logger, orders *ordersvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			writeError(c, logger, fmt.Errorf("%w: session_id is required", domain.ErrValidation))
			return
		}
		if err := orders.Confirm(c.Request.Context(), sessionID); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
