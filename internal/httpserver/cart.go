package httpserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	cartsvc "storefront/internal/service/cart"
)

func getCartHandler(logger *log.Logger, carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Get(c.Request.Context(), identityFrom(c).UserID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func cartCountHandler(logger *log.Logger, carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, err := carts.CountItems(c.Request.Context(), identityFrom(c).UserID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"numItemsInCart": count})
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Amount    int    `json:"amount"`
}

func addCartItemHandler(logger *log.Logger, carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, logger, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
			return
		}
		cart, err := carts.AddItem(c.Request.Context(), identityFrom(c).UserID, req.ProductID, req.Amount)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

type updateCartItemRequest struct {
	Amount int `json:"amount"`
}

func updateCartItemHandler(logger *log.Logger, carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, logger, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
			return
		}
		cart, err := carts.UpdateItem(c.Request.Context(), identityFrom(c).UserID, c.Param("id"), req.Amount)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}

func removeCartItemHandler(logger *log.Logger, carts *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.RemoveItem(c.Request.Context(), identityFrom(c).UserID, c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart})
	}
}
