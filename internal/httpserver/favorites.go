package httpserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	favoritesvc "storefront/internal/service/favorite"
)

type toggleFavoriteRequest struct {
	ProductID string `json:"productId"`
}

func toggleFavoriteHandler(logger *log.Logger, favorites *favoritesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req toggleFavoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			writeError(c, logger, fmt.Errorf("%w: productId is required", domain.ErrValidation))
			return
		}
		id, err := favorites.Toggle(c.Request.Context(), identityFrom(c).UserID, req.ProductID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favoriteId": id})
	}
}

func listFavoritesHandler(logger *log.Logger, favorites *favoritesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := favorites.ListOwn(c.Request.Context(), identityFrom(c).UserID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorites": list})
	}
}

func productFavoriteHandler(logger *log.Logger, favorites *favoritesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := favorites.FavoriteID(c.Request.Context(), identityFrom(c).UserID, c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favoriteId": id})
	}
}
