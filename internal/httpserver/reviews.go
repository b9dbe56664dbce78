package httpserver

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	reviewsvc "storefront/internal/service/review"
)

type createReviewRequest struct {
	ProductID      string `json:"productId"`
	AuthorName     string `json:"authorName"`
	AuthorImageURL string `json:"authorImageUrl"`
	Rating         int    `json:"rating"`
	Comment        string `json:"comment"`
}

func createReviewHandler(logger *log.Logger, reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, logger, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
			return
		}
		review, err := reviews.Create(c.Request.Context(), identityFrom(c).UserID, reviewsvc.CreateInput{
			ProductID:      req.ProductID,
			AuthorName:     req.AuthorName,
			AuthorImageURL: req.AuthorImageURL,
			Rating:         req.Rating,
			Comment:        req.Comment,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"review": review})
	}
}

func listProductReviewsHandler(logger *log.Logger, reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reviews.ListByProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": list})
	}
}

func listOwnReviewsHandler(logger *log.Logger, reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reviews.ListOwn(c.Request.Context(), identityFrom(c).UserID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": list})
	}
}

func deleteReviewHandler(logger *log.Logger, reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := reviews.DeleteOwn(c.Request.Context(), c.Param("id"), identityFrom(c).UserID); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

func reviewedProductHandler(logger *log.Logger, reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		reviewed, err := reviews.HasReviewed(c.Request.Context(), identityFrom(c).UserID, c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviewed": reviewed})
	}
}
