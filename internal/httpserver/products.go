package httpserver

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront/internal/domain"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
)

func listProductsHandler(logger *log.Logger, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context(), c.Query("search"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

func featuredProductsHandler(logger *log.Logger, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.Featured(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

func getProductHandler(logger *log.Logger, products *productsvc.Service, reviews *reviewsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, err := products.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		rating, err := reviews.Rating(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product, "rating": rating})
	}
}

func createProductHandler(logger *log.Logger, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := productFieldsForm(c)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		image, file, err := imageForm(c)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if file != nil {
			defer file.Close()
		}
		product, err := products.Create(c.Request.Context(), fields, image)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}

func updateProductHandler(logger *log.Logger, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields, err := productFieldsForm(c)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		product, err := products.Update(c.Request.Context(), c.Param("id"), fields)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

func replaceProductImageHandler(logger *log.Logger, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		image, file, err := imageForm(c)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if file != nil {
			defer file.Close()
		}
		product, err := products.ReplaceImage(c.Request.Context(), c.Param("id"), image)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

func deleteProductHandler(logger *log.Logger, products *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

func productFieldsForm(c *gin.Context) (productsvc.Fields, error) {
	priceRaw := c.PostForm("priceCents")
	price, err := strconv.ParseInt(priceRaw, 10, 64)
	if err != nil {
		return productsvc.Fields{}, fmt.Errorf("%w: priceCents must be an integer", domain.ErrValidation)
	}
	featured := false
	if raw := c.PostForm("featured"); raw != "" {
		featured, err = strconv.ParseBool(raw)
		if err != nil {
			return productsvc.Fields{}, fmt.Errorf("%w: featured must be a boolean", domain.ErrValidation)
		}
	}
	return productsvc.Fields{
		Name:        c.PostForm("name"),
		Company:     c.PostForm("company"),
		Description: c.PostForm("description"),
		PriceCents:  price,
		Featured:    featured,
	}, nil
}

func imageForm(c *gin.Context) (productsvc.ImageUpload, multipart.File, error) {
	header, err := c.FormFile("image")
	if err != nil {
		return productsvc.ImageUpload{}, nil, fmt.Errorf("%w: image file is required", domain.ErrValidation)
	}
	file, err := header.Open()
	if err != nil {
		return productsvc.ImageUpload{}, nil, fmt.Errorf("open upload: %w", err)
	}
	return productsvc.ImageUpload{
		Filename:    header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Reader:      file,
	}, file, nil
}
