package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	cartsvc "storefront/internal/service/cart"
	favoritesvc "storefront/internal/service/favorite"
	identitysvc "storefront/internal/service/identity"
	ordersvc "storefront/internal/service/order"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
)

// Deps bundles the services the router exposes.
type Deps struct {
	Products   *productsvc.Service
	Carts      *cartsvc.Service
	Orders     *ordersvc.Service
	Reviews    *reviewsvc.Service
	Favorites  *favoritesvc.Service
	Identities *identitysvc.Service

	AdminUserID string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.POST("/auth/sessions", createSessionHandler(logger, deps.Identities))

	api.GET("/products", listProductsHandler(logger, deps.Products))
	api.GET("/products/featured", featuredProductsHandler(logger, deps.Products))
	api.GET("/products/:id", getProductHandler(logger, deps.Products, deps.Reviews))
	api.GET("/products/:id/reviews", listProductReviewsHandler(logger, deps.Reviews))

	api.GET("/payments/confirm", confirmPaymentHandler(logger, deps.Orders))

	authed := api.Group("")
	authed.Use(authMiddleware(deps.Identities))

	authed.DELETE("/auth/sessions", deleteSessionHandler(logger, deps.Identities))

	authed.GET("/cart", getCartHandler(logger, deps.Carts))
	authed.GET("/cart/count", cartCountHandler(logger, deps.Carts))
	authed.POST("/cart/items", addCartItemHandler(logger, deps.Carts))
	authed.PATCH("/cart/items/:id", updateCartItemHandler(logger, deps.Carts))
	authed.DELETE("/cart/items/:id", removeCartItemHandler(logger, deps.Carts))

	authed.POST("/orders", placeOrderHandler(logger, deps.Orders))
	authed.GET("/orders", listOwnOrdersHandler(logger, deps.Orders))

	authed.POST("/reviews", createReviewHandler(logger, deps.Reviews))
	authed.GET("/reviews/mine", listOwnReviewsHandler(logger, deps.Reviews))
	authed.DELETE("/reviews/:id", deleteReviewHandler(logger, deps.Reviews))
	authed.GET("/products/:id/reviewed", reviewedProductHandler(logger, deps.Reviews))

	authed.POST("/favorites/toggle", toggleFavoriteHandler(logger, deps.Favorites))
	authed.GET("/favorites", listFavoritesHandler(logger, deps.Favorites))
	authed.GET("/products/:id/favorite", productFavoriteHandler(logger, deps.Favorites))

	admin := authed.Group("/admin")
	admin.Use(adminMiddleware(deps.AdminUserID))

	admin.GET("/products", listProductsHandler(logger, deps.Products))
	admin.POST("/products", createProductHandler(logger, deps.Products))
	admin.PATCH("/products/:id", updateProductHandler(logger, deps.Products))
	admin.POST("/products/:id/image", replaceProductImageHandler(logger, deps.Products))
	admin.DELETE("/products/:id", deleteProductHandler(logger, deps.Products))
	admin.GET("/orders", listAllOrdersHandler(logger, deps.Orders))

	return router
}
