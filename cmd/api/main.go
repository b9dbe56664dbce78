package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	"storefront/internal/payment"
	cartrepo "storefront/internal/repository/cart"
	favoriterepo "storefront/internal/repository/favorite"
	orderrepo "storefront/internal/repository/order"
	productrepo "storefront/internal/repository/product"
	reviewrepo "storefront/internal/repository/review"
	sessionrepo "storefront/internal/repository/session"
	cartsvc "storefront/internal/service/cart"
	favoritesvc "storefront/internal/service/favorite"
	identitysvc "storefront/internal/service/identity"
	ordersvc "storefront/internal/service/order"
	productsvc "storefront/internal/service/product"
	reviewsvc "storefront/internal/service/review"
	"storefront/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	store, err := storage.NewMinio(storage.Config{
		Endpoint:   cfg.StorageEndpoint,
		AccessKey:  cfg.StorageAccessKey,
		SecretKey:  cfg.StorageSecretKey,
		Bucket:     cfg.StorageBucket,
		UseSSL:     cfg.StorageUseSSL,
		PublicHost: cfg.StoragePublicHost,
	})
	if err != nil {
		logger.Fatalf("init storage: %v", err)
	}

	provider := payment.NewStripe(cfg.StripeSecretKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL)

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	reviewRepo := reviewrepo.NewPostgres(dbpool, logger)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)
	sessionRepo := sessionrepo.NewPostgres(dbpool)

	defaults := cartrepo.CartDefaults{TaxRate: cfg.TaxRate, ShippingCents: cfg.ShippingCents}

	productService := productsvc.New(productRepo, store, logger)
	cartService := cartsvc.New(cartRepo, productRepo, defaults)
	orderService := ordersvc.New(orderRepo, cartRepo, provider, logger)
	reviewService := reviewsvc.New(reviewRepo, productRepo, logger)
	favoriteService := favoritesvc.New(favoriteRepo, productRepo, logger)
	identityService := identitysvc.New(sessionRepo, cfg.SessionTTL, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Products:    productService,
		Carts:       cartService,
		Orders:      orderService,
		Reviews:     reviewService,
		Favorites:   favoriteService,
		Identities:  identityService,
		AdminUserID: cfg.AdminUserID,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
