package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/swiftmart-backend/api/routes"
	addresssvc "github.com/angelmondragon/swiftmart-backend/internal/address"
	cartsvc "github.com/angelmondragon/swiftmart-backend/internal/cart"
	"github.com/angelmondragon/swiftmart-backend/internal/catalog"
	checkoutsvc "github.com/angelmondragon/swiftmart-backend/internal/checkout"
	comparesvc "github.com/angelmondragon/swiftmart-backend/internal/compare"
	orderssvc "github.com/angelmondragon/swiftmart-backend/internal/orders"
	"github.com/angelmondragon/swiftmart-backend/internal/snapshot"
	"github.com/angelmondragon/swiftmart-backend/pkg/auth"
	"github.com/angelmondragon/swiftmart-backend/pkg/config"
	"github.com/angelmondragon/swiftmart-backend/pkg/db"
	"github.com/angelmondragon/swiftmart-backend/pkg/logger"
	"github.com/angelmondragon/swiftmart-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	tokens, err := auth.NewManager(cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create token manager", err)
		os.Exit(1)
	}

	store := snapshot.NewDBStore(dbClient.DB())
	products := catalog.NewService()

	cartService, err := cartsvc.NewService(cartsvc.NewRepository(store))
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	addressService, err := addresssvc.NewService(addresssvc.ServiceParams{
		Repo: addresssvc.NewRepository(store),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create address service", err)
		os.Exit(1)
	}

	compareService, err := comparesvc.NewService(comparesvc.NewRepository(store), products)
	if err != nil {
		logg.Error(context.Background(), "failed to create compare service", err)
		os.Exit(1)
	}

	orderService, err := orderssvc.NewService(orderssvc.ServiceParams{
		Repo: orderssvc.NewRepository(store),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Cart:      cartService,
		Addresses: addressService,
		Orders:    orderService,
		Coupons:   checkoutsvc.DefaultCouponRegistry(),
		Pricing:   checkoutsvc.PricingFromConfig(cfg.Checkout),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, tokens, httpMetrics, routes.Services{
			Catalog:   products,
			Cart:      cartService,
			Addresses: addressService,
			Compare:   compareService,
			Checkout:  checkoutService,
			Orders:    orderService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
