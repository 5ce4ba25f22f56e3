package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/swiftmart-backend/api/controllers"
	"github.com/angelmondragon/swiftmart-backend/api/middleware"
	addresssvc "github.com/angelmondragon/swiftmart-backend/internal/address"
	cartsvc "github.com/angelmondragon/swiftmart-backend/internal/cart"
	"github.com/angelmondragon/swiftmart-backend/internal/catalog"
	checkoutsvc "github.com/angelmondragon/swiftmart-backend/internal/checkout"
	comparesvc "github.com/angelmondragon/swiftmart-backend/internal/compare"
	orderssvc "github.com/angelmondragon/swiftmart-backend/internal/orders"
	"github.com/angelmondragon/swiftmart-backend/pkg/auth"
	"github.com/angelmondragon/swiftmart-backend/pkg/config"
	"github.com/angelmondragon/swiftmart-backend/pkg/db"
	"github.com/angelmondragon/swiftmart-backend/pkg/logger"
	"github.com/angelmondragon/swiftmart-backend/pkg/metrics"
)

type Services struct {
	Catalog   *catalog.Service
	Cart      cartsvc.Service
	Addresses addresssvc.Service
	Compare   comparesvc.Service
	Checkout  checkoutsvc.Service
	Orders    orderssvc.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	tokens *auth.Manager,
	httpMetrics *metrics.HTTPMetrics,
	services Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(cfg.CORS),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", controllers.CatalogList(services.Catalog, logg))
		r.Get("/products/{productID}", controllers.CatalogGet(services.Catalog, logg))
	})

	shopper := middleware.Identity(tokens, logg)

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(shopper)
		r.Get("/", controllers.CartGet(services.Cart, logg))
		r.Post("/items", controllers.CartAddItem(services.Cart, services.Catalog, logg))
		r.Put("/items/{productID}", controllers.CartSetQuantity(services.Cart, logg))
		r.Delete("/items/{productID}", controllers.CartRemoveItem(services.Cart, logg))
		r.Delete("/", controllers.CartClear(services.Cart, logg))
	})

	r.Route("/api/v1/addresses", func(r chi.Router) {
		r.Use(shopper)
		r.Get("/", controllers.AddressList(services.Addresses, logg))
		r.Post("/", controllers.AddressAdd(services.Addresses, logg))
		r.Patch("/{addressID}", controllers.AddressUpdate(services.Addresses, logg))
		r.Delete("/{addressID}", controllers.AddressDelete(services.Addresses, logg))
		r.Post("/{addressID}/default", controllers.AddressSetDefault(services.Addresses, logg))
	})

	r.Route("/api/v1/compare", func(r chi.Router) {
		r.Use(shopper)
		r.Get("/", controllers.CompareGet(services.Compare, logg))
		r.Post("/", controllers.CompareAdd(services.Compare, logg))
		r.Delete("/{productID}", controllers.CompareRemove(services.Compare, logg))
		r.Delete("/", controllers.CompareClear(services.Compare, logg))
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Use(shopper)
		r.Post("/quote", controllers.CheckoutQuote(services.Checkout, logg))
		r.Post("/", controllers.CheckoutSubmit(services.Checkout, logg))
	})

	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Use(shopper)
		r.Get("/", controllers.OrderList(services.Orders, logg))
		r.Get("/{orderID}", controllers.OrderGet(services.Orders, logg))
		r.Post("/{orderID}/cancel", controllers.OrderCancel(services.Orders, logg))
	})

	r.Route("/api/v1/delivery", func(r chi.Router) {
		r.Get("/orders", controllers.DeliveryListOrders(services.Orders, logg))
		r.Post("/orders/{orderID}/status", controllers.DeliveryAdvanceOrder(services.Orders, logg))
	})

	return r
}
