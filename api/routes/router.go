package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/mercado-backend/api/controllers"
	"github.com/angelmondragon/mercado-backend/api/middleware"
	authsvc "github.com/angelmondragon/mercado-backend/internal/auth"
	"github.com/angelmondragon/mercado-backend/internal/cart"
	"github.com/angelmondragon/mercado-backend/internal/catalog"
	"github.com/angelmondragon/mercado-backend/internal/favorites"
	"github.com/angelmondragon/mercado-backend/internal/orders"
	"github.com/angelmondragon/mercado-backend/internal/search"
	"github.com/angelmondragon/mercado-backend/pkg/config"
	"github.com/angelmondragon/mercado-backend/pkg/db"
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/angelmondragon/mercado-backend/pkg/logger"
	"github.com/angelmondragon/mercado-backend/pkg/metrics"
	"github.com/angelmondragon/mercado-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	searchService search.Service,
	ordersService orders.Service,
	catalogService catalog.Service,
	cartService cart.Service,
	favoritesService favorites.Service,
	authService authsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", controllers.Search(searchService, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(catalogService, logg))
			r.Get("/{productId}", controllers.ProductsGet(catalogService, logg))
		})
		r.Get("/deals", controllers.DealsList(catalogService, logg))
		r.Route("/suppliers", func(r chi.Router) {
			r.Get("/", controllers.SuppliersList(catalogService, logg))
			r.Get("/{supplierId}", controllers.SuppliersGet(catalogService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(middleware.Idempotency(redisClient, cfg.Orders.IdempotencyTTL, logg)).
				Post("/", controllers.OrdersCreate(ordersService, logg))
			r.Get("/{userId}", controllers.OrdersListByUser(ordersService, logg))
		})

		r.Route("/cart/{userId}", func(r chi.Router) {
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Post("/items", controllers.CartUpsertItem(cartService, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Route("/favorites/{userId}", func(r chi.Router) {
			r.Get("/", controllers.FavoritesList(favoritesService, logg))
			r.Post("/", controllers.FavoritesAdd(favoritesService, logg))
			r.Delete("/{productId}", controllers.FavoritesRemove(favoritesService, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", controllers.AuthLogin(authService, logg))
			r.Post("/register", controllers.AuthRegisterSupplier(authService, logg))
		})

		r.Route("/supplier", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.RequireRole(string(enums.AccountRoleSupplier), logg))
			r.Route("/products", func(r chi.Router) {
				r.Post("/", controllers.SupplierProductCreate(catalogService, logg))
				r.Patch("/{productId}", controllers.SupplierProductUpdate(catalogService, logg))
				r.Delete("/{productId}", controllers.SupplierProductDelete(catalogService, logg))
			})
			r.Route("/deals", func(r chi.Router) {
				r.Post("/", controllers.SupplierDealCreate(catalogService, logg))
				r.Delete("/{dealId}", controllers.SupplierDealDelete(catalogService, logg))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Use(middleware.RequireRole(string(enums.AccountRoleAdmin), logg))
			r.Route("/suppliers/{supplierId}", func(r chi.Router) {
				r.Post("/activate", controllers.AdminSupplierActivate(catalogService, logg))
				r.Post("/deactivate", controllers.AdminSupplierDeactivate(catalogService, logg))
			})
		})
	})

	return r
}
