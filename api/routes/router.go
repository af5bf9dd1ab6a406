package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront-gateway/api/controllers"
	"storefront-gateway/api/middleware"
	"storefront-gateway/api/responses"
	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/collections"
	"storefront-gateway/internal/customer"
	"storefront-gateway/internal/products"
	"storefront-gateway/pkg/config"
	pkgerrors "storefront-gateway/pkg/errors"
	"storefront-gateway/pkg/logger"
	"storefront-gateway/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	cartService cart.Service,
	customerService customer.Service,
	productService products.Service,
	collectionService collections.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	// Wrong method on a known path gets the JSON envelope, not chi's bare 405.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeMethodNotAllowed, "method not allowed"))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), nil, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/create", controllers.CartCreate(cartService, logg))
			r.Post("/add", controllers.CartAddItem(cartService, logg))
			r.Post("/update", controllers.CartUpdateItem(cartService, logg))
			r.Post("/remove", controllers.CartRemoveItems(cartService, logg))
		})

		r.Post("/checkout/create", controllers.CheckoutCreate(cartService, logg))

		r.Route("/customers", func(r chi.Router) {
			if redisClient != nil {
				r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.CustomerRegister(customerService, logg))
				r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.CustomerLogin(customerService, logg))
			} else {
				r.Post("/register", controllers.CustomerRegister(customerService, logg))
				r.Post("/login", controllers.CustomerLogin(customerService, logg))
			}
			r.Post("/logout", controllers.CustomerLogout(customerService, logg))
			r.Get("/account", controllers.CustomerAccount(customerService, logg))
		})

		r.Get("/orders", controllers.CustomerOrders(customerService, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(productService, logg))
			r.Get("/{handle}", controllers.ProductDetail(productService, logg))
		})

		r.Route("/collections", func(r chi.Router) {
			r.Get("/", controllers.CollectionList(collectionService, logg))
			r.Get("/{handle}", controllers.CollectionDetail(collectionService, logg))
		})
	})

	return r
}
