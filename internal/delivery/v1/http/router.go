package http

import (
	"net/http"

	_ "github.com/DRSN-tech/luxe-couture-api/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases собирает всё, что нужно обработчикам.
type UseCases struct {
	Product     usecase.ProductUC
	Storefront  usecase.StorefrontUC
	Diagnostics usecase.DiagnosticsUC
}

func (r *Router) Init(uc UseCases, corsAllowOrigins []string) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(RequestLogger(r.logger))
	r.router.Use(middleware.Recoverer)
	r.router.Use(CORS(corsAllowOrigins))

	r.router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusNotFound, NewErrorResponse(http.StatusNotFound, "not found"))
	})
	r.router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusMethodNotAllowed, NewErrorResponse(http.StatusMethodNotAllowed, "method not allowed"))
	})

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	sysHandler := NewSystemHandler(uc.Diagnostics, r.logger)
	r.router.Get("/", sysHandler.root)
	r.router.Get("/test", sysHandler.diagnostics)

	prHandler := NewProductHandler(uc.Product, r.logger)
	registerProductRoutes(r.router, prHandler)

	sfHandler := NewStorefrontHandler(uc.Storefront, r.logger)
	registerStorefrontRoutes(r.router, sfHandler)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/{id}", prHandler.getProduct)
	})
	router.Get("/featured", prHandler.featured)
	router.Get("/new-arrivals", prHandler.newArrivals)
}

func registerStorefrontRoutes(router chi.Router, sfHandler *StorefrontHandler) {
	router.Post("/newsletter", sfHandler.newsletter)
	router.Post("/contact", sfHandler.contact)
	router.Post("/checkout", sfHandler.checkout)
}
