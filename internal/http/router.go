package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/Githubspruchir/InventoryStore/docs"
	"github.com/Githubspruchir/InventoryStore/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(slog.Default()))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(RateLimitMiddleware)
			r.Post("/signup", handlers.SignupHandler)
			r.Post("/login", handlers.LoginHandler)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.GetProductsHandler)
			r.Get("/low-stock", handlers.LowStockProductsHandler)
			r.Get("/images/{filename}", handlers.GetImageHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Get("/{id}/movements", handlers.GetMovementsHandler)

			r.Group(func(r chi.Router) {
				r.Use(AuthMiddleware)
				r.Post("/", handlers.CreateProductHandler)
				r.Post("/with-image", handlers.CreateProductWithImageHandler)
				r.Put("/{id}", handlers.UpdateProductHandler)
				r.Delete("/{id}", handlers.DeleteProductHandler)
				r.Post("/{id}/increase", handlers.IncreaseStockHandler)
				r.Post("/{id}/decrease", handlers.DecreaseStockHandler)
			})
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Use(AuthMiddleware)
			r.Get("/dashboard", handlers.GetDashboardMetricsHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
