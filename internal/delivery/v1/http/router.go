package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/partlane/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/partlane/go-backend/internal/cfg"
	"github.com/partlane/go-backend/internal/usecase"
	"github.com/partlane/go-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	authCfg *cfg.AuthCfg,
	minioCfg *cfg.MinIOCfg,
	authUC usecase.AuthUC,
	catalogUC usecase.CatalogUC,
	draftUC usecase.DraftUC,
	quotationUC usecase.QuotationUC,
	uploadUC usecase.UploadUC,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	authHandler := NewAuthHandler(authUC, authCfg, r.logger)
	catalogHandler := NewCatalogHandler(catalogUC, r.logger)
	cartHandler := NewCartHandler(draftUC, r.logger)
	quotationHandler := NewQuotationHandler(quotationUC, r.logger)
	uploadHandler := NewUploadHandler(uploadUC, minioCfg, r.logger)

	r.router.Route("/api", func(api chi.Router) {
		api.Use(sessionMiddleware(authUC, authCfg))

		// Открытые маршруты
		api.Post("/auth/signup", authHandler.signup)
		api.Post("/auth/login", authHandler.login)
		api.Post("/auth/logout", authHandler.logout)
		api.Get("/products", catalogHandler.listProducts)
		api.Get("/categories", catalogHandler.listCategories)
		api.Get("/manufacturers", catalogHandler.listManufacturers)

		// Маршруты аутентифицированного пользователя
		api.Group(func(private chi.Router) {
			private.Use(requireAuth)

			private.Get("/auth/me", authHandler.me)

			private.Route("/cart", func(cart chi.Router) {
				cart.Get("/", cartHandler.getCart)
				cart.Delete("/", cartHandler.clearCart)
				cart.Post("/items", cartHandler.addCartItem)
				cart.Put("/items/{productID}", cartHandler.updateCartItem)
				cart.Delete("/items/{productID}", cartHandler.removeCartItem)
			})

			private.Post("/quotations", quotationHandler.submitQuotation)
			private.Get("/quotations", quotationHandler.listOwnQuotations)
		})

		// Административные маршруты
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(requireAdmin)

			admin.Post("/products", catalogHandler.createProduct)
			admin.Put("/products/{id}", catalogHandler.updateProduct)
			admin.Delete("/products/{id}", catalogHandler.deleteProduct)

			admin.Post("/categories", catalogHandler.createCategory)
			admin.Delete("/categories/{id}", catalogHandler.deleteCategory)

			admin.Post("/manufacturers", catalogHandler.createManufacturer)
			admin.Delete("/manufacturers/{id}", catalogHandler.deleteManufacturer)

			admin.Get("/quotations", quotationHandler.listAllQuotations)
			admin.Put("/quotations/{id}", quotationHandler.priceQuotation)

			admin.Post("/upload", uploadHandler.uploadImage)
		})
	})
}
