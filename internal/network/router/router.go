package router

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/denmor86/ya-pedidos/internal/config"
	"github.com/denmor86/ya-pedidos/internal/network/handlers"
	"github.com/denmor86/ya-pedidos/internal/network/middleware"
	"github.com/denmor86/ya-pedidos/internal/services"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	Config    config.Config
	Orders    services.OrdersService
	StartedAt time.Time
}

func NewRouter(config config.Config, orders services.OrdersService) *Router {
	return &Router{
		Config:    config,
		Orders:    orders,
		StartedAt: time.Now(),
	}
}

func (router *Router) HandleRouter() chi.Router {
	public := router.Config.Server.PublicDir

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
		MaxAge:         300,
	}))
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LogHandle)
	r.Use(middleware.Recover)

	// страницы витрины и админки
	r.Get("/", handlers.StaticPageHandler(public, "index.html"))
	r.Get("/tienda", handlers.StaticPageHandler(public, "tienda.html"))
	r.Get("/admin", handlers.StaticPageHandler(public, "admin.html"))

	r.Post("/pedido", handlers.CreateOrderHandler(router.Orders, router.Config.Server.MaxUploadSize))
	r.Get("/pedidos", handlers.ListOrdersHandler(router.Orders))
	r.Get("/pedido/{id}", handlers.GetOrderHandler(router.Orders))
	r.Delete("/pedido/{id}", handlers.DeleteOrderHandler(router.Orders))
	r.Post("/aprobar/{id}", handlers.ApproveOrderHandler(router.Orders))

	r.Get("/health", handlers.HealthHandler(router.Orders, router.StartedAt))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/uploads/*", uploadsHandler(router.Config.Server.UploadsDir))

	r.NotFound(handlers.NotFoundHandler())
	r.MethodNotAllowed(handlers.NotFoundHandler())
	return r
}

// uploadsHandler - раздача сохранённых файлов без листинга каталога
func uploadsHandler(dir string) http.HandlerFunc {
	notFound := handlers.NotFoundHandler()
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "*")
		if name == "" || name != filepath.Base(name) || name[0] == '.' {
			notFound(w, r)
			return
		}
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			notFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}
