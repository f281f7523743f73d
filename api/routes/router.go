package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yackxz2004/Estadia-Banquetes/api/controllers"
	"github.com/Yackxz2004/Estadia-Banquetes/api/middleware"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/activities"
	authsvc "github.com/Yackxz2004/Estadia-Banquetes/internal/auth"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/calendar"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/clients"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/eventtypes"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/inventory"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/notifications"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/products"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/reports"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/users"
	"github.com/Yackxz2004/Estadia-Banquetes/internal/warehouses"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/config"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/db/models"
	"github.com/Yackxz2004/Estadia-Banquetes/pkg/logger"
)

// Services bundles everything the router exposes over HTTP.
type Services struct {
	Auth          authsvc.Service
	Inventory     inventory.Service
	Events        *activities.Service[models.Event]
	Tastings      *activities.Service[models.Tasting]
	Notifications notifications.Service
	Warehouses    warehouses.Service
	EventTypes    eventtypes.Service
	Clients       clients.Service
	Products      products.Service
	Calendar      calendar.Service
	Reports       reports.Service
	Users         users.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	client *db.Client,
	gatherer prometheus.Gatherer,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, client))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.Login(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/me", controllers.Me(svcs.Auth, logg))
			r.Post("/change-password", controllers.ChangePassword(svcs.Auth, logg))
		})

		r.Get("/categories", controllers.ListCategories())
		r.Route("/inventory/{category}", func(r chi.Router) {
			r.Get("/", controllers.ListItems(svcs.Inventory, logg))
			r.Post("/", controllers.CreateItem(svcs.Inventory, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetItem(svcs.Inventory, logg))
				r.Patch("/", controllers.UpdateItem(svcs.Inventory, logg))
				r.Delete("/", controllers.DeleteItem(svcs.Inventory, logg))
				r.Post("/maintenance/send", controllers.SendItemToMaintenance(svcs.Inventory, logg))
				r.Post("/maintenance/return", controllers.ReturnItemFromMaintenance(svcs.Inventory, logg))
			})
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", controllers.ListEvents(svcs.Events, logg))
			r.Post("/", controllers.CreateEvent(svcs.Events, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetEvent(svcs.Events, logg))
				r.Patch("/", controllers.UpdateEvent(svcs.Events, logg))
				r.Delete("/", controllers.DeleteEvent(svcs.Events, logg))
			})
		})

		r.Route("/tastings", func(r chi.Router) {
			r.Get("/", controllers.ListTastings(svcs.Tastings, logg))
			r.Post("/", controllers.CreateTasting(svcs.Tastings, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetTasting(svcs.Tastings, logg))
				r.Patch("/", controllers.UpdateTasting(svcs.Tastings, logg))
				r.Delete("/", controllers.DeleteTasting(svcs.Tastings, logg))
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(svcs.Notifications, logg))
			r.Post("/{id}/read", controllers.MarkNotificationRead(svcs.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(svcs.Notifications, logg))
			r.Delete("/", controllers.ClearNotifications(svcs.Notifications, logg))
		})

		r.Route("/warehouses", func(r chi.Router) {
			r.Get("/", controllers.ListWarehouses(svcs.Warehouses, logg))
			r.Post("/", controllers.CreateWarehouse(svcs.Warehouses, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetWarehouse(svcs.Warehouses, logg))
				r.Patch("/", controllers.UpdateWarehouse(svcs.Warehouses, logg))
				r.Delete("/", controllers.DeleteWarehouse(svcs.Warehouses, logg))
			})
		})

		r.Route("/event-types", func(r chi.Router) {
			r.Get("/", controllers.ListEventTypes(svcs.EventTypes, logg))
			r.Post("/", controllers.CreateEventType(svcs.EventTypes, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetEventType(svcs.EventTypes, logg))
				r.Patch("/", controllers.UpdateEventType(svcs.EventTypes, logg))
				r.Delete("/", controllers.DeleteEventType(svcs.EventTypes, logg))
			})
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", controllers.ListClients(svcs.Clients, logg))
			r.Post("/", controllers.CreateClient(svcs.Clients, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetClient(svcs.Clients, logg))
				r.Patch("/", controllers.UpdateClient(svcs.Clients, logg))
				r.Delete("/", controllers.DeleteClient(svcs.Clients, logg))
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Products, logg))
			r.Post("/", controllers.CreateProduct(svcs.Products, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetProduct(svcs.Products, logg))
				r.Patch("/", controllers.UpdateProduct(svcs.Products, logg))
				r.Delete("/", controllers.DeleteProduct(svcs.Products, logg))
			})
		})

		r.Get("/calendar", controllers.CalendarFeed(svcs.Calendar, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/reports/inventory.xlsx", controllers.ExportInventoryReport(svcs.Reports, logg))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", controllers.ListUsers(svcs.Users, logg))
				r.Post("/", controllers.CreateUser(svcs.Users, logg))
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", controllers.GetUser(svcs.Users, logg))
					r.Patch("/", controllers.UpdateUser(svcs.Users, logg))
					r.Delete("/", controllers.DeleteUser(svcs.Users, logg))
				})
			})
		})
	})

	return r
}
