package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/Vonakala/Appointment-App-Service-Request/internal/api/middleware"
	"github.com/Vonakala/Appointment-App-Service-Request/internal/domain"
)

// Route names used as metric labels
const (
	RouteHealth            = "health"
	RouteRegister          = "register"
	RouteLogin             = "login"
	RouteLogout            = "logout"
	RouteBookService       = "book_service"
	RouteClientDashboard   = "client_dashboard"
	RouteMechanicDashboard = "mechanic_dashboard"
	RouteAdminDashboard    = "admin_dashboard"
	RouteNewMechanic       = "new_mechanic"
	RouteAssignMechanic    = "assign_mechanic"
	RouteProcessRequests   = "process_requests"
	RouteMetrics           = "metrics"
)

// Handler one HTTP operation
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Deps everything the router mounts. Nil Metrics, MetricsHandler or empty TracingService disable that part.
type Deps struct {
	Paths Paths
	Auth  *middleware.Auth

	Metrics        middleware.HTTPMetrics
	MetricsPath    string
	MetricsHandler http.Handler
	TracingService string

	Health            Handler
	Register          Handler
	Login             Handler
	Logout            Handler
	BookService       Handler
	ClientDashboard   Handler
	MechanicDashboard Handler
	AdminDashboard    Handler
	NewMechanic       Handler
	AssignMechanic    Handler
	ProcessRequests   Handler
}

// NewRouter builds the route table
func NewRouter(d Deps) *mux.Router {
	r := mux.NewRouter()

	if d.TracingService != "" {
		r.Use(otelmux.Middleware(d.TracingService))
	}
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
	}
	if d.MetricsHandler != nil && d.MetricsPath != "" {
		r.Handle(d.MetricsPath, d.MetricsHandler).Methods(http.MethodGet).Name(RouteMetrics)
	}

	// Public
	r.HandleFunc(PathHealth, d.Health.Handle).Methods(http.MethodGet).Name(RouteHealth)
	r.HandleFunc(PathRegister, d.Register.Handle).Methods(http.MethodPost).Name(RouteRegister)
	r.HandleFunc(PathLogin, d.Login.Handle).Methods(http.MethodPost).Name(RouteLogin)
	r.HandleFunc(PathLogout, d.Logout.Handle).Methods(http.MethodPost).Name(RouteLogout)

	// Client
	client := r.NewRoute().Subrouter()
	client.Use(d.Auth.Middleware, middleware.RequireRole(domain.RoleClient))
	client.HandleFunc(PathBookService, d.BookService.Handle).Methods(http.MethodPost).Name(RouteBookService)
	client.HandleFunc(d.Paths.ClientDashboard, d.ClientDashboard.Handle).Methods(http.MethodGet).Name(RouteClientDashboard)

	// Mechanic
	mechanic := r.NewRoute().Subrouter()
	mechanic.Use(d.Auth.Middleware, middleware.RequireRole(domain.RoleMechanic))
	mechanic.HandleFunc(d.Paths.MechanicDashboard, d.MechanicDashboard.Handle).Methods(http.MethodGet).Name(RouteMechanicDashboard)

	// Admin
	admin := r.NewRoute().Subrouter()
	admin.Use(d.Auth.Middleware, middleware.RequireRole(domain.RoleAdmin))
	admin.HandleFunc(d.Paths.AdminDashboard, d.AdminDashboard.Handle).Methods(http.MethodGet).Name(RouteAdminDashboard)
	admin.HandleFunc(d.Paths.NewMechanic, d.NewMechanic.Handle).Methods(http.MethodPost).Name(RouteNewMechanic)
	admin.HandleFunc(d.Paths.AssignMechanic, d.AssignMechanic.Handle).Methods(http.MethodPost).Name(RouteAssignMechanic)
	admin.HandleFunc(PathProcessRequests, d.ProcessRequests.Handle).Methods(http.MethodPost).Name(RouteProcessRequests)

	return r
}
