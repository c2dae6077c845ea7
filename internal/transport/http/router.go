// Package httptransport is the thin HTTP layer. It delegates to domain
// services without embedding business logic so transport concerns remain
// isolated.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"condogate/internal/admin"
	"condogate/internal/auth"
	"condogate/internal/directory"
	"condogate/internal/domain"
	"condogate/internal/frontdesk"
	"condogate/internal/ledger"
	"condogate/internal/platform/metrics"
	"condogate/internal/platform/middleware"
	"condogate/internal/transport/http/shared"
)

type Handler struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	jwtValidator middleware.JWTValidator
	auth         *auth.Service
	ledger       *ledger.Service
	directory    *directory.Service
	admin        *admin.Service
	deliveries   *frontdesk.DeliveryService
	notices      *frontdesk.NoticeService
	occurrences  *frontdesk.OccurrenceService
}

func NewHandler(
	logger *slog.Logger,
	m *metrics.Metrics,
	jwtValidator middleware.JWTValidator,
	authService *auth.Service,
	ledgerService *ledger.Service,
	directoryService *directory.Service,
	adminService *admin.Service,
	deliveryService *frontdesk.DeliveryService,
	noticeService *frontdesk.NoticeService,
	occurrenceService *frontdesk.OccurrenceService,
) *Handler {
	return &Handler{
		logger:       logger,
		metrics:      m,
		jwtValidator: jwtValidator,
		auth:         authService,
		ledger:       ledgerService,
		directory:    directoryService,
		admin:        adminService,
		deliveries:   deliveryService,
		notices:      noticeService,
		occurrences:  occurrenceService,
	}
}

// NewRouter wires all endpoints. Everything except login, health, and metrics
// sits behind the bearer-token middleware; the administrative screens
// additionally run the role guard.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.Latency(h.metrics))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/auth/login", h.handleLogin)

	adminOnly := middleware.RequireRoles([]domain.Role{domain.RoleAdministrator}, h.metrics, h.logger)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(h.jwtValidator, h.logger))

		r.Post("/auth/logout", h.handleLogout)
		r.Get("/auth/me", h.handleMe)
		r.Get("/navigation", h.handleNavigation)
		r.Get("/dashboard", h.handleDashboard)

		r.Get("/directory/search", h.handleDirectorySearch)
		r.Post("/access/register", h.handleRegisterAccess)
		r.Get("/access/today", h.handleTodayAccesses)
		r.Get("/access/history", h.handleAccessHistory)
		r.Get("/access/history/export.csv", h.handleExportCSV)
		r.Get("/access/history/report", h.handleAccessReport)

		r.Get("/deliveries", h.handleListDeliveries)
		r.Post("/deliveries", h.handleCreateDelivery)
		r.Post("/deliveries/{deliveryID}/toggle", h.handleToggleDelivery)

		r.Get("/notices", h.handleListNotices)
		r.With(adminOnly).Post("/notices", h.handleCreateNotice)
		r.Post("/notices/{noticeID}/view", h.handleMarkNoticeViewed)

		r.Get("/occurrences", h.handleListOccurrences)
		r.Post("/occurrences", h.handleCreateOccurrence)
		r.Post("/occurrences/{occurrenceID}/resolve", h.handleResolveOccurrence)

		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Get("/admin/people", h.handleListPeople)
			r.Post("/admin/people", h.handleCreatePerson)
			r.Put("/admin/people/{personID}", h.handleUpdatePerson)
			r.Delete("/admin/people/{personID}", h.handleDeletePerson)
			r.Get("/admin/houses", h.handleListHouses)
			r.Post("/admin/houses", h.handleCreateHouse)
			r.Put("/admin/houses/{houseID}", h.handleUpdateHouse)
			r.Delete("/admin/houses/{houseID}", h.handleDeleteHouse)
		})
	})

	return r
}
