package http

import (
	"context"
	"net/http"
	"time"

	"ptoshare-backend/internal/logger"
	"ptoshare-backend/internal/security"
	"ptoshare-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles the application services the REST API exposes.
type Services struct {
	Auth           service.AuthService
	User           service.UserService
	Company        service.CompanyService
	SupportRequest service.SupportRequestService
	Donation       service.DonationService
	Stats          service.StatsService
	Notification   service.NotificationService
	Admin          service.AdminService
}

// Pinger reports whether the backing store is reachable.
type Pinger func(ctx context.Context) error

type RouterOptions struct {
	StaticDir string
	Limiter   *RateLimiter
	Ping      Pinger
}

func NewRouter(svcs Services, tm security.TokenManager, opts RouterOptions) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog)

	r.HandleFunc("/healthz", healthz(opts.Ping)).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(NewAuthMiddleware(tm).Handler)

	limited := func(h http.HandlerFunc) http.Handler {
		if opts.Limiter == nil {
			return h
		}
		return opts.Limiter.Limit(h)
	}

	auth := NewAuthHandler(svcs.Auth)
	api.Handle("/auth/register", limited(auth.Register)).Methods(http.MethodPost)
	api.Handle("/auth/login", limited(auth.Login)).Methods(http.MethodPost)
	api.Handle("/auth/password-reset", limited(auth.RequestPasswordReset)).Methods(http.MethodPost)
	api.HandleFunc("/auth/password-reset/confirm", auth.ConfirmPasswordReset).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", auth.Refresh).Methods(http.MethodPost)

	users := NewUserHandler(svcs.User)
	api.HandleFunc("/users/me", users.GetMe).Methods(http.MethodGet)
	api.HandleFunc("/users/me", users.UpdateMe).Methods(http.MethodPatch)

	companies := NewCompanyHandler(svcs.Company)
	api.HandleFunc("/companies", companies.List).Methods(http.MethodGet)
	api.HandleFunc("/companies", companies.Create).Methods(http.MethodPost)
	api.HandleFunc("/companies/{id}", companies.Get).Methods(http.MethodGet)
	api.HandleFunc("/companies/{id}", companies.Update).Methods(http.MethodPatch)
	api.HandleFunc("/companies/{id}/members", companies.ListMembers).Methods(http.MethodGet)

	// "mine" is registered before "{id}" so it wins the match.
	requests := NewSupportRequestHandler(svcs.SupportRequest)
	api.HandleFunc("/support-requests", requests.Create).Methods(http.MethodPost)
	api.HandleFunc("/support-requests", requests.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/support-requests/mine", requests.ListMine).Methods(http.MethodGet)
	api.HandleFunc("/support-requests/{id}", requests.Get).Methods(http.MethodGet)
	api.HandleFunc("/support-requests/{id}/donations", requests.ListDonations).Methods(http.MethodGet)

	donations := NewDonationHandler(svcs.Donation)
	api.HandleFunc("/donations", donations.Donate).Methods(http.MethodPost)
	api.HandleFunc("/donations/mine", donations.ListMine).Methods(http.MethodGet)

	stats := NewStatsHandler(svcs.Stats)
	api.HandleFunc("/stats", stats.Platform).Methods(http.MethodGet)
	api.HandleFunc("/stats/companies", stats.Companies).Methods(http.MethodGet)
	api.HandleFunc("/stats/top-donors", stats.TopDonors).Methods(http.MethodGet)

	notes := NewNotificationHandler(svcs.Notification)
	api.HandleFunc("/notifications", notes.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", notes.MarkRead).Methods(http.MethodPost)

	admin := NewAdminHandler(svcs.Admin)
	api.HandleFunc("/admin/users", admin.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/admin/users/{id}/pto", admin.SetHours).Methods(http.MethodPut)
	api.HandleFunc("/admin/users/{id}", admin.RemoveUser).Methods(http.MethodDelete)

	if opts.StaticDir != "" {
		r.PathPrefix("/").Handler(NewStaticHandler(opts.StaticDir))
	}
	return r
}

func healthz(ping Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				logger.Warn("Health check failed", "error", err)
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
