package routes

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"fueldelivery/handlers"
	"fueldelivery/report"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Archive-URL, X-Archive-Error")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}

// Handlers groups everything the router mounts. Auth is nil when login is
// disabled.
type Handlers struct {
	Orders   *handlers.OrderHandler
	Drafts   *handlers.DraftHandler
	Report   *handlers.ReportHandler
	Settings *handlers.SettingsHandler
	PDF      *handlers.PDFHandler
	Auth     *handlers.AuthHandler
}

func SetupRoutes(h Handlers) http.Handler {
	mux := http.NewServeMux()

	open := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, handlers.RecoverWrapper(fn))
	}
	guarded := func(pattern string, fn http.HandlerFunc) {
		var handler http.Handler = handlers.RecoverWrapper(fn)
		if h.Auth != nil {
			handler = h.Auth.RequireOperator(handler)
		}
		mux.Handle(pattern, handler)
	}

	open("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	if h.Auth != nil {
		open("POST /login", h.Auth.Login)
		open("POST /logout", h.Auth.Logout)
	}

	// Order routes
	guarded("GET /orders", h.Orders.ListOrders)
	guarded("GET /orders/next-number", h.Orders.NextNumber)
	guarded("GET /orders/{do}", h.Orders.GetOrder)
	guarded("PUT /orders/{do}", h.Orders.PutOrder)
	guarded("DELETE /orders/{do}", h.Orders.DeleteOrder)
	guarded("GET /orders/{do}/pdf", h.PDF.OrderPDF)

	// Draft routes
	guarded("POST /drafts", h.Drafts.CreateDraft)
	guarded("GET /drafts/{id}", h.Drafts.GetDraft)
	guarded("PUT /drafts/{id}", h.Drafts.UpdateDraft)
	guarded("DELETE /drafts/{id}", h.Drafts.DiscardDraft)
	guarded("POST /drafts/{id}/submit", h.Drafts.SubmitDraft)

	// Report routes
	guarded("GET /report", h.Report.Report)
	guarded("GET /report/export.xlsx", h.Report.Export(report.FormatXLSX))
	guarded("GET /report/export.csv", h.Report.Export(report.FormatCSV))

	// Settings routes
	guarded("GET /settings/company", h.Settings.GetCompany)
	guarded("PUT /settings/company", h.Settings.SaveCompany)
	guarded("GET /settings/header", h.Settings.GetHeader)
	guarded("POST /settings/header", h.Settings.UploadHeader)
	guarded("GET /settings/backup.csv", h.Settings.Backup(report.FormatCSV))
	guarded("GET /settings/backup.xlsx", h.Settings.Backup(report.FormatXLSX))

	return withRequestLog(withCORS(mux))
}
