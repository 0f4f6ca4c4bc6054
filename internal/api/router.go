package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskautomator/backend/internal/api/recovery"
	"github.com/taskautomator/backend/internal/assistant"
)

// NewRouter creates the HTTP router with all API routes.
func NewRouter(svc *assistant.Service) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	handler := NewAutomationHandler(svc)
	healthHandler := NewHealthHandler()

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/analyze-email", handler.AnalyzeEmail).Methods("POST")
	v1.HandleFunc("/create-task", handler.CreateTask).Methods("POST")
	v1.HandleFunc("/schedule-meeting", handler.ScheduleMeeting).Methods("POST")
	v1.HandleFunc("/categorize-email", handler.CategorizeEmail).Methods("POST")
	v1.HandleFunc("/prioritize-task", handler.PrioritizeTask).Methods("POST")
	v1.HandleFunc("/health", healthHandler.CheckHealth).Methods("GET")

	// Prometheus scrape endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return router
}
