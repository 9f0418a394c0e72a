package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"chonapi/internal/service"
	"chonapi/internal/transport/rest/handler"
	"chonapi/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	FlowService       *service.FlowService
	SubmissionService *service.SubmissionService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	respondentHandler := handler.NewRespondentHandler()
	flowHandler := handler.NewFlowHandler(c.FlowService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService)
	authHandler := handler.NewAuthHandler(c.AuthService, c.SubmissionService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/respondents", respondentHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// Test routes (require the respondent header)
	testRoutes := v1.NewRoute().Subrouter()
	testRoutes.Use(middleware.RequireRespondent)

	testRoutes.HandleFunc("/test/state", flowHandler.State).Methods("GET", "OPTIONS")
	testRoutes.HandleFunc("/test/begin", flowHandler.Begin).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/identity", flowHandler.Identity).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/privacy/ack", flowHandler.Privacy).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/section", flowHandler.Section).Methods("GET", "OPTIONS")
	testRoutes.HandleFunc("/test/answers", flowHandler.Answer).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/next", flowHandler.Next).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/back", flowHandler.Back).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/finish", flowHandler.Finish).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/test/results", flowHandler.Results).Methods("GET", "OPTIONS")
	testRoutes.HandleFunc("/test/restart", flowHandler.Restart).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/submissions/exists", submissionHandler.Exists).Methods("GET", "OPTIONS")
	testRoutes.HandleFunc("/submissions", submissionHandler.Save).Methods("POST", "OPTIONS")
	testRoutes.HandleFunc("/auth/accounts", authHandler.CreateAccount).Methods("POST", "OPTIONS")

	// Account routes (require account auth)
	accountRoutes := v1.NewRoute().Subrouter()
	accountRoutes.Use(authMW.RequireAccount)

	accountRoutes.HandleFunc("/profile", authHandler.Profile).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization, " + middleware.RespondentHeader
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
