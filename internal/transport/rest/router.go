package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"

	"interviewd/internal/transport/rest/handler"
	"interviewd/internal/transport/rest/middleware"
	"interviewd/internal/transport/ws"

	_ "interviewd/docs"
)

// Container holds all dependencies for the router
type Container struct {
	CandidateService   handler.CandidateService
	InterviewService   handler.InterviewService
	WSHub              *ws.Hub
	CORSAllowedOrigins string
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	candidateHandler := handler.NewCandidateHandler(c.CandidateService)
	interviewHandler := handler.NewInterviewHandler(c.InterviewService)
	wsHandler := ws.NewHandler(c.WSHub)

	// CORS first so preflight requests never reach a handler
	r.Use(corsMiddleware(c.CORSAllowedOrigins))
	r.Use(middleware.RequestLogger)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	r.HandleFunc("/swagger/doc.json", swaggerDoc).Methods("GET")
	r.HandleFunc("/ws/dashboard", wsHandler.Dashboard).Methods("GET")

	// Candidate records. Literal paths are registered before /{id} routes.
	r.HandleFunc("/candidates", candidateHandler.Create).Methods("POST", "OPTIONS")
	r.HandleFunc("/candidates", candidateHandler.List).Methods("GET", "OPTIONS")
	r.HandleFunc("/candidates/cleanup-duplicates", candidateHandler.CleanupDuplicates).Methods("POST", "OPTIONS")
	r.HandleFunc("/candidates/leaderboard", candidateHandler.Leaderboard).Methods("GET", "OPTIONS")
	r.HandleFunc("/candidates/export", candidateHandler.Export).Methods("GET", "OPTIONS")
	r.HandleFunc("/candidates/{id}", candidateHandler.Update).Methods("PUT", "OPTIONS")
	r.HandleFunc("/candidates/{id}/answers", candidateHandler.AppendAnswer).Methods("POST", "OPTIONS")

	// AI-backed interview steps
	r.HandleFunc("/generateQuestions", interviewHandler.GenerateQuestions).Methods("POST", "OPTIONS")
	r.HandleFunc("/evaluateAnswer", interviewHandler.EvaluateAnswer).Methods("POST", "OPTIONS")
	r.HandleFunc("/finalSummary", interviewHandler.FinalSummary).Methods("POST", "OPTIONS")

	return r
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, `{"error":"openapi document unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}

func corsMiddleware(allowedOrigins string) mux.MiddlewareFunc {
	if allowedOrigins == "" {
		allowedOrigins = "*"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
