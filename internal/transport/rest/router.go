package rest

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/swaggo/swag"
	"go.uber.org/zap"

	_ "sarrisk/docs"
	"sarrisk/internal/config"
	"sarrisk/internal/metrics"
	"sarrisk/internal/service"
	"sarrisk/internal/strategy"
	"sarrisk/internal/theme"
	"sarrisk/internal/transport/rest/handler"
	"sarrisk/internal/transport/rest/middleware"
	"sarrisk/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config             *config.Config
	Logger             *zap.Logger
	Registry           *strategy.Registry
	Themes             *theme.Resolver
	AuthService        *service.AuthService
	QuestionnaireSvc   *service.QuestionnaireService
	MissionService     *service.MissionService
	AssessmentService  *service.AssessmentService
	PreferencesService *service.PreferencesService
	WSHub              *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	strategyHandler := handler.NewStrategyHandler(c.Registry, c.QuestionnaireSvc)
	questionnaireHandler := handler.NewQuestionnaireHandler(c.QuestionnaireSvc, c.Themes)
	missionHandler := handler.NewMissionHandler(c.MissionService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService)
	preferencesHandler := handler.NewPreferencesHandler(c.PreferencesService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService, c.MissionService, c.Logger)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(middleware.CORS(c.Config.CORS))
	r.Use(middleware.Logging(c.Logger))

	// Health check and metrics
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/docs/openapi.json", serveDoc).Methods("GET")
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/strategies", strategyHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/strategies/{type}", strategyHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/strategies/{type}/evaluate", strategyHandler.Evaluate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/questionnaires/{type}", questionnaireHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/themes/{scheme}", questionnaireHandler.Theme).Methods("GET", "OPTIONS")
	v1.HandleFunc("/missions/{code}/join", missionHandler.Join).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/missions/{code}/coordinator", wsHandler.CoordinatorWS).Methods("GET")

	// Coordinator routes (require coordinator auth)
	coordinatorRoutes := v1.NewRoute().Subrouter()
	coordinatorRoutes.Use(authMW.RequireCoordinator)

	coordinatorRoutes.HandleFunc("/missions", missionHandler.Create).Methods("POST", "OPTIONS")
	coordinatorRoutes.HandleFunc("/missions", missionHandler.List).Methods("GET", "OPTIONS")
	coordinatorRoutes.HandleFunc("/missions/{code}", missionHandler.Get).Methods("GET", "OPTIONS")
	coordinatorRoutes.HandleFunc("/missions/{code}/close", missionHandler.Close).Methods("POST", "OPTIONS")
	coordinatorRoutes.HandleFunc("/missions/{code}/teams", missionHandler.Teams).Methods("GET", "OPTIONS")
	coordinatorRoutes.HandleFunc("/missions/{code}/board", missionHandler.Board).Methods("GET", "OPTIONS")
	coordinatorRoutes.HandleFunc("/missions/{code}/reports", missionHandler.Reports).Methods("GET", "OPTIONS")

	// Team routes (require team auth)
	teamRoutes := v1.NewRoute().Subrouter()
	teamRoutes.Use(authMW.RequireTeam)

	teamRoutes.HandleFunc("/assessments", assessmentHandler.Start).Methods("POST", "OPTIONS")
	teamRoutes.HandleFunc("/assessments", assessmentHandler.List).Methods("GET", "OPTIONS")
	teamRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET", "OPTIONS")
	teamRoutes.HandleFunc("/assessments/{id}", assessmentHandler.Discard).Methods("DELETE", "OPTIONS")
	teamRoutes.HandleFunc("/assessments/{id}/entries/{title}", assessmentHandler.Score).Methods("PUT", "OPTIONS")
	teamRoutes.HandleFunc("/assessments/{id}/variant", assessmentHandler.ChangeVariant).Methods("PUT", "OPTIONS")
	teamRoutes.HandleFunc("/assessments/{id}/finalize", assessmentHandler.Finalize).Methods("POST", "OPTIONS")
	teamRoutes.HandleFunc("/preferences", preferencesHandler.Get).Methods("GET", "OPTIONS")
	teamRoutes.HandleFunc("/preferences", preferencesHandler.Put).Methods("PUT", "OPTIONS")

	return r
}

func serveDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		http.Error(w, `{"error":"api doc unavailable"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
