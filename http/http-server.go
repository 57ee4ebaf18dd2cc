package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/kultoura/backend/auth"
	"github.com/kultoura/backend/awards"
	"github.com/kultoura/backend/criteria"
	"github.com/kultoura/backend/event"
	"github.com/kultoura/backend/metrics"
	"github.com/kultoura/backend/results"
	"github.com/kultoura/backend/scoring"
	"github.com/kultoura/backend/user"
)

type HttpServer struct {
	userSrvc     *user.UserSrvc
	eventSrvc    *event.EventSrvc
	criteriaSrvc *criteria.CriteriaSrvc
	awardSrvc    *awards.AwardSrvc
	sessionSrvc  *scoring.SessionSrvc
	resultsSrvc  *results.ResultsSrvc
	metrics      *metrics.Metrics
	router       *chi.Mux
}

func NewHttpServer(
	userSrvc *user.UserSrvc,
	eventSrvc *event.EventSrvc,
	criteriaSrvc *criteria.CriteriaSrvc,
	awardSrvc *awards.AwardSrvc,
	sessionSrvc *scoring.SessionSrvc,
	resultsSrvc *results.ResultsSrvc,
	m *metrics.Metrics,
	jwtKey []byte,
	corsAllowedOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("kultoura", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))
	if m != nil {
		router.Use(m.Middleware)
	}

	server := &HttpServer{
		userSrvc:     userSrvc,
		eventSrvc:    eventSrvc,
		criteriaSrvc: criteriaSrvc,
		awardSrvc:    awardSrvc,
		sessionSrvc:  sessionSrvc,
		resultsSrvc:  resultsSrvc,
		metrics:      m,
		router:       router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router

	r.Post("/auth/register", httpserver.authRegister)
	r.Post("/auth/login", httpserver.authLogin)
	r.Get("/auth/whoami", httpserver.authWhoami)

	r.Get("/users", httpserver.listUsers)
	r.Get("/users/{userID}", httpserver.getUser)

	r.Get("/events", httpserver.listEvents)
	r.Get("/events/active", httpserver.listActiveEvents)
	r.Post("/events", httpserver.createEvent)
	r.Get("/events/{eventID}", httpserver.getEvent)
	r.Delete("/events/{eventID}", httpserver.deleteEvent)
	r.Post("/events/{eventID}/activate", httpserver.activateEvent)
	r.Post("/events/{eventID}/deactivate", httpserver.deactivateEvent)
	r.Post("/events/{eventID}/participants", httpserver.addParticipant)
	r.Delete("/events/{eventID}/participants/{participantID}", httpserver.removeParticipant)
	r.Put("/events/{eventID}/performer", httpserver.setCurrentPerformer)
	r.Post("/events/{eventID}/poster", httpserver.uploadPoster)

	r.Get("/events/{eventID}/criteria", httpserver.getCriteria)
	r.Put("/events/{eventID}/criteria", httpserver.saveCriteria)

	r.Get("/events/{eventID}/awards", httpserver.listAwards)
	r.Post("/events/{eventID}/awards", httpserver.addAward)
	r.Delete("/events/{eventID}/awards/{awardID}", httpserver.removeAward)

	r.Get("/events/{eventID}/participants/{participantID}/session", httpserver.getSession)
	r.Put("/events/{eventID}/participants/{participantID}/session/scores/{criterionID}", httpserver.setScore)
	r.Post("/events/{eventID}/participants/{participantID}/session/submit", httpserver.submitScore)
	r.Post("/events/{eventID}/participants/{participantID}/session/unlock", httpserver.unlockScore)
	r.Get("/events/{eventID}/progress", httpserver.getJudgeProgress)

	r.Get("/events/{eventID}/results", httpserver.getResults)
	r.Get("/events/{eventID}/results/export", httpserver.downloadResults)
	r.Post("/events/{eventID}/results/export", httpserver.exportResults)

	r.Handle("/metrics", metrics.Handler())
}
