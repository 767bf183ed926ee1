package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "mediconnect/docs"
	mem "mediconnect/internal/adapters/storage/memory"
	pg "mediconnect/internal/adapters/storage/postgres"
	"mediconnect/internal/domain/healthdata"
	"mediconnect/internal/domain/questions"
	"mediconnect/internal/domain/records"
	"mediconnect/internal/middleware"
	"mediconnect/internal/platform/logger"
	"mediconnect/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, dataset estático + in-memory.
	DB *sql.DB

	Logger logger.Logger

	// Zona para "hoy" en los presets de fecha. nil => time.Local.
	Location *time.Location

	// Opcional: generador de series de salud (tests lo fijan con semilla).
	HealthGen *healthdata.Generator

	// Opcional: reloj del servicio de visitas (tests).
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		recordRepo   records.Repository
		questionRepo questions.Repository
	)

	if opts.DB != nil {
		recordRepo = pg.NewRecordsRepo(opts.DB)
		questionRepo = pg.NewQuestionsRepo(opts.DB)
		log.Info("storage selected", map[string]any{"backend": "postgres"})
	} else {
		recordRepo = mem.NewRecordRepo()
		questionRepo = mem.NewQuestionRepo()
		log.Info("storage selected", map[string]any{"backend": "memory"})
	}

	// Services por módulo
	recordsSvc := records.NewService(recordRepo, opts.Location)
	if opts.Now != nil {
		recordsSvc.SetClock(opts.Now)
	}
	healthSvc := healthdata.NewService(opts.HealthGen)
	questionsSvc := questions.NewService(questionRepo)

	// Rutas por módulo
	records.RegisterRoutes(r, recordsSvc)
	healthdata.RegisterRoutes(r, healthSvc)
	questions.RegisterRoutes(r, questionsSvc)

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
