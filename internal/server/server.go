package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/antonKrizmanic/gymlogger/internal/models"
	"github.com/antonKrizmanic/gymlogger/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store abstracts the persistence layer for HTTP handlers, so they can be
// exercised in tests with fabricated data and no database.
type Store interface {
	CreateUser(ctx context.Context, email, displayName, passwordHash string) (int, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	UpdateUserProfile(ctx context.Context, id int, displayName string, currentWeight *float64) error

	ListMuscleGroups(ctx context.Context) ([]models.MuscleGroup, error)
	ListExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, e models.Exercise) error
	GetExercisesByIDs(ctx context.Context, ids []uuid.UUID, userID int) (map[uuid.UUID]models.Exercise, error)

	CreateWorkout(ctx context.Context, w *models.WorkoutRecord) error
	UpdateWorkout(ctx context.Context, w *models.WorkoutRecord) error
	GetWorkout(ctx context.Context, id uuid.UUID, userID int) (*models.WorkoutRecord, error)
	ListWorkouts(ctx context.Context, userID int, opts storage.ListOptions) ([]models.WorkoutSummary, int, error)
	DeleteWorkout(ctx context.Context, id uuid.UUID, userID int) error
	AllWorkoutSummaries(ctx context.Context, userID int) ([]models.WorkoutSummary, error)

	GetDataStats(ctx context.Context, userID int) (*storage.DataStats, error)
	QueryImportLogs(ctx context.Context, userID, limit int) ([]storage.ImportLog, error)
}

// Compile-time check: *storage.DB satisfies Store.
var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store     Store
	log       *slog.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
	router    chi.Router
	now       func() time.Time
}

// New creates a new Server with all routes configured.
func New(store Store, jwtSecret string, tokenTTL time.Duration, log *slog.Logger) *Server {
	s := &Server{
		store:     store,
		log:       log,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		router:    chi.NewRouter(),
		now:       time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		// Everything else requires a session token.
		r.Group(func(r chi.Router) {
			r.Use(JWTAuth(s.jwtSecret))

			r.Get("/me", s.handleMe)
			r.Put("/me", s.handleUpdateProfile)

			r.Get("/dashboard", s.handleDashboard)
			r.Get("/stats", s.handleStats)
			r.Get("/import-logs", s.handleImportLogs)

			r.Get("/muscle-groups", s.handleListMuscleGroups)
			r.Get("/exercises", s.handleListExercises)
			r.Post("/exercises", s.handleCreateExercise)

			r.Route("/workouts", func(r chi.Router) {
				r.Get("/", s.handleListWorkouts)
				r.Post("/", s.handleCreateWorkout)
				r.Get("/{id}", s.handleGetWorkout)
				r.Put("/{id}", s.handleUpdateWorkout)
				r.Delete("/{id}", s.handleDeleteWorkout)
			})
		})
	})
}
