package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kyamashita/study-tracker-api/internal/constants"
	"github.com/kyamashita/study-tracker-api/internal/middleware"
	"github.com/kyamashita/study-tracker-api/internal/models"
	"github.com/kyamashita/study-tracker-api/internal/reports"
	"github.com/kyamashita/study-tracker-api/internal/repository"
	"github.com/kyamashita/study-tracker-api/internal/services"
	"github.com/kyamashita/study-tracker-api/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testNow anchors the reports engine clock so the study-trend window
// is deterministic.
var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	db             *gorm.DB
	router         *gin.Engine
	tokens         *token.Manager
	authService    *services.AuthService
	subjectService *services.SubjectService
	sessionService *services.SessionService
}

// setupTestEnv builds the full router against an isolated in-memory
// database, mirroring the wiring in cmd/server.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Session{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // ":memory:" is per-connection
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	engine := reports.NewEngineWithClock(func() time.Time { return testNow })
	tokens := token.NewManager("test-secret", constants.TokenTTL)

	authService := services.NewAuthService(userRepo)
	subjectService := services.NewSubjectService(subjectRepo)
	sessionService := services.NewSessionService(sessionRepo, subjectRepo, engine)
	statsService := services.NewStatsService(sessionRepo, subjectRepo, engine)

	authHandler := NewAuthHandler(authService, tokens)
	subjectHandler := NewSubjectHandler(subjectService)
	sessionHandler := NewSessionHandler(sessionService)
	statsHandler := NewStatsHandler(statsService)

	r := gin.New()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		subjects := api.Group("/subjects")
		subjects.Use(middleware.RequireAuth(tokens))
		{
			subjects.POST("", subjectHandler.CreateSubject)
			subjects.GET("", subjectHandler.ListSubjects)
			subjects.DELETE("/:id", subjectHandler.DeleteSubject)
		}

		sessions := api.Group("/sessions")
		sessions.Use(middleware.RequireAuth(tokens))
		{
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("", sessionHandler.ListSessions)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
		}

		stats := api.Group("/stats")
		stats.Use(middleware.RequireAuth(tokens))
		{
			stats.GET("/summary", statsHandler.Summary)
			stats.GET("/time-per-subject", statsHandler.TimePerSubject)
			stats.GET("/study-trend", statsHandler.StudyTrend)
		}
	}

	return &testEnv{
		db:             db,
		router:         r,
		tokens:         tokens,
		authService:    authService,
		subjectService: subjectService,
		sessionService: sessionService,
	}
}

// registerUser creates a user directly through the service and returns
// it with a valid bearer token.
func (env *testEnv) registerUser(t *testing.T, email string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Name:     "Test User",
		Email:    email,
		Password: "supersecret",
	})
	require.NoError(t, err)

	signed, err := env.tokens.Issue(user.ID, user.Email)
	require.NoError(t, err)

	return user, signed
}

// doRequest performs a JSON request against the test router. An empty
// token leaves the Authorization header unset.
func (env *testEnv) doRequest(t *testing.T, method, path, bearer string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func mustEqualStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
