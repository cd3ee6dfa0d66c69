package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"issue-tracker-api/internal/domain"
	"issue-tracker-api/internal/events"
	"issue-tracker-api/internal/metrics"
	"issue-tracker-api/internal/repository"
	"issue-tracker-api/internal/service"
)

func setupTestRouter(t *testing.T) Config {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Project{}, &domain.Issue{}, &domain.Comment{}))

	log := zap.NewNop()
	issueRepo := repository.NewIssueRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	hub := events.NewHub(log)
	go hub.Run()
	t.Cleanup(hub.Stop)

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), log)

	return Config{
		Logger:         log,
		Metrics:        m,
		IssueService:   service.NewIssueService(issueRepo, commentRepo, hub, m, log),
		ProjectService: service.NewProjectService(projectRepo, log),
		CommentService: service.NewCommentService(commentRepo, hub, m, log),
		Hub:            hub,
		DB:             db,
		StorageBackend: "database",
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := Setup(setupTestRouter(t))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	r := Setup(setupTestRouter(t))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "# HELP")
}

func TestAPIRoutesRegistered(t *testing.T) {
	r := Setup(setupTestRouter(t))

	req := httptest.NewRequest(http.MethodGet, "/api/issues", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := Setup(setupTestRouter(t))

	req := httptest.NewRequest(http.MethodOptions, "/api/issues", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
