package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam(t *testing.T) {
	router := gin.New()
	router.GET("/questions/:id", ExtractUintParam("id", "questionID"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.MustGet("questionID").(uint)})
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"valid", "/questions/42", http.StatusOK},
		{"non-numeric", "/questions/abc", http.StatusBadRequest},
		{"negative", "/questions/-1", http.StatusBadRequest},
		{"overflow", "/questions/99999999999", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.wantStatus, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, float64(42), resp["id"])
				return
			}
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, float64(http.StatusBadRequest), resp["error"])
			assert.Equal(t, "Invalid id", resp["message"])
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	router := gin.New()
	router.Use(RequestLogger(log))
	router.GET("/categories", func(c *gin.Context) {
		Logger(c).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var handlerEntry, requestEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &handlerEntry))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &requestEntry))

	assert.Equal(t, "abc-123", handlerEntry["request_id"], "логгер обработчика несёт ID запроса")
	assert.Equal(t, "request handled", requestEntry["msg"])
	assert.Equal(t, float64(http.StatusNoContent), requestEntry["status"])
	assert.Equal(t, "/categories", requestEntry["path"])
}

func TestRequestLogger_GeneratesID(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	router := gin.New()
	router.Use(RequestLogger(log))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36, "ожидался UUID")
}

func TestLogger_WithoutMiddleware(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, Logger(c))
}

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	router := gin.New()
	router.Use(metrics.Middleware())
	router.GET("/questions/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/questions/1", "/questions/2", "/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "/questions/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.RequestCounter.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.RequestsInFlight))

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "trivia_api_request_duration_seconds")
}
