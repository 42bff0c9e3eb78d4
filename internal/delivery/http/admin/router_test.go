package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"contact-relay/internal/delivery/http/admin"
	"contact-relay/internal/delivery/http/response"
	"contact-relay/internal/usecase"
	"contact-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHealthz(t *testing.T) {
	r := admin.NewRouter(usecase.NewHealthUsecase(true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, map[string]any{"status": "ok", "cors": "enabled"}, body.Data)
	assert.NotEmpty(t, body.RequestID)
}

func TestMetricsExposesRelayCounters(t *testing.T) {
	metrics.Submissions.WithLabelValues(metrics.OutcomeSent).Add(0)
	r := admin.NewRouter(usecase.NewHealthUsecase(false))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "contact_relay_submissions_total")
}

func TestSwaggerDoc(t *testing.T) {
	r := admin.NewRouter(usecase.NewHealthUsecase(true))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ContactSubmission")
}
