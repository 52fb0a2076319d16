package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessLog_RecordsStatusBytesAndRequestID(t *testing.T) {
	// GIVEN a server whose logger is captured by a test hook
	logger, hook := test.NewNullLogger()
	srv := New(WithLogger(logger))

	// WHEN a request is served
	req := httptest.NewRequest(http.MethodGet, "/api/v1/policies", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	// THEN exactly one info entry describes it
	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/api/v1/policies", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
	assert.Equal(t, w.Body.Len(), entry.Data["bytes"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), entry.Data["request_id"])
	assert.Equal(t, "server", entry.Data["component"])
}

func TestAccessLog_ClientErrorsLogAtInfo(t *testing.T) {
	logger, hook := test.NewNullLogger()
	srv := New(WithLogger(logger))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/simulate", strings.NewReader(`{`))
	srv.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, http.StatusBadRequest, hook.LastEntry().Data["status"])
}

func TestRequestIDFromContext_EmptyOutsideRequest(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
