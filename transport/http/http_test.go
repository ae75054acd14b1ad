package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"todolist/config"
	"todolist/infras/otel/mocks"
	"todolist/transport/http/middleware"
	"todolist/transport/http/router"
)

type fakeDatabase struct {
	pingErr error
	closed  bool
}

func (f *fakeDatabase) Ping(context.Context) error {
	return f.pingErr
}

func (f *fakeDatabase) Close() error {
	f.closed = true

	return nil
}

func newTestServer(db Database) *HTTP {
	cfg := &config.Config{}
	otl := mocks.NewOtel()

	r := router.New(router.DomainHandlers{}, middleware.NewAppMiddleware(otl, cfg, nil))

	return New(cfg, r, db, nil, otl)
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))

	return recorder
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		state    ServerState
		wantCode int
		wantBody string
	}{
		{
			name:     "healthy",
			state:    ServerStateReady,
			wantCode: http.StatusOK,
			wantBody: `{"message":"OK"}`,
		},
		{
			name:     "database down",
			pingErr:  errors.New("connection refused"),
			state:    ServerStateReady,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"SERVER UNHEALTHY"}`,
		},
		{
			name:     "grace period",
			state:    ServerStateInGracePeriod,
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"error":"SERVER PREPARING TO SHUT DOWN"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(&fakeDatabase{pingErr: tt.pingErr})
			handler := server.Handler()
			server.setState(tt.state)

			recorder := get(handler, "/health")

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

func TestRejectDuringCleanup(t *testing.T) {
	server := newTestServer(&fakeDatabase{})
	handler := server.Handler()

	assert.Equal(t, ServerStateReady, server.State())
	assert.NotEqual(t, http.StatusServiceUnavailable, get(handler, "/v1/unknown").Code)

	server.setState(ServerStateInGracePeriod)
	assert.NotEqual(t, http.StatusServiceUnavailable, get(handler, "/v1/unknown").Code)

	server.setState(ServerStateInCleanupPeriod)
	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/v1/unknown").Code)
}

func TestReleaseResources(t *testing.T) {
	db := &fakeDatabase{}
	server := newTestServer(db)

	server.releaseResources()

	assert.True(t, db.closed)
}
