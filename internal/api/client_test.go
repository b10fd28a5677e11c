package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession is a Session backed by a plain string.
type fakeSession struct {
	token        string
	unauthorized int32
}

func (s *fakeSession) Token() string { return s.token }
func (s *fakeSession) Unauthorized() {
	s.token = ""
	atomic.AddInt32(&s.unauthorized, 1)
}

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	return cfg
}

func TestClient_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "/tasks", r.URL.Path)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), &fakeSession{token: "tok-123"}, NoopObserver{})
	_, err := c.Get(context.Background(), "tasks", nil)
	require.NoError(t, err)
}

func TestClient_NoHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), &fakeSession{}, NoopObserver{})
	_, err := c.Post(context.Background(), "auth/login", map[string]string{"email": "a@b.c"})
	require.NoError(t, err)
}

func TestClient_UnauthorizedClearsTokenAndDoesNotRetry(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	session := &fakeSession{token: "stale"}
	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3

	c := NewClient(cfg, session, NoopObserver{})
	_, err := c.Get(context.Background(), "admin/estimates", nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "401 must not be retried")
	assert.Equal(t, int32(1), atomic.LoadInt32(&session.unauthorized))
	assert.Empty(t, session.Token())
}

func TestClient_ServerErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"customer is required"}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{})
	_, err := c.Post(context.Background(), "admin/estimates", map[string]string{})

	var se *ServerError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.StatusCode)
	assert.Equal(t, "customer is required", se.Message)
}

func TestClient_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{})
	_, err := c.Get(context.Background(), "tasks/nope", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	c := NewClient(cfg, &fakeSession{token: "t"}, NoopObserver{})
	_, err := c.Get(context.Background(), "tasks", nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	c := NewClient(cfg, &fakeSession{token: "t"}, NoopObserver{})
	_, err := c.Get(context.Background(), "tasks", nil)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_ObserverSeesFailureCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	c := NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, obs)
	_, _ = c.Get(context.Background(), "staffs", nil)

	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Equal(t, "UNAUTHORIZED", events[0].ErrorCode)
	assert.Equal(t, "staffs", events[0].Path)
}

func TestClient_ObserverSeesSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	var events []CallEvent
	obs := observerFunc(func(e CallEvent) { events = append(events, e) })

	c := NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, obs)
	_, err := c.Post(context.Background(), "admin/projects", map[string]any{"name": "n"})
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, http.StatusCreated, events[0].Status)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
