package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every request hitting the fake backend.
type recorder struct {
	mu   sync.Mutex
	reqs []string // "METHOD /path"
}

func (rec *recorder) add(r *http.Request) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.reqs = append(rec.reqs, r.Method+" "+r.URL.Path)
}

func (rec *recorder) all() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]string(nil), rec.reqs...)
}

func newTestResource[T any](t *testing.T, bulk bool, handler http.HandlerFunc) (*Resource[T], *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.add(r)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{})
	if bulk {
		return NewBulkResource[T](c, "admin/estimates"), rec
	}
	return NewResource[T](c, "admin/estimates"), rec
}

func TestResource_ListPassesQueryParams(t *testing.T) {
	res, _ := newTestResource[domain.Estimate](t, false, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "acme", r.URL.Query().Get("search"))
		assert.Equal(t, "Sent", r.URL.Query().Get("status"))
		w.Write([]byte(`{"data":[{"_id":"e1","customer":"Acme"}]}`))
	})

	env, err := res.List(context.Background(), Query{Search: "acme", Status: "Sent"})
	require.NoError(t, err)
	require.Len(t, env.Items, 1)
	assert.Equal(t, "Acme", env.Items[0].Customer)
}

func TestResource_ListErrorYieldsEmptyItems(t *testing.T) {
	res, _ := newTestResource[domain.Estimate](t, false, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	env, err := res.List(context.Background(), Query{})
	assert.Error(t, err)
	assert.NotNil(t, env.Items)
	assert.Empty(t, env.Items)
}

func TestResource_BulkDelete_SingleEndpoint(t *testing.T) {
	res, rec := newTestResource[domain.Estimate](t, true, func(w http.ResponseWriter, r *http.Request) {
		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.ElementsMatch(t, []string{"a", "b", "c"}, body["ids"])
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, res.BulkDelete(context.Background(), []string{"a", "b", "c"}))
	assert.Equal(t, []string{"POST /admin/estimates/bulk-delete"}, rec.all())
}

func TestResource_BulkDelete_PerIDLoop(t *testing.T) {
	res, rec := newTestResource[domain.Estimate](t, false, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, res.BulkDelete(context.Background(), []string{"a", "b", "c"}))
	assert.Equal(t, []string{
		"DELETE /admin/estimates/a",
		"DELETE /admin/estimates/b",
		"DELETE /admin/estimates/c",
	}, rec.all())
}

func TestResource_BulkDelete_LoopStopsOnFailure(t *testing.T) {
	res, rec := newTestResource[domain.Estimate](t, false, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/admin/estimates/b" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"locked"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	err := res.BulkDelete(context.Background(), []string{"a", "b", "c"})
	require.Error(t, err)
	// c is never attempted once b fails.
	assert.Equal(t, []string{
		"DELETE /admin/estimates/a",
		"DELETE /admin/estimates/b",
	}, rec.all())
}

func TestResource_BulkDelete_EmptySelectionIsNoop(t *testing.T) {
	res, rec := newTestResource[domain.Estimate](t, true, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	require.NoError(t, res.BulkDelete(context.Background(), nil))
	assert.Empty(t, rec.all())
}

func TestResource_CreateAndUpdateVerbs(t *testing.T) {
	res, rec := newTestResource[domain.Estimate](t, false, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	require.NoError(t, res.Create(context.Background(), map[string]string{"customer": "Acme"}))
	require.NoError(t, res.Update(context.Background(), "e1", map[string]string{"customer": "Acme"}))
	require.NoError(t, res.Patch(context.Background(), "e1", map[string]bool{"active": false}))

	assert.Equal(t, []string{
		"POST /admin/estimates",
		"PUT /admin/estimates/e1",
		"PATCH /admin/estimates/e1",
	}, rec.all())
}
