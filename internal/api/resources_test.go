package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ArbeitEmployee/arbeit-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAPI_ToggleStaffActive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/staffs/s1/toggle-active", r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	admin := NewAdminAPI(NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{}))
	require.NoError(t, admin.ToggleStaffActive(context.Background(), "s1"))
}

func TestAdminAPI_SearchCustomers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/customers/search", r.URL.Path)
		assert.Equal(t, "acm", r.URL.Query().Get("q"))
		w.Write([]byte(`{"customers":[{"_id":"c1","company":"Acme"}]}`))
	}))
	defer srv.Close()

	admin := NewAdminAPI(NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{}))
	got, err := admin.SearchCustomers(context.Background(), "acm")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme", got[0].Company)
}

func TestClientAPI_CreatePayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/client/payments", r.URL.Path)
		var p domain.Payment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "inv1", p.InvoiceID)
		assert.Equal(t, 40.0, p.Amount)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cl := NewClientAPI(NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{}))
	err := cl.CreatePayment(context.Background(), domain.Payment{InvoiceID: "inv1", Amount: 40})
	require.NoError(t, err)
}

func TestClientAPI_CreatePayment_RequiresInvoice(t *testing.T) {
	cl := NewClientAPI(NewClient(testConfig("http://127.0.0.1:1"), &fakeSession{}, NoopObserver{}))
	assert.Error(t, cl.CreatePayment(context.Background(), domain.Payment{Amount: 40}))
}

func TestClientAPI_EstimateDecisions(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	cl := NewClientAPI(NewClient(testConfig(srv.URL), &fakeSession{token: "t"}, NoopObserver{}))
	require.NoError(t, cl.AcceptEstimate(context.Background(), "e1"))
	require.NoError(t, cl.DeclineEstimate(context.Background(), "e2"))
	assert.Equal(t, []string{
		"POST /client/estimates/e1/approve",
		"POST /client/estimates/e2/reject",
	}, paths)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.Write([]byte(`{"token":"admin-tok"}`))
		case "/client/auth/login":
			w.Write([]byte(`{"token":"client-tok"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, NoopObserver{})

	tok, err := Login(context.Background(), c, "admin", "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "admin-tok", tok)

	tok, err = Login(context.Background(), c, "client", "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "client-tok", tok)
}

func TestLogin_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), nil, NoopObserver{})
	_, err := Login(context.Background(), c, "admin", "a@b.c", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
