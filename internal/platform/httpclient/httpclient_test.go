package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/echo", r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["msg"]})
	}))
	defer srv.Close()

	c, err := New(Options{BaseURL: srv.URL + "/", Headers: map[string]string{"X-Api-Key": "k1"}})
	require.NoError(t, err)

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "v1/echo", nil, map[string]string{"msg": "안녕"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "안녕", out["echo"])
}

func TestDoJSON_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(Options{})
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, srv.URL+"/x", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, StatusCode(err))
	assert.Contains(t, err.Error(), "denied")
}

func TestResolveURL(t *testing.T) {
	c, err := New(Options{})
	require.NoError(t, err)

	_, err = c.resolveURL("/relative")
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "not a url"})
	assert.Error(t, err)

	var nilClient *Client
	assert.ErrorIs(t, nilClient.DoJSON(context.Background(), http.MethodGet, "http://x", nil, nil, nil), ErrNilClient)
}
