package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchItems(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["Item1","Item2","Item3"]`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	got, err := c.FetchItems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Item1", "Item2", "Item3"}, got)
}

func TestFetchItems_SetsUserAgent(t *testing.T) {
	var ua string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	_, err := New(ts.URL).FetchItems(context.Background())
	require.NoError(t, err)
	assert.Contains(t, ua, "shelf/")
}

func TestFetchItems_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	got, err := New(ts.URL).FetchItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestFetchItems_MalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	got, err := New(ts.URL).FetchItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestFetchItems_NonArrayBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": ["Item1"]}`))
	}))
	defer ts.Close()

	got, err := New(ts.URL).FetchItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestFetchItems_ServerUnreachable(t *testing.T) {
	// Reserve a port, then close it so nothing is listening
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	got, err := New(url).FetchItems(context.Background())
	assert.Error(t, err)
	assert.Nil(t, got)
}
