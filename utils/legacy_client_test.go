package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchListNormalizesEnvelopes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/coupons":
			w.Write([]byte(`[{"code":"SAVE10"}]`))
		case "/sizes":
			w.Write([]byte(`{"data":[{"name":"XL"},{"name":"S"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL)

	list, stale := client.FetchList(context.Background(), "coupons")
	require.Len(t, list, 1)
	assert.Equal(t, "SAVE10", list[0]["code"])
	assert.False(t, stale)

	list, stale = client.FetchList(context.Background(), "sizes")
	assert.Len(t, list, 2)
	assert.False(t, stale)
}

func TestFetchListFailuresResolveToEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/error":
			w.WriteHeader(http.StatusInternalServerError)
		case "/garbage":
			w.Write([]byte(`not json`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL)

	for _, resource := range []string{"error", "garbage", "missing"} {
		list, _ := client.FetchList(context.Background(), resource)
		assert.NotNil(t, list, resource)
		assert.Empty(t, list, resource)
	}
}

func TestFetchListNetworkErrorResolvesToEmptyList(t *testing.T) {
	client := NewLegacyClient("http://127.0.0.1:1")

	list, _ := client.FetchList(context.Background(), "coupons")
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestFetchListReportsSupersededFetchAsStale(t *testing.T) {
	var requests int64
	started := make(chan struct{})
	release := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt64(&requests, 1) == 1 {
			close(started)
			<-release
		}
		w.Write([]byte(`[{"code":"SAVE10"}]`))
	}))
	defer srv.Close()

	client := NewLegacyClient(srv.URL)

	var firstStale bool
	done := make(chan struct{})
	go func() {
		_, firstStale = client.FetchList(context.Background(), "coupons")
		close(done)
	}()

	// A second fetch starts while the first is still in flight
	<-started
	_, secondStale := client.FetchList(context.Background(), "coupons")

	close(release)
	<-done

	assert.True(t, firstStale, "superseded fetch should report stale")
	assert.False(t, secondStale, "latest fetch should not report stale")
}
