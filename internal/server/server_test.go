package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_RunServesAndShutsDownLIFO(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	srv := New(handler, Options{Port: 0, ShutdownTimeout: 5 * time.Second}, testLogger())

	var order []string
	srv.OnShutdown("store", func(ctx context.Context) error {
		order = append(order, "store")
		return nil
	})
	srv.OnShutdown("cache", func(ctx context.Context) error {
		order = append(order, "cache")
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	port := srv.Addr().(*net.TCPAddr).Port
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/", port))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	assert.Equal(t, []string{"cache", "store"}, order)
}

func TestServer_ShutdownErrorsAreJoined(t *testing.T) {
	srv := New(http.NotFoundHandler(), Options{ShutdownTimeout: time.Second}, testLogger())

	boom := errors.New("flush failed")
	srv.OnShutdown("events", func(ctx context.Context) error { return boom })
	srv.OnShutdown("ok", func(ctx context.Context) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := srv.Run(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "events")
}
