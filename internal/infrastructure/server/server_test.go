package server_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/server"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

func TestServer_Run(t *testing.T) {
	t.Run("stops cleanly when context is cancelled", func(t *testing.T) {
		srv := server.NewServer(server.ServerConfig{
			Port:            freePort(t),
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			ShutdownTimeout: time.Second,
			Handler:         http.NotFoundHandler(),
			Logger:          zap.NewNop(),
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx) }()

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not stop")
		}
	})

	t.Run("returns listen errors", func(t *testing.T) {
		l, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer l.Close()

		srv := server.NewServer(server.ServerConfig{
			Port:            l.Addr().(*net.TCPAddr).Port,
			ShutdownTimeout: time.Second,
			Handler:         http.NotFoundHandler(),
			Logger:          zap.NewNop(),
		})

		err = srv.Run(context.Background())

		assert.ErrorContains(t, err, "server error")
	})
}
