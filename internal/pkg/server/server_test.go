package server

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	logger, _ := test.NewNullLogger()

	t.Run("keeps configured timeout", func(t *testing.T) {
		gs := NewGracefulServer(echo.New(), logger, ":8080", 5*time.Second)
		assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
		assert.Equal(t, ":8080", gs.addr)
	})

	t.Run("defaults non-positive timeout", func(t *testing.T) {
		gs := NewGracefulServer(echo.New(), logger, ":8080", 0)
		assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
	})
}

func TestGracefulServer_Run(t *testing.T) {
	t.Run("serves until context is cancelled", func(t *testing.T) {
		logger, hook := test.NewNullLogger()
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

		gs := NewGracefulServer(e, logger, "127.0.0.1:0", time.Second)

		var closed bool
		gs.OnShutdown(func(ctx context.Context) error {
			closed = true
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- gs.Run(ctx) }()

		require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

		resp, err := http.Get("http://" + e.ListenerAddr().String() + "/ping")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("server did not shut down")
		}

		assert.True(t, closed)
		assert.Equal(t, "Server shutdown completed", hook.LastEntry().Message)
	})

	t.Run("returns listener error", func(t *testing.T) {
		logger, _ := test.NewNullLogger()
		gs := NewGracefulServer(echo.New(), logger, "invalid-address", time.Second)

		err := gs.Run(context.Background())
		assert.Error(t, err)
	})
}

func TestShutdownManager(t *testing.T) {
	logger, hook := test.NewNullLogger()
	sm := NewShutdownManager(logger)

	var order []int
	sm.Register(func(ctx context.Context) error {
		order = append(order, 1)
		return errors.New("close failed")
	})
	sm.Register(func(ctx context.Context) error {
		order = append(order, 2)
		return nil
	})

	sm.Shutdown(context.Background())

	assert.Equal(t, []int{1, 2}, order)

	var failures int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Error during component shutdown" {
			failures++
			assert.Equal(t, 0, entry.Data["component"])
		}
	}
	assert.Equal(t, 1, failures)
}
