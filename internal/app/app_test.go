package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func TestRunServesAndStopsGracefully(t *testing.T) {
	log.SetLevel(log.PanicLevel)

	cfg := DefaultConfig()
	cfg.HTTPAddr = freePort(t)
	cfg.MetricsAddr = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg)
	}()

	base := fmt.Sprintf("http://%s", cfg.HTTPAddr)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/livez")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	// In-memory конфигурация готова сразу после старта.
	resp, err := http.Get(base + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	metrics := fmt.Sprintf("http://%s/metrics", cfg.MetricsAddr)
	resp, err = http.Get(metrics)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}

func TestBuildDependenciesInMemory(t *testing.T) {
	log.SetLevel(log.PanicLevel)

	deps, err := buildDependencies(context.Background(), DefaultConfig(), log.WithField("component", "test"))
	require.NoError(t, err)
	require.NotNil(t, deps.services.Orders)
	require.NotNil(t, deps.services.Products)
	require.NotNil(t, deps.services.Suppliers)
	require.NotNil(t, deps.services.Customers)
	require.Nil(t, deps.store)
	require.Nil(t, deps.producer)
	require.Nil(t, deps.outboxWorker)
}
