package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthService(t *testing.T) {
	s, err := NewServer(&Config{Port: 0, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()

	addr := fmt.Sprintf("localhost:%d", s.Addr().(*net.TCPAddr).Port)
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.Eventually(t, func() bool {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, s.Shutdown(ctx))
	assert.NoError(t, <-errCh)
}

func TestShutdownMarksNotServing(t *testing.T) {
	s, err := NewServer(&Config{Port: 0, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	require.NoError(t, s.Shutdown(context.Background()))

	resp, err := s.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestStartAfterShutdownIsCleanStop(t *testing.T) {
	s, err := NewServer(&Config{Port: 0, Logger: zaptest.NewLogger(t)})
	require.NoError(t, err)

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, s.Start())
}
