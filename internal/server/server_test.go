package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/handler"
	myGRPC "github.com/MKhiriev/go-holocron/internal/handler/grpc"
	"github.com/MKhiriev/go-holocron/internal/logger"
)

type nopPinger struct{}

func (nopPinger) Ping(context.Context) error { return nil }

func TestNewServer_NoServers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nopPinger{}, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "256.0.0.1:0"}, logger.Nop())

	assert.Error(t, err)
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestServer_RunServesHealthAndStopsOnCancel(t *testing.T) {
	healthHandler := myGRPC.NewHandler(nopPinger{}, logger.Nop())
	gRPCServer, err := newGRPCServer(healthHandler, "127.0.0.1:0", logger.Nop())
	require.NoError(t, err)

	s := &server{
		gRPCServer:      gRPCServer,
		shutdownTimeout: time.Second,
		logger:          logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	conn, err := grpc.NewClient(gRPCServer.gRPCNetListener.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	require.Eventually(t, func() bool {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.ServiceName})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestHTTPServer_ShutdownStopsListenAndServe(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), "127.0.0.1:0", logger.Nop())

	done := make(chan struct{})
	go func() {
		srv.RunServer()
		close(done)
	}()

	// Shutdown sets the closed flag, so a ListenAndServe that has not started
	// yet returns ErrServerClosed immediately.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	srv.Shutdown(ctx)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
