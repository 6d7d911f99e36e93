package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/go-holocron/internal/handler/grpc"
	"github.com/MKhiriev/go-holocron/internal/logger"
)

// healthCheckInterval is how often the storage ping refreshes the health status.
const healthCheckInterval = 15 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// watchCtx scopes the periodic health refresh; stopWatch ends it.
	watchCtx  context.Context
	stopWatch context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", address, err)
	}

	grpcSrv := grpc.NewServer()
	handler.Register(grpcSrv)

	watchCtx, stopWatch := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          grpcSrv,
		gRPCNetListener: listener,
		watchCtx:        watchCtx,
		stopWatch:       stopWatch,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.watchCtx, healthCheckInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopWatch()
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
	}
}
