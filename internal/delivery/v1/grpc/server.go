package grpc

import (
	"context"
	"fmt"
	"net"

	"github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/internal/usecase"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type GRPCServer struct {
	server *grpc.Server
	health *health.Server
	cfg    *cfg.GRPCConfig
	logger logger.Logger
}

func NewGRPCServer(cfg *cfg.GRPCConfig, logger logger.Logger) *GRPCServer {
	return &GRPCServer{
		server: grpc.NewServer(),
		health: health.NewServer(),
		cfg:    cfg,
		logger: logger,
	}
}

// RegisterServices регистрирует каталог и стандартный сервис health.
func (s *GRPCServer) RegisterServices(prUC usecase.ProductUC) {
	s.server.RegisterService(&catalogServiceDesc, NewCatalogService(prUC, s.logger))

	healthpb.RegisterHealthServer(s.server, s.health)
	s.health.SetServingStatus(CatalogServiceName, healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

func (s *GRPCServer) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	lis, err := net.Listen(s.cfg.NetworkMode, addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return s.Serve(lis)
}

// Serve обслуживает уже открытый listener.
func (s *GRPCServer) Serve(lis net.Listener) error {
	return s.server.Serve(lis)
}

// Stop переводит health в NOT_SERVING и ждёт завершения активных вызовов, пока не истечёт ctx.
func (s *GRPCServer) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Infof("gRPC server stopped gracefully")
		return nil
	case <-ctx.Done():
		s.server.Stop()
		s.logger.Warnf("gRPC server forced to stop after timeout")
		return ctx.Err()
	}
}
