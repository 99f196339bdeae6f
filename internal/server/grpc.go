package server

import (
	"context"
	"fmt"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// GRPCServer manages the gRPC server lifecycle.
type GRPCServer struct {
	server    *grpc.Server
	port      int
	analytics AnalyticsServer
	health    *health.Server
}

func NewGRPCServer(port int, analytics AnalyticsServer) *GRPCServer {
	return &GRPCServer{
		port:      port,
		analytics: analytics,
	}
}

// Setup installs the logging interceptor and registers the analytics,
// health and reflection services.
func (s *GRPCServer) Setup() error {
	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	}
	s.server = grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(InterceptorLogger(logrus.StandardLogger()), opts...),
		),
	)

	RegisterAnalyticsServer(s.server, s.analytics)
	logrus.Infof("registered gRPC service %s", analyticsServiceName)

	s.health = health.NewServer()
	s.health.SetServingStatus(analyticsServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(s.server)
	grpc_health_v1.RegisterHealthServer(s.server, s.health)

	logrus.Infof("gRPC reflection and health check enabled")

	return nil
}

func (s *GRPCServer) Start(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.port, err)
	}

	go func() {
		logrus.Infof("gRPC server listening on port %d", s.port)
		if err := s.server.Serve(lis); err != nil {
			logrus.Fatalf("gRPC server failed: %v", err)
		}
	}()

	return nil
}

func (s *GRPCServer) Shutdown(ctx context.Context) error {
	logrus.Info("shutting down gRPC server...")
	s.health.Shutdown()
	s.server.GracefulStop()
	logrus.Info("gRPC server stopped")
	return nil
}
