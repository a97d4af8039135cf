package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soheilhy/cmux"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/message-service/internal/client/centrifugo"
	"github.com/s21platform/message-service/internal/client/cloudinary"
	"github.com/s21platform/message-service/internal/config"
	api "github.com/s21platform/message-service/internal/generated"
	"github.com/s21platform/message-service/internal/infra"
	"github.com/s21platform/message-service/internal/pkg/jwt"
	"github.com/s21platform/message-service/internal/pkg/validator"
	db "github.com/s21platform/message-service/internal/repository/postgres"
	"github.com/s21platform/message-service/internal/rest"
	"github.com/s21platform/message-service/internal/service/message"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	imageStorage, err := cloudinary.New(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create image storage: %v", err))
		return
	}

	vldtr := validator.New(cfg.Messaging.MaxContentLength)
	jwtValidator := jwt.New(cfg.Auth.JWTSecret)

	messageService := message.New(dbRepo, dbRepo, imageStorage, centrifugeClient, vldtr, cfg.Messaging)
	handler := rest.New(messageService, cfg.Messaging)

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next, jwtValidator)
	})

	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseURL:          "/api",
		BaseRouter:       router,
		ErrorHandlerFunc: handler.WriteParamError,
	})
	httpServer := &http.Server{
		Handler: router,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	m := cmux.New(listener)

	grpcListener := m.MatchWithWriters(cmux.HTTP2MatchHeaderFieldSendSettings("content-type", "application/grpc"))
	httpListener := m.Match(cmux.HTTP1Fast())

	g, _ := errgroup.WithContext(context.Background())

	g.Go(func() error {
		if err := grpcServer.Serve(grpcListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := httpServer.Serve(httpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := m.Serve(); err != nil {
			return fmt.Errorf("cannot start service: %v", err)
		}
		return nil
	})

	healthServer.SetServingStatus(cfg.Service.Name, healthpb.HealthCheckResponse_SERVING)

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
