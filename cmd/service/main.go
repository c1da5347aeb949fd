package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	joysticktv_client "github.com/s21platform/stream-hub/internal/client/joysticktv"
	pishock_client "github.com/s21platform/stream-hub/internal/client/pishock"
	"github.com/s21platform/stream-hub/internal/command"
	"github.com/s21platform/stream-hub/internal/config"
	"github.com/s21platform/stream-hub/internal/connector"
	"github.com/s21platform/stream-hub/internal/connectors/buttplug"
	"github.com/s21platform/stream-hub/internal/connectors/joysticktv"
	"github.com/s21platform/stream-hub/internal/connectors/obs"
	"github.com/s21platform/stream-hub/internal/connectors/pishock"
	"github.com/s21platform/stream-hub/internal/connectors/streamerbot"
	"github.com/s21platform/stream-hub/internal/connectors/vrchat"
	"github.com/s21platform/stream-hub/internal/connectors/warudo"
	"github.com/s21platform/stream-hub/internal/infra"
	"github.com/s21platform/stream-hub/internal/pkg/dsl"
	"github.com/s21platform/stream-hub/internal/pkg/jwt"
	"github.com/s21platform/stream-hub/internal/pkg/secret"
	"github.com/s21platform/stream-hub/internal/pkg/tx"
	"github.com/s21platform/stream-hub/internal/pkg/validator"
	"github.com/s21platform/stream-hub/internal/presence"
	db "github.com/s21platform/stream-hub/internal/repository/postgres"
	"github.com/s21platform/stream-hub/internal/rest"
	"github.com/s21platform/stream-hub/internal/service/auth"
	"github.com/s21platform/stream-hub/internal/worker/reward"
)

const shutdownTimeout = 10 * time.Second

type noopMetrics struct{}

func (noopMetrics) Increment(string) {}

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	var busMetrics connector.Metrics = noopMetrics{}
	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	} else {
		busMetrics = metrics
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, config.KeyMetrics, busMetrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)
	ctx = tx.WithRepo(ctx, dbRepo)

	box, err := secret.New(strings.Split(cfg.Security.FernetKey, ",")...)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to load fernet keys: %v", err))
		return
	}

	joystickClient := joysticktv_client.New(cfg)
	defer joystickClient.Close()

	authService := auth.New(dbRepo, joystickClient, box)
	tracker := presence.New(dbRepo, authService, presence.RulesFromConfig(cfg.Reward))

	manager := connector.NewManager(busMetrics)

	registry := command.NewRegistry()
	command.Register(ctx, registry, command.Builtin(dsl.DefaultRandom))
	events := command.NewEvents()
	command.RegisterEvents(ctx, events, command.BuiltinEvents())
	dispatcher := command.NewDispatcher(registry, tracker, manager, manager)

	lifecycle := []connector.Option{
		connector.WithMaxInitAttempts(cfg.Connector.MaxInitAttempts),
		connector.WithMaxReconnectDelay(cfg.Connector.MaxReconnectDelay),
	}

	gateway := joysticktv.New(
		joysticktv.GatewayURL(cfg.JoystickTV.APIHost, joysticktv_client.BasicToken(cfg.JoystickTV.ClientID, cfg.JoystickTV.ClientSecret)),
		tracker,
		events,
		dispatcher,
		manager,
		cfg.JoystickTV.VIPUsers,
		lifecycle...,
	)
	peers := []connector.Connector{gateway}

	if cfg.Warudo.Host != "" {
		peers = append(peers, warudo.New(cfg.Warudo.Host, lifecycle...))
	}
	if cfg.OBS.Host != "" {
		peers = append(peers, obs.New(cfg.OBS.Host, cfg.OBS.Password, lifecycle...))
	}
	if cfg.StreamerBot.Host != "" {
		peers = append(peers, streamerbot.New(cfg.StreamerBot.Host, lifecycle...))
	}
	if cfg.Buttplug.Host != "" {
		peers = append(peers, buttplug.New(cfg.Buttplug.Host, manager, lifecycle...))
	}
	if cfg.PiShock.Username != "" && cfg.PiShock.APIKey != "" {
		shockClient := pishock_client.New(cfg)
		defer shockClient.Close()
		brokerURL := pishock.BrokerURL(cfg.PiShock.BrokerURL, cfg.PiShock.Username, cfg.PiShock.APIKey)
		peers = append(peers, pishock.New(brokerURL, shockClient, lifecycle...))
	}
	if cfg.VRChat.ClientHost != "" {
		peers = append(peers, vrchat.New(cfg.VRChat.ClientHost, lifecycle...))
	}

	for _, peer := range peers {
		if err = manager.Register(peer); err != nil {
			logger.Error(fmt.Sprintf("failed to register connector: %v", err))
			return
		}
	}

	jwtGenerator := jwt.New(cfg.Admin.JWTSecret)
	handler := rest.New(manager, authService, validator.New())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})
	rest.Mount(router, handler, infra.AuthHTTP(jwtGenerator))

	httpServer := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
		return
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return manager.Run(gctx)
	})

	g.Go(func() error {
		return reward.New(tracker, gateway, cfg.Reward.SweepInterval).Run(gctx)
	})

	g.Go(func() error {
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		manager.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
