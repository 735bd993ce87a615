package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"valunds/config"
	"valunds/internal/delivery"
	"valunds/internal/delivery/middleware"
	"valunds/internal/delivery/worker/handler"
	"valunds/internal/domain/constants"
	"valunds/internal/domain/lifecycle"
	"valunds/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// maxPushBodySize bounds a Pub/Sub push envelope. Mail jobs are a few hundred bytes.
const maxPushBodySize = "64KB"

// ServerParams holds dependencies for the mail worker's HTTP server.
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

type mailWorkerServer struct {
	addr   string
	engine *echo.Echo
	logger *slog.Logger
}

// NewServer builds the push endpoint of the mail worker. It listens on
// mail.workerPort so it can run next to the API with a shared config file.
func NewServer(params ServerParams) delivery.Delivery {
	engine := newEngine(params.Cfg, params.Logger, params.PushHandler)
	srv := &mailWorkerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.Mail.WorkerPort)),
		engine: engine,
		logger: params.Logger.With(slog.String("component", "mailworker")),
	}

	params.Lc.Append(fx.Hook{OnStop: srv.shutdown})

	return srv
}

func newEngine(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
		echomiddleware.BodyLimit(maxPushBodySize),
	)

	transport := constants.PubSubProviderNoop
	if cfg.PubSub != nil && cfg.PubSub.Provider != "" {
		transport = cfg.PubSub.Provider
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "transport": transport})
	})
	e.POST("/push", push.HandlePush)

	return e
}

// Serve blocks until the server is shut down.
func (s *mailWorkerServer) Serve(context.Context) error {
	s.logger.Info("Mail worker accepting push deliveries", slog.String("addr", s.addr))

	err := s.engine.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *mailWorkerServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Mail worker stopping")

	return errors.WithStack(s.engine.Shutdown(ctx))
}
