package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
	customMiddleware "github.com/floodrisk/forms-data/go/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

type ServerDeps struct {
	AreaService    ports.AreaService
	AccountService ports.AccountService
	HealthCheckers []ports.HealthChecker
	// Optional; throttles account-request submissions per client IP.
	RateLimiter ports.RateLimiterService
	// Secret used to verify admin tokens; empty closes admin routes.
	ServiceSecret string
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	areaService    ports.AreaService
	accountService ports.AccountService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		areaService:    deps.AreaService,
		accountService: deps.AccountService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			logger,
			deps.ServiceSecret,
			deps.RateLimiter,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
