// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aeroclub-dev/clubhouse/internal/http_server/controller"
	mid "github.com/aeroclub-dev/clubhouse/internal/http_server/middleware"
	impl "github.com/aeroclub-dev/clubhouse/internal/http_server/service"
	"github.com/aeroclub-dev/clubhouse/internal/http_server/service/store"
	. "github.com/aeroclub-dev/clubhouse/internal/interfaces"
	"github.com/aeroclub-dev/clubhouse/internal/interfaces/service"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	emailService := impl.NewEmailService(logger, config.Server.General.ClubName, httpConfig.Email)
	impl.InitValidator(httpConfig.Limits)

	var storeService service.StoreServiceInterface
	storeService = store.NewLocalStoreService(logger, httpConfig.Store)
	switch httpConfig.Store.StoreType {
	case 1:
		storeService = store.NewALiYunOssStoreService(logger, httpConfig.Store, storeService)
	case 2:
		storeService = store.NewTencentCosStoreService(logger, httpConfig.Store, storeService)
	}

	operations := applicationContent.Operations()
	pilotOperation := operations.PilotOperation()
	aircraftOperation := operations.AircraftOperation()
	flightOperation := operations.FlightOperation()
	slotOperation := operations.SlotOperation()
	auditLogOperation := operations.AuditLogOperation()

	pilotService := impl.NewPilotService(logger, httpConfig, pilotOperation, auditLogOperation, emailService)
	aircraftService := impl.NewAircraftService(logger, pilotOperation, aircraftOperation, auditLogOperation)
	flightService := impl.NewFlightService(logger, pilotOperation, aircraftOperation, flightOperation)
	agendaService := impl.NewAgendaService(logger, config.Airfield, pilotOperation, slotOperation, emailService)
	reportService := impl.NewReportService(logger, config, operations, storeService, emailService)
	daylightService := impl.NewDaylightService(logger, config.Airfield)
	auditService := impl.NewAuditService(logger, pilotOperation, auditLogOperation)

	pilotController := controller.NewPilotHandler(logger, pilotService)
	emailController := controller.NewEmailHandler(logger, emailService)
	aircraftController := controller.NewAircraftHandler(logger, aircraftService)
	flightController := controller.NewFlightHandler(logger, flightService)
	agendaController := controller.NewAgendaHandler(logger, agendaService)
	reportController := controller.NewReportHandler(logger, reportService)
	daylightController := controller.NewDaylightHandler(logger, daylightService)
	auditController := controller.NewAuditHandler(logger, auditService)

	apiGroup := e.Group("/api")
	apiGroup.POST("/sessions", pilotController.PilotLogin)
	apiGroup.GET("/sessions", pilotController.GetToken, jwtMiddleware)
	apiGroup.POST("/codes", emailController.SendEmailVerifyCode)
	apiGroup.GET("/profile", pilotController.GetCurrentProfile, jwtMiddleware)
	apiGroup.PATCH("/profile", pilotController.EditCurrentProfile, jwtMiddleware)
	apiGroup.GET("/daylight", daylightController.GetDaylight)

	pilotGroup := apiGroup.Group("/pilots")
	pilotGroup.POST("", pilotController.PilotRegister)
	pilotGroup.GET("/availability", pilotController.CheckPilotAvailability)
	pilotGroup.GET("", pilotController.GetPilots, jwtMiddleware)
	pilotGroup.GET("/:uid/profile", pilotController.GetPilotProfile, jwtMiddleware)
	pilotGroup.PATCH("/:uid/profile", pilotController.EditPilotProfile, jwtMiddleware)

	aircraftGroup := apiGroup.Group("/aircraft")
	aircraftGroup.GET("", aircraftController.GetAircraftList, jwtMiddleware)
	aircraftGroup.GET("/:id", aircraftController.GetAircraft, jwtMiddleware)
	aircraftGroup.POST("", aircraftController.AddAircraft, jwtMiddleware)
	aircraftGroup.PATCH("/:id", aircraftController.EditAircraft, jwtMiddleware)
	aircraftGroup.DELETE("/:id", aircraftController.DeleteAircraft, jwtMiddleware)

	engineGroup := apiGroup.Group("/flights/engine")
	engineGroup.GET("", flightController.GetEngineFlights, jwtMiddleware)
	engineGroup.POST("", flightController.AddEngineFlight, jwtMiddleware)
	engineGroup.PATCH("/:id", flightController.EditEngineFlight, jwtMiddleware)
	engineGroup.DELETE("/:id", flightController.DeleteEngineFlight, jwtMiddleware)

	gliderGroup := apiGroup.Group("/flights/glider")
	gliderGroup.GET("", flightController.GetGliderFlights, jwtMiddleware)
	gliderGroup.POST("", flightController.AddGliderFlight, jwtMiddleware)
	gliderGroup.PATCH("/:id", flightController.EditGliderFlight, jwtMiddleware)
	gliderGroup.DELETE("/:id", flightController.DeleteGliderFlight, jwtMiddleware)

	agendaGroup := apiGroup.Group("/agenda")
	agendaGroup.GET("", agendaController.GetAgenda, jwtMiddleware)
	agendaGroup.POST("", agendaController.AddSlot, jwtMiddleware)
	agendaGroup.POST("/:id/booking", agendaController.BookSlot, jwtMiddleware)
	agendaGroup.DELETE("/:id/booking", agendaController.ReleaseSlot, jwtMiddleware)
	agendaGroup.PATCH("/:id", agendaController.EditSlot, jwtMiddleware)
	agendaGroup.DELETE("/:id", agendaController.DeleteSlot, jwtMiddleware)

	reportGroup := apiGroup.Group("/reports")
	reportGroup.GET("/flights", reportController.GetFlightReport, jwtMiddleware)
	reportGroup.POST("/flights/exports", reportController.ExportFlightReport, jwtMiddleware)
	reportGroup.POST("/agenda/exports", reportController.ExportAgenda, jwtMiddleware)
	reportGroup.POST("/weekly-summary", reportController.SendWeeklySummary, jwtMiddleware)

	auditGroup := apiGroup.Group("/audits")
	auditGroup.GET("", auditController.GetAuditLogs, jwtMiddleware)

	apiGroup.Use(middleware.Static(httpConfig.Store.LocalStorePath))

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Http server error: %v", err)
	}
}
