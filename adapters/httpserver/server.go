package httpserver

import (
	"net/http"
	"strings"

	"github.com/SeaCloudHub/enquiry/adapters/dbcontext"
	"github.com/SeaCloudHub/enquiry/adapters/httpserver/model"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/internal"
	"github.com/SeaCloudHub/enquiry/pkg/apperror"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/SeaCloudHub/enquiry/pkg/sentry"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// internal services
	MapperService internal.Mapper

	// storage adapters
	CustomerStore customer.Store

	// services
	CustomerService customer.Service
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))

	s.RegisterCustomerRoutes(s.router.Group("/api"))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestID())
	s.router.Use(s.requestLogger())
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    "000000",
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) success(c echo.Context, data interface{}) error {
	return s.respond(c, http.StatusOK, data)
}

func (s *Server) created(c echo.Context, data interface{}) error {
	return s.respond(c, http.StatusCreated, data)
}

func (s *Server) respond(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, model.SuccessResponse{
		Message: "OK",
		Data:    data,
	})
}

// dispatchFailed reports an event that could not be handled after its write
// was committed. The write stands, so the request still succeeds.
func (s *Server) dispatchFailed(c echo.Context, err *dbcontext.DispatchError) {
	s.Logger.Warnw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
		zap.String("event", err.Event.EventName()),
	)

	sentry.WithContext(c).Warning(err)
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
