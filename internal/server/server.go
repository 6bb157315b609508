// Package server exposes a MessageHandler over the Bot API HTTP protocol.
package server

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"

	"github.com/NguyenHuy1812/telegram-mock-server/internal/metrics"
	"github.com/NguyenHuy1812/telegram-mock-server/internal/usecase"
)

const uploadLimit = 50 << 20

type Config struct {
	Token   string
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

type Server struct {
	app     *fiber.App
	handler *usecase.MessageHandler
	token   string
	logger  *zap.Logger
	metrics *metrics.Metrics
	methods map[string]method
}

// envelope is the body of every Bot API response.
type envelope struct {
	OK          bool   `json:"ok"`
	Result      any    `json:"result,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

func New(h *usecase.MessageHandler, cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}
	s := &Server{
		handler: h,
		token:   cfg.Token,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	s.methods = s.routes()

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		UnescapePath:          true,
		BodyLimit:             uploadLimit,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(zapLoggerMiddleware(s.logger))
	s.app.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	s.app.Get("/file/:token/*", s.serveFile)
	s.app.All("/:token/:method", s.serveMethod)
	return s
}

func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "listen")
	}
	return s.app.Listener(ln)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// Transport returns an http.RoundTripper that serves requests in process,
// without opening a socket.
func (s *Server) Transport() http.RoundTripper {
	return roundTripper{app: s.app}
}

type roundTripper struct {
	app *fiber.App
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt.app.Test(req, -1)
}

func (s *Server) checkToken(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Params("token"), "bot")
	if !ok || token != s.token {
		return &usecase.APIError{Code: http.StatusUnauthorized, Description: "Unauthorized"}
	}
	return nil
}

func (s *Server) serveMethod(c *fiber.Ctx) error {
	if err := s.checkToken(c); err != nil {
		return err
	}
	m, ok := s.methods[strings.ToLower(c.Params("method"))]
	if !ok {
		return &usecase.APIError{Code: http.StatusNotFound, Description: "Not Found: method not found"}
	}

	req, err := parseRequest(c)
	if err != nil {
		s.metrics.Observe(m.name, err)
		return err
	}
	result, err := m.call(req)
	s.metrics.Observe(m.name, err)
	s.metrics.StoredMessages.Set(float64(s.handler.Repository().Len()))
	if err != nil {
		return err
	}
	return c.JSON(envelope{OK: true, Result: result})
}

func (s *Server) serveFile(c *fiber.Ctx) error {
	if err := s.checkToken(c); err != nil {
		return err
	}
	data, ok := s.handler.FileData(c.Params("*"))
	if !ok {
		return &usecase.APIError{Code: http.StatusNotFound, Description: "Not Found: file not found"}
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(data)
}

// handleError writes err as a failure envelope. Errors that are not API
// errors come from malformed requests.
func (s *Server) handleError(c *fiber.Ctx, err error) error {
	resp := envelope{ErrorCode: http.StatusBadRequest, Description: "Bad Request: " + err.Error()}

	var fe *fiber.Error
	if apiErr, ok := usecase.AsAPIError(err); ok {
		resp.ErrorCode = apiErr.Code
		resp.Description = apiErr.Description
	} else if errors.As(err, &fe) {
		resp.ErrorCode = fe.Code
		resp.Description = fe.Message
	}
	return c.Status(resp.ErrorCode).JSON(resp)
}

// zapLoggerMiddleware logs incoming HTTP requests using Zap.
func zapLoggerMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Route().Path),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Debug("HTTP Request Error", append(fields, zap.Error(err))...)
			return err
		}
		logger.Debug("HTTP Request", append(fields, zap.Int("status", c.Response().StatusCode()))...)
		return nil
	}
}
