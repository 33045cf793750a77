// Package httpapi exposes résumé evaluation over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nikogura/cv-evaluator/pkg/report"
	"github.com/nikogura/cv-evaluator/pkg/requirements"
	"github.com/nikogura/cv-evaluator/pkg/resume"
)

// RequestIDHeader carries the per-request id, echoed back when the client sends one.
const RequestIDHeader = "X-Request-ID"

// SingleResumeID is the batch id given to the résumé posted to /v1/evaluate.
const SingleResumeID = "single_resume"

const shutdownTimeout = 10 * time.Second

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Details string `json:"details,omitempty"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// EvaluateRequest is the body of POST /v1/evaluate.
type EvaluateRequest struct {
	ResumeData   json.RawMessage `json:"resume_data"`
	Requirements map[string]any  `json:"requirements"`
}

// BatchRequest is the body of POST /v1/evaluate/batch. Resumes stays raw so
// the batch keeps the order of the posted document.
type BatchRequest struct {
	Resumes      json.RawMessage `json:"resumes"`
	Requirements map[string]any  `json:"requirements"`
}

// Server handles evaluation requests with a shared assembler.
type Server struct {
	assembler *report.Assembler
	logger    *zap.Logger
	version   string
}

// NewServer creates a server. A nil logger discards output.
func NewServer(assembler *report.Assembler, logger *zap.Logger, version string) (s *Server) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s = &Server{
		assembler: assembler,
		logger:    logger,
		version:   version,
	}
	return s
}

// Router builds the gin engine with every route registered.
func (s *Server) Router() (router *gin.Engine) {
	router = gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(accessLog(s.logger))

	router.GET("/healthz", s.Health)

	v1 := router.Group("/v1")
	{
		v1.POST("/evaluate", s.Evaluate)
		v1.POST("/evaluate/batch", s.EvaluateBatch)
	}

	return router
}

// Health handles GET /healthz.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Version: s.version})
}

// Evaluate handles POST /v1/evaluate.
func (s *Server) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if isEmpty(req.ResumeData) || len(req.Requirements) == 0 {
		abort(c, http.StatusBadRequest, "Missing resume_data or requirements", nil)
		return
	}

	reqs, err := s.assembler.Requirements.Merge(req.Requirements)
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid requirements", err)
		return
	}

	item := resume.Item{ID: SingleResumeID}
	item.Record, item.Err = decodeRecord(req.ResumeData)

	s.respond(c, []resume.Item{item}, reqs)
}

// EvaluateBatch handles POST /v1/evaluate/batch.
func (s *Server) EvaluateBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if isEmpty(req.Resumes) || len(req.Requirements) == 0 {
		abort(c, http.StatusBadRequest, "Missing resumes or requirements", nil)
		return
	}

	reqs, err := s.assembler.Requirements.Merge(req.Requirements)
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid requirements", err)
		return
	}

	items, err := resume.ParseBatch(req.Resumes, resume.FormatJSON)
	if err != nil {
		abort(c, http.StatusBadRequest, "Invalid resumes", err)
		return
	}

	s.respond(c, items, reqs)
}

func (s *Server) respond(c *gin.Context, items []resume.Item, reqs requirements.Requirements) {
	start := time.Now()
	result := s.assembler.EvaluateMultipleWith(items, reqs)

	s.logger.Info("evaluated resumes",
		zap.String("run_id", c.GetString("request_id")),
		zap.Int("count", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	c.JSON(http.StatusOK, result)
}

// Run serves srv until ctx is cancelled, then shuts it down gracefully.
func Run(ctx context.Context, srv *http.Server, logger *zap.Logger) (err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		serveErr := srv.ListenAndServe()
		if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			err = errors.Wrap(err, "server error")
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		err = errors.Wrap(err, "server forced to shutdown")
		return err
	}

	logger.Info("server stopped")
	return err
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func abort(c *gin.Context, code int, message string, cause error) {
	resp := ErrorResponse{Error: message, Code: code}
	if cause != nil {
		resp.Details = cause.Error()
	}
	c.AbortWithStatusJSON(code, resp)
}

func decodeRecord(data json.RawMessage) (record resume.Record, err error) {
	err = json.Unmarshal(data, &record)
	if err != nil {
		err = errors.Wrap(err, "failed to decode resume_data")
	}
	return record, err
}

func isEmpty(data json.RawMessage) (empty bool) {
	trimmed := string(data)
	empty = trimmed == "" || trimmed == "null" || trimmed == "{}"
	return empty
}
