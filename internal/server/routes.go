package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/danmuck/hdlcbody/internal/hdlc"
	"github.com/danmuck/hdlcbody/internal/observability"
	"github.com/danmuck/hdlcbody/internal/render"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsSource = "http"

type decodeRequest struct {
	Frame string `json:"frame" binding:"required"`
}

func (s *Server) RegisterRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.Appeared).String(),
			"service": s.ID,
			"version": "0.1.0",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/v1/decode", s.handleDecode)
}

func (s *Server) handleDecode(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)

	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			observability.RecordDecodeError(metricsSource, "too_large")
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error(), "reason": "too_large"})
			return
		}
		observability.RecordDecodeError(metricsSource, "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": "bad_request"})
		return
	}

	frame, err := s.interpreter.Decode(req.Frame)
	if err != nil {
		status, reason := classifyError(err)
		c.Set(observability.ContextDecodeError, reason)
		observability.RecordDecodeError(metricsSource, reason)
		c.JSON(status, gin.H{"error": err.Error(), "reason": reason})
		return
	}

	c.Set(observability.ContextFrameKind, frame.Kind().String())
	observability.RecordDecode(metricsSource, frame.Kind().String())
	rec := render.FromFrame(frame)
	rec.RequestID = c.GetString(observability.ContextRequestID)

	if c.Query("format") == render.FormatYAML || (c.Query("format") == "" && s.cfg.Output == render.FormatYAML) {
		c.YAML(http.StatusOK, rec)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// classifyError maps decode failures to an HTTP status and metric reason.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, hdlc.ErrUnknownFrameType):
		return http.StatusUnprocessableEntity, "unknown_frame_type"
	case errors.Is(err, hdlc.ErrPartitionMismatch):
		return http.StatusBadRequest, "partition_mismatch"
	case errors.Is(err, hdlc.ErrInvalidHexToken):
		return http.StatusBadRequest, "invalid_hex_token"
	case errors.Is(err, hdlc.ErrTooFewTokens), errors.Is(err, hdlc.ErrOutOfRange):
		return http.StatusBadRequest, "truncated"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
