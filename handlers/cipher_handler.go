// Package handlers is made to handle requests
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"trithemius-backend/analysis"
	"trithemius-backend/crypto"
	"trithemius-backend/models"
)

const Version = "1.0.0"

type CipherHandler struct {
	system   *crypto.System
	registry *crypto.Registry
	logger   *slog.Logger
	maxText  int
}

func NewCipherHandler(system *crypto.System, registry *crypto.Registry, logger *slog.Logger, maxText int) *CipherHandler {
	return &CipherHandler{
		system:   system,
		registry: registry,
		logger:   logger,
		maxText:  maxText,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Trithemius cipher API is running",
		"version": Version,
	})
}

// Alphabet returns the base alphabet and the alphabet permuted by ?key=.
func (h *CipherHandler) Alphabet(c *gin.Context) {
	key := c.Query("key")
	if err := validateOptionalKey(key); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success: false,
			Message: fmt.Sprintf("Invalid key: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.AlphabetResponse{
		Success: true,
		Key:     key,
		Base:    h.system.Alphabet().String(),
		Keyed:   h.system.CustomAlphabetString(key),
	})
}

func (h *CipherHandler) ListOperations(c *gin.Context) {
	ops := h.registry.List()
	infos := make([]models.OperationInfo, 0, len(ops))
	for _, op := range ops {
		infos = append(infos, models.NewOperationInfo(op))
	}
	c.JSON(http.StatusOK, models.OperationsResponse{
		Success:    true,
		Operations: infos,
	})
}

// Transform runs the operation named in the path on the request text.
func (h *CipherHandler) Transform(c *gin.Context) {
	name := c.Param("operation")
	if _, ok := h.registry.Get(name); !ok {
		c.JSON(http.StatusNotFound, models.CipherResponse{
			Success:   false,
			Operation: name,
			Message:   fmt.Sprintf("Unknown operation %q", name),
		})
		return
	}

	var req models.CipherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success:   false,
			Operation: name,
			Message:   fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	if err := h.validateText(req.Text); err != nil {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success:   false,
			Operation: name,
			Message:   err.Error(),
		})
		return
	}

	if req.Key == "" {
		c.JSON(http.StatusBadRequest, models.CipherResponse{
			Success:   false,
			Operation: name,
			Message:   "Key is required",
		})
		return
	}

	params := crypto.Params{Key: req.Key, Shift: req.Shift}
	result, err := h.registry.Execute(c.Request.Context(), name, req.Text, params)
	if err != nil {
		c.JSON(statusFor(err), models.CipherResponse{
			Success:   false,
			Operation: name,
			Message:   fmt.Sprintf("Failed to apply %s: %v", name, err),
		})
		return
	}

	h.logger.Debug("cipher applied",
		"request_id", RequestIDFrom(c),
		"operation", name,
		"length", utf8.RuneCountInString(req.Text))

	c.JSON(http.StatusOK, models.CipherResponse{
		Success:   true,
		Operation: name,
		Result:    result,
	})
}

// Pipeline runs a chain of operations, or its inverse chain when reverse is set.
func (h *CipherHandler) Pipeline(c *gin.Context) {
	var req models.PipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.PipelineResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	if err := h.validateText(req.Text); err != nil {
		c.JSON(http.StatusBadRequest, models.PipelineResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	pipeline := crypto.Pipeline{Steps: req.Steps}
	if req.Reverse {
		reversed, err := h.registry.Reverse(pipeline)
		if err != nil {
			c.JSON(statusFor(err), models.PipelineResponse{
				Success: false,
				Message: fmt.Sprintf("Failed to reverse pipeline: %v", err),
			})
			return
		}
		pipeline = reversed
	}

	result, err := h.registry.Run(c.Request.Context(), pipeline, req.Text)
	if err != nil {
		c.JSON(statusFor(err), models.PipelineResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to run pipeline: %v", err),
		})
		return
	}

	h.logger.Debug("pipeline applied",
		"request_id", RequestIDFrom(c),
		"steps", len(pipeline.Steps),
		"reverse", req.Reverse,
		"length", utf8.RuneCountInString(req.Text))

	c.JSON(http.StatusOK, models.PipelineResponse{
		Success: true,
		Steps:   pipeline.Steps,
		Result:  result,
	})
}

// Analyze builds the property report; an empty body analyzes the default samples.
func (h *CipherHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to parse request: %v", err),
		})
		return
	}

	for _, text := range []string{req.Text, req.Modified, req.OrderText} {
		if err := h.validateLength(text); err != nil {
			c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
	}

	report, err := analysis.Analyze(h.system, analysis.Options{
		Symbol:    req.Symbol,
		Text:      req.Text,
		Modified:  req.Modified,
		Key:       req.Key,
		OrderText: req.OrderText,
		FirstKey:  req.FirstKey,
		SecondKey: req.SecondKey,
		Threshold: req.Threshold,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, models.AnalyzeResponse{
			Success: false,
			Message: fmt.Sprintf("Failed to analyze: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success: true,
		Report:  &report,
	})
}

func (h *CipherHandler) validateText(text string) error {
	if text == "" {
		return errors.New("text is required")
	}
	return h.validateLength(text)
}

func (h *CipherHandler) validateLength(text string) error {
	if n := utf8.RuneCountInString(text); n > h.maxText {
		return fmt.Errorf("text too long: maximum length %d symbols, got %d", h.maxText, n)
	}
	return nil
}

func validateOptionalKey(key string) error {
	if key == "" {
		return nil
	}
	return crypto.ValidateKey(key)
}

// statusFor maps cipher errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, crypto.ErrUnknownOperation):
		return http.StatusNotFound
	case errors.Is(err, crypto.ErrEmptyKey),
		errors.Is(err, crypto.ErrKeyTooLong),
		errors.Is(err, crypto.ErrKeyLength),
		errors.Is(err, crypto.ErrTextLength),
		errors.Is(err, crypto.ErrBlockLength),
		errors.Is(err, crypto.ErrInvalidPadding),
		errors.Is(err, crypto.ErrInvalidShift),
		errors.Is(err, crypto.ErrNotReversible):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
