package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devaki264/cs-agent-workflow-engine/internal/ai"
	"github.com/devaki264/cs-agent-workflow-engine/internal/models"
	"github.com/devaki264/cs-agent-workflow-engine/internal/service"
	"github.com/devaki264/cs-agent-workflow-engine/internal/tickets"
)

// Handler carries the dependencies shared by all routes. Classifier is
// nil when initialization failed at startup; routes must keep serving
// and report the degraded state instead of crashing.
type Handler struct {
	Classifier ai.Classifier
	SamplePath string
	Logger     zerolog.Logger
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"classifier_ready": h.Classifier != nil,
	})
}

// @Summary Classify a ticket
// @Description Classify a single customer support ticket
// @Tags classify
// @Accept json
// @Produce json
// @Param ticket body models.Ticket true "Ticket"
// @Success 200 {object} models.ClassificationResult
// @Failure 400 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /classify [post]
func (h *Handler) Classify(c *gin.Context) {
	if h.Classifier == nil {
		writeError(c, http.StatusServiceUnavailable, "CLASSIFIER_NOT_READY", "Classifier not initialized", nil)
		return
	}

	var t models.Ticket
	if err := c.ShouldBindJSON(&t); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid ticket payload", err.Error())
		return
	}

	result := h.Classifier.ClassifyTicket(c.Request.Context(), t)
	if !result.Success {
		h.Logger.Warn().Str("ticket_id", t.ID).Str("error", result.Error).Msg("classification failed")
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Classify the sample batch
// @Description Run every ticket from the sample file through the classifier
// @Tags classify
// @Produce json
// @Success 200 {array} models.ClassificationResult
// @Failure 500 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /process-batch [post]
func (h *Handler) ProcessBatch(c *gin.Context) {
	if h.Classifier == nil {
		writeError(c, http.StatusServiceUnavailable, "CLASSIFIER_NOT_READY", "Classifier not initialized", nil)
		return
	}

	batch, err := tickets.LoadFile(h.SamplePath)
	if err != nil {
		h.Logger.Error().Err(err).Str("path", h.SamplePath).Msg("failed to load sample tickets")
		writeError(c, http.StatusInternalServerError, "SAMPLE_TICKETS_ERROR", "Failed to load sample tickets", err.Error())
		return
	}

	processor := service.BatchService{Classifier: h.Classifier, Logger: h.Logger}
	results := processor.ProcessBatch(c.Request.Context(), batch)
	c.JSON(http.StatusOK, results)
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
