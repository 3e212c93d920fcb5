// internal/web/routes.go
package web

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sstent/fitcoach-go/internal/agents"
	"github.com/sstent/fitcoach-go/internal/garmindb"
	"github.com/sstent/fitcoach-go/internal/models"
	"github.com/sstent/fitcoach-go/internal/scoring"
	"github.com/sstent/fitcoach-go/internal/service"
)

// Syncer triggers a GarminDB resync; satisfied by *sync.Service.
type Syncer interface {
	Sync(ctx context.Context) models.SyncResult
}

type WebHandler struct {
	reader  *garmindb.Reader
	service *service.Service
	syncer  Syncer
	logger  *zap.SugaredLogger
}

func NewWebHandler(reader *garmindb.Reader, svc *service.Service, syncer Syncer, logger *zap.SugaredLogger) *WebHandler {
	return &WebHandler{
		reader:  reader,
		service: svc,
		syncer:  syncer,
		logger:  logger,
	}
}

func (h *WebHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/metrics", h.Metrics)
	api.GET("/status", h.Status)
	api.GET("/summary", h.Summary)
	api.GET("/zones", h.Zones)
	api.POST("/insights", h.Insights)
	api.POST("/chat", h.Chat)
	api.POST("/sync", h.Sync)
	api.POST("/request", h.Request)
}

func (h *WebHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Metrics returns the latest snapshot read from GarminDB. An unavailable
// store is a 200 with dataSource "unavailable", not an error.
func (h *WebHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.LatestSnapshot(1))
}

func (h *WebHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.Status())
}

func (h *WebHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.reader.WeeklySummary())
}

// Zones returns the five classic heart-rate training zones for a max heart
// rate, defaulting to 185 bpm when none is given.
func (h *WebHandler) Zones(c *gin.Context) {
	maxHR, err := strconv.Atoi(c.DefaultQuery("max_hr", "185"))
	if err != nil || maxHR < 100 || maxHR > 250 {
		c.JSON(http.StatusBadRequest, errorBody("max_hr must be a number between 100 and 250"))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"max_hr": maxHR,
		"zones":  scoring.HeartRateZones(maxHR),
	})
}

type insightsRequest struct {
	Data *models.MetricsSnapshot `json:"data"`
}

func (h *WebHandler) Insights(c *gin.Context) {
	var req insightsRequest
	// An empty or missing body means "read from the store".
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		h.logger.Warnw("bad insights request", "error", err)
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	c.JSON(http.StatusOK, h.service.DailyInsights(c.Request.Context(), req.Data))
}

type chatRequest struct {
	Message string                  `json:"message"`
	Data    *models.MetricsSnapshot `json:"data"`
}

func (h *WebHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("bad chat request", "error", err)
		c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, errorBody("message is required"))
		return
	}
	c.JSON(http.StatusOK, h.service.Chat(c.Request.Context(), req.Data, req.Message))
}

func (h *WebHandler) Sync(c *gin.Context) {
	result := h.syncer.Sync(c.Request.Context())
	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	c.JSON(status, result)
}

// Request is the raw envelope bridge used by the companion app: one JSON
// request envelope in, one envelope out, always 200 with the envelope
// carrying any error.
func (h *WebHandler) Request(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("unreadable request body"))
		return
	}
	c.Data(http.StatusOK, "application/json", h.service.Handle(c.Request.Context(), raw))
}

func errorBody(detail string) models.ErrorResponse {
	return models.ErrorResponse{
		Error:    detail,
		Insights: []models.Insight{agents.ErrorInsight(detail)},
	}
}
