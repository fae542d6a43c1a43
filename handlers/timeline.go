package handlers

import (
	"net/http"
	"time"

	"hotelops/models"
	"hotelops/services/reporting"
	"hotelops/services/roomblock"
	"hotelops/services/timeline"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimelineHandler serves tape chart projections and per-block derived
// numbers to the console.
type TimelineHandler struct {
	Service  roomblock.RoomBlockService
	Reporter *reporting.Reporter
	Logger   *zap.Logger
}

// NewTimelineHandler constructs a TimelineHandler.
func NewTimelineHandler(svc roomblock.RoomBlockService, reporter *reporting.Reporter, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{Service: svc, Reporter: reporter, Logger: logger}
}

// ProjectRoom clips every block holding the given room against the requested
// viewport and returns the drawable segments.
func (h *TimelineHandler) ProjectRoom(c *gin.Context) {
	var query struct {
		RoomID     string `form:"roomId"`
		RoomNumber string `form:"roomNumber"`
		Start      string `form:"start"`
		End        string `form:"end"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	if query.RoomID == "" && query.RoomNumber == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", "roomId or roomNumber is required")
		return
	}
	start, err := time.Parse("2006-01-02", query.Start)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", "start must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", query.End)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", "end must be YYYY-MM-DD")
		return
	}

	room := models.Room{ID: query.RoomID, Number: query.RoomNumber}
	viewport := models.Viewport{Start: start, End: end}
	blocks := h.Service.Registry().List()

	segments, err := timeline.Project(room, viewport, blocks)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid viewport", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

// BlockMetrics returns utilization, estimated revenue and days-until-event
// for one block.
func (h *TimelineHandler) BlockMetrics(c *gin.Context) {
	block, err := h.Service.GetBlock(c.Request.Context(), c.Param("blockId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"blockId":          block.ID,
		"utilization":      roomblock.ComputeUtilization(block),
		"estimatedRevenue": roomblock.EstimateRevenue(block, h.Reporter.DefaultRate),
		"daysUntilEvent":   h.Reporter.DaysUntilEvent(block),
	})
}

// PortfolioSummary aggregates the loaded registry for dashboards.
func (h *TimelineHandler) PortfolioSummary(c *gin.Context) {
	var filter models.BlockFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	c.JSON(http.StatusOK, h.Reporter.Summarize(filter))
}
