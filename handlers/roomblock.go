package handlers

import (
	"net/http"

	"hotelops/models"
	"hotelops/services/roomblock"
	"hotelops/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomBlockHandler exposes the block lifecycle over HTTP for the operations
// console.
type RoomBlockHandler struct {
	Service roomblock.RoomBlockService
	Logger  *zap.Logger
}

// NewRoomBlockHandler constructs a RoomBlockHandler.
func NewRoomBlockHandler(svc roomblock.RoomBlockService, logger *zap.Logger) *RoomBlockHandler {
	return &RoomBlockHandler{Service: svc, Logger: logger}
}

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch roomblock.ErrorKind(err) {
	case roomblock.KindValidation:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case roomblock.KindInvalidState:
		utils.JSONError(c, http.StatusConflict, "Operation not allowed in current state", err.Error())
	case roomblock.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
	case roomblock.KindRemote:
		utils.JSONError(c, http.StatusBadGateway, "Upstream storage error", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}

// ListBlocks returns one page of blocks matching the query filters.
func (h *RoomBlockHandler) ListBlocks(c *gin.Context) {
	var filter models.BlockFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	page, err := h.Service.ListBlocks(c.Request.Context(), filter)
	if err != nil {
		h.Logger.Error("Failed to list room blocks", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBlock returns a single block.
func (h *RoomBlockHandler) GetBlock(c *gin.Context) {
	block, err := h.Service.GetBlock(c.Request.Context(), c.Param("blockId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// GetStats returns dashboard aggregates (cached).
func (h *RoomBlockHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.Stats(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to aggregate block stats", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// CreateBlock creates a room block with all rooms in blocked state.
func (h *RoomBlockHandler) CreateBlock(c *gin.Context) {
	var input models.CreateBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	block, err := h.Service.CreateBlock(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// UpdateBlock patches descriptive block fields.
func (h *RoomBlockHandler) UpdateBlock(c *gin.Context) {
	var patch models.UpdateBlockInput
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	block, err := h.Service.UpdateBlock(c.Request.Context(), c.Param("blockId"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// DeleteBlock removes a block entirely (whole-block release).
func (h *RoomBlockHandler) DeleteBlock(c *gin.Context) {
	if err := h.Service.DeleteBlock(c.Request.Context(), c.Param("blockId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BookRoom books one room out of a block for a guest.
func (h *RoomBlockHandler) BookRoom(c *gin.Context) {
	var input models.BookRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	block, err := h.Service.BookRoom(c.Request.Context(), c.Param("blockId"), c.Param("roomId"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// CheckInRoom marks a reserved room as occupied.
func (h *RoomBlockHandler) CheckInRoom(c *gin.Context) {
	block, err := h.Service.CheckInRoom(c.Request.Context(), c.Param("blockId"), c.Param("roomId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// ReleaseRoom frees one room back to general inventory.
func (h *RoomBlockHandler) ReleaseRoom(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	// Body is optional; a release without a reason is fine.
	_ = c.ShouldBindJSON(&input)
	block, err := h.Service.ReleaseRoom(c.Request.Context(), c.Param("blockId"), c.Param("roomId"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// CancelBlock releases every room and marks the block cancelled.
func (h *RoomBlockHandler) CancelBlock(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)
	block, err := h.Service.CancelBlock(c.Request.Context(), c.Param("blockId"), input.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// AddNote appends to a block's audit trail. The acting user is supplied
// explicitly in the payload, never inferred from session state.
func (h *RoomBlockHandler) AddNote(c *gin.Context) {
	var input struct {
		Content    string            `json:"content"`
		Author     models.NoteAuthor `json:"author"`
		IsInternal bool              `json:"isInternal"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	block, err := h.Service.AddNote(c.Request.Context(), c.Param("blockId"), input.Content, input.Author, input.IsInternal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}
