package routes

import "github.com/gin-gonic/gin"

// RegisterRoomBlockRoutes registers all endpoints for the block lifecycle.
func RegisterRoomBlockRoutes(r *gin.Engine, hb *HandlerBundle) {
	blocks := r.Group("/api/room-blocks")
	{
		blocks.GET("", hb.RoomBlock.ListBlocks)
		blocks.GET("/stats", hb.RoomBlock.GetStats)
		blocks.GET("/:blockId", hb.RoomBlock.GetBlock)
		blocks.POST("", hb.RoomBlock.CreateBlock)
		blocks.PUT("/:blockId", hb.RoomBlock.UpdateBlock)
		blocks.DELETE("/:blockId", hb.RoomBlock.DeleteBlock)

		blocks.POST("/:blockId/rooms/:roomId/book", hb.RoomBlock.BookRoom)
		blocks.POST("/:blockId/rooms/:roomId/checkin", hb.RoomBlock.CheckInRoom)
		blocks.POST("/:blockId/rooms/:roomId/release", hb.RoomBlock.ReleaseRoom)
		blocks.POST("/:blockId/cancel", hb.RoomBlock.CancelBlock)
		blocks.POST("/:blockId/notes", hb.RoomBlock.AddNote)
	}
}

// RegisterTimelineRoutes registers the tape chart and reporting endpoints.
func RegisterTimelineRoutes(r *gin.Engine, hb *HandlerBundle) {
	tape := r.Group("/api/timeline")
	{
		tape.GET("/project", hb.Timeline.ProjectRoom)
		tape.GET("/blocks/:blockId/metrics", hb.Timeline.BlockMetrics)
		tape.GET("/summary", hb.Timeline.PortfolioSummary)
	}
}
