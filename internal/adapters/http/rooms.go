package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lingualive/coordinator/internal/app/orch"
	"github.com/lingualive/coordinator/internal/domain"
)

var startedAt = time.Now()

// RoomHandler exposes the REST command surface: the same join-free
// primitives for clients that hold no live socket.
type RoomHandler struct {
	Orch *orch.Orchestrator
}

func (h *RoomHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startedAt).Seconds(),
	})
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.Orch.ListRooms()})
}

func (h *RoomHandler) RoomInfo(c *gin.Context) {
	info := h.Orch.RoomInfo(domain.RoomID(c.Param("id")))
	if !info.Exists {
		c.JSON(http.StatusNotFound, info)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *RoomHandler) Summary(c *gin.Context) {
	sum, err := h.Orch.SummarizeRoom(domain.RoomID(c.Param("id")))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": sum.RoomID, "summary": sum, "generatedAt": time.Now()})
}

type postMessageRequest struct {
	Name      string `json:"name" binding:"required,max=36"`
	Message   string `json:"message" binding:"required"`
	Timestamp int64  `json:"timestamp"`
}

func (h *RoomHandler) PostMessage(c *gin.Context) {
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid fields"})
		return
	}
	ev, err := h.Orch.PostMessage(domain.RoomID(c.Param("id")), req.Name, req.Message, req.Timestamp)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrRoomNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ev)
}
