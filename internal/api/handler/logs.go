package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowgate/internal/api/dto"
	"flowgate/internal/api/middleware"
	"flowgate/internal/core/ports"
	"flowgate/internal/domain"
)

func (s *Server) listLogs(c *gin.Context) {
	page, limit := pageParams(c)
	filter := ports.LogFilter{
		UserID:     middleware.UserID(c),
		WorkflowID: c.Query("workflow_id"),
		Status:     domain.ExecutionStatus(c.Query("status")),
		Page:       page,
		Limit:      limit,
	}

	logs, total, err := s.logs.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}

	c.JSON(http.StatusOK, dto.LogPage{
		Logs:       logs,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func (s *Server) getLog(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	log, err := s.logs.Get(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load log"})
		return
	}

	c.JSON(http.StatusOK, log)
}

func (s *Server) logStats(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	stats, err := s.logs.Stats(c.Request.Context(), middleware.UserID(c), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (s *Server) deleteLogs(c *gin.Context) {
	var req dto.DeleteLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.IDs) == 0 && req.Days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "either ids or days is required"})
		return
	}

	deleted, err := s.logs.Delete(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// listWorkflowLogs serves the execution history of one workflow, scoped to
// its owner.
func (s *Server) listWorkflowLogs(c *gin.Context) {
	page, limit := pageParams(c)

	logs, total, err := s.logs.ListByWorkflow(
		c.Request.Context(), middleware.UserID(c), c.Param("workflowId"), page, limit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list logs"})
		return
	}

	c.JSON(http.StatusOK, dto.LogPage{
		Logs:       logs,
		Pagination: dto.NewPagination(page, limit, total),
	})
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
