package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"flowgate/internal/api/dto"
	"flowgate/internal/api/middleware"
	"flowgate/internal/service"
)

func (s *Server) listWorkflows(c *gin.Context) {
	workflows, err := s.workflows.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list workflows"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflows": workflows})
}

func (s *Server) getWorkflow(c *gin.Context) {
	workflow, err := s.workflows.Get(c.Request.Context(), middleware.UserID(c), c.Param("workflowId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load workflow"})
		return
	}
	c.JSON(http.StatusOK, workflow)
}

func (s *Server) createWorkflow(c *gin.Context) {
	var req dto.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workflow, err := s.workflows.Create(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "workflow id already configured"})
		case errors.Is(err, service.ErrInactiveToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create workflow"})
		}
		return
	}

	c.JSON(http.StatusCreated, workflow)
}

func (s *Server) updateWorkflow(c *gin.Context) {
	var req dto.UpdateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workflow, err := s.workflows.Update(c.Request.Context(), middleware.UserID(c), c.Param("workflowId"), req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
		case errors.Is(err, service.ErrInactiveToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workflow"})
		}
		return
	}

	c.JSON(http.StatusOK, workflow)
}

func (s *Server) deleteWorkflow(c *gin.Context) {
	err := s.workflows.Delete(c.Request.Context(), middleware.UserID(c), c.Param("workflowId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workflow not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete workflow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workflow deleted"})
}
