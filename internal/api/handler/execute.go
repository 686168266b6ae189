package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"flowgate/internal/gateway"
)

// executeWorkflow serves both verbs of the public execute endpoint. GET
// callers pass parameters as query values, POST callers as a JSON object;
// an empty POST body means no caller parameters.
func (s *Server) executeWorkflow(c *gin.Context) {
	params, err := callerParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gateway.ErrorBody{
			Message: "request body must be a JSON object",
		})
		return
	}

	result := s.executor.Execute(c.Request.Context(), gateway.Invocation{
		WorkflowID: c.Param("workflowId"),
		Method:     c.Request.Method,
		Params:     params,
	})

	c.JSON(result.Status, result.Body)
}

func callerParams(c *gin.Context) (map[string]any, error) {
	if c.Request.Method == http.MethodGet {
		params := make(map[string]any)
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
		return params, nil
	}

	var params map[string]any
	if err := c.ShouldBindJSON(&params); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if params == nil {
		params = map[string]any{}
	}
	return params, nil
}
