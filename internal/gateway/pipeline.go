// Package gateway implements the workflow execution pipeline: resolve the
// stored configuration, merge parameters, normalize the credential, invoke
// the upstream service, transform the response, and hand the audit record
// to the recorder.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"flowgate/internal/core/ports"
	"flowgate/internal/domain"
	"flowgate/internal/metrics"
	"flowgate/internal/upstream"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Invoker performs the outbound workflow-run call.
type Invoker interface {
	Run(ctx context.Context, authorization string, req upstream.RunRequest) (any, error)
}

// Recorder accepts audit records for asynchronous persistence. Enqueue must
// never block the caller-facing response.
type Recorder interface {
	Enqueue(log *domain.WorkflowLog)
}

// Invocation is one call to the public execute endpoint.
type Invocation struct {
	WorkflowID string
	// Method is the verb the caller actually used; the configured method
	// is advisory only.
	Method string
	Params map[string]any
}

// Result carries the caller-facing HTTP status and JSON body.
type Result struct {
	Status int
	Body   any
}

// ErrorBody is the caller-facing error envelope.
type ErrorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   any    `json:"error,omitempty"`
}

type Pipeline struct {
	workflows ports.WorkflowRepository
	invoker   Invoker
	recorder  Recorder
	logger    *slog.Logger
}

func NewPipeline(workflows ports.WorkflowRepository, invoker Invoker, recorder Recorder, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		workflows: workflows,
		invoker:   invoker,
		recorder:  recorder,
		logger:    logger,
	}
}

// Execute runs the full pipeline for one invocation. It always returns a
// well-formed JSON body; every outcome except "configuration not found"
// produces exactly one audit record.
func (p *Pipeline) Execute(ctx context.Context, inv Invocation) Result {
	start := time.Now()

	// Resolving
	workflow, err := p.workflows.FindByWorkflowID(ctx, inv.WorkflowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{http.StatusNotFound, ErrorBody{Message: "workflow configuration not found"}}
		}
		p.logger.Error("workflow lookup failed", "workflow_id", inv.WorkflowID, "error", err)
		return Result{http.StatusInternalServerError, ErrorBody{Message: "internal server error"}}
	}
	if !workflow.IsActive {
		// a disabled workflow is indistinguishable from a missing one
		return Result{http.StatusNotFound, ErrorBody{Message: "workflow configuration not found"}}
	}

	// Merging; cannot fail terminally, worst case is an empty default set
	merged := MergeParams(workflow.Parameters, inv.Params)

	record := domain.NewWorkflowLog(workflow.UserID, workflow.WorkflowID, inv.Method)
	record.RequestParams = toJSON(merged)

	// Authorizing
	authorization, err := NormalizeCredential(workflow.Token)
	if err != nil {
		p.finish(record, start, domain.ExecutionError, "workflow credential is not configured")
		return Result{http.StatusBadRequest, ErrorBody{Message: "workflow credential is not configured"}}
	}

	// Invoking
	raw, err := p.invoker.Run(ctx, authorization, upstream.RunRequest{
		WorkflowID: workflow.WorkflowID,
		Parameters: merged,
		IsAsync:    workflow.IsAsync,
	})
	if err != nil {
		p.logger.Warn("upstream invocation failed",
			"workflow_id", workflow.WorkflowID, "error", err)
		return p.failUpstream(record, start, err)
	}

	// Transforming; degrades to a failure envelope instead of erroring
	envelope := Transform(raw)
	record.ResponseData = toJSON(envelope)

	// Recording
	p.finish(record, start, domain.ExecutionSuccess, "")

	return Result{http.StatusOK, envelope}
}

func (p *Pipeline) failUpstream(record *domain.WorkflowLog, start time.Time, err error) Result {
	status := http.StatusInternalServerError
	message := "upstream call failed: " + err.Error()
	var errBody any

	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		if upErr.StatusCode != 0 {
			status = upErr.StatusCode
		}
		errBody = upErr.Body
		if m := upstreamMessage(upErr); m != "" {
			message = "upstream call failed: " + m
		}
	}

	outcome := domain.ExecutionError
	if upstream.IsTimeout(err) {
		outcome = domain.ExecutionTimeout
	}
	p.finish(record, start, outcome, message)

	return Result{status, ErrorBody{Message: message, Error: errBody}}
}

func (p *Pipeline) finish(record *domain.WorkflowLog, start time.Time, status domain.ExecutionStatus, message string) {
	elapsed := time.Since(start)
	record.ExecutionTime = elapsed.Milliseconds()
	if status != domain.ExecutionSuccess {
		record.Fail(status, message)
	}

	metrics.ObserveExecution(record.WorkflowID, string(record.Status), elapsed)
	p.recorder.Enqueue(record)
}

// upstreamMessage pulls a human-readable message out of the upstream error
// body, preferring the body's own message over the transport error.
func upstreamMessage(err *upstream.Error) string {
	body, ok := err.Body.(map[string]any)
	if !ok {
		return err.Message
	}
	if m, ok := body["message"].(string); ok && m != "" {
		return m
	}
	if m, ok := body["msg"].(string); ok && m != "" {
		return m
	}
	return err.Message
}

func toJSON(v any) datatypes.JSON {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(payload)
}
