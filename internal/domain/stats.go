package domain

// LogStats aggregates audit records over a trailing window of days.
type LogStats struct {
	Summary   StatsSummary    `json:"summary"`
	Daily     []DailyStats    `json:"daily_stats"`
	Workflows []WorkflowStats `json:"workflow_stats"`
}

type StatsSummary struct {
	TotalCalls       int64   `json:"total_calls"`
	SuccessCalls     int64   `json:"success_calls"`
	ErrorCalls       int64   `json:"error_calls"`
	TimeoutCalls     int64   `json:"timeout_calls"`
	SuccessRate      float64 `json:"success_rate"`
	AvgExecutionTime int64   `json:"avg_execution_time"`
	MaxExecutionTime int64   `json:"max_execution_time"`
	MinExecutionTime int64   `json:"min_execution_time"`
}

type DailyStats struct {
	Date             string  `json:"date"`
	TotalCalls       int64   `json:"total_calls"`
	SuccessCalls     int64   `json:"success_calls"`
	ErrorCalls       int64   `json:"error_calls"`
	AvgExecutionTime float64 `json:"avg_execution_time"`
}

type WorkflowStats struct {
	WorkflowID       string  `json:"workflow_id"`
	WorkflowName     string  `json:"workflow_name"`
	TotalCalls       int64   `json:"total_calls"`
	SuccessCalls     int64   `json:"success_calls"`
	AvgExecutionTime float64 `json:"avg_execution_time"`
}
