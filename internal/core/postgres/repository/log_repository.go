package repository

import (
	"context"
	"fmt"

	"flowgate/internal/core/ports"
	"flowgate/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new instance of LogRepository
func NewLogRepository(db *gorm.DB) ports.LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, log *domain.WorkflowLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *logRepository) List(ctx context.Context, filter ports.LogFilter) ([]domain.WorkflowLog, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}

	query := r.db.WithContext(ctx).
		Model(&domain.WorkflowLog{}).
		Where("user_id = ?", filter.UserID)
	if filter.WorkflowID != "" {
		query = query.Where("workflow_id = ?", filter.WorkflowID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []domain.WorkflowLog
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *logRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*domain.WorkflowLog, error) {
	var log domain.WorkflowLog
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *logRepository) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id IN ? AND user_id = ?", ids, userID).
		Delete(&domain.WorkflowLog{})

	return result.RowsAffected, result.Error
}

func (r *logRepository) DeleteOlderThan(ctx context.Context, userID uuid.UUID, days int) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at < NOW() - ? * INTERVAL '1 day'", userID, days).
		Delete(&domain.WorkflowLog{})

	return result.RowsAffected, result.Error
}

const summaryQuery = `
	SELECT COUNT(*) AS total_calls,
	       COUNT(*) FILTER (WHERE status = 'success') AS success_calls,
	       COUNT(*) FILTER (WHERE status = 'error') AS error_calls,
	       COUNT(*) FILTER (WHERE status = 'timeout') AS timeout_calls,
	       COALESCE(AVG(execution_time), 0) AS avg_execution_time,
	       COALESCE(MAX(execution_time), 0) AS max_execution_time,
	       COALESCE(MIN(execution_time), 0) AS min_execution_time
	FROM workflow_logs
	WHERE user_id = ? AND created_at >= NOW() - ? * INTERVAL '1 day'
`

const dailyQuery = `
	SELECT to_char(created_at, 'YYYY-MM-DD') AS date,
	       COUNT(*) AS total_calls,
	       COUNT(*) FILTER (WHERE status = 'success') AS success_calls,
	       COUNT(*) FILTER (WHERE status = 'error') AS error_calls,
	       COALESCE(AVG(execution_time), 0) AS avg_execution_time
	FROM workflow_logs
	WHERE user_id = ? AND created_at >= NOW() - ? * INTERVAL '1 day'
	GROUP BY to_char(created_at, 'YYYY-MM-DD')
	ORDER BY date DESC
`

const workflowStatsQuery = `
	SELECT l.workflow_id,
	       COALESCE(w.name, '') AS workflow_name,
	       COUNT(*) AS total_calls,
	       COUNT(*) FILTER (WHERE l.status = 'success') AS success_calls,
	       COALESCE(AVG(l.execution_time), 0) AS avg_execution_time
	FROM workflow_logs l
	LEFT JOIN workflows w ON l.workflow_id = w.workflow_id AND l.user_id = w.user_id
	WHERE l.user_id = ? AND l.created_at >= NOW() - ? * INTERVAL '1 day'
	GROUP BY l.workflow_id, w.name
	ORDER BY total_calls DESC
	LIMIT 10
`

type summaryRow struct {
	TotalCalls       int64
	SuccessCalls     int64
	ErrorCalls       int64
	TimeoutCalls     int64
	AvgExecutionTime float64
	MaxExecutionTime int64
	MinExecutionTime int64
}

func (r *logRepository) Stats(ctx context.Context, userID uuid.UUID, days int) (*domain.LogStats, error) {
	var row summaryRow
	if err := r.db.WithContext(ctx).Raw(summaryQuery, userID, days).Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("log summary: %w", err)
	}

	stats := &domain.LogStats{
		Summary: domain.StatsSummary{
			TotalCalls:       row.TotalCalls,
			SuccessCalls:     row.SuccessCalls,
			ErrorCalls:       row.ErrorCalls,
			TimeoutCalls:     row.TimeoutCalls,
			AvgExecutionTime: int64(row.AvgExecutionTime),
			MaxExecutionTime: row.MaxExecutionTime,
			MinExecutionTime: row.MinExecutionTime,
		},
	}
	if row.TotalCalls > 0 {
		stats.Summary.SuccessRate = float64(row.SuccessCalls) / float64(row.TotalCalls) * 100
	}

	if err := r.db.WithContext(ctx).Raw(dailyQuery, userID, days).Scan(&stats.Daily).Error; err != nil {
		return nil, fmt.Errorf("daily stats: %w", err)
	}
	if err := r.db.WithContext(ctx).Raw(workflowStatsQuery, userID, days).Scan(&stats.Workflows).Error; err != nil {
		return nil, fmt.Errorf("workflow stats: %w", err)
	}

	return stats, nil
}
