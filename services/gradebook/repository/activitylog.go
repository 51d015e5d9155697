package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gradebook/domain"
)

type activityLogRepository struct {
	db *pgxpool.Pool
}

func NewActivityLogRepository(database *pgxpool.Pool) domain.ActivityLogRepo {
	return &activityLogRepository{
		db: database,
	}
}

func (lr *activityLogRepository) InsertLog(ctx context.Context, log *domain.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (user_id, username, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING log_id;
	`

	now := time.Now()
	err := lr.db.QueryRow(ctx, query, log.UserID, log.Username, log.Action, log.Detail, now).Scan(&log.LogID)
	if err != nil {
		return fmt.Errorf("could not insert activity log: %v", err)
	}
	log.CreatedAt = now

	return nil
}

func (lr *activityLogRepository) GetLogs(ctx context.Context, page, perPage int) (*[]domain.ActivityLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}

	var total int64
	if err := lr.db.QueryRow(ctx, `SELECT COUNT(*) FROM activity_logs;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("could not count activity logs: %v", err)
	}

	query := `
		SELECT log_id, user_id, username, action, detail, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := lr.db.Query(ctx, query, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, fmt.Errorf("could not get activity logs: %v", err)
	}
	defer rows.Close()

	var logs []domain.ActivityLog
	for rows.Next() {
		var l domain.ActivityLog
		if err := rows.Scan(&l.LogID, &l.UserID, &l.Username, &l.Action, &l.Detail, &l.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("could not scan activity log: %v", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %v", err)
	}

	return &logs, total, nil
}
