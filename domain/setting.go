package domain

import (
	"context"
	"time"
)

const SettingActiveSemester = "active_semester_id"

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ActivityLog struct {
	LogID     int       `json:"log_id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

type ActiveSemesterPayload struct {
	SemesterID int `json:"semester_id" valid:"required~Semester ID is required"`
}

type SettingRepo interface {
	// GetActiveSemesterID returns nil when no semester has been activated yet.
	GetActiveSemesterID(ctx context.Context) (*int, error)
	SetActiveSemester(ctx context.Context, semesterID int) error
	GetAllSettings(ctx context.Context) (*[]Setting, error)
}

type ActivityLogRepo interface {
	InsertLog(ctx context.Context, log *ActivityLog) error
	GetLogs(ctx context.Context, page, perPage int) (*[]ActivityLog, int64, error)
}

type SettingUseCase interface {
	SetActiveSemester(ctx context.Context, actor *Claims, semesterID int) error
	GetAllSettings(ctx context.Context) (*[]Setting, error)
	GetActivityLogs(ctx context.Context, page, perPage int) (*[]ActivityLog, int64, error)
	RecordActivity(ctx context.Context, actor *Claims, action, detail string)
}
