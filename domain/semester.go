package domain

import (
	"context"
	"time"
)

type Semester struct {
	SemesterID   int       `json:"semester_id"`
	Name         string    `json:"name" valid:"required~Semester name is required"`
	AcademicYear string    `json:"academic_year" valid:"required~Academic year is required"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SemesterRepo interface {
	CreateSemester(ctx context.Context, semester *Semester) error
	GetAllSemesters(ctx context.Context) (*[]Semester, error)
	GetSemesterByID(ctx context.Context, id int) (*Semester, error)
	DeleteSemester(ctx context.Context, id int) error
}
