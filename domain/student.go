package domain

import (
	"context"
	"time"
)

// Enrollment links a student account to exactly one class. Grades and
// attendance reference the enrollment, never the raw user row, so history
// stays with the class the mark was earned in.
type Enrollment struct {
	EnrollmentID int       `json:"enrollment_id"`
	StudentID    int       `json:"student_id"`
	ClassID      int       `json:"class_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RosterEntry is one row of a class roster as shown on bulk entry forms.
type RosterEntry struct {
	EnrollmentID int    `json:"enrollment_id"`
	StudentID    int    `json:"student_id"`
	StudentName  string `json:"student_name"`
}

type ReassignClassPayload struct {
	ClassID int `json:"class_id" valid:"required~Class ID is required"`
}

type EnrollmentRepo interface {
	CreateEnrollment(ctx context.Context, studentID, classID int) error
	GetEnrollmentByStudent(ctx context.Context, studentID int) (*Enrollment, error)
	GetClassRoster(ctx context.Context, classID int) (*[]RosterEntry, error)
	ReassignClass(ctx context.Context, studentID, classID int) error
}
