package domain

import (
	"context"
	"time"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceSick    AttendanceStatus = "sick"
	AttendanceExcused AttendanceStatus = "excused"
	AttendanceAbsent  AttendanceStatus = "absent"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceSick, AttendanceExcused, AttendanceAbsent:
		return true
	default:
		return false
	}
}

type Attendance struct {
	AttendanceID int              `json:"attendance_id"`
	EnrollmentID int              `json:"enrollment_id"`
	ClassID      int              `json:"class_id"`
	TeacherID    int              `json:"teacher_id"`
	SemesterID   int              `json:"semester_id"`
	Date         time.Time        `json:"date"`
	Status       AttendanceStatus `json:"status"`
	Note         *string          `json:"note,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// AttendanceRow is the flat shape summaries aggregate over.
type AttendanceRow struct {
	StudentID   int              `json:"student_id"`
	StudentName string           `json:"student_name"`
	Date        time.Time        `json:"date"`
	Status      AttendanceStatus `json:"status"`
	Note        *string          `json:"note,omitempty"`
}

type StudentMark struct {
	StudentID int              `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Note      *string          `json:"note,omitempty"`
}

// BulkAttendancePayload is one class, one day, one mark per student.
type BulkAttendancePayload struct {
	ClassID int           `json:"class_id" valid:"required~Class ID is required"`
	Date    time.Time     `json:"date"`
	Marks   []StudentMark `json:"marks"`
}

type AttendanceRepo interface {
	// UpsertAttendance overwrites status, note and teacher when the natural
	// key (enrollment, date, class) already exists.
	UpsertAttendance(ctx context.Context, attendance *Attendance) error
	GetAttendanceByStudent(ctx context.Context, studentID, semesterID int) (*[]AttendanceRow, error)
	GetAttendanceByClass(ctx context.Context, classID, semesterID int) (*[]AttendanceRow, error)
}

type AttendanceUseCase interface {
	BulkUpsertAttendance(ctx context.Context, teacherID int, payload *BulkAttendancePayload) (*BatchReport, error)
}
