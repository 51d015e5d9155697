package domain

import (
	"context"
	"time"
)

// GradeType is the assessment category, not a numeric value.
type GradeType string

const (
	GradeTypeAssignment GradeType = "assignment"
	GradeTypeQuiz       GradeType = "quiz"
	GradeTypeMidterm    GradeType = "midterm"
	GradeTypeFinal      GradeType = "final"
)

func (g GradeType) Valid() bool {
	switch g {
	case GradeTypeAssignment, GradeTypeQuiz, GradeTypeMidterm, GradeTypeFinal:
		return true
	default:
		return false
	}
}

type Grade struct {
	GradeID      int       `json:"grade_id"`
	EnrollmentID int       `json:"enrollment_id"`
	SubjectID    int       `json:"subject_id"`
	TeacherID    int       `json:"teacher_id"`
	SemesterID   int       `json:"semester_id"`
	GradeType    GradeType `json:"grade_type"`
	Score        float64   `json:"score"`
	ExamDate     time.Time `json:"exam_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GradeRow is the flat shape reports aggregate over.
type GradeRow struct {
	StudentID   int       `json:"student_id"`
	StudentName string    `json:"student_name"`
	SubjectID   int       `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	GradeType   GradeType `json:"grade_type"`
	Score       float64   `json:"score"`
	ExamDate    time.Time `json:"exam_date"`
}

type StudentScore struct {
	StudentID int     `json:"student_id"`
	Score     float64 `json:"score"`
}

// BulkGradePayload carries the shared context once and one score per student.
type BulkGradePayload struct {
	ClassID   int            `json:"class_id" valid:"required~Class ID is required"`
	SubjectID int            `json:"subject_id" valid:"required~Subject ID is required"`
	GradeType GradeType      `json:"grade_type" valid:"required~Grade type is required"`
	ExamDate  time.Time      `json:"exam_date"`
	Scores    []StudentScore `json:"scores"`
}

type GradeRepo interface {
	// UpsertGrade overwrites score and exam date when the natural key
	// (teacher, enrollment, subject, semester, grade type) already exists.
	UpsertGrade(ctx context.Context, grade *Grade) error
	GetGradesByClass(ctx context.Context, classID, semesterID int) (*[]GradeRow, error)
	GetGradesByStudent(ctx context.Context, studentID, semesterID int) (*[]GradeRow, error)
	GetGradesByTeacher(ctx context.Context, teacherID, classID, subjectID, semesterID int) (*[]GradeRow, error)
}

type GradeUseCase interface {
	BulkUpsertGrades(ctx context.Context, teacherID int, payload *BulkGradePayload) (*BatchReport, error)
	GetTeacherGrades(ctx context.Context, teacherID, classID, subjectID int) (*[]GradeRow, error)
}
